package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() *PasswordHasher {
	return NewPasswordHasherWithCost(bcrypt.MinCost)
}

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := newTestHasher()

	hashed, err := h.Hash("supersecret")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	require.NotEqual(t, "supersecret", hashed)

	require.True(t, h.Verify("supersecret", hashed))
	require.False(t, h.Verify("wrongpassword", hashed))
}

func TestPasswordHasher_FreshSaltPerCall(t *testing.T) {
	h := newTestHasher()

	first, err := h.Hash("supersecret")
	require.NoError(t, err)
	second, err := h.Hash("supersecret")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.True(t, h.Verify("supersecret", first))
	require.True(t, h.Verify("supersecret", second))
}

func TestPasswordHasher_VerifyGarbageHash(t *testing.T) {
	h := newTestHasher()

	require.False(t, h.Verify("supersecret", "not-a-bcrypt-hash"))
}
