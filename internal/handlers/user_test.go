package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/taskstack/user-task-api/internal/auth"
	"github.com/taskstack/user-task-api/internal/models"
	"github.com/taskstack/user-task-api/internal/repository"
	"github.com/taskstack/user-task-api/internal/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type userTestEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func setupUserTestEnv(t *testing.T) userTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Task{}))

	userRepo := repository.NewUserRepository(db)
	hasher := auth.NewPasswordHasherWithCost(bcrypt.MinCost)
	userService := services.NewUserService(userRepo, hasher)
	handler := NewUserHandler(userService)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/signup", handler.Signup)
	r.POST("/login", handler.Login)
	r.GET("/getallusers", handler.ListUsers)
	r.GET("/getuser/:id", handler.GetUser)
	r.POST("/updateuser/:id", handler.UpdateUser)
	r.POST("/deleteuser/:id", handler.DeleteUser)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return userTestEnv{db: db, router: r}
}

func (env userTestEnv) do(t *testing.T, method, path string, payload interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var req *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return w, response
}

func signupTestUser(t *testing.T, env userTestEnv, email string) string {
	t.Helper()

	w, response := env.do(t, http.MethodPost, "/signup", map[string]string{
		"first_name": "Alice",
		"last_name":  "Doe",
		"email":      email,
		"password":   "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	user := response["user"].(map[string]interface{})
	return user["user_id"].(string)
}

func TestSignup_Success(t *testing.T) {
	env := setupUserTestEnv(t)

	w, response := env.do(t, http.MethodPost, "/signup", map[string]string{
		"first_name": "Alice",
		"last_name":  "Doe",
		"email":      "alice@x.com",
		"password":   "secret1",
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, response["status"])
	require.Equal(t, "User created successfully", response["message"])

	user := response["user"].(map[string]interface{})
	require.NotEmpty(t, user["user_id"])
	require.Equal(t, "alice@x.com", user["email"])
	require.NotContains(t, user, "password")
}

func TestSignup_DuplicateEmail(t *testing.T) {
	env := setupUserTestEnv(t)
	signupTestUser(t, env, "alice@x.com")

	w, response := env.do(t, http.MethodPost, "/signup", map[string]string{
		"first_name": "Alice",
		"last_name":  "Doe",
		"email":      "alice@x.com",
		"password":   "secret2",
	})

	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, false, response["status"])
	require.Equal(t, "CONFLICT", response["code"])

	var count int64
	env.db.Model(&models.User{}).Where("email = ?", "alice@x.com").Count(&count)
	require.EqualValues(t, 1, count)
}

func TestSignup_RejectsShortFields(t *testing.T) {
	env := setupUserTestEnv(t)

	w, response := env.do(t, http.MethodPost, "/signup", map[string]string{
		"first_name": "Al",
		"last_name":  "Doe",
		"email":      "alice@x.com",
		"password":   "secret1",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "INVALID_INPUT", response["code"])
}

func TestLogin_Scenario(t *testing.T) {
	env := setupUserTestEnv(t)
	userID := signupTestUser(t, env, "alice@x.com")

	// Correct credentials return the same user.
	w, response := env.do(t, http.MethodPost, "/login", map[string]string{
		"email":    "alice@x.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, response["status"])
	user := response["user"].(map[string]interface{})
	require.Equal(t, userID, user["user_id"])
	require.NotContains(t, user, "password")

	// Wrong password declines.
	w, response = env.do(t, http.MethodPost, "/login", map[string]string{
		"email":    "alice@x.com",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, false, response["status"])
	require.Equal(t, "Invalid password", response["message"])

	// Unknown email declines with the original's distinct message.
	w, response = env.do(t, http.MethodPost, "/login", map[string]string{
		"email":    "nobody@x.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "User does not exist", response["message"])
}

func TestListUsers_NoPasswordField(t *testing.T) {
	env := setupUserTestEnv(t)
	signupTestUser(t, env, "alice@x.com")
	signupTestUser(t, env, "bobby@x.com")

	w, response := env.do(t, http.MethodGet, "/getallusers", nil)
	require.Equal(t, http.StatusOK, w.Code)

	users := response["users"].([]interface{})
	require.Len(t, users, 2)
	for _, u := range users {
		require.NotContains(t, u.(map[string]interface{}), "password")
	}
}

func TestGetUser(t *testing.T) {
	env := setupUserTestEnv(t)
	userID := signupTestUser(t, env, "alice@x.com")

	w, response := env.do(t, http.MethodGet, "/getuser/"+userID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	user := response["user"].(map[string]interface{})
	require.Equal(t, userID, user["user_id"])
	require.NotContains(t, user, "password")

	// Malformed id declines before any store call.
	w, response = env.do(t, http.MethodGet, "/getuser/not-a-uuid", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "INVALID_ID", response["code"])

	// Well-formed but unknown id is a not-found.
	w, response = env.do(t, http.MethodGet, "/getuser/4f9c1df2-7a8e-4f25-9b33-b22a70a1c001", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "NOT_FOUND", response["code"])
}

func TestUpdateUser_FullOverwrite(t *testing.T) {
	env := setupUserTestEnv(t)
	userID := signupTestUser(t, env, "alice@x.com")

	w, response := env.do(t, http.MethodPost, "/updateuser/"+userID, map[string]string{
		"first_name": "Alicia",
		"last_name":  "Doe",
		"email":      "alicia@x.com",
		"password":   "newsecret",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, response["status"])

	// The new password is hashed and live.
	w, _ = env.do(t, http.MethodPost, "/login", map[string]string{
		"email":    "alicia@x.com",
		"password": "newsecret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Unknown id declines.
	w, response = env.do(t, http.MethodPost, "/updateuser/4f9c1df2-7a8e-4f25-9b33-b22a70a1c001", map[string]string{
		"first_name": "Ghost",
		"last_name":  "User",
		"email":      "ghost@x.com",
		"password":   "newsecret",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "NOT_FOUND", response["code"])
}

func TestDeleteUser(t *testing.T) {
	env := setupUserTestEnv(t)
	userID := signupTestUser(t, env, "alice@x.com")

	w, response := env.do(t, http.MethodPost, "/deleteuser/"+userID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	user := response["user"].(map[string]interface{})
	require.Equal(t, userID, user["user_id"])

	w, response = env.do(t, http.MethodPost, "/deleteuser/"+userID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "NOT_FOUND", response["code"])
}
