// Package httpx shapes the uniform response envelope used by every
// endpoint: {message, status} plus a resource key on success or a
// structured code on decline.
package httpx

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes carried in declined envelopes. Callers can branch on the
// code instead of parsing the message string.
const (
	CodeInvalidInput       = "INVALID_INPUT"
	CodeInvalidID          = "INVALID_ID"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInternalError      = "INTERNAL_ERROR"
)

// OK writes a success envelope. Extra resource keys (user, users, task,
// tasks) are merged into the body.
func OK(c *gin.Context, message string, payload gin.H) {
	body := gin.H{
		"message": message,
		"status":  true,
	}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Decline writes a declined envelope with a structured code.
func Decline(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, gin.H{
		"message": message,
		"status":  false,
		"code":    code,
	})
}

// BadRequest declines a request whose body failed validation.
func BadRequest(c *gin.Context, message string) {
	Decline(c, http.StatusBadRequest, CodeInvalidInput, message)
}

// InvalidID declines a request carrying a malformed identifier. This
// runs before any store call is issued.
func InvalidID(c *gin.Context, message string) {
	Decline(c, http.StatusBadRequest, CodeInvalidID, message)
}

// NotFound declines a request whose lookup returned nothing.
func NotFound(c *gin.Context, message string) {
	Decline(c, http.StatusNotFound, CodeNotFound, message)
}

// Conflict declines a request that would duplicate an existing record.
func Conflict(c *gin.Context, message string) {
	Decline(c, http.StatusConflict, CodeConflict, message)
}

// Unauthorized declines a login with bad credentials.
func Unauthorized(c *gin.Context, message string) {
	Decline(c, http.StatusUnauthorized, CodeInvalidCredentials, message)
}

// Internal declines a request after a store or hashing failure. The
// underlying error is logged server-side and never sent to the caller.
func Internal(c *gin.Context, message string, err error) {
	if err != nil {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	Decline(c, http.StatusInternalServerError, CodeInternalError, message)
}
