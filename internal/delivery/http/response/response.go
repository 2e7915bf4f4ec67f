// Package response defines the JSON bodies returned by the HTTP delivery.
package response

import (
	"net/http"
	"time"

	deliverycontext "facelock/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Code      string `json:"code"`    // Machine-readable error code, e.g. "NO_FACE_DETECTED"
	Message   string `json:"message"` // User-friendly error message
	RequestID string `json:"request_id"`
}

// MessageResponse carries a bare message.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports liveness.
type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// RegisterResponse confirms an enrolled face.
type RegisterResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"user_id"`
	FaceID  string `json:"face_id"`
	Message string `json:"message"`
}

// VerifyResponse carries the matched user and their session token.
type VerifyResponse struct {
	Success    bool      `json:"success"`
	UserID     string    `json:"user_id"`
	Similarity float64   `json:"similarity"`
	Message    string    `json:"message"`
	Token      string    `json:"token"`
	TokenType  string    `json:"token_type"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// UserResponse describes the authenticated user.
type UserResponse struct {
	Success  bool   `json:"success"`
	UserID   string `json:"user_id"`
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
}

// UserListResponse lists enrolled users.
type UserListResponse struct {
	Success    bool     `json:"success"`
	Users      []string `json:"users"`
	TotalCount int      `json:"total_count"`
}

// DeleteUserResponse confirms a deletion.
type DeleteUserResponse struct {
	Success          bool   `json:"success"`
	UserID           string `json:"user_id"`
	DeletedFaceCount int    `json:"deleted_face_count"`
	Message          string `json:"message"`
}

// Success writes a 200 response.
func Success(c echo.Context, body any) error {
	return c.JSON(http.StatusOK, body)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorResponse{
		Success:   false,
		Code:      errorCode,
		Message:   message,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message)
}
