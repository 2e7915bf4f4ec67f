// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"
)

// FaceUsecase defines the interface for face registration, verification and user management.
type FaceUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Verify(ctx context.Context, input *VerifyInput) (*VerifyOutput, error)
	CurrentUser(ctx context.Context, userID string) (*UserOutput, error)
	ListUsers(ctx context.Context) (*ListUsersOutput, error)
	DeleteUser(ctx context.Context, input *DeleteUserInput) (*DeleteUserOutput, error)
}

// --- Input DTOs ---

// RegisterInput defines the data required to enroll a face.
type RegisterInput struct {
	UserID   string
	FullName string
	Email    string
	Image    []byte
}

// VerifyInput defines the data required to verify a query image.
// A nil Threshold falls back to the configured default.
type VerifyInput struct {
	Image     []byte
	Threshold *float64
}

// DeleteUserInput identifies the user to delete and who is asking.
type DeleteUserInput struct {
	RequesterID string
	UserID      string
}

// --- Output DTOs ---

// RegisterOutput describes an indexed face.
type RegisterOutput struct {
	UserID string
	FaceID string
}

// VerifyOutput carries the matched user and the session token issued for them.
type VerifyOutput struct {
	UserID     string
	Similarity float64
	Token      string
	ExpiresAt  time.Time
}

// UserOutput describes the authenticated user. Name and email come from the reference
// copy and may be empty.
type UserOutput struct {
	UserID   string
	FullName string
	Email    string
}

// ListUsersOutput lists every enrolled user.
type ListUsersOutput struct {
	Users []string
}

// DeleteUserOutput reports how many provider faces were removed.
type DeleteUserOutput struct {
	UserID           string
	DeletedFaceCount int
}
