package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the claims carried by a session token.
type Claims struct {
	jwt.RegisteredClaims
}

// UserID returns the verified user identifier the token was issued for.
func (c *Claims) UserID() string {
	return c.Subject
}

// IssuedToken is a freshly signed session token.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

// TokenService defines the interface for issuing and validating session tokens.
type TokenService interface {
	// Issue signs a token whose subject is userID.
	Issue(userID string) (*IssuedToken, error)

	// Validate checks signature and expiry. It returns ErrExpiredToken for expired
	// tokens and ErrInvalidToken for anything else that fails verification.
	Validate(tokenString string) (*Claims, error)
}
