// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"facelock/config"
	domainerrors "facelock/internal/domain/errors"
	"facelock/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte            // Symmetric key shared by signing and validation.
	method jwt.SigningMethod // HMAC algorithm from config.
	ttl    time.Duration     // Lifetime baked into every token.
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// Only the HMAC family is accepted since tokens are signed with a shared secret.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	svc, err := newJWTService(cfg, time.Now)
	if err != nil {
		return nil, err
	}

	return svc, nil
}

func newJWTService(cfg *config.Config, now func() time.Time) (*jwtService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	algorithm, ttl := "HS256", 30*time.Minute
	if cfg.Auth != nil {
		if cfg.Auth.Algorithm != "" {
			algorithm = cfg.Auth.Algorithm
		}
		if cfg.Auth.TokenLifetime > 0 {
			ttl = cfg.Auth.TokenLifetime
		}
	}

	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, errors.Errorf("unsupported jwt algorithm %q, expected HS256, HS384 or HS512", algorithm)
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		method: method,
		ttl:    ttl,
		now:    now,
	}, nil
}

// Issue creates a token for a verified user.
func (s *jwtService) Issue(userID string) (*service.IssuedToken, error) {
	if userID == "" {
		return nil, errors.New("token subject must not be empty")
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	claims := service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.New().String(),
		},
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign token")
	}

	return &service.IssuedToken{
		Token:     signed,
		ExpiresAt: expiresAt.Truncate(jwt.TimePrecision),
	}, nil
}

// Validate checks the validity of a token string.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		// Signatures are verified before claims, so a tampered token never reports expiry.
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Wrap(domainerrors.ErrExpiredToken, err.Error())
		}

		return nil, errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
	}

	if !token.Valid || claims.Subject == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "token has no subject")
	}

	return claims, nil
}
