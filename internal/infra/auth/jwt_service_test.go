package auth

import (
	"strings"
	"testing"
	"time"

	"facelock/config"
	domainerrors "facelock/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	cfg.ApplyDefaults()

	return cfg
}

type fakeClock struct {
	current time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.current
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	clock := &fakeClock{current: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc, err := newJWTService(newTestConfig(testSecret), clock.Now)
	require.NoError(t, err)

	issued, err := svc.Issue("alice")
	require.NoError(t, err)
	assert.NotEmpty(t, issued.Token)
	assert.Equal(t, clock.current.Add(30*time.Minute), issued.ExpiresAt)

	claims, err := svc.Validate(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.UserID())
	assert.Equal(t, clock.current, claims.IssuedAt.Time.UTC())
	assert.Equal(t, issued.ExpiresAt, claims.ExpiresAt.Time.UTC())
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_ExpiredTokenIsDistinctFromInvalid(t *testing.T) {
	clock := &fakeClock{current: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc, err := newJWTService(newTestConfig(testSecret), clock.Now)
	require.NoError(t, err)

	issued, err := svc.Issue("alice")
	require.NoError(t, err)

	clock.current = clock.current.Add(31 * time.Minute)

	claims, err := svc.Validate(issued.Token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrExpiredToken))
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_TamperedToken(t *testing.T) {
	svc, err := newJWTService(newTestConfig(testSecret), time.Now)
	require.NoError(t, err)

	issued, err := svc.Issue("alice")
	require.NoError(t, err)

	parts := strings.Split(issued.Token, ".")
	require.Len(t, parts, 3)
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "mallory",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	forgedString, err := forged.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"wrong secret":    forgedString,
		"swapped payload": parts[0] + "." + strings.Split(forgedString, ".")[1] + "." + parts[2],
		"garbage":         "clearly-not-a-jwt-token-format",
	} {
		t.Run(name, func(t *testing.T) {
			claims, err := svc.Validate(token)
			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
			assert.False(t, errors.Is(err, domainerrors.ErrExpiredToken))
		})
	}
}

func TestJWTService_ExpiredAndTamperedIsInvalid(t *testing.T) {
	clock := &fakeClock{current: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc, err := newJWTService(newTestConfig(testSecret), clock.Now)
	require.NoError(t, err)

	other, err := newJWTService(newTestConfig("another_secret_of_reasonable_length"), clock.Now)
	require.NoError(t, err)

	issued, err := other.Issue("alice")
	require.NoError(t, err)

	clock.current = clock.current.Add(time.Hour)

	_, err = svc.Validate(issued.Token)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	svc, err := newJWTService(newTestConfig(testSecret), time.Now)
	require.NoError(t, err)

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub": "alice",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Validate(signed)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_RequiresSubjectAndExpiry(t *testing.T) {
	svc, err := newJWTService(newTestConfig(testSecret), time.Now)
	require.NoError(t, err)

	for name, claims := range map[string]jwt.MapClaims{
		"no subject": {"iat": time.Now().Unix(), "exp": time.Now().Add(time.Hour).Unix()},
		"no expiry":  {"sub": "alice", "iat": time.Now().Unix()},
	} {
		t.Run(name, func(t *testing.T) {
			signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
			require.NoError(t, err)

			_, err = svc.Validate(signed)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
		})
	}
}

func TestJWTService_ConfiguredAlgorithmAndLifetime(t *testing.T) {
	cfg := newTestConfig(testSecret)
	cfg.Auth.Algorithm = "HS384"
	cfg.Auth.TokenLifetime = 5 * time.Minute

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, err := newJWTService(cfg, func() time.Time { return now })
	require.NoError(t, err)

	issued, err := svc.Issue("bob")
	require.NoError(t, err)
	assert.Equal(t, now.Add(5*time.Minute), issued.ExpiresAt)

	parsed, _, err := jwt.NewParser().ParseUnverified(issued.Token, jwt.MapClaims{})
	require.NoError(t, err)
	assert.Equal(t, "HS384", parsed.Method.Alg())
}

func TestJWTService_ConstructorErrors(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")

	cfg := newTestConfig(testSecret)
	cfg.Auth.Algorithm = "RS256"
	svc, err = NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "unsupported jwt algorithm")
}

func TestJWTService_IssueRequiresSubject(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	issued, err := svc.Issue("")
	assert.Error(t, err)
	assert.Nil(t, issued)
}
