package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestSanitizeRequestID(t *testing.T) {
	assert.Equal(t, "abc-123", SanitizeRequestID("abc-123"))

	for name, id := range map[string]string{
		"empty":    "",
		"too long": strings.Repeat("a", maxRequestIDLength+1),
		"newline":  "abc\r\nX-Injected: 1",
		"space":    "abc def",
	} {
		t.Run(name, func(t *testing.T) {
			got := SanitizeRequestID(id)
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestUserID(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := GetUserID(c)
	assert.False(t, ok)

	SetUserID(c, "alice")
	id, ok := GetUserID(c)
	assert.True(t, ok)
	assert.Equal(t, "alice", id)
}

func TestRequestIDAndLogger(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))

	fallback := slog.Default()
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))

	scoped := slog.New(slog.DiscardHandler)
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(ctx, scoped), fallback))
}
