package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"facelock/config"
	deliverycontext "facelock/internal/delivery/context"
	domainerrors "facelock/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_ReusesClientID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-id-1")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewRequestIDMiddleware(logger).Process(func(c echo.Context) error {
		assert.Equal(t, "client-id-1", deliverycontext.GetRequestID(c))
		assert.Equal(t, "client-id-1", deliverycontext.GetRequestIDFromContext(c.Request().Context()))
		deliverycontext.GetLogger(c.Request().Context()).Info("inside")

		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "client-id-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, buf.String(), `"request_id":"client-id-1"`)
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "bad id with spaces")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewRequestIDMiddleware(slog.New(slog.DiscardHandler)).Process(func(echo.Context) error { return nil })

	require.NoError(t, handler(c))
	got := rec.Header().Get(deliverycontext.HeaderXRequestID)
	assert.NotEmpty(t, got)
	assert.NotEqual(t, "bad id with spaces", got)
}

func TestLoggerMiddleware(t *testing.T) {
	run := func(debug bool, next echo.HandlerFunc) string {
		var buf bytes.Buffer
		cfg := &config.Config{}
		cfg.Env.Debug = debug

		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/verify/", nil), httptest.NewRecorder())
		deliverycontext.SetUserID(c, "alice")

		_ = NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), cfg).Handle(next)(c)

		return buf.String()
	}

	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	assert.Empty(t, run(false, ok))

	out := run(true, ok)
	assert.Contains(t, out, `"status":200`)
	assert.Contains(t, out, `"user_id":"alice"`)

	out = run(true, func(echo.Context) error { return errors.WithStack(domainerrors.ErrNoMatchFound) })
	assert.Contains(t, out, `"status":400`)
	assert.Contains(t, out, `"level":"WARN"`)

	out = run(false, func(echo.Context) error { return domainerrors.NewProviderError("IndexFaces", errors.New("down")) })
	assert.Contains(t, out, `"status":500`)
	assert.Contains(t, out, `"level":"ERROR"`)
}
