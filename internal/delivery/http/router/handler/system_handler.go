package handler

import (
	"time"

	"facelock/config"
	"facelock/internal/delivery/http/response"
	domainerrors "facelock/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SystemHandler serves the unauthenticated service endpoints.
type SystemHandler struct {
	version string
	now     func() time.Time
}

// NewSystemHandler is the constructor for SystemHandler, injected by Fx.
func NewSystemHandler(cfg *config.Config) *SystemHandler {
	return &SystemHandler{
		version: cfg.Env.Version,
		now:     time.Now,
	}
}

// Root confirms the server is running.
func (h *SystemHandler) Root(c echo.Context) error {
	return response.Success(c, response.MessageResponse{Message: "Welcome to Face Lock Server"})
}

// Health is polled by load balancers and orchestrators.
func (h *SystemHandler) Health(c echo.Context) error {
	return response.Success(c, response.HealthResponse{
		Status:    "healthy",
		Version:   h.version,
		Timestamp: h.now().UTC(),
	})
}

// Token rejects password logins; sessions start at /verify/.
func (h *SystemHandler) Token(echo.Context) error {
	return errors.WithStack(domainerrors.ErrPasswordLoginUnsupported)
}
