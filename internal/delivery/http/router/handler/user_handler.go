package handler

import (
	"fmt"
	"log/slog"

	deliverycontext "facelock/internal/delivery/context"
	"facelock/internal/delivery/http/response"
	domainerrors "facelock/internal/domain/errors"
	"facelock/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type userPathParams struct {
	UserID string `form:"user_id" validate:"required,max=255,userid"`
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.FaceUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.FaceUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// Me returns the user the session token was issued for.
func (h *UserHandler) Me(c echo.Context) error {
	userID, err := authenticatedUser(c)
	if err != nil {
		return err
	}

	output, err := h.uc.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, response.UserResponse{
		Success:  true,
		UserID:   output.UserID,
		FullName: output.FullName,
		Email:    output.Email,
	})
}

// List returns every enrolled user.
func (h *UserHandler) List(c echo.Context) error {
	output, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, response.UserListResponse{
		Success:    true,
		Users:      output.Users,
		TotalCount: len(output.Users),
	})
}

// Delete removes a user's faces and reference image.
func (h *UserHandler) Delete(c echo.Context) error {
	requesterID, err := authenticatedUser(c)
	if err != nil {
		return err
	}

	params := userPathParams{UserID: c.Param("user_id")}
	if err := c.Validate(&params); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.DeleteUser(c.Request().Context(), &usecase.DeleteUserInput{
		RequesterID: requesterID,
		UserID:      params.UserID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, response.DeleteUserResponse{
		Success:          true,
		UserID:           output.UserID,
		DeletedFaceCount: output.DeletedFaceCount,
		Message:          fmt.Sprintf("User %s deleted successfully", output.UserID),
	})
}

func authenticatedUser(c echo.Context) (string, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return "", errors.WithStack(domainerrors.ErrInvalidToken)
	}

	return userID, nil
}
