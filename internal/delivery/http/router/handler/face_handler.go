// Package handler contains the HTTP handlers for the application.
package handler

import (
	"io"
	"log/slog"
	"net/http"

	"facelock/internal/delivery/http/response"
	"facelock/internal/domain/constants"
	domainerrors "facelock/internal/domain/errors"
	"facelock/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const faceImageField = "face_image"

type registerForm struct {
	UserID   string `form:"user_id" validate:"required,max=255,userid"`
	FullName string `form:"full_name" validate:"omitempty,max=255"`
	Email    string `form:"email" validate:"omitempty,max=255,email"`
}

type verifyForm struct {
	SimilarityThreshold *float64 `form:"similarity_threshold" validate:"omitempty,gte=0,lte=100"`
}

// FaceHandler holds dependencies for face enrollment and verification.
type FaceHandler struct {
	uc     usecase.FaceUsecase
	logger *slog.Logger
}

// NewFaceHandler is the constructor for FaceHandler, injected by Fx.
func NewFaceHandler(uc usecase.FaceUsecase, logger *slog.Logger) *FaceHandler {
	return &FaceHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles multipart face enrollment.
func (h *FaceHandler) Register(c echo.Context) error {
	var form registerForm
	// String bindings never fail
	_ = echo.FormFieldBinder(c).
		String("user_id", &form.UserID).
		String("full_name", &form.FullName).
		String("email", &form.Email).
		BindError()

	if err := c.Validate(&form); err != nil {
		return errors.WithStack(err)
	}

	image, err := readFormImage(c)
	if err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		UserID:   form.UserID,
		FullName: form.FullName,
		Email:    form.Email,
		Image:    image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, response.RegisterResponse{
		Success: true,
		UserID:  output.UserID,
		FaceID:  output.FaceID,
		Message: "User registered successfully",
	})
}

// Verify matches an uploaded face and issues a session token.
func (h *FaceHandler) Verify(c echo.Context) error {
	var form verifyForm
	if c.FormValue("similarity_threshold") != "" {
		var threshold float64
		if err := echo.FormFieldBinder(c).Float64("similarity_threshold", &threshold).BindError(); err != nil {
			return errors.WithStack(domainerrors.ErrValidationFailed.WithMessage("similarity_threshold must be a number"))
		}
		form.SimilarityThreshold = &threshold
	}

	if err := c.Validate(&form); err != nil {
		return errors.WithStack(err)
	}

	image, err := readFormImage(c)
	if err != nil {
		return err
	}

	output, err := h.uc.Verify(c.Request().Context(), &usecase.VerifyInput{
		Image:     image,
		Threshold: form.SimilarityThreshold,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, response.VerifyResponse{
		Success:    true,
		UserID:     output.UserID,
		Similarity: output.Similarity,
		Message:    "Face verified successfully",
		Token:      output.Token,
		TokenType:  constants.TokenTypeBearer,
		ExpiresAt:  output.ExpiresAt,
	})
}

func readFormImage(c echo.Context) ([]byte, error) {
	fileHeader, err := c.FormFile(faceImageField)
	if err != nil {
		switch {
		case errors.Is(err, http.ErrMissingFile):
			return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithMessage(faceImageField + " is required"))
		case errors.Is(err, echo.ErrStatusRequestEntityTooLarge):
			return nil, errors.WithStack(err)
		default:
			return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("Request must be multipart/form-data"), err.Error())
		}
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open uploaded image")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read uploaded image")
	}

	return data, nil
}
