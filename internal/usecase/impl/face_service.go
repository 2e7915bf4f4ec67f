// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"facelock/config"
	deliverycontext "facelock/internal/delivery/context"
	"facelock/internal/domain/entity"
	domainerrors "facelock/internal/domain/errors"
	"facelock/internal/domain/service"
	"facelock/internal/infra/imaging"
	"facelock/internal/usecase"
	"facelock/internal/util"

	"github.com/pkg/errors"
)

// faceService implements the FaceUsecase interface.
type faceService struct {
	gateway service.RecognitionGateway
	store   service.ReferenceStore
	tokens  service.TokenService

	defaultThreshold     float64
	restrictDeleteToSelf bool

	logger *slog.Logger
}

// NewFaceService is the constructor for faceService.
func NewFaceService(
	gateway service.RecognitionGateway,
	store service.ReferenceStore,
	tokens service.TokenService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.FaceUsecase {
	return &faceService{
		gateway:              gateway,
		store:                store,
		tokens:               tokens,
		defaultThreshold:     cfg.Recognition.SimilarityThreshold(),
		restrictDeleteToSelf: cfg.Auth.RestrictDeleteToSelf,
		logger:               logger,
	}
}

// Register indexes the face and keeps a reference copy of the image.
func (srv *faceService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger).With(slog.String("user_id", input.UserID))

	info, err := imaging.Inspect(input.Image)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidImage, err.Error())
	}

	// 1. Index the face; nothing is stored when this fails
	record, err := srv.gateway.RegisterFace(ctx, input.UserID, input.Image)
	if err != nil {
		logger.Info("Face registration rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register face")
	}

	// 2. Drop faces from earlier registrations so only the new image verifies
	pruned, err := srv.gateway.PruneUser(ctx, input.UserID, record.FaceID)
	if err != nil {
		logger.Warn("Failed to remove previous faces", slog.Any("error", err))
	} else if pruned > 0 {
		logger.Info("Replaced previous registration", slog.Int("removed_faces", pruned))
	}

	// 3. Keep the reference copy; failures never fail the request
	ref := &entity.ReferenceImage{
		UserID:      input.UserID,
		Data:        input.Image,
		ContentType: info.ContentType,
		FullName:    input.FullName,
		Email:       input.Email,
	}
	if err := srv.store.Save(ctx, ref); err != nil {
		logger.Warn("Failed to save reference image", slog.Any("error", err))
	}

	logger.Info("Face registered",
		slog.String("face_id", record.FaceID),
		slog.Float64("confidence", record.Confidence),
		slog.String("image_size", util.FormatBytes(int64(len(input.Image)))),
	)

	return &usecase.RegisterOutput{
		UserID: input.UserID,
		FaceID: record.FaceID,
	}, nil
}

// Verify matches the query image and issues a session token for the matched user.
func (srv *faceService) Verify(ctx context.Context, input *usecase.VerifyInput) (*usecase.VerifyOutput, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	threshold := srv.defaultThreshold
	if input.Threshold != nil {
		threshold = *input.Threshold
	}
	if threshold < 0 || threshold > 100 {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithMessage("similarity_threshold must be between 0 and 100"))
	}

	if _, err := imaging.Inspect(input.Image); err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidImage, err.Error())
	}

	match, err := srv.gateway.VerifyFace(ctx, input.Image, threshold)
	if err != nil {
		logger.Info("Face verification failed", slog.Float64("threshold", threshold), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to verify face")
	}

	issued, err := srv.tokens.Issue(match.UserID)
	if err != nil {
		logger.Error("Failed to issue session token", slog.String("user_id", match.UserID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	logger.Info("Face verified",
		slog.String("user_id", match.UserID),
		slog.Float64("similarity", match.Similarity),
		slog.Float64("threshold", threshold),
	)

	return &usecase.VerifyOutput{
		UserID:     match.UserID,
		Similarity: match.Similarity,
		Token:      issued.Token,
		ExpiresAt:  issued.ExpiresAt,
	}, nil
}

// CurrentUser describes the token subject, enriched from the reference copy when present.
func (srv *faceService) CurrentUser(ctx context.Context, userID string) (*usecase.UserOutput, error) {
	out := &usecase.UserOutput{UserID: userID}

	ref, err := srv.store.Load(ctx, userID)
	switch {
	case err == nil:
		out.FullName = ref.FullName
		out.Email = ref.Email
	case errors.Is(err, service.ErrReferenceNotFound):
	default:
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Failed to load reference image",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
	}

	return out, nil
}

// ListUsers returns every user with an indexed face.
func (srv *faceService) ListUsers(ctx context.Context) (*usecase.ListUsersOutput, error) {
	users, err := srv.gateway.ListUsers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	if users == nil {
		users = []string{}
	}

	return &usecase.ListUsersOutput{Users: users}, nil
}

// DeleteUser removes the user's faces and reference copy. Unknown users are not an error.
func (srv *faceService) DeleteUser(ctx context.Context, input *usecase.DeleteUserInput) (*usecase.DeleteUserOutput, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger).With(
		slog.String("user_id", input.UserID),
		slog.String("requester_id", input.RequesterID),
	)

	if srv.restrictDeleteToSelf && input.RequesterID != input.UserID {
		logger.Warn("Rejected deletion of another user")

		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	count, err := srv.gateway.DeleteUser(ctx, input.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete user faces")
	}

	if err := srv.store.Delete(ctx, input.UserID); err != nil {
		logger.Warn("Failed to delete reference image", slog.Any("error", err))
	}

	logger.Info("User deleted", slog.Int("deleted_face_count", count))

	return &usecase.DeleteUserOutput{
		UserID:           input.UserID,
		DeletedFaceCount: count,
	}, nil
}
