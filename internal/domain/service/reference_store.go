package service

import (
	"context"

	"facelock/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrReferenceNotFound is returned by Load when no image is stored for the user.
var ErrReferenceNotFound = errors.New("reference image not found")

// ReferenceStore keeps the last registered image of each user for audit.
// Nothing in verification depends on it.
type ReferenceStore interface {
	// Save atomically replaces the stored image for img.UserID.
	Save(ctx context.Context, img *entity.ReferenceImage) error

	// Load returns the stored image, or ErrReferenceNotFound.
	Load(ctx context.Context, userID string) (*entity.ReferenceImage, error)

	// Delete removes the stored image. Missing images are ignored.
	Delete(ctx context.Context, userID string) error
}
