// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"context"

	"facelock/internal/domain/entity"
)

// RecognitionGateway is the capability the face recognition provider offers.
// Implementations translate provider failures into the domain error taxonomy:
// ErrNoFaceDetected, ErrNoMatchFound, ErrInvalidImage or a ProviderError.
type RecognitionGateway interface {
	// EnsureCollection creates the backing collection when it does not exist yet.
	EnsureCollection(ctx context.Context) error

	// RegisterFace indexes the largest face of the image under userID.
	RegisterFace(ctx context.Context, userID string, image []byte) (*entity.FaceRecord, error)

	// VerifyFace returns the best indexed match at or above threshold (0-100).
	VerifyFace(ctx context.Context, image []byte, threshold float64) (*entity.FaceMatch, error)

	// ListUsers returns every distinct user identifier that has an indexed face.
	ListUsers(ctx context.Context) ([]string, error)

	// DeleteUser removes all faces indexed under userID and reports how many were removed.
	// Deleting an unknown user is not an error.
	DeleteUser(ctx context.Context, userID string) (int, error)

	// PruneUser removes the faces indexed under userID except keepFaceID, so a
	// re-registered user resolves to the latest image only.
	PruneUser(ctx context.Context, userID, keepFaceID string) (int, error)
}
