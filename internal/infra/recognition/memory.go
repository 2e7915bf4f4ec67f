package recognition

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"facelock/internal/domain/entity"
	domainerrors "facelock/internal/domain/errors"
	"facelock/internal/infra/imaging"
	"facelock/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// exactSimilarity is reported when the query image is byte-identical to an indexed image.
const exactSimilarity = 100.0

type memoryFace struct {
	faceID string
	userID string
	digest string
}

// MemoryGateway keeps faces in process. Any non-uniform decodable image counts as a face and
// a query image matches an indexed face only when the image bytes are identical.
type MemoryGateway struct {
	mu     sync.RWMutex
	faces  []memoryFace // insertion order
	logger *slog.Logger
}

// NewMemoryGateway creates an empty in-process gateway.
func NewMemoryGateway(logger *slog.Logger) *MemoryGateway {
	return &MemoryGateway{logger: logger}
}

// EnsureCollection is a no-op; the collection always exists.
func (g *MemoryGateway) EnsureCollection(context.Context) error {
	g.logger.Info("Using in-memory face collection")

	return nil
}

// RegisterFace stores a digest of the image under userID.
func (g *MemoryGateway) RegisterFace(ctx context.Context, userID string, image []byte) (*entity.FaceRecord, error) {
	if err := detectFace(image); err != nil {
		return nil, err
	}

	face := memoryFace{
		faceID: uuid.New().String(),
		userID: userID,
		digest: util.Checksum(image),
	}

	g.mu.Lock()
	g.faces = append(g.faces, face)
	g.mu.Unlock()

	return &entity.FaceRecord{
		FaceID:      face.faceID,
		UserID:      userID,
		Confidence:  exactSimilarity,
		BoundingBox: entity.BoundingBox{Width: 1, Height: 1},
	}, nil
}

// VerifyFace returns the earliest indexed face with identical bytes.
func (g *MemoryGateway) VerifyFace(ctx context.Context, image []byte, threshold float64) (*entity.FaceMatch, error) {
	if err := detectFace(image); err != nil {
		return nil, err
	}

	if threshold > exactSimilarity {
		return nil, errors.WithStack(domainerrors.ErrNoMatchFound)
	}

	digest := util.Checksum(image)

	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, face := range g.faces {
		if face.digest == digest {
			return &entity.FaceMatch{
				FaceID:     face.faceID,
				UserID:     face.userID,
				Similarity: exactSimilarity,
			}, nil
		}
	}

	return nil, errors.WithStack(domainerrors.ErrNoMatchFound)
}

// ListUsers returns the distinct user ids, sorted.
func (g *MemoryGateway) ListUsers(context.Context) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[string]struct{}, len(g.faces))
	users := make([]string, 0, len(g.faces))
	for _, face := range g.faces {
		if _, ok := seen[face.userID]; ok {
			continue
		}
		seen[face.userID] = struct{}{}
		users = append(users, face.userID)
	}
	sort.Strings(users)

	return users, nil
}

// DeleteUser removes every face of userID.
func (g *MemoryGateway) DeleteUser(ctx context.Context, userID string) (int, error) {
	return g.PruneUser(ctx, userID, "")
}

// PruneUser removes the faces of userID other than keepFaceID.
func (g *MemoryGateway) PruneUser(_ context.Context, userID, keepFaceID string) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	kept := g.faces[:0]
	removed := 0
	for _, face := range g.faces {
		if face.userID == userID && face.faceID != keepFaceID {
			removed++

			continue
		}
		kept = append(kept, face)
	}
	g.faces = kept

	return removed, nil
}

func detectFace(image []byte) error {
	uniform, err := imaging.IsUniform(image)
	if err != nil {
		return errors.Wrap(domainerrors.ErrInvalidImage, err.Error())
	}
	if uniform {
		return errors.WithStack(domainerrors.ErrNoFaceDetected)
	}

	return nil
}
