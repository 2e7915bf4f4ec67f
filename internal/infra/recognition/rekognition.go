package recognition

import (
	"context"
	"log/slog"
	"sort"

	"facelock/config"
	"facelock/internal/domain/entity"
	domainerrors "facelock/internal/domain/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"github.com/pkg/errors"
)

const (
	// Upper bound of face ids accepted by a single DeleteFaces call.
	maxDeleteBatch = 4096
	listPageSize   = 4096
)

// RekognitionAPI is the subset of the Rekognition client used by the gateway.
type RekognitionAPI interface {
	DescribeCollection(ctx context.Context, params *rekognition.DescribeCollectionInput, optFns ...func(*rekognition.Options)) (*rekognition.DescribeCollectionOutput, error)
	CreateCollection(ctx context.Context, params *rekognition.CreateCollectionInput, optFns ...func(*rekognition.Options)) (*rekognition.CreateCollectionOutput, error)
	IndexFaces(ctx context.Context, params *rekognition.IndexFacesInput, optFns ...func(*rekognition.Options)) (*rekognition.IndexFacesOutput, error)
	SearchFacesByImage(ctx context.Context, params *rekognition.SearchFacesByImageInput, optFns ...func(*rekognition.Options)) (*rekognition.SearchFacesByImageOutput, error)
	ListFaces(ctx context.Context, params *rekognition.ListFacesInput, optFns ...func(*rekognition.Options)) (*rekognition.ListFacesOutput, error)
	DeleteFaces(ctx context.Context, params *rekognition.DeleteFacesInput, optFns ...func(*rekognition.Options)) (*rekognition.DeleteFacesOutput, error)
}

// RekognitionGateway binds the recognition capability to an AWS Rekognition collection.
type RekognitionGateway struct {
	client       RekognitionAPI
	collectionID string
	logger       *slog.Logger
}

// NewRekognitionGateway wraps an already configured client.
func NewRekognitionGateway(client RekognitionAPI, collectionID string, logger *slog.Logger) *RekognitionGateway {
	return &RekognitionGateway{
		client:       client,
		collectionID: collectionID,
		logger:       logger,
	}
}

// newRekognitionClient builds a client from process configuration. Retries are disabled
// and every request is bounded by the configured timeout.
func newRekognitionClient(ctx context.Context, cfg *config.RecognitionConfig) (*rekognition.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithRetryer(func() aws.Retryer {
			return aws.NopRetryer{}
		}),
	}

	if cfg.Timeout > 0 {
		opts = append(opts, awsconfig.WithHTTPClient(awshttp.NewBuildableClient().WithTimeout(cfg.Timeout)))
	}

	// Without explicit keys the default chain (env, shared config, instance role) applies.
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load aws config")
	}

	return rekognition.NewFromConfig(awsCfg, func(o *rekognition.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

// EnsureCollection creates the collection unless it already exists.
func (g *RekognitionGateway) EnsureCollection(ctx context.Context) error {
	_, err := g.client.DescribeCollection(ctx, &rekognition.DescribeCollectionInput{
		CollectionId: aws.String(g.collectionID),
	})
	if err == nil {
		g.logger.Info("Face collection already exists", slog.String("collection_id", g.collectionID))

		return nil
	}

	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		return errors.WithStack(domainerrors.NewProviderError("DescribeCollection", err))
	}

	_, err = g.client.CreateCollection(ctx, &rekognition.CreateCollectionInput{
		CollectionId: aws.String(g.collectionID),
	})
	if err != nil {
		// Another instance may have created it between the two calls.
		var exists *types.ResourceAlreadyExistsException
		if errors.As(err, &exists) {
			return nil
		}

		return errors.WithStack(domainerrors.NewProviderError("CreateCollection", err))
	}

	g.logger.Info("Created face collection", slog.String("collection_id", g.collectionID))

	return nil
}

// RegisterFace indexes one face, the largest in the image, tagged with userID.
func (g *RekognitionGateway) RegisterFace(ctx context.Context, userID string, image []byte) (*entity.FaceRecord, error) {
	out, err := g.client.IndexFaces(ctx, &rekognition.IndexFacesInput{
		CollectionId:        aws.String(g.collectionID),
		Image:               &types.Image{Bytes: image},
		ExternalImageId:     aws.String(userID),
		MaxFaces:            aws.Int32(1),
		QualityFilter:       types.QualityFilterAuto,
		DetectionAttributes: []types.Attribute{types.AttributeDefault},
	})
	if err != nil {
		return nil, classifyError("IndexFaces", err, false)
	}

	records := make([]entity.FaceRecord, 0, len(out.FaceRecords))
	for _, rec := range out.FaceRecords {
		if rec.Face == nil || rec.Face.FaceId == nil {
			continue
		}
		records = append(records, toFaceRecord(rec.Face, userID))
	}

	if len(records) == 0 {
		return nil, errors.WithStack(domainerrors.ErrNoFaceDetected)
	}

	largest := largestFace(records)
	g.logger.Debug("Indexed face",
		slog.String("user_id", userID),
		slog.String("face_id", largest.FaceID),
		slog.Int("unindexed_faces", len(out.UnindexedFaces)),
	)

	return &largest, nil
}

// VerifyFace searches the collection with the largest face of the query image.
func (g *RekognitionGateway) VerifyFace(ctx context.Context, image []byte, threshold float64) (*entity.FaceMatch, error) {
	out, err := g.client.SearchFacesByImage(ctx, &rekognition.SearchFacesByImageInput{
		CollectionId:       aws.String(g.collectionID),
		Image:              &types.Image{Bytes: image},
		FaceMatchThreshold: aws.Float32(float32(threshold)),
		MaxFaces:           aws.Int32(1),
		QualityFilter:      types.QualityFilterAuto,
	})
	if err != nil {
		return nil, classifyError("SearchFacesByImage", err, true)
	}

	// Compared at the precision the provider was given.
	minSimilarity := float32(threshold)

	var best *entity.FaceMatch
	for _, m := range out.FaceMatches {
		if m.Face == nil || m.Face.ExternalImageId == nil {
			continue
		}

		if aws.ToFloat32(m.Similarity) < minSimilarity {
			continue
		}
		similarity := float64(aws.ToFloat32(m.Similarity))

		// Strictly greater keeps the provider's order for ties.
		if best == nil || similarity > best.Similarity {
			best = &entity.FaceMatch{
				FaceID:     aws.ToString(m.Face.FaceId),
				UserID:     aws.ToString(m.Face.ExternalImageId),
				Similarity: similarity,
			}
		}
	}

	if best == nil {
		return nil, errors.WithStack(domainerrors.ErrNoMatchFound)
	}

	return best, nil
}

// ListUsers enumerates the distinct external ids in the collection.
func (g *RekognitionGateway) ListUsers(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})

	err := g.eachFace(ctx, func(face types.Face) {
		if id := aws.ToString(face.ExternalImageId); id != "" {
			seen[id] = struct{}{}
		}
	})
	if err != nil {
		return nil, err
	}

	users := make([]string, 0, len(seen))
	for id := range seen {
		users = append(users, id)
	}
	sort.Strings(users)

	return users, nil
}

// DeleteUser removes every face tagged with userID.
func (g *RekognitionGateway) DeleteUser(ctx context.Context, userID string) (int, error) {
	return g.PruneUser(ctx, userID, "")
}

// PruneUser removes every face tagged with userID except keepFaceID.
func (g *RekognitionGateway) PruneUser(ctx context.Context, userID, keepFaceID string) (int, error) {
	var faceIDs []string

	err := g.eachFace(ctx, func(face types.Face) {
		id := aws.ToString(face.FaceId)
		if aws.ToString(face.ExternalImageId) == userID && id != "" && id != keepFaceID {
			faceIDs = append(faceIDs, id)
		}
	})
	if err != nil {
		return 0, err
	}

	deleted := 0
	for start := 0; start < len(faceIDs); start += maxDeleteBatch {
		end := min(start+maxDeleteBatch, len(faceIDs))

		out, err := g.client.DeleteFaces(ctx, &rekognition.DeleteFacesInput{
			CollectionId: aws.String(g.collectionID),
			FaceIds:      faceIDs[start:end],
		})
		if err != nil {
			return deleted, classifyError("DeleteFaces", err, false)
		}
		deleted += len(out.DeletedFaces)
	}

	return deleted, nil
}

func (g *RekognitionGateway) eachFace(ctx context.Context, fn func(types.Face)) error {
	paginator := rekognition.NewListFacesPaginator(g.client, &rekognition.ListFacesInput{
		CollectionId: aws.String(g.collectionID),
		MaxResults:   aws.Int32(listPageSize),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return classifyError("ListFaces", err, false)
		}

		for _, face := range page.Faces {
			fn(face)
		}
	}

	return nil
}

// classifyError maps provider errors onto the domain taxonomy. Rekognition reports a
// query image without any face as InvalidParameterException.
func classifyError(op string, err error, search bool) error {
	var (
		invalidFormat *types.InvalidImageFormatException
		tooLarge      *types.ImageTooLargeException
		invalidParam  *types.InvalidParameterException
	)

	switch {
	case errors.As(err, &invalidFormat), errors.As(err, &tooLarge):
		return errors.Wrap(domainerrors.ErrInvalidImage, err.Error())
	case search && errors.As(err, &invalidParam):
		return errors.Wrap(domainerrors.ErrNoFaceDetected, err.Error())
	default:
		return errors.WithStack(domainerrors.NewProviderError(op, err))
	}
}

func toFaceRecord(face *types.Face, userID string) entity.FaceRecord {
	rec := entity.FaceRecord{
		FaceID:     aws.ToString(face.FaceId),
		UserID:     userID,
		Confidence: float64(aws.ToFloat32(face.Confidence)),
	}

	if box := face.BoundingBox; box != nil {
		rec.BoundingBox = entity.BoundingBox{
			Left:   float64(aws.ToFloat32(box.Left)),
			Top:    float64(aws.ToFloat32(box.Top)),
			Width:  float64(aws.ToFloat32(box.Width)),
			Height: float64(aws.ToFloat32(box.Height)),
		}
	}

	return rec
}

// largestFace picks the record with the biggest bounding box, first one on ties.
func largestFace(records []entity.FaceRecord) entity.FaceRecord {
	best := records[0]
	for _, rec := range records[1:] {
		if rec.BoundingBox.Area() > best.BoundingBox.Area() {
			best = rec
		}
	}

	return best
}
