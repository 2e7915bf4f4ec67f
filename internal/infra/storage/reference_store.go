// Package storage keeps reference images in a gocloud.dev bucket.
package storage

import (
	"context"
	"encoding/hex"
	"log/slog"

	"facelock/config"
	"facelock/internal/domain/entity"
	"facelock/internal/domain/service"
	"facelock/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"gocloud.dev/gcerrors"
)

const (
	keyPrefix = "faces/"

	metaUserID   = "user_id"
	metaFullName = "full_name"
	metaEmail    = "email"
	metaChecksum = "sha256"
)

type referenceStore struct {
	bucket *blob.Bucket
}

// ReferenceStoreParams holds dependencies for the reference store, injected by Fx.
type ReferenceStoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewReferenceStore opens the bucket named by storage.bucketUrl.
func NewReferenceStore(params ReferenceStoreParams) (service.ReferenceStore, error) {
	bucketURL := params.Config.Storage.BucketURL

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open reference bucket %s", bucketURL)
	}

	params.Logger.Info("Reference image store ready", slog.String("bucket_url", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return newReferenceStore(bucket), nil
}

func newReferenceStore(bucket *blob.Bucket) *referenceStore {
	return &referenceStore{bucket: bucket}
}

// objectKey hex encodes the id so dot segments such as "." or ".." stay a single flat key.
func objectKey(userID string) string {
	return keyPrefix + hex.EncodeToString([]byte(userID))
}

// Save replaces the stored image in one step. Bucket writers only publish the object
// when Close succeeds, so readers never see a partially written image.
func (s *referenceStore) Save(ctx context.Context, img *entity.ReferenceImage) error {
	if img == nil || img.UserID == "" {
		return errors.New("reference image requires a user id")
	}

	opts := &blob.WriterOptions{
		ContentType: img.ContentType,
		Metadata: map[string]string{
			metaUserID:   img.UserID,
			metaChecksum: util.Checksum(img.Data),
		},
	}
	if img.FullName != "" {
		opts.Metadata[metaFullName] = img.FullName
	}
	if img.Email != "" {
		opts.Metadata[metaEmail] = img.Email
	}

	if err := s.bucket.WriteAll(ctx, objectKey(img.UserID), img.Data, opts); err != nil {
		return errors.Wrapf(err, "failed to write reference image for %s", img.UserID)
	}

	return nil
}

// Load returns the stored image and its registration metadata.
func (s *referenceStore) Load(ctx context.Context, userID string) (*entity.ReferenceImage, error) {
	key := objectKey(userID)

	attrs, err := s.bucket.Attributes(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errors.WithStack(service.ErrReferenceNotFound)
		}

		return nil, errors.Wrapf(err, "failed to stat reference image for %s", userID)
	}

	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errors.WithStack(service.ErrReferenceNotFound)
		}

		return nil, errors.Wrapf(err, "failed to read reference image for %s", userID)
	}

	return &entity.ReferenceImage{
		UserID:      userID,
		Data:        data,
		ContentType: attrs.ContentType,
		FullName:    attrs.Metadata[metaFullName],
		Email:       attrs.Metadata[metaEmail],
	}, nil
}

// Delete removes the stored image.
func (s *referenceStore) Delete(ctx context.Context, userID string) error {
	if err := s.bucket.Delete(ctx, objectKey(userID)); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete reference image for %s", userID)
	}

	return nil
}
