package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"facelock/config"
	"facelock/internal/domain/entity"
	"facelock/internal/domain/service"
	"facelock/internal/util"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
)

func newFileStore(t *testing.T) *referenceStore {
	t.Helper()

	bucket, err := fileblob.OpenBucket(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	return newReferenceStore(bucket)
}

func TestReferenceStore_SaveLoadRoundTrip(t *testing.T) {
	store := newFileStore(t)
	ctx := context.Background()

	err := store.Save(ctx, &entity.ReferenceImage{
		UserID:      "alice",
		Data:        []byte("first image"),
		ContentType: "image/png",
		FullName:    "Alice Liddell",
		Email:       "alice@example.com",
	})
	require.NoError(t, err)

	img, err := store.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []byte("first image"), img.Data)
	assert.Equal(t, "image/png", img.ContentType)
	assert.Equal(t, "Alice Liddell", img.FullName)
	assert.Equal(t, "alice@example.com", img.Email)

	attrs, err := store.bucket.Attributes(ctx, objectKey("alice"))
	require.NoError(t, err)
	assert.Equal(t, util.Checksum([]byte("first image")), attrs.Metadata[metaChecksum])
}

func TestReferenceStore_DotOnlyIDsStayIsolated(t *testing.T) {
	store := newFileStore(t)
	ctx := context.Background()

	ids := []string{"alice", ".", "..", "a..b", "..x", "bob"}
	for _, id := range ids {
		require.NoError(t, store.Save(ctx, &entity.ReferenceImage{UserID: id, Data: []byte("image of " + id)}), id)
	}

	for _, id := range ids {
		img, err := store.Load(ctx, id)
		require.NoError(t, err, id)
		assert.Equal(t, []byte("image of "+id), img.Data, id)
	}

	require.NoError(t, store.Delete(ctx, ".."))
	_, err := store.Load(ctx, "..")
	assert.ErrorIs(t, err, service.ErrReferenceNotFound)

	img, err := store.Load(ctx, ".")
	require.NoError(t, err)
	assert.Equal(t, []byte("image of ."), img.Data)
}

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "faces/616c696365", objectKey("alice"))
	assert.Equal(t, "faces/2e2e", objectKey(".."))
	assert.NotEqual(t, objectKey("a"), objectKey("A"))
}

func TestReferenceStore_SaveOverwrites(t *testing.T) {
	store := newFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &entity.ReferenceImage{UserID: "alice", Data: []byte("old bytes"), FullName: "Old"}))
	require.NoError(t, store.Save(ctx, &entity.ReferenceImage{UserID: "alice", Data: []byte("new")}))

	img, err := store.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), img.Data)
	assert.Empty(t, img.FullName)
}

func TestReferenceStore_ConcurrentWritersNeverMix(t *testing.T) {
	store := newFileStore(t)
	ctx := context.Background()

	payloads := make(map[string]bool)
	var wg sync.WaitGroup
	for i := range 8 {
		payload := fmt.Sprintf("payload-%d-%0512d", i, i)
		payloads[payload] = true

		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Save(ctx, &entity.ReferenceImage{UserID: "shared", Data: []byte(payload)}))
		}()
	}
	wg.Wait()

	img, err := store.Load(ctx, "shared")
	require.NoError(t, err)
	assert.True(t, payloads[string(img.Data)], "stored bytes must equal exactly one writer's payload")
}

func TestReferenceStore_DeleteIsIdempotent(t *testing.T) {
	store := newFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &entity.ReferenceImage{UserID: "bob", Data: []byte("bob")}))
	require.NoError(t, store.Delete(ctx, "bob"))
	require.NoError(t, store.Delete(ctx, "bob"))
	require.NoError(t, store.Delete(ctx, "never-registered"))

	img, err := store.Load(ctx, "bob")
	assert.Nil(t, img)
	assert.True(t, errors.Is(err, service.ErrReferenceNotFound))
}

func TestReferenceStore_SaveRequiresUserID(t *testing.T) {
	store := newReferenceStore(memblob.OpenBucket(nil))

	assert.Error(t, store.Save(context.Background(), &entity.ReferenceImage{Data: []byte("x")}))
	assert.Error(t, store.Save(context.Background(), nil))
}

func TestNewReferenceStore_OpensConfiguredBucket(t *testing.T) {
	cfg := &config.Config{Storage: &config.StorageConfig{BucketURL: "mem://"}}
	lc := fxtest.NewLifecycle(t)

	store, err := NewReferenceStore(ReferenceStoreParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	lc.RequireStart()
	require.NoError(t, store.Save(context.Background(), &entity.ReferenceImage{UserID: "carol", Data: []byte("c")}))
	lc.RequireStop()
}

func TestNewReferenceStore_BadURL(t *testing.T) {
	cfg := &config.Config{Storage: &config.StorageConfig{BucketURL: "nosuchscheme://bucket"}}

	_, err := NewReferenceStore(ReferenceStoreParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.Error(t, err)
}
