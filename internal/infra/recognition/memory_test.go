package recognition

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"
	"time"

	"facelock/config"
	"facelock/internal/domain/constants"
	domainerrors "facelock/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

// facePNG renders a small non-uniform image; seed varies the bytes.
func facePNG(t *testing.T, seed uint8) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	img.Set(2, 3, color.RGBA{R: seed, G: 100, B: 50, A: 255})
	img.Set(5, 3, color.RGBA{R: 10, G: seed, B: 50, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func blankPNG(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 8, 8))))

	return buf.Bytes()
}

func TestMemoryGateway_RegisterAndVerify(t *testing.T) {
	ctx := context.Background()
	gw := NewMemoryGateway(newDiscardLogger())
	require.NoError(t, gw.EnsureCollection(ctx))

	alice := facePNG(t, 1)
	rec, err := gw.RegisterFace(ctx, "alice", alice)
	require.NoError(t, err)
	assert.NotEmpty(t, rec.FaceID)

	match, err := gw.VerifyFace(ctx, alice, 90)
	require.NoError(t, err)
	assert.Equal(t, "alice", match.UserID)
	assert.Equal(t, rec.FaceID, match.FaceID)
	assert.InDelta(t, 100, match.Similarity, 0.001)

	_, err = gw.VerifyFace(ctx, facePNG(t, 2), 90)
	assert.True(t, errors.Is(err, domainerrors.ErrNoMatchFound))

	_, err = gw.VerifyFace(ctx, alice, 100.5)
	assert.True(t, errors.Is(err, domainerrors.ErrNoMatchFound))
}

func TestMemoryGateway_NoFace(t *testing.T) {
	gw := NewMemoryGateway(newDiscardLogger())

	_, err := gw.RegisterFace(context.Background(), "alice", blankPNG(t))
	assert.True(t, errors.Is(err, domainerrors.ErrNoFaceDetected))

	_, err = gw.VerifyFace(context.Background(), blankPNG(t), 90)
	assert.True(t, errors.Is(err, domainerrors.ErrNoFaceDetected))

	_, err = gw.RegisterFace(context.Background(), "alice", []byte("garbage"))
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidImage))
}

func TestMemoryGateway_ListPruneDelete(t *testing.T) {
	ctx := context.Background()
	gw := NewMemoryGateway(newDiscardLogger())

	_, err := gw.RegisterFace(ctx, "bob", facePNG(t, 1))
	require.NoError(t, err)
	_, err = gw.RegisterFace(ctx, "alice", facePNG(t, 2))
	require.NoError(t, err)
	latest, err := gw.RegisterFace(ctx, "alice", facePNG(t, 3))
	require.NoError(t, err)

	users, err := gw.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, users)

	pruned, err := gw.PruneUser(ctx, "alice", latest.FaceID)
	require.NoError(t, err)
	assert.Equal(t, 1, pruned)

	_, err = gw.VerifyFace(ctx, facePNG(t, 2), 90)
	assert.True(t, errors.Is(err, domainerrors.ErrNoMatchFound))

	deleted, err := gw.DeleteUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	deleted, err = gw.DeleteUser(ctx, "alice")
	require.NoError(t, err)
	assert.Zero(t, deleted)

	users, err = gw.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, users)
}

func TestMemoryGateway_ConcurrentRegistration(t *testing.T) {
	ctx := context.Background()
	gw := NewMemoryGateway(newDiscardLogger())

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func(seed uint8) {
			defer wg.Done()
			_, err := gw.RegisterFace(ctx, "user", facePNG(t, seed))
			assert.NoError(t, err)
		}(uint8(i + 1))
	}
	wg.Wait()

	deleted, err := gw.DeleteUser(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, 20, deleted)
}

func TestNewGateway(t *testing.T) {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.Recognition.Provider = constants.RecognitionProviderMemory

	lc := fxtest.NewLifecycle(t)
	gw, err := NewGateway(GatewayParams{Lc: lc, Ctx: context.Background(), Config: cfg, Logger: newDiscardLogger()})
	require.NoError(t, err)
	assert.IsType(t, &MemoryGateway{}, gw)

	lc.RequireStart()
	lc.RequireStop()
}

func TestNewGateway_UnknownProvider(t *testing.T) {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.Recognition.Provider = "azure"

	gw, err := NewGateway(GatewayParams{Lc: fxtest.NewLifecycle(t), Ctx: context.Background(), Config: cfg, Logger: newDiscardLogger()})
	assert.Nil(t, gw)
	assert.ErrorContains(t, err, "unknown recognition provider")
}

func TestNewGateway_Rekognition(t *testing.T) {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.Recognition.AccessKeyID = "AKIDEXAMPLE"
	cfg.Recognition.SecretAccessKey = "secret"
	cfg.Recognition.Endpoint = "http://localhost:4566"
	cfg.Recognition.Timeout = time.Second

	gw, err := NewGateway(GatewayParams{Lc: fxtest.NewLifecycle(t), Ctx: context.Background(), Config: cfg, Logger: newDiscardLogger()})
	require.NoError(t, err)

	rek, ok := gw.(*RekognitionGateway)
	require.True(t, ok)
	assert.Equal(t, "FaceLockUsers", rek.collectionID)
}
