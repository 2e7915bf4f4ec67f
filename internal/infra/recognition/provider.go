// Package recognition binds the face recognition capability to a concrete provider.
package recognition

import (
	"context"
	"log/slog"

	"facelock/config"
	"facelock/internal/domain/constants"
	"facelock/internal/domain/lifecycle"
	"facelock/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// GatewayParams holds dependencies for RecognitionGateway, injected by Fx
type GatewayParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewGateway creates a RecognitionGateway based on configuration
func NewGateway(params GatewayParams) (service.RecognitionGateway, error) {
	cfg := params.Config.Recognition
	logger := params.Logger

	if cfg == nil {
		return nil, errors.New("recognition config is required")
	}

	var gateway service.RecognitionGateway

	switch cfg.Provider {
	case constants.RecognitionProviderRekognition:
		if cfg.CollectionID == "" {
			return nil, errors.New("collection ID is required for rekognition provider")
		}
		logger.Info("Using AWS Rekognition face collection",
			slog.String("region", cfg.Region),
			slog.String("collection_id", cfg.CollectionID),
			slog.Bool("custom_endpoint", cfg.Endpoint != ""),
		)

		client, err := newRekognitionClient(params.Ctx, cfg)
		if err != nil {
			return nil, err
		}
		gateway = NewRekognitionGateway(client, cfg.CollectionID, logger)

	case constants.RecognitionProviderMemory:
		logger.Warn("Using in-memory recognition gateway, faces are lost on restart")

		gateway = NewMemoryGateway(logger)

	default:
		return nil, errors.Errorf("unknown recognition provider: %s", cfg.Provider)
	}

	// The collection must exist before the server accepts traffic.
	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(gateway.EnsureCollection(ctx), "ensure face collection")
		},
	})

	return gateway, nil
}

// Module provides the recognition FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewGateway),
)
