package translator

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/valpere/translate-api/internal/config"
)

// New creates the provider named in the configuration.
func New(ctx context.Context, cfg *config.ProviderConfig, detect DetectFunc, logger *zap.Logger) (Provider, error) {
	switch cfg.Name {
	case "google", "":
		logger.Info("creating Google Translate provider")
		p, err := NewGoogle(ctx, cfg.Credentials)
		if err != nil {
			return nil, err
		}
		return p, nil

	case "mymemory":
		logger.Info("creating MyMemory provider")
		return NewMyMemory(cfg.MyMemoryEmail, detect), nil

	default:
		return nil, fmt.Errorf("unsupported translation provider: %s", cfg.Name)
	}
}
