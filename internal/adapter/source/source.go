package source

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mmcdole/photovault/internal/adapter"
	"github.com/mmcdole/photovault/internal/adapter/source/picsum"
	"github.com/mmcdole/photovault/internal/domain"
)

// SourceConfig contains the configuration needed to create a PhotoRepository
type SourceConfig struct {
	Type     adapter.SourceType
	BaseURL  string
	PageSize int
	Timeout  time.Duration
}

// NewClient creates a PhotoRepository based on the source type
func NewClient(cfg *SourceConfig, logger *slog.Logger) (domain.PhotoRepository, error) {
	if cfg == nil {
		return nil, fmt.Errorf("source config is nil")
	}

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("source base URL is required")
	}

	switch cfg.Type {
	case adapter.SourceTypePicsum, "":
		return picsum.NewClient(cfg.BaseURL, logger,
			picsum.WithPageSize(cfg.PageSize),
			picsum.WithTimeout(cfg.Timeout),
		), nil

	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownSource, cfg.Type)
	}
}

// NewClientFromConfig creates a PhotoRepository from the application config
func NewClientFromConfig(cfg *adapter.Config, logger *slog.Logger) (domain.PhotoRepository, error) {
	return NewClient(&SourceConfig{
		Type:     cfg.Source.Type,
		BaseURL:  cfg.Source.BaseURL,
		PageSize: cfg.Source.PageSize,
		Timeout:  cfg.Source.Timeout,
	}, logger)
}
