package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mmcdole/photovault/internal/domain"
)

// VaultService fetches pages of photos for the vault screen
type VaultService struct {
	repo   domain.PhotoRepository
	logger *slog.Logger
}

// NewVaultService creates a new vault service
func NewVaultService(repo domain.PhotoRepository, logger *slog.Logger) *VaultService {
	if logger == nil {
		logger = slog.Default()
	}
	return &VaultService{
		repo:   repo,
		logger: logger,
	}
}

// FetchPage fetches one page. Errors are returned unchanged so callers can
// match domain.ErrFetch.
func (s *VaultService) FetchPage(ctx context.Context, page int) ([]domain.Photo, error) {
	requestID := uuid.NewString()
	start := time.Now()
	logger := s.logger.With("request_id", requestID, "page", page)

	logger.Debug("fetching photo page")

	photos, err := s.repo.GetPage(ctx, page)
	if err != nil {
		logger.Warn("photo page fetch failed", "error", err, "duration", time.Since(start))
		return nil, err
	}

	logger.Info("photo page fetched", "count", len(photos), "duration", time.Since(start))
	return photos, nil
}
