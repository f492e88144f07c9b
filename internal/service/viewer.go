package service

import (
	"fmt"
	"log/slog"

	"github.com/mmcdole/photovault/internal/domain"
	"github.com/mmcdole/photovault/internal/picker"
)

// opener abstracts the external image viewer (consumer-defined interface)
type opener interface {
	Open(target string) error
}

// ViewerService opens photos and picked assets in an external viewer
type ViewerService struct {
	opener opener
	logger *slog.Logger
}

// NewViewerService creates a new viewer service
func NewViewerService(opener opener, logger *slog.Logger) *ViewerService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ViewerService{
		opener: opener,
		logger: logger,
	}
}

// ViewPhoto opens the full-size image of a remote photo
func (s *ViewerService) ViewPhoto(photo domain.Photo) error {
	target := photo.DownloadURL
	if target == "" {
		target = photo.URL
	}
	if target == "" {
		return fmt.Errorf("photo %s has no URL", photo.ID)
	}

	s.logger.Info("opening photo", "id", photo.ID, "author", photo.Author)
	return s.opener.Open(target)
}

// ViewAsset opens a locally picked file
func (s *ViewerService) ViewAsset(asset picker.Asset) error {
	if asset.Path == "" {
		return fmt.Errorf("asset has no path")
	}

	s.logger.Info("opening picked asset", "path", asset.Path)
	return s.opener.Open(asset.Path)
}
