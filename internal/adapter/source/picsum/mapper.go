package picsum

import "github.com/mmcdole/photovault/internal/domain"

// MapPhoto converts a picsum DTO to a domain photo
func MapPhoto(p Photo) domain.Photo {
	return domain.Photo{
		ID:          p.ID,
		Author:      p.Author,
		Width:       p.Width,
		Height:      p.Height,
		URL:         p.URL,
		DownloadURL: p.DownloadURL,
	}
}

// MapPhotos converts a page of DTOs, preserving order
func MapPhotos(photos []Photo) []domain.Photo {
	result := make([]domain.Photo, 0, len(photos))
	for _, p := range photos {
		result = append(result, MapPhoto(p))
	}
	return result
}
