package domain

import "context"

// PhotoRepository lists photos one page at a time.
// Pages are 1-based. Any failure is reported as ErrFetch.
type PhotoRepository interface {
	GetPage(ctx context.Context, page int) ([]Photo, error)
}
