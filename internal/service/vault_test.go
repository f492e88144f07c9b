package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/mmcdole/photovault/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	pages map[int][]domain.Photo
	err   error
	calls []int
}

func (f *fakeRepo) GetPage(ctx context.Context, page int) ([]domain.Photo, error) {
	f.calls = append(f.calls, page)
	if f.err != nil {
		return nil, f.err
	}
	return f.pages[page], nil
}

func TestFetchPageReturnsRepositoryPhotos(t *testing.T) {
	repo := &fakeRepo{pages: map[int][]domain.Photo{2: {{ID: "a"}, {ID: "b"}}}}
	svc := NewVaultService(repo, nil)

	photos, err := svc.FetchPage(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, repo.calls)
	assert.Len(t, photos, 2)
}

func TestFetchPagePassesErrFetchThrough(t *testing.T) {
	repo := &fakeRepo{err: fmt.Errorf("%w: unexpected status code: 503", domain.ErrFetch)}
	svc := NewVaultService(repo, nil)

	photos, err := svc.FetchPage(context.Background(), 1)
	assert.Nil(t, photos)
	assert.True(t, errors.Is(err, domain.ErrFetch))
}

func TestFetchPageLogsRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	svc := NewVaultService(&fakeRepo{}, logger)

	_, err := svc.FetchPage(context.Background(), 4)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "request_id=")
	assert.Contains(t, out, "page=4")
	assert.Contains(t, out, "photo page fetched")
}
