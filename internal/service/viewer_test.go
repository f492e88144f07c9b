package service

import (
	"testing"

	"github.com/mmcdole/photovault/internal/domain"
	"github.com/mmcdole/photovault/internal/picker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingOpener struct {
	opened []string
}

func (r *recordingOpener) Open(target string) error {
	r.opened = append(r.opened, target)
	return nil
}

func TestViewPhotoPrefersDownloadURL(t *testing.T) {
	op := &recordingOpener{}
	svc := NewViewerService(op, nil)

	require.NoError(t, svc.ViewPhoto(domain.Photo{ID: "1", URL: "https://page", DownloadURL: "https://img"}))
	require.NoError(t, svc.ViewPhoto(domain.Photo{ID: "2", URL: "https://page"}))

	assert.Equal(t, []string{"https://img", "https://page"}, op.opened)
}

func TestViewPhotoWithoutURL(t *testing.T) {
	op := &recordingOpener{}
	svc := NewViewerService(op, nil)

	assert.Error(t, svc.ViewPhoto(domain.Photo{ID: "3"}))
	assert.Empty(t, op.opened)
}

func TestViewAsset(t *testing.T) {
	op := &recordingOpener{}
	svc := NewViewerService(op, nil)

	require.NoError(t, svc.ViewAsset(picker.Asset{Path: "/tmp/a.png"}))
	assert.Equal(t, []string{"/tmp/a.png"}, op.opened)

	assert.Error(t, svc.ViewAsset(picker.Asset{}))
}
