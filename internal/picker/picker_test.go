package picker

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))))
	return path
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, MediaTypesAll, opts.MediaTypes)
	assert.True(t, opts.AllowsEditing)
	assert.Equal(t, [2]int{4, 3}, opts.Aspect)
	assert.Equal(t, 1.0, opts.Quality)
}

func TestAllowedExtensions(t *testing.T) {
	all := AllowedExtensions(MediaTypesAll)
	assert.Contains(t, all, ".png")
	assert.Contains(t, all, ".mp4")

	images := AllowedExtensions(MediaTypesImages)
	assert.Contains(t, images, ".jpg")
	assert.NotContains(t, images, ".mov")

	videos := AllowedExtensions(MediaTypesVideos)
	assert.NotContains(t, videos, ".png")
}

func TestCropRect(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		aspect        [2]int
		want          image.Rectangle
	}{
		{"already 4:3", 640, 480, [2]int{4, 3}, image.Rect(0, 0, 640, 480)},
		{"square", 1000, 1000, [2]int{4, 3}, image.Rect(0, 125, 1000, 875)},
		{"wide", 2000, 500, [2]int{4, 3}, image.Rect(667, 0, 1333, 500)},
		{"no aspect", 300, 200, [2]int{0, 0}, image.Rect(0, 0, 300, 200)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CropRect(tt.width, tt.height, tt.aspect))
		})
	}
}

func TestInspectImage(t *testing.T) {
	path := writePNG(t, t.TempDir(), "cat.png", 800, 800)

	asset, err := Inspect(path, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "cat.png", asset.Name)
	assert.Equal(t, MediaTypeImage, asset.MediaType)
	assert.Equal(t, 800, asset.Width)
	assert.Equal(t, 800, asset.Height)
	assert.Equal(t, "800x800", asset.Dimensions())
	assert.Equal(t, image.Rect(0, 100, 800, 700), asset.Crop)
	assert.True(t, strings.HasPrefix(asset.URI, "file://"))
	assert.True(t, strings.HasSuffix(asset.URI, "/cat.png"))
	assert.Positive(t, asset.Size)
}

func TestInspectWithoutEditingHasNoCrop(t *testing.T) {
	path := writePNG(t, t.TempDir(), "dog.png", 100, 50)
	opts := DefaultOptions()
	opts.AllowsEditing = false

	asset, err := Inspect(path, opts)
	require.NoError(t, err)
	assert.True(t, asset.Crop.Empty())
}

func TestInspectVideoHasNoDimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.mp4")
	require.NoError(t, os.WriteFile(path, []byte("not really a video"), 0644))

	asset, err := Inspect(path, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, MediaTypeVideo, asset.MediaType)
	assert.Empty(t, asset.Dimensions())
	assert.True(t, asset.Crop.Empty())
}

func TestInspectRejectsUnsupported(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(txt, []byte("hi"), 0644))

	_, err := Inspect(txt, DefaultOptions())
	assert.ErrorIs(t, err, ErrUnsupportedMedia)

	pngPath := writePNG(t, dir, "a.png", 10, 10)
	opts := DefaultOptions()
	opts.MediaTypes = MediaTypesVideos
	_, err = Inspect(pngPath, opts)
	assert.ErrorIs(t, err, ErrUnsupportedMedia)
}

func TestInspectMissingFile(t *testing.T) {
	_, err := Inspect(filepath.Join(t.TempDir(), "gone.png"), DefaultOptions())
	assert.Error(t, err)
}
