// Package picker selects a local image or video for the upload screen.
//
// Options mirror a mobile media picker: which media types are allowed,
// whether editing (cropping to a fixed aspect) is offered, and the output
// quality. Selected files are described by an Asset; nothing is uploaded.
package picker

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// MediaTypes selects which kinds of files the picker offers
type MediaTypes int

const (
	MediaTypesAll MediaTypes = iota
	MediaTypesImages
	MediaTypesVideos
)

// MediaType is the kind of a picked asset
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// ErrUnsupportedMedia is returned for files outside the allowed media types
var ErrUnsupportedMedia = errors.New("unsupported media type")

var (
	imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".heic", ".bmp"}
	videoExtensions = []string{".mp4", ".mov", ".m4v", ".webm", ".mkv"}
)

// Options controls what the picker offers and how a pick is described
type Options struct {
	MediaTypes    MediaTypes
	AllowsEditing bool
	Aspect        [2]int  // width:height of the crop when editing is allowed
	Quality       float64 // 0..1, 1 keeps the original
}

// DefaultOptions returns all media types, editing on, 4:3 crop, maximum quality
func DefaultOptions() Options {
	return Options{
		MediaTypes:    MediaTypesAll,
		AllowsEditing: true,
		Aspect:        [2]int{4, 3},
		Quality:       1,
	}
}

// Asset describes a picked file
type Asset struct {
	URI       string
	Path      string
	Name      string
	MediaType MediaType
	Size      int64
	Width     int // 0 when the file cannot be decoded
	Height    int
	Crop      image.Rectangle // empty unless editing is allowed and dimensions are known
	Quality   float64
}

// Dimensions returns "WxH", or "" if unknown
func (a Asset) Dimensions() string {
	if a.Width == 0 || a.Height == 0 {
		return ""
	}
	return fmt.Sprintf("%dx%d", a.Width, a.Height)
}

// Result is what a picker session settles with
type Result struct {
	Canceled bool
	Assets   []Asset
}

// AllowedExtensions lists the file extensions offered for the given media types
func AllowedExtensions(types MediaTypes) []string {
	switch types {
	case MediaTypesImages:
		return append([]string{}, imageExtensions...)
	case MediaTypesVideos:
		return append([]string{}, videoExtensions...)
	default:
		return append(append([]string{}, imageExtensions...), videoExtensions...)
	}
}

// mediaTypeOf classifies a path by extension
func mediaTypeOf(path string) (MediaType, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range imageExtensions {
		if e == ext {
			return MediaTypeImage, true
		}
	}
	for _, e := range videoExtensions {
		if e == ext {
			return MediaTypeVideo, true
		}
	}
	return "", false
}

// allowed reports whether mt is permitted by types
func allowed(types MediaTypes, mt MediaType) bool {
	switch types {
	case MediaTypesImages:
		return mt == MediaTypeImage
	case MediaTypesVideos:
		return mt == MediaTypeVideo
	default:
		return true
	}
}

// Inspect describes the file at path under opts
func Inspect(path string, opts Options) (Asset, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Asset{}, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	mt, ok := mediaTypeOf(abs)
	if !ok || !allowed(opts.MediaTypes, mt) {
		return Asset{}, fmt.Errorf("%w: %s", ErrUnsupportedMedia, filepath.Ext(abs))
	}

	info, err := os.Stat(abs)
	if err != nil {
		return Asset{}, fmt.Errorf("failed to stat %s: %w", abs, err)
	}
	if info.IsDir() {
		return Asset{}, fmt.Errorf("%s is a directory", abs)
	}

	asset := Asset{
		URI:       FileURI(abs),
		Path:      abs,
		Name:      filepath.Base(abs),
		MediaType: mt,
		Size:      info.Size(),
		Quality:   opts.Quality,
	}

	if mt == MediaTypeImage {
		if w, h, err := decodeSize(abs); err == nil {
			asset.Width, asset.Height = w, h
		}
	}

	if opts.AllowsEditing && asset.Width > 0 && asset.Height > 0 {
		asset.Crop = CropRect(asset.Width, asset.Height, opts.Aspect)
	}

	return asset, nil
}

// decodeSize reads only the image header
func decodeSize(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}

// FileURI converts an absolute path to a file:// URI
func FileURI(abs string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String()
}

// CropRect returns the largest rectangle of the given aspect centered in a
// width x height image. A non-positive aspect returns the full image.
func CropRect(width, height int, aspect [2]int) image.Rectangle {
	full := image.Rect(0, 0, width, height)
	aw, ah := aspect[0], aspect[1]
	if aw <= 0 || ah <= 0 || width <= 0 || height <= 0 {
		return full
	}

	// Fit by width first, fall back to fitting by height
	w := width
	h := width * ah / aw
	if h > height {
		h = height
		w = height * aw / ah
	}

	x := (width - w) / 2
	y := (height - h) / 2
	return image.Rect(x, y, x+w, y+h)
}
