package domain

import "fmt"

// Photo is a single record from the photo listing service.
// Photos are never mutated after they are fetched.
type Photo struct {
	ID          string
	Author      string
	Width       int
	Height      int
	URL         string // Source page for the photo
	DownloadURL string // Direct link to the image bytes
}

// Dimensions returns the pixel size formatted as "WxH"
func (p Photo) Dimensions() string {
	return fmt.Sprintf("%dx%d", p.Width, p.Height)
}

// AspectRatio returns width/height, or 0 if the height is unknown
func (p Photo) AspectRatio() float64 {
	if p.Height == 0 {
		return 0
	}
	return float64(p.Width) / float64(p.Height)
}

// IsLandscape returns true if the photo is wider than tall
func (p Photo) IsLandscape() bool {
	return p.Width > p.Height
}

// Orientation names the photo's shape: "landscape", "portrait" or "square".
// Unknown dimensions return "".
func (p Photo) Orientation() string {
	ratio := p.AspectRatio()
	switch {
	case ratio == 0:
		return ""
	case p.IsLandscape():
		return "landscape"
	case ratio == 1:
		return "square"
	default:
		return "portrait"
	}
}
