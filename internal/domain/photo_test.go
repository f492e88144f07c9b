package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhotoOrientation(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		want          string
	}{
		{"landscape", 4000, 3000, "landscape"},
		{"portrait", 3000, 4000, "portrait"},
		{"square", 2000, 2000, "square"},
		{"unknown height", 2000, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Photo{Width: tt.width, Height: tt.height}
			assert.Equal(t, tt.want, p.Orientation())
		})
	}
}

func TestPhotoAspectRatio(t *testing.T) {
	assert.InDelta(t, 4.0/3.0, Photo{Width: 4000, Height: 3000}.AspectRatio(), 1e-9)
	assert.Zero(t, Photo{Width: 4000}.AspectRatio())
	assert.Equal(t, "4000x3000", Photo{Width: 4000, Height: 3000}.Dimensions())
}
