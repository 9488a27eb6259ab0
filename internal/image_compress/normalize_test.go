package image_compress

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 200, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestCalculateResize(t *testing.T) {
	tests := []struct {
		name                 string
		w, h, maxW, maxH     int
		expectedW, expectedH int
	}{
		{"no limit", 4000, 3000, 0, 0, 4000, 3000},
		{"fits", 800, 600, 1024, 1024, 800, 600},
		{"landscape", 4000, 2000, 1024, 1024, 1024, 512},
		{"portrait", 1000, 4000, 1024, 1024, 256, 1024},
		{"square", 2048, 2048, 1024, 1024, 1024, 1024},
		{"thin strip", 5000, 2, 1000, 1000, 1000, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := calculateResize(tt.w, tt.h, tt.maxW, tt.maxH)
			assert.Equal(t, tt.expectedW, w)
			assert.Equal(t, tt.expectedH, h)
		})
	}
}

func TestDimensions(t *testing.T) {
	w, h, err := Dimensions(pngOf(t, 12, 7))
	require.NoError(t, err)
	assert.Equal(t, 12, w)
	assert.Equal(t, 7, h)
}

func TestDimensions_Garbage(t *testing.T) {
	_, _, err := Dimensions([]byte("not an image"))
	assert.ErrorIs(t, err, ErrUndecodable)
}

func TestNormalize_SmallImagePassesThrough(t *testing.T) {
	src := pngOf(t, 10, 10)

	res, err := New(1024, 80).Normalize(src, "image/png")
	require.NoError(t, err)

	assert.False(t, res.Resized)
	assert.Equal(t, "image/png", res.MimeType)
	assert.Equal(t, src, res.Data)
}
