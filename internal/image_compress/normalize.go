// Package image_compress prepares fetched images for submission to a vision
// model: small images pass through untouched, larger ones are downscaled and
// re-encoded as JPEG.
package image_compress

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/h2non/bimg"
	_ "golang.org/x/image/webp"
)

var ErrUndecodable = errors.New("image_compress: cannot read image header")

type Normalizer struct {
	MaxDimension int // longest edge after processing, 0 = no resize
	Quality      int // JPEG quality 1-100
}

type Result struct {
	Data     []byte
	MimeType string
	Width    int
	Height   int
	Resized  bool
}

func New(maxDimension, quality int) *Normalizer {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	return &Normalizer{MaxDimension: maxDimension, Quality: quality}
}

// Dimensions reads width and height from the image header without decoding
// pixel data. JPEG, PNG and WebP are understood.
func Dimensions(buffer []byte) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(buffer))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrUndecodable, err)
	}
	return cfg.Width, cfg.Height, nil
}

// Normalize returns the image unchanged when it already fits within
// MaxDimension, otherwise a downscaled JPEG.
func (n *Normalizer) Normalize(buffer []byte, mimeType string) (*Result, error) {
	width, height, err := Dimensions(buffer)
	if err != nil {
		return nil, err
	}

	newWidth, newHeight := calculateResize(width, height, n.MaxDimension, n.MaxDimension)
	if newWidth == width && newHeight == height {
		return &Result{Data: buffer, MimeType: mimeType, Width: width, Height: height}, nil
	}

	processed, err := bimg.NewImage(buffer).Process(bimg.Options{
		Width:   newWidth,
		Height:  newHeight,
		Quality: n.Quality,
		Type:    bimg.JPEG,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to process image: %w", err)
	}

	return &Result{
		Data:     processed,
		MimeType: "image/jpeg",
		Width:    newWidth,
		Height:   newHeight,
		Resized:  true,
	}, nil
}

// calculateResize keeps the aspect ratio and never upscales.
func calculateResize(origWidth, origHeight, maxWidth, maxHeight int) (int, int) {
	if maxWidth <= 0 && maxHeight <= 0 {
		return origWidth, origHeight
	}
	if maxWidth <= 0 {
		maxWidth = origWidth
	}
	if maxHeight <= 0 {
		maxHeight = origHeight
	}

	if origWidth <= maxWidth && origHeight <= maxHeight {
		return origWidth, origHeight
	}

	ratio := float64(origWidth) / float64(origHeight)
	width, height := origWidth, origHeight

	if width > maxWidth {
		width = maxWidth
		height = int(float64(maxWidth) / ratio)
	}
	if height > maxHeight {
		height = maxHeight
		width = int(float64(maxHeight) * ratio)
	}

	return max(width, 1), max(height, 1)
}
