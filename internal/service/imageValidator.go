package service

import "shuvoedward/Bible_reader/internal/validator"

// jpeg, png and webp are understood by the vision model and by the
// normaliser; heic/heif are forwarded as fetched. gif, bmp, tiff, svg and
// raw formats are refused.
var supportedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/heic": true,
	"image/heif": true,
}

func validateImageType(v *validator.Validator, mimeType string) {
	v.Check(supportedImageTypes[mimeType], "image", "type "+mimeType+" not supported")
}

func canNormalize(mimeType string) bool {
	switch mimeType {
	case "image/jpeg", "image/png", "image/webp":
		return true
	}
	return false
}
