package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gabriel-vasile/mimetype"

	"shuvoedward/Bible_reader/internal/image_compress"
	"shuvoedward/Bible_reader/internal/validator"
)

const maxImageBytes = 20 << 20

// ImageNormalizer shrinks oversized images before submission.
type ImageNormalizer interface {
	Normalize(buffer []byte, mimeType string) (*image_compress.Result, error)
}

// ImageService downloads images referenced by URL and prepares them for a
// vision model.
type ImageService struct {
	httpClient *http.Client
	normalizer ImageNormalizer
	logger     *slog.Logger
}

func NewImageService(httpClient *http.Client, normalizer ImageNormalizer, logger *slog.Logger) *ImageService {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ImageService{
		httpClient: httpClient,
		normalizer: normalizer,
		logger:     logger,
	}
}

type Image struct {
	Data     []byte
	MimeType string
}

// Fetch downloads the image, detects its type from the content itself and
// normalises it when the format allows.
func (s *ImageService) Fetch(ctx context.Context, imageURL string) (*Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageFetch, err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrImageFetch, resp.StatusCode)
	}

	buffer, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageFetch, err)
	}
	if len(buffer) > maxImageBytes {
		return nil, fmt.Errorf("%w: image larger than %d bytes", ErrImageFetch, maxImageBytes)
	}

	// Don't trust the Content-Type header of a remote server
	mimeType := mimetype.Detect(buffer).String()

	v := validator.New()
	validateImageType(v, mimeType)
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, mimeType)
	}

	img := &Image{Data: buffer, MimeType: mimeType}

	if s.normalizer == nil || !canNormalize(mimeType) {
		return img, nil
	}

	res, err := s.normalizer.Normalize(buffer, mimeType)
	if err != nil {
		// the original bytes are still acceptable to the model
		s.logger.Warn("image normalisation failed", "url", imageURL, "error", err)
		return img, nil
	}
	if res.Resized {
		s.logger.Info("image downscaled", "url", imageURL,
			"width", res.Width, "height", res.Height, "bytes", len(res.Data))
	}

	return &Image{Data: res.Data, MimeType: res.MimeType}, nil
}
