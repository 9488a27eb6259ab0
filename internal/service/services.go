package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"shuvoedward/Bible_reader/internal/schema"
	"shuvoedward/Bible_reader/internal/upstream"
)

// Requester performs one call against an upstream REST service.
type Requester interface {
	Do(ctx context.Context, r upstream.Request) ([]byte, error)
}

// Services contains all proxy procedures grouped by namespace
type Service struct {
	Bible   *BibleService
	User    *UserService
	Request *RequestService
	Gemini  *GeminiService
}

// NewServices wires every namespace to its upstream collaborators
func NewServices(
	bible Requester,
	model TextModel,
	images *ImageService,
	logger *slog.Logger,
) *Service {
	return &Service{
		Bible:   NewBibleService(bible, logger),
		User:    NewUserService(bible, logger),
		Request: NewRequestService(bible, logger),
		Gemini:  NewGeminiService(model, images, logger),
	}
}

// call performs r and validates the body against out before decoding it.
// Contract violations wrap both ErrInvalidResponse and the
// *schema.ValidationError describing them.
func call[T any](ctx context.Context, client Requester, r upstream.Request, out *schema.Schema) (T, error) {
	var zero T

	body, err := client.Do(ctx, r)
	if err != nil {
		return zero, err
	}

	v, err := schema.Decode[T](out, body)
	if err != nil {
		return zero, fmt.Errorf("%s %s: %w: %w", r.Method, r.Path, ErrInvalidResponse, err)
	}

	return v, nil
}

func get(path string) upstream.Request {
	return upstream.Request{Method: http.MethodGet, Path: path}
}

func withToken(r upstream.Request, token string) upstream.Request {
	r.Header = upstream.BearerHeader(token)
	return r
}
