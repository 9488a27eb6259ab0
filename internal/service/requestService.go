package service

import (
	"context"
	"log/slog"

	"shuvoedward/Bible_reader/internal/data"
	"shuvoedward/Bible_reader/internal/schema"
)

// RequestService reads the provider's request metering for a token.
type RequestService struct {
	client Requester
	logger *slog.Logger
}

func NewRequestService(client Requester, logger *slog.Logger) *RequestService {
	return &RequestService{
		client: client,
		logger: logger,
	}
}

func (s *RequestService) GetRequests(ctx context.Context, in RangeInput) ([]data.RequestLog, error) {
	if err := schema.Check(RangeInputSchema, in); err != nil {
		return nil, err
	}

	return call[[]data.RequestLog](ctx, s.client, withToken(get("/requests/"+in.Range), in.Token), data.RequestLogsSchema)
}

func (s *RequestService) GetRequestsAmount(ctx context.Context, in RangeInput) (*data.RequestsAmount, error) {
	if err := schema.Check(RangeInputSchema, in); err != nil {
		return nil, err
	}

	amount, err := call[data.RequestsAmount](ctx, s.client,
		withToken(get("/requests/amount/"+in.Range), in.Token), data.RequestsAmountSchema)
	if err != nil {
		return nil, err
	}
	return &amount, nil
}
