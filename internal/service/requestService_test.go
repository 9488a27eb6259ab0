package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shuvoedward/Bible_reader/internal/schema"
)

func TestGetRequests(t *testing.T) {
	client, f := newFakeUpstream(t, http.StatusOK, `[{"url":"/api/books","date":"2024-01-01T10:00:00Z"}]`)
	s := NewRequestService(client, testLogger)

	logs, err := s.GetRequests(context.Background(), RangeInput{Range: "week", Token: "user-token"})
	require.NoError(t, err)

	assert.Equal(t, "/requests/week", f.last().Path)
	assert.Equal(t, "Bearer user-token", f.last().Auth)
	require.Len(t, logs, 1)
	assert.Equal(t, "/api/books", logs[0].URL)
}

func TestGetRequestsAmount_WithUserToken(t *testing.T) {
	client, f := newFakeUpstream(t, http.StatusOK, `{"total":3,"requests":[{"_id":"/api/books","count":3}]}`)
	s := NewRequestService(client, testLogger)

	amount, err := s.GetRequestsAmount(context.Background(), RangeInput{Range: "month", Token: "user-token"})
	require.NoError(t, err)

	assert.Equal(t, "/requests/amount/month", f.last().Path)
	assert.Equal(t, "Bearer user-token", f.last().Auth)
	assert.Equal(t, 3, amount.Total)
	assert.Equal(t, "/api/books", amount.Requests[0].ID)
}

func TestGetRequests_RejectsUnknownRange(t *testing.T) {
	client, f := newFakeUpstream(t, http.StatusOK, `[]`)
	s := NewRequestService(client, testLogger)

	_, err := s.GetRequests(context.Background(), RangeInput{Range: "year", Token: "user-token"})

	var verr *schema.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Map(), "range")
	assert.Zero(t, f.hits.Load())
}

func TestGetRequests_RequiresToken(t *testing.T) {
	client, f := newFakeUpstream(t, http.StatusOK, `[]`)
	s := NewRequestService(client, testLogger)

	_, err := s.GetRequestsAmount(context.Background(), RangeInput{Range: "week"})

	var verr *schema.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Map(), "token")
	assert.Zero(t, f.hits.Load())
}
