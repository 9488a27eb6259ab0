package upstream

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "upstream_requests_total",
		Help: "Outbound requests to upstream services by outcome.",
	}, []string{"client", "method", "outcome"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "upstream_request_duration_seconds",
		Help:    "Latency of outbound requests to upstream services.",
		Buckets: prometheus.DefBuckets,
	}, []string{"client"})
)

func observe(client, method string, start time.Time, err error) {
	requestDuration.WithLabelValues(client).Observe(time.Since(start).Seconds())
	requestsTotal.WithLabelValues(client, method, outcome(err)).Inc()
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}

	var upErr *Error
	if errors.As(err, &upErr) {
		if upErr.Code == ErrCodeHTTPStatus {
			return strconv.Itoa(upErr.Status)
		}
		return string(upErr.Code)
	}
	return "error"
}
