package gemini

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	generationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gemini_generations_total",
			Help: "Generative model calls by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	generationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gemini_generation_duration_seconds",
			Help:    "Latency of generative model calls.",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40},
		},
		[]string{"operation"},
	)
)

func observe(operation string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	generationsTotal.WithLabelValues(operation, outcome).Inc()
	generationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
