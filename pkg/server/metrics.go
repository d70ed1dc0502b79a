package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	registry      *prometheus.Registry
	uploads       *prometheus.CounterVec
	parseDuration prometheus.Histogram
	courses       prometheus.Counter
	inFlight      prometheus.Gauge
}

// newMetrics registers the service collectors on a private registry, so several
// servers (tests) can coexist in one process.
func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &metrics{
		registry: reg,
		uploads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jaku",
			Name:      "uploads_total",
			Help:      "Uploaded schedule documents by outcome.",
		}, []string{"result"}),
		parseDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "jaku",
			Name:      "parse_duration_seconds",
			Help:      "Time spent extracting and parsing one document.",
			Buckets:   prometheus.DefBuckets,
		}),
		courses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "jaku",
			Name:      "courses_parsed_total",
			Help:      "Course records extracted from uploaded documents.",
		}),
		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "jaku",
			Name:      "parses_in_flight",
			Help:      "Documents currently being parsed.",
		}),
	}
}
