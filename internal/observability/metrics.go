package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SketchesRendered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "remember",
		Name:      "sketches_rendered_total",
		Help:      "Total number of sketches generated",
	}, []string{"source"})

	SketchFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "remember",
		Name:      "sketch_failures_total",
		Help:      "Sketch generation failures by stage",
	}, []string{"stage"})

	SketchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "remember",
		Name:      "sketch_duration_seconds",
		Help:      "Duration of sketch generation",
		Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12),
	}, []string{"source"})

	ReviewsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "remember",
		Name:      "reviews_recorded_total",
		Help:      "Total number of review outcomes recorded",
	}, []string{"outcome"})

	DuePeople = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "remember",
		Name:      "due_people",
		Help:      "Number of people due for review at the last count",
	})

	QueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "remember",
		Name:      "queue_depth",
		Help:      "Number of pending sketch tasks in queue",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "remember",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	WSConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "remember",
		Name:      "ws_connections",
		Help:      "Number of active WebSocket connections",
	})
)

// Outcome labels a review result.
func Outcome(recalled bool) string {
	if recalled {
		return "got_it"
	}
	return "missed"
}
