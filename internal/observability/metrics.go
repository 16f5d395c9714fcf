package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecordsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ge",
		Name:      "records_created_total",
		Help:      "Total number of records created, by kind",
	}, []string{"kind"})

	SearchesExecuted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ge",
		Name:      "searches_total",
		Help:      "Total number of search requests, by resolved mode",
	}, []string{"mode"})

	EncodingsExtracted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ge",
		Name:      "encodings_extracted_total",
		Help:      "Total number of face encodings extracted from uploaded images",
	})

	EncoderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "ge",
		Name:      "encoder_duration_seconds",
		Help:      "Duration of face encoding extraction",
		Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ge",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	WSConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "ge",
		Name:      "ws_connections",
		Help:      "Number of active WebSocket connections",
	})
)
