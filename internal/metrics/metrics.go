package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AnalysisRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analysis_requests_total",
			Help: "Total number of analyze-response requests by outcome",
		},
		[]string{"outcome"},
	)

	CritiqueDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "critique_duration_seconds",
			Help:    "Duration of upstream critique calls in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 40, 60},
		},
		[]string{"kind", "provider"},
	)

	RecordingsFinalized = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recordings_finalized_total",
			Help: "Total number of stopped recordings by outcome",
		},
		[]string{"outcome"},
	)

	RecordingBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recording_size_bytes",
			Help:    "Size of finalized recordings in bytes",
			Buckets: prometheus.ExponentialBuckets(64*1024, 4, 8),
		},
	)

	ActiveRecordings = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recordings_active",
			Help: "Number of recording controllers currently held in memory",
		},
	)

	SessionsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "interview_sessions_started_total",
			Help: "Total number of interview sessions created",
		},
	)
)
