package logger

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP latency per route
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// ComputationsTotal counts indicator calls by outcome status
	ComputationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ta_computations_total",
			Help: "Total number of indicator computations",
		},
		[]string{"indicator", "status"},
	)

	ComputeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ta_compute_duration_seconds",
			Help:    "Duration of indicator computations in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		},
		[]string{"indicator"},
	)

	BarsScanned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ta_bars_scanned_total",
			Help: "Total number of output bars produced",
		},
		[]string{"indicator"},
	)

	// CacheLookups counts result cache hits and misses
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ta_result_cache_lookups_total",
			Help: "Result cache lookups by outcome",
		},
		[]string{"result"},
	)

	SettingsUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ta_candle_settings_updates_total",
			Help: "Candle settings changes by kind",
		},
		[]string{"kind"},
	)
)
