package queue

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	investigationsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sleuth",
		Subsystem: "queue",
		Name:      "investigations_processed_total",
		Help:      "Investigations run to a terminal state, by row status.",
	}, []string{"status"})

	investigationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "sleuth",
		Subsystem: "queue",
		Name:      "investigation_duration_seconds",
		Help:      "Wall-clock duration of one investigation run.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1s .. ~68m
	})

	orphansRecovered = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "sleuth",
		Subsystem: "queue",
		Name:      "orphans_recovered_total",
		Help:      "Investigations re-queued after a pod restart.",
	})

	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "sleuth",
		Subsystem: "queue",
		Name:      "depth",
		Help:      "Pending investigations at the last health check.",
	})
)
