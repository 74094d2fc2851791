package interpreter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	turnsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "turntable",
		Name:      "turns_total",
		Help:      "Chat turns processed, by outcome.",
	}, []string{"outcome"})

	turnDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "turntable",
		Name:      "turn_duration_seconds",
		Help:      "Wall time of a chat turn, model call and actions included.",
		Buckets:   prometheus.DefBuckets,
	})

	modelDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "turntable",
		Name:      "model_duration_seconds",
		Help:      "Latency of the single model call per turn.",
		Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
	}, []string{"backend"})

	actionsPerTurn = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "turntable",
		Name:      "actions_per_turn",
		Help:      "Action requests extracted from one model reply.",
		Buckets:   []float64{0, 1, 2, 3, 5, 8},
	})
)
