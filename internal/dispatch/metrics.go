package dispatch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/nadzzz/turntable/internal/action"
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
	outcomeInvalid = "invalid"
)

var (
	actionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "turntable",
		Name:      "actions_total",
		Help:      "Actions requested by the model, by kind and outcome.",
	}, []string{"kind", "outcome"})

	actionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "turntable",
		Name:      "action_duration_seconds",
		Help:      "Time spent executing one action against Spotify.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind"})
)

// kindLabel keeps label cardinality bounded: model-invented names collapse
// to "unknown".
func kindLabel(name string) string {
	if action.Known(name) {
		return name
	}
	return "unknown"
}
