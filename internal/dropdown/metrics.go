package dropdown

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric label values.
const (
	OutcomeFound = "found"
	OutcomeEmpty = "empty"
	OutcomeError = "error"
)

var (
	// ClassificationsTotal counts classified content keys by category.
	ClassificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dropdown_classifications_total",
		Help: "Total number of content keys classified by dropdown category",
	}, []string{"category"})

	// ResolutionsTotal counts option resolutions by outcome.
	ResolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dropdown_option_resolutions_total",
		Help: "Total number of dropdown option resolutions by outcome",
	}, []string{"outcome"})

	// ResolvedOptions observes the number of options returned per resolution.
	ResolvedOptions = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "dropdown_resolved_options",
		Help:    "Number of options returned by a dropdown resolution",
		Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21, 50},
	})

	// ResolveDuration measures storage read plus matching time.
	ResolveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "dropdown_resolve_duration_seconds",
		Help:    "Duration of dropdown option resolution",
		Buckets: prometheus.DefBuckets,
	})
)
