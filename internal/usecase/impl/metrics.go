package impl

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "studyhub_search_total",
		Help: "Resource searches by kind and outcome.",
	}, []string{"kind", "outcome"})

	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "studyhub_search_duration_seconds",
		Help:    "Duration of resource searches including cache lookups.",
		Buckets: prometheus.DefBuckets,
	}, []string{"kind"})

	resolutionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "studyhub_file_resolution_total",
		Help: "Course file link resolutions by file type and outcome.",
	}, []string{"file", "outcome"})
)

const (
	outcomeOK        = "ok"
	outcomeCached    = "cached"
	outcomeEmpty     = "empty"
	outcomeFailed    = "failed"
	outcomeAbandoned = "abandoned"
	outcomeNotFound  = "not_found"
)
