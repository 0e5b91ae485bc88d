package gdrive

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	tokenExchangesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "studyhub_drive_token_exchanges_total",
		Help: "Refresh-token exchanges against the OAuth token endpoint by outcome.",
	}, []string{"outcome"})

	driveRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "studyhub_drive_requests_total",
		Help: "Drive files.list calls by lookup type and HTTP status class.",
	}, []string{"lookup", "status"})
)
