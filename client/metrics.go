package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "conecta_client",
			Name:      "requests_total",
			Help:      "Entity API calls issued, by entity and operation.",
		},
		[]string{"entity", "op"},
	)

	failuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "conecta_client",
			Name:      "request_failures_total",
			Help:      "Entity API calls that failed at transport level or returned an error status.",
		},
		[]string{"entity", "op"},
	)
)
