package mockapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gocube_mockapi_requests_total",
		Help: "Requests served by the mock API",
	}, []string{"route", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gocube_mockapi_request_duration_seconds",
		Help:    "Time to serve mock API requests",
		Buckets: []float64{0.0001, 0.001, 0.01, 0.1},
	}, []string{"route"})
)
