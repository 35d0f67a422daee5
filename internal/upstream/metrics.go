package upstream

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK        = "ok"
	outcomeStatus    = "status"
	outcomeTransport = "transport"
	outcomeDecode    = "decode"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "servicehub_upstream_requests_total",
		Help: "Upstream API requests by service and outcome.",
	}, []string{"service", "outcome"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "servicehub_upstream_request_duration_seconds",
		Help:    "Upstream API request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"service"})
)

func observe(service, outcome string, start time.Time) {
	requestsTotal.WithLabelValues(service, outcome).Inc()
	requestDuration.WithLabelValues(service).Observe(time.Since(start).Seconds())
}
