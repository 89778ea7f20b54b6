package client

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "workstudy_client",
			Name:      "requests_total",
			Help:      "Requests issued by Fetch, by method and status code (\"error\" for transport failures).",
		},
		[]string{"method", "code"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "workstudy_client",
			Name:      "request_duration_seconds",
			Help:      "Time from sending a request to receiving response headers.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

func observeRequest(method, code string, start time.Time) {
	requestsTotal.WithLabelValues(method, code).Inc()
	requestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}
