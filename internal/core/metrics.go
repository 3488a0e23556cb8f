package core

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is registered once on the default registry; every Core shares it so
// repeated setup (tests) cannot double-register collectors.
type Metrics struct {
	requestsTotal *prometheus.CounterVec
}

var (
	metricsOnce sync.Once
	metricsInst *Metrics
)

func NewMetrics(namespace, subsystem string) *Metrics {
	metricsOnce.Do(func() {
		metricsInst = &Metrics{
			requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "http_requests_total",
				Help:      "HTTP requests by method, route and status.",
			}, []string{"method", "route", "status"}),
		}
		prometheus.MustRegister(metricsInst.requestsTotal)
	})
	return metricsInst
}

func (m *Metrics) ObserveRequest(method, route string, status int) {
	if route == "" {
		route = "unmatched"
	}
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}
