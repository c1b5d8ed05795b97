package server

import (
	"net/http"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instruments for the preview server.
type Metrics struct {
	registry        *prom.Registry
	requestsTotal   *prom.CounterVec
	redirectsTotal  prom.Counter
	requestDuration prom.Histogram
}

// NewMetrics constructs and registers the server metrics.
func NewMetrics(reg *prom.Registry) *Metrics {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	m := &Metrics{
		registry: reg,
		requestsTotal: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sitekit",
			Name:      "http_requests_total",
			Help:      "HTTP requests by status code",
		}, []string{"code"}),
		redirectsTotal: prom.NewCounter(prom.CounterOpts{
			Namespace: "sitekit",
			Name:      "redirects_total",
			Help:      "Requests answered by the legacy-path redirect table",
		}),
		requestDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "sitekit",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration",
			Buckets:   prom.DefBuckets,
		}),
	}
	reg.MustRegister(m.requestsTotal, m.redirectsTotal, m.requestDuration)
	return m
}

// Handler serves the /metrics endpoint for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
