package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "realestate"

// MetricsManager owns a private registry with the HTTP and domain metrics.
type MetricsManager struct {
	Registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	PropertiesCreated *prometheus.CounterVec
	FavoritesAdded    prometheus.Counter
	ReviewsCreated    *prometheus.CounterVec
}

func NewMetricsManager() *MetricsManager {
	registry := prometheus.NewRegistry()

	m := &MetricsManager{
		Registry: registry,
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency of HTTP requests by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		PropertiesCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "properties_created_total",
			Help:      "Total number of listings created by property type.",
		}, []string{"property_type"}),
		FavoritesAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "favorites_added_total",
			Help:      "Total number of favorites added.",
		}),
		ReviewsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reviews_created_total",
			Help:      "Total number of reviews created by review type.",
		}, []string{"review_type"}),
	}

	registry.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.PropertiesCreated,
		m.FavoritesAdded,
		m.ReviewsCreated,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *MetricsManager) PropertyCreated(propertyType string) {
	m.PropertiesCreated.WithLabelValues(propertyType).Inc()
}

func (m *MetricsManager) FavoriteAdded() {
	m.FavoritesAdded.Inc()
}

func (m *MetricsManager) ReviewCreated(reviewType string) {
	m.ReviewsCreated.WithLabelValues(reviewType).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *MetricsManager) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
