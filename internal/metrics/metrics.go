package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the process metrics and implements events.MetricsHook.
type Metrics struct {
	registry *prometheus.Registry

	activeSubscribers prometheus.Gauge
	eventsBroadcast   *prometheus.CounterVec
	eventsDropped     *prometheus.CounterVec
}

// New creates the metric set on a private registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	m := &Metrics{
		registry: registry,
		activeSubscribers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "kebab_active_subscribers",
			Help: "Number of currently connected event stream subscribers",
		}),
		eventsBroadcast: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kebab_events_broadcast_total",
			Help: "Total number of order events broadcast, by kind",
		}, []string{"kind"}),
		eventsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kebab_events_dropped_total",
			Help: "Total number of per-subscriber event deliveries dropped on full queues, by kind",
		}, []string{"kind"}),
	}
	registry.MustRegister(m.activeSubscribers, m.eventsBroadcast, m.eventsDropped)
	return m
}

// SubscriberAdded increments the active subscriber gauge.
func (m *Metrics) SubscriberAdded() { m.activeSubscribers.Inc() }

// SubscriberRemoved decrements the active subscriber gauge.
func (m *Metrics) SubscriberRemoved() { m.activeSubscribers.Dec() }

// EventBroadcast counts one broadcast of the given kind.
func (m *Metrics) EventBroadcast(kind string) { m.eventsBroadcast.WithLabelValues(kind).Inc() }

// EventDropped counts one dropped per-subscriber delivery.
func (m *Metrics) EventDropped(kind string) { m.eventsDropped.WithLabelValues(kind).Inc() }

// Handler returns the HTTP handler exposing the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
