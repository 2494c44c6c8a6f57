// Package metrics holds the Prometheus collectors of the monitor service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry = prometheus.NewRegistry()

	// PollCycles counts poll cycles by result: skipped, ok, error.
	PollCycles = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "graw",
		Name:      "poll_cycles_total",
		Help:      "Number of repository poll cycles by result.",
	}, []string{"result"})

	RevisionsDispatched = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "graw",
		Name:      "revisions_dispatched_total",
		Help:      "Number of revision notifications sent to output channels.",
	})

	StateTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "graw",
		Name:      "monitor_state_transitions_total",
		Help:      "Number of monitor state changes by destination state.",
	}, []string{"state"})

	ActiveMonitors = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "graw",
		Name:      "active_monitors",
		Help:      "Number of monitors owned by the supervisor.",
	})

	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "graw",
		Name:      "http_requests_total",
		Help:      "Number of HTTP requests by method and status code.",
	}, []string{"method", "code"})
)

func init() {
	registry.MustRegister(
		PollCycles,
		RevisionsDispatched,
		StateTransitions,
		ActiveMonitors,
		HTTPRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Handler serves the collectors in the Prometheus exposition format
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
