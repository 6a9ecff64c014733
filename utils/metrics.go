package utils

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// InteractionsTotal counts handled interactions by type ("ping", "command",
// "component", "modal").
var InteractionsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "shells_interactions_total",
		Help: "Total number of interactions handled by type",
	},
	[]string{"type"},
)

// AuthRejectsTotal counts requests rejected at the signature gate by reason
// ("malformed", "bad_signature", "bad_payload").
var AuthRejectsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "shells_auth_rejects_total",
		Help: "Total number of requests rejected before dispatch by reason",
	},
	[]string{"reason"},
)

// MetricsHandler returns the /metrics endpoint backed by a private registry.
func MetricsHandler() http.Handler {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		InteractionsTotal,
		AuthRejectsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
