// internal/obs/metrics.go
package obs

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	guardDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "authz_guard_decisions_total",
			Help: "Route guard decisions by outcome and redirect signal.",
		},
		[]string{"outcome", "redirect"},
	)

	approvalTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "approval_transitions_total",
			Help: "Organization status transitions by type and new status.",
		},
		[]string{"org_type", "new_status"},
	)
)

// Init registers the metrics with the default registry.
func Init() {
	prometheus.MustRegister(guardDecisions, approvalTransitions)
}

// Handler exposes the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveGuardDecision counts one route guard evaluation.
func ObserveGuardDecision(outcome, redirect string) {
	guardDecisions.WithLabelValues(outcome, redirect).Inc()
}

// ObserveApprovalTransition counts one successful status transition.
func ObserveApprovalTransition(orgType, newStatus string) {
	approvalTransitions.WithLabelValues(orgType, newStatus).Inc()
}
