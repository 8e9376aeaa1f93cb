// Package metrics holds Prometheus metrics for the assessment module.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the assessment module.
type Metrics struct {
	SessionsStarted   *prometheus.CounterVec
	ResponsesRecorded prometheus.Counter
	AuditsCompleted   *prometheus.CounterVec
	AuditScore        prometheus.Histogram
	NonConformities   *prometheus.CounterVec
}

// New creates and registers all assessment metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		SessionsStarted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "conforma_sessions_started_total",
			Help: "Total number of audit sessions started, by framework",
		}, []string{"framework"}),
		ResponsesRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "conforma_responses_recorded_total",
			Help: "Total number of checklist responses recorded (including revisions)",
		}),
		AuditsCompleted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "conforma_audits_completed_total",
			Help: "Total number of finalized audits, by framework",
		}, []string{"framework"}),
		AuditScore: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "conforma_audit_score",
			Help:    "Distribution of conformity scores at finalization",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		}),
		NonConformities: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "conforma_non_conformities_total",
			Help: "Total non-conformities found at finalization, by severity",
		}, []string{"severity"}),
	}
}
