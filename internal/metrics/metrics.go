package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	assessmentsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "risk_assessments_total",
		Help: "Total number of risks assessed and stored, by level",
	}, []string{"level"})
	validationFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "risk_validation_failures_total",
		Help: "Total number of rejected risk submissions, by reason",
	}, []string{"reason"})
	storageErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "risk_storage_errors_total",
		Help: "Total number of risk store failures, by operation",
	}, []string{"op"})
)

// Register registers Prometheus collectors. Call once per registry.
func Register(registry *prometheus.Registry) {
	registry.MustRegister(assessmentsTotal, validationFailuresTotal, storageErrorsTotal)
}

// IncAssessment counts a stored assessment.
func IncAssessment(level string) { assessmentsTotal.WithLabelValues(level).Inc() }

// IncValidationFailure counts a rejected submission.
func IncValidationFailure(reason string) { validationFailuresTotal.WithLabelValues(reason).Inc() }

// IncStorageError counts a failed store operation.
func IncStorageError(op string) { storageErrorsTotal.WithLabelValues(op).Inc() }
