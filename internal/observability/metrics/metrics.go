package metrics

import "github.com/prometheus/client_golang/prometheus"

// FormMetrics exposes counters/histograms for form submission flows.
type FormMetrics struct {
	submissionsTotal   *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
	submitLatency      *prometheus.HistogramVec
}

func NewFormMetrics(reg prometheus.Registerer) *FormMetrics {
	m := &FormMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wellnesshub",
			Subsystem: "forms",
			Name:      "submissions_total",
			Help:      "Total form submission attempts by outcome",
		}, []string{"form", "outcome"}),
		validationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wellnesshub",
			Subsystem: "forms",
			Name:      "validation_failures_total",
			Help:      "Total field-level validation failures",
		}, []string{"form", "field"}),
		submitLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "wellnesshub",
			Subsystem: "forms",
			Name:      "submit_latency_seconds",
			Help:      "Latency of the external submission call",
			Buckets:   prometheus.DefBuckets,
		}, []string{"form"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.validationFailures, m.submitLatency)
	return m
}

// Submission outcomes.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

func (m *FormMetrics) ObserveSubmission(form, outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(form, outcome).Inc()
}

func (m *FormMetrics) ObserveValidationFailure(form, field string) {
	if m == nil {
		return
	}
	m.validationFailures.WithLabelValues(form, field).Inc()
}

func (m *FormMetrics) ObserveSubmitLatency(form string, seconds float64) {
	if m == nil {
		return
	}
	m.submitLatency.WithLabelValues(form).Observe(seconds)
}
