package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestFormMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewFormMetrics(reg)

	m.ObserveSubmission("booking", OutcomeAccepted)
	m.ObserveSubmission("booking", OutcomeAccepted)
	m.ObserveSubmission("waitlist", OutcomeRejected)
	m.ObserveValidationFailure("booking", "email")
	m.ObserveSubmitLatency("booking", 0.25)

	if got := testutil.ToFloat64(m.submissionsTotal.WithLabelValues("booking", OutcomeAccepted)); got != 2 {
		t.Errorf("expected 2 accepted booking submissions, got %v", got)
	}
	if got := testutil.ToFloat64(m.submissionsTotal.WithLabelValues("waitlist", OutcomeRejected)); got != 1 {
		t.Errorf("expected 1 rejected waitlist submission, got %v", got)
	}
	if got := testutil.ToFloat64(m.validationFailures.WithLabelValues("booking", "email")); got != 1 {
		t.Errorf("expected 1 email validation failure, got %v", got)
	}
}

func TestFormMetrics_NilSafe(t *testing.T) {
	var m *FormMetrics
	// Must not panic.
	m.ObserveSubmission("booking", OutcomeFailed)
	m.ObserveValidationFailure("booking", "phone")
	m.ObserveSubmitLatency("waitlist", 1.0)
}
