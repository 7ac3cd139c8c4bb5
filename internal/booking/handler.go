package booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/wellnesshub/platform/internal/forms"
	"github.com/wellnesshub/platform/internal/observability/metrics"
	"github.com/wellnesshub/platform/pkg/logging"
)

// Notifier receives accepted bookings for operator notification.
// Notification is best-effort; failures never affect the visitor response.
type Notifier interface {
	BookingAccepted(ctx context.Context, fields Fields) error
}

// Handler handles HTTP requests for booking submissions
type Handler struct {
	submitter forms.Submitter
	notifier  Notifier
	metrics   *metrics.FormMetrics
	logger    *logging.Logger
}

// NewHandler creates a new booking handler. notifier and formMetrics may be
// nil.
func NewHandler(submitter forms.Submitter, notifier Notifier, formMetrics *metrics.FormMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		submitter: submitter,
		notifier:  notifier,
		metrics:   formMetrics,
		logger:    logger,
	}
}

type errorResponse struct {
	Errors map[string]string `json:"errors"`
}

// Create handles POST /api/bookings requests
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var fields Fields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		h.logger.Error("failed to decode booking request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	form := NewForm(h.submitter)
	form.SetFields(fields)

	start := time.Now()
	handoff, err := form.Submit(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, ErrValidationFailed):
			fieldErrors := form.Errors()
			for field := range fieldErrors {
				h.metrics.ObserveValidationFailure("booking", field)
			}
			h.metrics.ObserveSubmission("booking", metrics.OutcomeRejected)
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Errors: fieldErrors})
		case errors.Is(err, ErrSubmissionFailed):
			h.metrics.ObserveSubmission("booking", metrics.OutcomeFailed)
			h.logger.Error("booking submission failed", "error", err)
			writeJSON(w, http.StatusBadGateway, errorResponse{Errors: form.Errors()})
		default:
			h.logger.Error("unexpected booking submit error", "error", err)
			http.Error(w, "failed to submit booking", http.StatusInternalServerError)
		}
		return
	}

	h.metrics.ObserveSubmitLatency("booking", time.Since(start).Seconds())
	h.metrics.ObserveSubmission("booking", metrics.OutcomeAccepted)
	h.logger.Info("booking request accepted",
		"name", handoff.Name,
		"sessionType", handoff.SessionType,
	)

	if h.notifier != nil {
		if err := h.notifier.BookingAccepted(r.Context(), fields); err != nil {
			h.logger.Error("booking notification failed", "error", err)
		}
	}

	writeJSON(w, http.StatusCreated, handoff)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
