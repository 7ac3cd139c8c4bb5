package waitlist

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/wellnesshub/platform/internal/catalog"
	"github.com/wellnesshub/platform/internal/forms"
	"github.com/wellnesshub/platform/internal/observability/metrics"
	"github.com/wellnesshub/platform/pkg/logging"
)

// Notifier receives accepted waitlist registrations for operator
// notification.
type Notifier interface {
	WaitlistJoined(ctx context.Context, service string, fields Fields) error
}

// Handler handles HTTP requests for waitlist registrations
type Handler struct {
	submitter forms.Submitter
	notifier  Notifier
	metrics   *metrics.FormMetrics
	logger    *logging.Logger
}

// NewHandler creates a new waitlist handler. notifier and formMetrics may
// be nil.
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

type joinResponse struct {
	Service string `json:"service"`
	Message string `json:"message"`
}

// Join handles POST /api/waitlist/{serviceID} requests. The service must be
// a known placeholder; active services take bookings, not waitlist entries.
func (h *Handler) Join(w http.ResponseWriter, r *http.Request) {
	serviceID := chi.URLParam(r, "serviceID")
	serviceName, ok := catalog.PlaceholderName(serviceID)
	if !ok {
		http.Error(w, "no waitlist for this service", http.StatusNotFound)
		return
	}

	var fields Fields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		h.logger.Error("failed to decode waitlist request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	form := NewForm(serviceID, serviceName, h.submitter)
	form.SetFields(fields)

	start := time.Now()
	if err := form.Submit(r.Context()); err != nil {
		switch {
		case errors.Is(err, ErrValidationFailed):
			fieldErrors := form.Errors()
			for field := range fieldErrors {
				h.metrics.ObserveValidationFailure("waitlist", field)
			}
			h.metrics.ObserveSubmission("waitlist", metrics.OutcomeRejected)
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Errors: fieldErrors})
		case errors.Is(err, ErrSubmissionFailed):
			h.metrics.ObserveSubmission("waitlist", metrics.OutcomeFailed)
			h.logger.Error("waitlist submission failed", "error", err, "service", serviceName)
			writeJSON(w, http.StatusBadGateway, errorResponse{Errors: form.Errors()})
		default:
			h.logger.Error("unexpected waitlist submit error", "error", err)
			http.Error(w, "failed to join waitlist", http.StatusInternalServerError)
		}
		return
	}

	h.metrics.ObserveSubmitLatency("waitlist", time.Since(start).Seconds())
	h.metrics.ObserveSubmission("waitlist", metrics.OutcomeAccepted)
	h.logger.Info("waitlist registration accepted", "service", serviceName)

	if h.notifier != nil {
		if err := h.notifier.WaitlistJoined(r.Context(), serviceName, fields); err != nil {
			h.logger.Error("waitlist notification failed", "error", err)
		}
	}

	writeJSON(w, http.StatusCreated, joinResponse{
		Service: serviceName,
		Message: form.ConfirmationMessage(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
