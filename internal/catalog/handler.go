package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wellnesshub/platform/pkg/logging"
)

// Handler serves the content registry as JSON.
type Handler struct {
	logger *logging.Logger
}

// NewHandler creates a new catalog handler
func NewHandler(logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{logger: logger}
}

// ListServices handles GET /api/services
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Services())
}

// ListConsultants handles GET /api/consultants
func (h *Handler) ListConsultants(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Consultants())
}

// ListConsultantOptions handles GET /api/consultants/options
func (h *Handler) ListConsultantOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ConsultantOptions())
}

// ListFAQs handles GET /api/faqs
func (h *Handler) ListFAQs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, FAQs())
}

// ListNavigation handles GET /api/navigation
func (h *Handler) ListNavigation(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, NavigationItems())
}

// GetContact handles GET /api/contact
func (h *Handler) GetContact(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Contact ContactInfo `json:"contact"`
		Brand   BrandInfo   `json:"brand"`
	}{Contact(), Brand()})
}

// ListHomeFeatures handles GET /api/features
func (h *Handler) ListHomeFeatures(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HomeFeatures())
}

// GetServiceInfo handles GET /api/services/info?name=<coming-soon name>.
// The set of names linked from the site is fixed, so a miss means the
// deployment and the content table disagree; it is logged loudly and
// answered with a 500 rather than an empty page.
func (h *Handler) GetServiceInfo(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		http.Error(w, "missing name parameter", http.StatusBadRequest)
		return
	}

	info, err := ServiceInfoFor(name)
	if err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			h.logger.Error("service info misconfigured", "name", name, "error", err)
			http.Error(w, "service details unavailable", http.StatusInternalServerError)
			return
		}
		http.Error(w, "failed to load service info", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, info)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
