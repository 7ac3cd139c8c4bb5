package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/wellnesshub/platform/internal/booking"
	"github.com/wellnesshub/platform/internal/catalog"
	"github.com/wellnesshub/platform/internal/http/middleware"
	"github.com/wellnesshub/platform/internal/waitlist"
	"github.com/wellnesshub/platform/pkg/logging"
)

// Config carries the dependencies for the HTTP router.
type Config struct {
	Logger             *logging.Logger
	Catalog            *catalog.Handler
	Bookings           *booking.Handler
	Waitlist           *waitlist.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string

	// Rate limiting applied to the form submission endpoints only.
	FormRateLimit float64
	FormRateBurst int
}

// New assembles the chi router with all routes and middleware.
func New(cfg Config) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Compress(5))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.RequestLogger(cfg.Logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		if cfg.Catalog != nil {
			r.Get("/services", cfg.Catalog.ListServices)
			r.Get("/services/info", cfg.Catalog.GetServiceInfo)
			r.Get("/consultants", cfg.Catalog.ListConsultants)
			r.Get("/consultants/options", cfg.Catalog.ListConsultantOptions)
			r.Get("/faqs", cfg.Catalog.ListFAQs)
			r.Get("/navigation", cfg.Catalog.ListNavigation)
			r.Get("/contact", cfg.Catalog.GetContact)
			r.Get("/features", cfg.Catalog.ListHomeFeatures)
		}

		r.Group(func(r chi.Router) {
			if cfg.FormRateLimit > 0 {
				r.Use(middleware.RateLimit(cfg.FormRateLimit, cfg.FormRateBurst))
			}
			if cfg.Bookings != nil {
				r.Post("/bookings", cfg.Bookings.Create)
			}
			if cfg.Waitlist != nil {
				r.Post("/waitlist/{serviceID}", cfg.Waitlist.Join)
			}
		})
	})

	return r
}
