package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wellnesshub/platform/internal/api/router"
	"github.com/wellnesshub/platform/internal/booking"
	"github.com/wellnesshub/platform/internal/catalog"
	"github.com/wellnesshub/platform/internal/config"
	"github.com/wellnesshub/platform/internal/forms"
	"github.com/wellnesshub/platform/internal/notify"
	"github.com/wellnesshub/platform/internal/observability/metrics"
	"github.com/wellnesshub/platform/internal/waitlist"
	"github.com/wellnesshub/platform/pkg/logging"
)

func main() {
	// Load .env for local development; real deployments use the environment.
	_ = godotenv.Load()

	cfg := config.Load()

	var logger *logging.Logger
	if cfg.Env == "development" {
		logger = logging.NewText(cfg.LogLevel)
	} else {
		logger = logging.New(cfg.LogLevel)
	}

	logger.Info("starting wellnesshub api",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	// Accepted submissions are relayed to an external forms endpoint when one
	// is configured. Otherwise a fixed-delay stub stands in, which is what
	// local and demo environments run with.
	var submitter forms.Submitter
	if cfg.FormsRelayURL != "" {
		relay, err := forms.NewRelayClient(forms.RelayConfig{
			URL:     cfg.FormsRelayURL,
			Timeout: cfg.FormsRelayTimeout,
			Logger:  logger,
		})
		if err != nil {
			logger.Error("failed to configure forms relay", "error", err)
			os.Exit(1)
		}
		submitter = relay
		logger.Info("forms relay enabled", "url", cfg.FormsRelayURL)
	} else {
		submitter = forms.NewStubSubmitter(cfg.StubSubmitDelay, logger)
		logger.Info("forms relay not configured, using stub submitter", "delay", cfg.StubSubmitDelay)
	}

	// Operator notifications. SendGrid when configured, otherwise disabled.
	var emailSender notify.EmailSender
	if sg := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridFromEmail,
		FromName:  cfg.SendGridFromName,
	}, logger); sg != nil {
		emailSender = sg
	} else if cfg.NotifyEmail != "" {
		emailSender = notify.NewStubEmailSender(logger)
	}
	notifySvc := notify.NewService(emailSender, cfg.NotifyEmail, logger)
	if notifySvc == nil {
		logger.Info("operator notifications disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	formMetrics := metrics.NewFormMetrics(registry)

	// notify.Service is nil when disabled; pass a nil interface in that case
	// so handlers skip notification entirely.
	var bookingNotifier booking.Notifier
	var waitlistNotifier waitlist.Notifier
	if notifySvc != nil {
		bookingNotifier = notifySvc
		waitlistNotifier = notifySvc
	}

	r := router.New(router.Config{
		Logger:             logger,
		Catalog:            catalog.NewHandler(logger),
		Bookings:           booking.NewHandler(submitter, bookingNotifier, formMetrics, logger),
		Waitlist:           waitlist.NewHandler(submitter, waitlistNotifier, formMetrics, logger),
		MetricsHandler:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		FormRateLimit:      cfg.FormRateLimit,
		FormRateBurst:      cfg.FormRateBurst,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logger.Error("http server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown failed", "error", err)
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
