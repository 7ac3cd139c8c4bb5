package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.StubSubmitDelay != 1500*time.Millisecond {
		t.Errorf("expected default stub delay 1.5s, got %s", cfg.StubSubmitDelay)
	}
	if cfg.FormsRelayURL != "" {
		t.Errorf("expected relay URL unset by default, got %s", cfg.FormsRelayURL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("FORMS_RELAY_URL", "https://relay.example.com/f/abc")
	t.Setenv("FORMS_RELAY_TIMEOUT", "3s")
	t.Setenv("FORM_RATE_BURST", "2")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.FormsRelayURL != "https://relay.example.com/f/abc" {
		t.Errorf("unexpected relay URL %s", cfg.FormsRelayURL)
	}
	if cfg.FormsRelayTimeout != 3*time.Second {
		t.Errorf("expected 3s timeout, got %s", cfg.FormsRelayTimeout)
	}
	if cfg.FormRateBurst != 2 {
		t.Errorf("expected burst 2, got %d", cfg.FormRateBurst)
	}
}

func TestGetEnvAsList(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.com, https://b.com,,")

	cfg := Load()

	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.CORSAllowedOrigins[0] != "https://a.com" || cfg.CORSAllowedOrigins[1] != "https://b.com" {
		t.Errorf("unexpected origins %v", cfg.CORSAllowedOrigins)
	}
}

func TestGetEnvAsDuration_Invalid(t *testing.T) {
	t.Setenv("FORMS_RELAY_TIMEOUT", "not-a-duration")

	cfg := Load()

	if cfg.FormsRelayTimeout != 10*time.Second {
		t.Errorf("expected fallback to default 10s, got %s", cfg.FormsRelayTimeout)
	}
}
