package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port               string
	Env                string
	LogLevel           string
	PublicBaseURL      string
	CORSAllowedOrigins []string

	// Forms relay endpoint for accepted submissions. When empty, the
	// fixed-delay stub submitter is used instead.
	FormsRelayURL     string
	FormsRelayTimeout time.Duration
	StubSubmitDelay   time.Duration

	// Per-IP rate limiting on the public form endpoints.
	FormRateLimit float64
	FormRateBurst int

	// Operator notifications via SendGrid. Disabled when the API key is
	// empty.
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string
	NotifyEmail       string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		PublicBaseURL:      getEnv("PUBLIC_BASE_URL", ""),
		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", "*"),
		FormsRelayURL:      getEnv("FORMS_RELAY_URL", ""),
		FormsRelayTimeout:  getEnvAsDuration("FORMS_RELAY_TIMEOUT", 10*time.Second),
		StubSubmitDelay:    getEnvAsDuration("STUB_SUBMIT_DELAY", 1500*time.Millisecond),
		FormRateLimit:      getEnvAsFloat("FORM_RATE_LIMIT", 1),
		FormRateBurst:      getEnvAsInt("FORM_RATE_BURST", 5),
		SendGridAPIKey:     getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail:  getEnv("SENDGRID_FROM_EMAIL", "hello@wellnesshub.com"),
		SendGridFromName:   getEnv("SENDGRID_FROM_NAME", "WellnessHub"),
		NotifyEmail:        getEnv("NOTIFY_EMAIL", ""),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsList splits a comma-separated environment variable, trimming
// whitespace and dropping empty entries.
func getEnvAsList(key, defaultValue string) []string {
	valueStr := getEnv(key, defaultValue)
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
