package forms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/wellnesshub/platform/pkg/logging"
)

const defaultRelayTimeout = 10 * time.Second

// RelayConfig controls how the relay client behaves.
type RelayConfig struct {
	// URL is the fixed forms-relay endpoint submissions are posted to.
	URL        string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *logging.Logger
}

// RelayClient posts submissions as JSON to an external forms-relay endpoint.
// Any non-2xx response counts as failure.
type RelayClient struct {
	url        string
	httpClient *http.Client
	logger     *logging.Logger
}

// NewRelayClient creates a configured RelayClient with sane defaults.
func NewRelayClient(cfg RelayConfig) (*RelayClient, error) {
	url := strings.TrimSpace(cfg.URL)
	if url == "" {
		return nil, errors.New("forms: relay URL is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultRelayTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	return &RelayClient{
		url:        url,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// Submit posts the payload to the relay endpoint.
func (c *RelayClient) Submit(ctx context.Context, payload Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("forms: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("forms: build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("forms relay request failed", "error", err)
		return fmt.Errorf("forms: relay request: %w", err)
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("forms relay rejected submission", "status", resp.StatusCode)
		return fmt.Errorf("forms: relay returned status %d", resp.StatusCode)
	}

	c.logger.Info("submission relayed", "status", resp.StatusCode)
	return nil
}
