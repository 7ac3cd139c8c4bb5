package forms

import (
	"context"
	"time"

	"github.com/wellnesshub/platform/pkg/logging"
)

// StubSubmitter stands in for the real relay: it waits a fixed delay and
// always succeeds. Matches the placeholder behavior the site shipped with.
type StubSubmitter struct {
	delay  time.Duration
	logger *logging.Logger
}

// NewStubSubmitter creates a stub submitter with the given artificial delay.
func NewStubSubmitter(delay time.Duration, logger *logging.Logger) *StubSubmitter {
	if logger == nil {
		logger = logging.Default()
	}
	return &StubSubmitter{delay: delay, logger: logger}
}

// Submit waits the configured delay, honoring context cancellation.
func (s *StubSubmitter) Submit(ctx context.Context, payload Payload) error {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	s.logger.Info("stub submitter: submission accepted", "form", payload["form"])
	return nil
}
