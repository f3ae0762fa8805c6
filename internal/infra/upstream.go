package infra

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tripcraft/pkg/metrics"
	"tripcraft/pkg/utils"
)

// Attachment is binary content sent alongside a generation prompt.
type Attachment struct {
	MIMEType string
	Data     []byte
}

// Generator is the generative-model provider.
type Generator interface {
	Generate(ctx context.Context, prompt string, attachments ...Attachment) (string, error)
	Provider() string
}

// withTimeout bounds one upstream call; d == 0 leaves ctx untouched.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// classify maps a transport failure onto the error taxonomy. A deadline hit
// by our own bound is an upstream timeout; the caller's own cancellation is
// passed through untouched.
func classify(parent context.Context, provider string, err error) error {
	if err == nil {
		return nil
	}
	var upstreamErr *utils.UpstreamError
	if errors.As(err, &upstreamErr) {
		return err
	}
	if parent.Err() != nil {
		return parent.Err()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", utils.ErrUpstreamTimeout, provider)
	}
	return utils.NewUpstreamError(provider, 0, err.Error())
}

func observe(provider, operation string, start time.Time, err error) {
	metrics.ObserveUpstream(provider, operation, time.Since(start).Seconds(), err)
}
