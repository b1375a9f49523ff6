package providers

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// RateLimitedCompleter gates completions through a token bucket so documents
// with many runs do not burn through a provider quota.
type RateLimitedCompleter struct {
	inner   Completer
	limiter *rate.Limiter
}

// NewRateLimitedCompleter wraps inner with a limit of requestsPerMinute.
// A non-positive value disables limiting.
func NewRateLimitedCompleter(inner Completer, requestsPerMinute int) *RateLimitedCompleter {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if requestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), 1)
	}
	return &RateLimitedCompleter{inner: inner, limiter: limiter}
}

func (c *RateLimitedCompleter) GetName() string {
	return c.inner.GetName()
}

func (c *RateLimitedCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter wait: %w", err)
	}
	return c.inner.Complete(ctx, prompt)
}
