// Package providers implements the text-classification service boundary as a
// narrow request-in/response-out interface, with one client per LLM vendor
// and decorators for rate limiting and response caching. Pipeline logic never
// touches transport concerns, so retry or circuit-breaking can be layered in
// here without changing any stage.
package providers

import (
	"context"
)

// Completer sends one prompt to a text-classification service and returns
// the raw response body. Transport failures are returned as-is; callers do
// not retry.
type Completer interface {
	GetName() string
	Complete(ctx context.Context, prompt string) (string, error)
}
