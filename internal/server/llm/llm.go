// Package llm talks to the language model. Client is the narrow contract the
// audit engine depends on; OpenAIClient implements it over the chat
// completions API and RetryPolicy adds timeouts and bounded retries.
package llm

import (
	"context"
	"time"

	"github.com/carlosftapiap/arcsapp-sub001/internal/server/prompt"
)

type InvokeConfig struct {
	Model       string
	MaxTokens   int
	Temperature float32
	Timeout     time.Duration
}

// Client returns the raw model output for a composed prompt. Errors carry an
// invocation kind from the errs package.
type Client interface {
	Invoke(ctx context.Context, p prompt.Bundle, cfg InvokeConfig) (string, error)
}

// ClientFunc adapts a function to Client.
type ClientFunc func(ctx context.Context, p prompt.Bundle, cfg InvokeConfig) (string, error)

func (f ClientFunc) Invoke(ctx context.Context, p prompt.Bundle, cfg InvokeConfig) (string, error) {
	return f(ctx, p, cfg)
}
