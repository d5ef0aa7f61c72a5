// Package llm provides the generative-model client used by the parser agent.
//
// The boundary is deliberately narrow: Complete takes a prompt and returns
// the model's raw text, or an empty string when the call fails after retries.
// Callers treat an empty completion as "no usable content" rather than as a
// distinct error channel. Provider access goes through the Provider
// interface; the default implementation wraps the gollm library.
package llm

import (
	"context"
	"log/slog"
)

// Client routes completions to a Provider, applying the retry policy and
// downgrading terminal failures to an empty result.
type Client struct {
	provider Provider
	retry    RetryPolicy
	log      *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithRetryPolicy overrides the default retry policy.
func WithRetryPolicy(p RetryPolicy) ClientOption {
	return func(c *Client) {
		c.retry = p
	}
}

// WithLogger sets the logger used for failure reporting.
func WithLogger(log *slog.Logger) ClientOption {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a Client around the given provider.
func NewClient(provider Provider, opts ...ClientOption) *Client {
	c := &Client{
		provider: provider,
		retry:    DefaultRetryPolicy(),
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Complete sends a blocking completion request. Retryable provider errors
// are retried per the policy; any terminal failure yields "".
func (c *Client) Complete(ctx context.Context, prompt string) string {
	text, err := Retry(ctx, c.retry, func(ctx context.Context) (string, error) {
		return c.provider.Generate(ctx, prompt)
	})
	if err != nil {
		c.log.Warn("completion failed",
			"provider", c.provider.Name(),
			"error", err)
		return ""
	}
	return text
}
