package llm

import (
	"context"
	"fmt"

	"github.com/teilomillet/gollm"
)

// Provider is a single LLM backend capable of text completion.
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// GollmProvider implements Provider on top of a gollm.LLM instance.
type GollmProvider struct {
	provider string
	llm      gollm.LLM
}

// GollmOption configures a GollmProvider.
type GollmOption func(*gollmConfig)

type gollmConfig struct {
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
}

// WithAPIKey sets the API key. If empty, gollm falls back to its
// provider-specific environment variable.
func WithAPIKey(key string) GollmOption {
	return func(c *gollmConfig) { c.apiKey = key }
}

// WithModel sets the model identifier.
func WithModel(model string) GollmOption {
	return func(c *gollmConfig) { c.model = model }
}

// WithMaxTokens sets the completion token limit.
func WithMaxTokens(n int) GollmOption {
	return func(c *gollmConfig) { c.maxTokens = n }
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) GollmOption {
	return func(c *gollmConfig) { c.temperature = t }
}

// NewGollmProvider creates a provider for the given backend name
// (e.g. "groq", "openai", "anthropic").
func NewGollmProvider(provider string, opts ...GollmOption) (*GollmProvider, error) {
	cfg := &gollmConfig{
		maxTokens:   8192,
		temperature: 0.2,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	model := cfg.model
	if model == "" {
		switch provider {
		case "groq":
			model = "llama-3.3-70b-versatile"
		case "anthropic":
			model = "claude-sonnet-4-5-20250514"
		default:
			model = "gpt-4o-mini"
		}
	}

	gollmOpts := []gollm.ConfigOption{
		gollm.SetProvider(provider),
		gollm.SetModel(model),
		gollm.SetMaxTokens(cfg.maxTokens),
		gollm.SetTemperature(cfg.temperature),
		gollm.SetMaxRetries(0), // retries are handled by the Client
		gollm.SetLogLevel(gollm.LogLevelWarn),
	}
	if cfg.apiKey != "" {
		gollmOpts = append(gollmOpts, gollm.SetAPIKey(cfg.apiKey))
	}

	inner, err := gollm.NewLLM(gollmOpts...)
	if err != nil {
		return nil, &ConfigurationError{ClientError: ClientError{
			Message: fmt.Sprintf("create %s provider", provider),
			Cause:   err,
		}}
	}

	return &GollmProvider{provider: provider, llm: inner}, nil
}

// Name returns the backend identifier.
func (p *GollmProvider) Name() string {
	return p.provider
}

// Generate sends a blocking completion request.
func (p *GollmProvider) Generate(ctx context.Context, prompt string) (string, error) {
	text, err := p.llm.Generate(ctx, gollm.NewPrompt(prompt))
	if err != nil {
		return "", Classify(p.provider, err)
	}
	return text, nil
}
