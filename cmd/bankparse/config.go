package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// config is populated from the environment (after .env loading). The API key
// matches the credential variable gollm's groq backend reads.
type config struct {
	Provider  string `env:"AGENT_LLM_PROVIDER" envDefault:"groq"`
	Model     string `env:"AGENT_LLM_MODEL"`
	MaxTokens int    `env:"AGENT_LLM_MAX_TOKENS" envDefault:"8192"`
	APIKey    string `env:"GROQ_API_KEY"`
	DataDir   string `env:"AGENT_DATA_DIR" envDefault:"data"`
	ParserDir string `env:"AGENT_PARSER_DIR" envDefault:"custom_parsers"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
