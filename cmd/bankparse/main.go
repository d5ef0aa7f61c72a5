// Command bankparse synthesizes a bank-statement PDF parser for a target
// bank and reports success through its exit code.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mahakitis/ai-agent-challenge/agent"
	"github.com/mahakitis/ai-agent-challenge/llm"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:           "bankparse --target <bank>",
		Short:         "Synthesize a bank statement parser with a generate-test-repair loop",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadDotEnv(".env"); err != nil {
				return fmt.Errorf("load .env: %w", err)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.APIKey == "" {
				return errors.New("missing GROQ_API_KEY")
			}

			log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))

			provider, err := llm.NewGollmProvider(cfg.Provider,
				llm.WithModel(cfg.Model),
				llm.WithAPIKey(cfg.APIKey),
				llm.WithMaxTokens(cfg.MaxTokens),
			)
			if err != nil {
				return err
			}

			a := agent.New(
				llm.NewClient(provider, llm.WithLogger(log)),
				agent.WithLayout(agent.Layout{DataDir: cfg.DataDir, ParserDir: cfg.ParserDir}),
				agent.WithLogger(log),
			)

			if !a.Run(cmd.Context(), target) {
				return fmt.Errorf("parser synthesis failed for %s", target)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "target bank name")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}
