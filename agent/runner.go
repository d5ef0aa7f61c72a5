package agent

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/mahakitis/ai-agent-challenge/tabular"
)

// ParserRunner executes a persisted parser against an input document and
// returns the table it produced. Implementations decide where and how the
// untrusted generated code runs; the state machine only ever sees a table or
// an error, so a sandboxed executor can be swapped in without touching it.
type ParserRunner interface {
	Run(ctx context.Context, parserPath, pdfPath string) (*tabular.Table, error)
}

// GoRunner executes the parser file with "go run" in a child process and
// parses its stdout as CSV. Every test cycle gets a fresh process, so edits
// to the parser file are always picked up. There is no timeout: a generated
// parser that never terminates blocks the run until ctx is cancelled.
type GoRunner struct{}

func (GoRunner) Run(ctx context.Context, parserPath, pdfPath string) (*tabular.Table, error) {
	cmd := exec.CommandContext(ctx, "go", "run", parserPath, pdfPath)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("run parser: %w: %s", err, msg)
		}
		return nil, fmt.Errorf("run parser: %w", err)
	}

	tbl, err := tabular.Parse(&stdout)
	if err != nil {
		return nil, fmt.Errorf("parse parser output: %w", err)
	}
	return tbl, nil
}
