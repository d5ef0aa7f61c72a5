package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mahakitis/ai-agent-challenge/tabular"
)

// Completer is the generative boundary: given a prompt it returns the
// model's raw text, or "" when no usable content could be obtained.
type Completer interface {
	Complete(ctx context.Context, prompt string) string
}

// Agent drives parser synthesis runs.
type Agent struct {
	completer Completer
	runner    ParserRunner
	layout    Layout
	log       *slog.Logger
}

// Option configures an Agent.
type Option func(*Agent)

// WithLayout overrides the filesystem layout.
func WithLayout(l Layout) Option {
	return func(a *Agent) { a.layout = l }
}

// WithRunner overrides the parser executor.
func WithRunner(r ParserRunner) Option {
	return func(a *Agent) { a.runner = r }
}

// WithLogger sets the agent's logger.
func WithLogger(log *slog.Logger) Option {
	return func(a *Agent) { a.log = log }
}

// New creates an Agent around the given completer. By default parsers are
// executed with GoRunner under the repository's standard layout.
func New(completer Completer, opts ...Option) *Agent {
	a := &Agent{
		completer: completer,
		runner:    GoRunner{},
		layout:    DefaultLayout(),
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// analyze summarizes the reference table and asks the model for a free-text
// structural analysis of the document. The completion is stored verbatim.
// Load failures are folded into the state; the run continues and the
// following test step surfaces the problem through the normal retry path.
func (a *Agent) analyze(ctx context.Context, s RunState) RunState {
	ref, err := tabular.Load(s.CSVPath)
	if err != nil {
		s.ErrorMessage = fmt.Sprintf("analysis failed: %v", err)
		a.log.Warn("analyze step failed", "error", err)
		return s
	}
	s.Analysis = a.completer.Complete(ctx, analyzePrompt(ref.Summary(), s.PDFPath))
	a.log.Info("analysis complete", "chars", len(s.Analysis))
	return s
}

// generate asks the model for fresh parser code and persists the extracted
// payload. On failure the error is recorded and CurrentCode keeps its prior
// value.
func (a *Agent) generate(ctx context.Context, s RunState) RunState {
	ref, err := tabular.Load(s.CSVPath)
	if err != nil {
		s.ErrorMessage = fmt.Sprintf("generation failed: %v", err)
		a.log.Warn("generate step failed", "error", err)
		return s
	}
	completion := a.completer.Complete(ctx, generatePrompt(s.Analysis, s.Target, ref.Columns))
	code := ExtractCode(completion)
	path, err := a.layout.SaveParser(s.Target, code)
	if err != nil {
		s.ErrorMessage = fmt.Sprintf("generation failed: %v", err)
		a.log.Warn("generate step failed", "error", err)
		return s
	}
	s.CurrentCode = code
	a.log.Info("parser generated", "path", path, "chars", len(code))
	return s
}

// correct asks the model to repair the current code given the last error,
// persisting the result over the prior parser file.
func (a *Agent) correct(ctx context.Context, s RunState) RunState {
	completion := a.completer.Complete(ctx, correctPrompt(s.CurrentCode, s.ErrorMessage))
	code := ExtractCode(completion)
	path, err := a.layout.SaveParser(s.Target, code)
	if err != nil {
		s.ErrorMessage = fmt.Sprintf("correction failed: %v", err)
		a.log.Warn("correct step failed", "error", err)
		return s
	}
	s.CurrentCode = code
	a.log.Info("parser corrected", "path", path, "chars", len(code))
	return s
}

// test executes the persisted parser and compares its output against the
// reference table. An exact match sets Success and clears the error; a
// mismatch records the structured diagnostic; any execution failure records
// a generic message instead. The attempt counter increments as the last
// action, unconditionally.
func (a *Agent) test(ctx context.Context, s RunState) RunState {
	result, err := a.runner.Run(ctx, a.layout.ParserPath(s.Target), s.PDFPath)
	if err == nil {
		var expected *tabular.Table
		expected, err = tabular.Load(s.CSVPath)
		if err == nil {
			diff := tabular.Compare(result, expected)
			if diff.Match {
				s.Success = true
				s.ErrorMessage = ""
				a.log.Info("test passed", "attempt", s.Attempt)
			} else {
				s.Success = false
				s.ErrorMessage = diff.Report
				a.log.Info("test failed", "attempt", s.Attempt)
			}
		}
	}
	if err != nil {
		s.Success = false
		s.ErrorMessage = fmt.Sprintf("test execution failed: %v", err)
		a.log.Info("test crashed", "attempt", s.Attempt, "error", err)
	}
	s.Attempt++
	return s
}

// reflect produces the terminal postmortem after the budget is exhausted.
func (a *Agent) reflect(ctx context.Context, s RunState) RunState {
	s.Reflection = a.completer.Complete(ctx,
		reflectPrompt(s.Target, s.Attempt-1, s.ErrorMessage, s.CurrentCode))
	return s
}
