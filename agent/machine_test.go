package agent

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahakitis/ai-agent-challenge/tabular"
)

// countingCompleter tracks prompts by step so the end-to-end tests can
// verify which generative calls happened.
type countingCompleter struct {
	analyze  atomic.Int64
	generate atomic.Int64
	correct  atomic.Int64
	reflect  atomic.Int64
	other    atomic.Int64
	response string
}

func (c *countingCompleter) Complete(_ context.Context, prompt string) string {
	switch {
	case strings.Contains(prompt, "Analyze the bank statement PDF"):
		c.analyze.Add(1)
	case strings.Contains(prompt, "Create a robust Go program"):
		c.generate.Add(1)
	case strings.Contains(prompt, "The parser failed"):
		c.correct.Add(1)
	case strings.Contains(prompt, "Reflect on the parser generation process"):
		c.reflect.Add(1)
	default:
		c.other.Add(1)
	}
	return c.response
}

func (c *countingCompleter) total() int64 {
	return c.analyze.Load() + c.generate.Load() + c.correct.Load() + c.reflect.Load() + c.other.Load()
}

func TestRunSucceedsAfterOneCycle(t *testing.T) {
	layout := writeTarget(t, "icici", refCSV)
	completer := &countingCompleter{response: "```go\npackage main\n```"}

	var runnerCalls atomic.Int64
	runner := runnerFunc(func(_ context.Context, parserPath, pdfPath string) (*tabular.Table, error) {
		runnerCalls.Add(1)
		assert.Equal(t, layout.ParserPath("icici"), parserPath)
		assert.Equal(t, layout.PDFPath("icici"), pdfPath)
		return tabular.Load(layout.CSVPath("icici"))
	})

	a := newTestAgent(completer, runner, layout)
	ok := a.Run(context.Background(), "icici")

	assert.True(t, ok)
	assert.EqualValues(t, 1, runnerCalls.Load(), "exactly one test cycle")
	assert.EqualValues(t, 1, completer.analyze.Load())
	assert.EqualValues(t, 1, completer.generate.Load())
	assert.EqualValues(t, 0, completer.correct.Load())
	assert.EqualValues(t, 0, completer.reflect.Load())
}

func TestRunFailsFastOnMissingInputs(t *testing.T) {
	layout := Layout{DataDir: t.TempDir(), ParserDir: t.TempDir()}
	completer := &countingCompleter{response: "anything"}
	a := newTestAgent(completer, nil, layout)

	ok := a.Run(context.Background(), "ghost")

	assert.False(t, ok)
	assert.EqualValues(t, 0, completer.total(), "no generative calls for a missing target")
}

func TestRunExhaustsBudgetAndReflectsOnce(t *testing.T) {
	layout := writeTarget(t, "icici", refCSV)
	completer := &countingCompleter{response: "```go\npackage main\n```"}

	var runnerCalls atomic.Int64
	runner := runnerFunc(func(_ context.Context, _, _ string) (*tabular.Table, error) {
		runnerCalls.Add(1)
		return nil, errors.New("panic: index out of range")
	})

	a := newTestAgent(completer, runner, layout)
	ok := a.Run(context.Background(), "icici")

	assert.False(t, ok)
	assert.EqualValues(t, 3, runnerCalls.Load(), "budget allows exactly three test cycles")
	assert.EqualValues(t, 1, completer.reflect.Load(), "reflection happens exactly once")
	assert.EqualValues(t, 1, completer.analyze.Load(), "analysis is never regenerated")
	assert.EqualValues(t, 1, completer.generate.Load())
	assert.EqualValues(t, 2, completer.correct.Load(), "cycles two and three correct")
}

func TestRunRecoversFromPanickingRunner(t *testing.T) {
	layout := writeTarget(t, "icici", refCSV)
	completer := &countingCompleter{response: "```go\npackage main\n```"}
	runner := runnerFunc(func(_ context.Context, _, _ string) (*tabular.Table, error) {
		panic("runner blew up")
	})

	a := newTestAgent(completer, runner, layout)

	assert.NotPanics(t, func() {
		assert.False(t, a.Run(context.Background(), "icici"))
	})
}

func TestRunTreatsEmptyCompletionAsFailure(t *testing.T) {
	// A dead model produces empty completions; the run burns its budget and
	// fails instead of crashing.
	layout := writeTarget(t, "icici", refCSV)
	completer := &countingCompleter{response: ""}
	runner := runnerFunc(func(_ context.Context, parserPath, _ string) (*tabular.Table, error) {
		code, err := os.ReadFile(parserPath)
		require.NoError(t, err)
		require.Empty(t, string(code))
		return nil, errors.New("no buildable Go source")
	})

	a := newTestAgent(completer, runner, layout)
	ok := a.Run(context.Background(), "icici")

	assert.False(t, ok)
	assert.EqualValues(t, 1, completer.reflect.Load())
}

func TestRunRecordsPersistedParserEachCycle(t *testing.T) {
	layout := writeTarget(t, "icici", refCSV)

	cycle := 0
	completer := completerFunc(func(_ context.Context, prompt string) string {
		if strings.Contains(prompt, "The parser failed") {
			cycle++
			return "```go\n// revision " + string(rune('0'+cycle)) + "\n```"
		}
		return "```go\n// revision 0\n```"
	})
	runner := runnerFunc(func(_ context.Context, parserPath, _ string) (*tabular.Table, error) {
		code, err := os.ReadFile(parserPath)
		require.NoError(t, err)
		// The file on disk always holds the latest revision.
		require.Contains(t, string(code), "revision")
		return nil, errors.New("still wrong")
	})

	a := newTestAgent(completer, runner, layout)
	assert.False(t, a.Run(context.Background(), "icici"))

	final, err := os.ReadFile(layout.ParserPath("icici"))
	require.NoError(t, err)
	assert.Equal(t, "// revision 2", string(final))
}
