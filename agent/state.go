// Package agent synthesizes bank-statement parsers with a bounded
// generate-test-repair loop.
//
// One run drives an explicit state machine: plan selects the next action,
// analyze/generate/correct each make one generative call, test executes the
// persisted parser and compares its output against the reference table, and
// reflect produces a terminal postmortem once the attempt budget is spent.
// All run state lives in a single RunState value; steps receive it by value
// and return the successor, so no step ever aliases another's state.
package agent

import "github.com/google/uuid"

// Action is a planner decision.
type Action string

const (
	ActionAnalyze  Action = "analyze"
	ActionGenerate Action = "generate"
	ActionCorrect  Action = "correct"
)

// maxAttempts is the test-cycle budget before a run escalates to reflection.
const maxAttempts = 3

// Plan is the planner's most recent decision. It is recomputed fresh on
// every visit to the planner and carries no memory of prior plans.
type Plan struct {
	Action    Action
	Rationale string
}

// RunState is the single record threaded through every step of a run.
type RunState struct {
	RunID        string
	Target       string
	PDFPath      string
	CSVPath      string
	Analysis     string // free-text structural analysis, produced at most once
	CurrentCode  string // most recently generated or corrected parser source
	ErrorMessage string // last failure diagnostic; empty means no error
	Attempt      int    // completed test cycles + 1
	MaxAttempts  int
	Success      bool
	Plan         Plan
	Reflection   string // populated only on terminal failure
}

func newRunState(target, pdfPath, csvPath string) RunState {
	return RunState{
		RunID:       uuid.NewString(),
		Target:      target,
		PDFPath:     pdfPath,
		CSVPath:     csvPath,
		Attempt:     1,
		MaxAttempts: maxAttempts,
	}
}
