package agent

import (
	"context"
	"os"
)

// runPhase identifies one state of the run's state machine.
type runPhase string

const (
	phasePlan     runPhase = "plan"
	phaseAnalyze  runPhase = "analyze"
	phaseGenerate runPhase = "generate"
	phaseCorrect  runPhase = "correct"
	phaseTest     runPhase = "test"
	phaseReflect  runPhase = "reflect"
	phaseSuccess  runPhase = "success"
	phaseFailure  runPhase = "failure"
)

// Run drives one synthesis run for target to a terminal state and reports
// whether the generated parser matched the reference exactly.
//
// The input document and reference table must both exist before the state
// machine starts; if either is missing the run fails immediately. Any panic
// escaping a step is converted into a failed run rather than crashing the
// host process.
func (a *Agent) Run(ctx context.Context, target string) (ok bool) {
	log := a.log.With("target", target)
	defer func() {
		if r := recover(); r != nil {
			log.Error("run aborted", "panic", r)
			ok = false
		}
	}()

	pdfPath := a.layout.PDFPath(target)
	csvPath := a.layout.CSVPath(target)
	if !fileExists(pdfPath) || !fileExists(csvPath) {
		log.Error("missing input files", "pdf", pdfPath, "csv", csvPath)
		return false
	}

	s := newRunState(target, pdfPath, csvPath)
	log = log.With("run_id", s.RunID)
	log.Info("run started", "max_attempts", s.MaxAttempts)

	phase := phasePlan
	for {
		switch phase {
		case phasePlan:
			s.Plan = NextPlan(s)
			log.Info("plan", "attempt", s.Attempt, "action", s.Plan.Action, "rationale", s.Plan.Rationale)
			switch s.Plan.Action {
			case ActionAnalyze:
				phase = phaseAnalyze
			case ActionCorrect:
				phase = phaseCorrect
			default:
				phase = phaseGenerate
			}

		case phaseAnalyze:
			s = a.analyze(ctx, s)
			phase = phaseGenerate

		case phaseGenerate:
			s = a.generate(ctx, s)
			phase = phaseTest

		case phaseCorrect:
			s = a.correct(ctx, s)
			phase = phaseTest

		case phaseTest:
			s = a.test(ctx, s)
			switch {
			case s.Success:
				phase = phaseSuccess
			case s.Attempt > s.MaxAttempts:
				phase = phaseReflect
			default:
				phase = phasePlan
			}

		case phaseReflect:
			s = a.reflect(ctx, s)
			phase = phaseFailure

		case phaseSuccess:
			log.Info("run succeeded", "attempts", s.Attempt-1)
			return true

		case phaseFailure:
			log.Error("run failed", "attempts", s.Attempt-1, "error", s.ErrorMessage)
			if s.Reflection != "" {
				log.Info("reflection", "text", s.Reflection)
			}
			return false
		}
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
