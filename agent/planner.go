package agent

// NextPlan selects the next action from accumulated run state. Pure function,
// rules evaluated in order, first match wins:
//
//  1. first attempt with no analysis -> analyze
//  2. live error with existing code  -> correct
//  3. analysis but no code           -> generate
//  4. anything else                  -> generate
//
// Once an analysis exists it is never regenerated, even when every later
// correction cycle fails. A wrong analysis therefore persists for the whole
// run; this is a fixed policy choice, kept deliberately.
func NextPlan(s RunState) Plan {
	switch {
	case s.Attempt == 1 && s.Analysis == "":
		return Plan{Action: ActionAnalyze, Rationale: "first attempt, no analysis yet"}
	case s.ErrorMessage != "" && s.CurrentCode != "":
		return Plan{Action: ActionCorrect, Rationale: "last attempt failed, correcting existing code"}
	case s.Analysis != "" && s.CurrentCode == "":
		return Plan{Action: ActionGenerate, Rationale: "analysis available, generating parser"}
	default:
		return Plan{Action: ActionGenerate, Rationale: "nothing to correct, generating parser"}
	}
}
