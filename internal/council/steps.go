package council

import (
	"fmt"
)

// Step is one stage of a deliberation round. A round is terminal once
// it reaches StepDone.
type Step string

const (
	StepCheckBoundary Step = "check_boundary"
	StepDispatch      Step = "dispatch"
	StepRedispatch    Step = "redispatch"
	StepSynthesize    Step = "synthesize"
	StepAudit         Step = "audit"
	StepFilter        Step = "filter"
	StepDone          Step = "done"
)

// allowedTransitions encodes the deliberation sequence. Redispatch is
// reachable only from dispatch and nothing leads back into it, so a
// round can never reword more than once.
var allowedTransitions = map[Step]map[Step]struct{}{
	StepCheckBoundary: {
		StepDispatch: {},
	},
	StepDispatch: {
		StepRedispatch: {},
		StepSynthesize: {},
	},
	StepRedispatch: {
		StepSynthesize: {},
	},
	StepSynthesize: {
		StepAudit: {},
	},
	StepAudit: {
		StepFilter: {},
		StepDone:   {},
	},
	StepFilter: {
		StepDone: {},
	},
	StepDone: {},
}

func ValidateStep(step Step) error {
	if _, ok := allowedTransitions[step]; !ok {
		return fmt.Errorf("invalid deliberation step: %q", step)
	}
	return nil
}

func ValidateTransition(from, to Step) error {
	if err := ValidateStep(from); err != nil {
		return err
	}
	if err := ValidateStep(to); err != nil {
		return err
	}
	if _, ok := allowedTransitions[from][to]; !ok {
		return fmt.Errorf("invalid step transition: %s -> %s", from, to)
	}
	return nil
}

// advance moves the round to the next step, failing on any transition
// the sequence does not allow.
func advance(current *Step, to Step) error {
	if err := ValidateTransition(*current, to); err != nil {
		return err
	}
	*current = to
	return nil
}
