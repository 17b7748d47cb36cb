package wizard

import (
	"fmt"

	"storecourier/internal/pkg/errs"
)

// Step is the wizard page currently shown.
type Step int

const (
	UnknownStep Step = iota
	TypeSelect
	OriginSelect
	DestinationSelect
	DetailsEntry
)

func (s Step) String() string {
	switch s {
	case TypeSelect:
		return "TypeSelect"
	case OriginSelect:
		return "OriginSelect"
	case DestinationSelect:
		return "DestinationSelect"
	case DetailsEntry:
		return "DetailsEntry"
	default:
		return "Unknown"
	}
}

// Validate accepts steps 1 through 4.
func (s Step) Validate() error {
	if s < TypeSelect || s > DetailsEntry {
		return errs.NewValueIsOutOfRangeError("step", int(s), int(TypeSelect), int(DetailsEntry))
	}
	return nil
}

// Action is something the user does that may move the wizard.
type Action int

const (
	UnknownAction Action = iota
	ActionSetDeliveryType
	ActionSetOriginStore
	ActionSetDestinationStore
	ActionSetStep
	ActionSetDetails
)

func (a Action) String() string {
	switch a {
	case ActionSetDeliveryType:
		return "SetDeliveryType"
	case ActionSetOriginStore:
		return "SetOriginStore"
	case ActionSetDestinationStore:
		return "SetDestinationStore"
	case ActionSetStep:
		return "SetStep"
	case ActionSetDetails:
		return "SetDetails"
	default:
		return "Unknown"
	}
}

// forwardTransitions is the only way currentStep increases.
func forwardTransitions() map[Step]map[Action]Step {
	return map[Step]map[Action]Step{
		TypeSelect:        {ActionSetDeliveryType: OriginSelect},
		OriginSelect:      {ActionSetOriginStore: DestinationSelect},
		DestinationSelect: {ActionSetDestinationStore: DetailsEntry},
	}
}

// Next returns the step reached by a forward action, or a TransitionRejectedError.
func (s Step) Next(a Action) (Step, error) {
	next, ok := forwardTransitions()[s][a]
	if !ok {
		return s, &TransitionRejectedError{From: s, Action: a}
	}
	return next, nil
}

// Back validates explicit back navigation: only a strictly earlier step is reachable.
func (s Step) Back(target Step) (Step, error) {
	if err := target.Validate(); err != nil {
		return s, err
	}
	if target >= s {
		return s, &TransitionRejectedError{From: s, Action: ActionSetStep, To: target}
	}
	return target, nil
}

// TransitionRejectedError reports an action that is not valid for the current step.
type TransitionRejectedError struct {
	From   Step
	Action Action
	To     Step
}

func (e *TransitionRejectedError) Error() string {
	if e.Action == ActionSetStep {
		return fmt.Sprintf("%s: cannot go from %s to %s", ErrTransitionRejected, e.From, e.To)
	}
	return fmt.Sprintf("%s: %s is not allowed at %s", ErrTransitionRejected, e.Action, e.From)
}

func (e *TransitionRejectedError) Unwrap() error {
	return ErrTransitionRejected
}
