package workflow

import (
	"fmt"

	"deliverydesk/internal/pkg/errs"
)

// State is the mode of the workflow.
type State int

const (
	// Unknown catches uninitialized State values.
	Unknown State = iota

	// Idle means the draft, if any, will become a new delivery.
	Idle

	// Editing means the draft will be appended to an existing delivery.
	Editing
)

func getStateStrings() map[State]string {
	return map[State]string{
		Unknown: "Unknown",
		Idle:    "Idle",
		Editing: "Editing",
	}
}

// String returns the state name, "Unknown" for invalid values.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate rejects Unknown and out-of-range values.
func (s State) Validate() error {
	if s != Idle && s != Editing {
		return errs.NewValueIsInvalidErrorWithCause("state is invalid", fmt.Errorf("%d is not a valid state", s))
	}
	return nil
}

// StartEdit returns the state after opening a delivery for editing. Opening
// another delivery while already editing is allowed.
func (s State) StartEdit() (State, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return Editing, nil
}

// Finish returns the state after a commit or cancellation.
func (s State) Finish() (State, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return Idle, nil
}
