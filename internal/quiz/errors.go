package quiz

import (
	"errors"
	"fmt"
)

// ErrIllegalState matches every IllegalStateError via errors.Is.
var ErrIllegalState = errors.New("illegal quiz state")

// ErrEmptyBank is returned by Start when the engine holds no questions.
var ErrEmptyBank = errors.New("question bank has no questions")

// ValidationError is a recoverable rejection of user input. The engine
// state is unchanged; the user adjusts the selection and retries.
type ValidationError struct {
	Op       string
	Message  string // user-facing text
	Required int
	Selected int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// IllegalStateError reports an operation invoked in a phase where it is
// not valid. The operation is refused without touching state.
type IllegalStateError struct {
	Op     string
	Phase  Phase
	Reason string
}

func (e *IllegalStateError) Error() string {
	return fmt.Sprintf("%s not allowed while %s: %s", e.Op, e.Phase, e.Reason)
}

func (e *IllegalStateError) Is(target error) bool {
	return target == ErrIllegalState
}

func selectionCountMessage(required int) string {
	if required == 1 {
		return "Please select one option."
	}
	return fmt.Sprintf("Please select exactly %d options.", required)
}
