package trace

import (
	"errors"
	"fmt"
)

// ErrInvalidInput indicates an input sequence that cannot be sorted into a
// meaningful trace.
var ErrInvalidInput = errors.New("trace: invalid input")

// InputError wraps ErrInvalidInput with the offending detail.
type InputError struct {
	Length int
	// Index of the offending value, or -1 when the length itself is the problem.
	Index  int
	Reason string
}

func (e *InputError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%v: value %d: %s", ErrInvalidInput, e.Index, e.Reason)
	}
	return fmt.Sprintf("%v: length %d: %s", ErrInvalidInput, e.Length, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// VerifyError reports the first step of a trace that breaks an invariant.
type VerifyError struct {
	Step   int
	Reason string
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf("trace: step %d: %s", e.Step, e.Reason)
}
