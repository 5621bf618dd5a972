package attempt

import (
	"errors"
	"fmt"
)

// ErrAssertFailed is the fallback failure payload when an assertion factory
// returns nil.
var ErrAssertFailed = errors.New("attempt: assertion failed")

// ContractError marks caller misuse, such as reading the wrong side of an
// attempt or wrapping a failed attempt as a value. It is raised immediately
// and is never captured by a fault boundary.
type ContractError struct {
	msg string
}

func (e *ContractError) Error() string {
	return e.msg
}

func violation(format string, args ...any) {
	panic(&ContractError{msg: "attempt: " + fmt.Sprintf(format, args...)})
}

// PanicError carries a non-error value recovered from a panic inside a
// fault boundary.
type PanicError struct {
	value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("attempt: recovered panic: %v", e.value)
}

// Value returns the raw recovered payload.
func (e *PanicError) Value() any {
	return e.value
}

// Recovered normalizes a recovered panic payload: errors pass through
// unchanged, anything else is wrapped in a PanicError.
func Recovered(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &PanicError{value: r}
}

// recoverInto converts a panic into a failed attempt, re-raising contract
// violations so misuse is not silently swallowed.
func recoverInto[T any](a *Attempt[T]) {
	r := recover()
	if r == nil {
		return
	}
	if ce, ok := r.(*ContractError); ok {
		panic(ce)
	}
	*a = Fail[T](Recovered(r))
}
