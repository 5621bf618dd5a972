package attempt

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Attempt holds either a success payload or a failure payload, never both.
// The discriminant is explicit, so a success whose payload is the zero value
// stays distinguishable from a failure.
type Attempt[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
}

// wrapped is the type-erased view of an Attempt of any instantiation,
// used by constructors to detect accidental nesting.
type wrapped interface {
	IsSuccess() bool
	Err() error
	attemptMarker()
}

func (a Attempt[T]) attemptMarker() {}

// Value wraps v as a successful attempt. Wrapping a failed attempt as a
// success payload is a contract violation; wrapping a successful attempt
// nests it, and Flatten undoes the nesting.
func Value[T any](v T) Attempt[T] {
	if inner, ok := any(v).(wrapped); ok && !inner.IsSuccess() {
		violation("cannot wrap a failed attempt as a value: %v", inner.Err())
	}
	return Attempt[T]{
		value:     v,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail wraps err as a failed attempt.
func Fail[T any](err error) Attempt[T] {
	return Attempt[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom re-types a failed attempt, keeping its identity and failure
// payload. Using a successful attempt as a failure source is a contract
// violation.
func FailFrom[In, Out any](from Attempt[In]) Attempt[Out] {
	if from.isSuccess {
		violation("cannot use a successful attempt as a failure: %v", from.value)
	}
	return Attempt[Out]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Flatten unwraps one level of nesting: a successful outer attempt yields
// the inner attempt unchanged, a failed outer attempt stays a failure.
func Flatten[T any](a Attempt[Attempt[T]]) Attempt[T] {
	if a.isSuccess {
		return a.value
	}
	return FailFrom[Attempt[T], T](a)
}

// Of invokes fn inside the fault boundary: a returned error or a panic
// inside fn becomes a failed attempt rather than propagating. Contract
// violations are re-raised, never captured.
func Of[T any](fn func() (T, error)) (a Attempt[T]) {
	defer recoverInto(&a)
	v, err := fn()
	if err != nil {
		return Fail[T](err)
	}
	return Value(v)
}

// SwitchOf is the Of boundary for functions that already produce an attempt.
func SwitchOf[T any](fn func() Attempt[T]) (a Attempt[T]) {
	defer recoverInto(&a)
	return fn()
}

// Wrap defers attempt creation to call time.
func Wrap[T any](fn func() (T, error)) func() Attempt[T] {
	return func() Attempt[T] {
		return Of(fn)
	}
}

func Wrap1[A, T any](fn func(A) (T, error)) func(A) Attempt[T] {
	return func(arg A) Attempt[T] {
		return Of(func() (T, error) { return fn(arg) })
	}
}

func Wrap2[A, B, T any](fn func(A, B) (T, error)) func(A, B) Attempt[T] {
	return func(arg1 A, arg2 B) Attempt[T] {
		return Of(func() (T, error) { return fn(arg1, arg2) })
	}
}

// Value returns the success payload, or the zero value on failure.
func (a Attempt[T]) Value() T {
	return a.value
}

// Err returns the failure payload, or nil on success.
func (a Attempt[T]) Err() error {
	return a.err
}

// MustGet returns the success payload and panics on a failed attempt.
func (a Attempt[T]) MustGet() T {
	if !a.isSuccess {
		violation("getting value of failed attempt: %v", a.err)
	}
	return a.value
}

// MustErr returns the failure payload and panics on a successful attempt.
func (a Attempt[T]) MustErr() error {
	if a.isSuccess {
		violation("getting error of successful attempt: %v", a.value)
	}
	return a.err
}

// OrElse returns the success payload or def. Never fails.
func (a Attempt[T]) OrElse(def T) T {
	if a.isSuccess {
		return a.value
	}
	return def
}

// OrPanic returns the success payload or panics with err.
func (a Attempt[T]) OrPanic(err error) T {
	if a.isSuccess {
		return a.value
	}
	panic(err)
}

// OrPanicMsg returns the success payload or panics with a generic error
// built from msg.
func (a Attempt[T]) OrPanicMsg(msg string) T {
	if a.isSuccess {
		return a.value
	}
	panic(errors.New(msg))
}

// OrPanicWith returns the success payload or panics with the error built by
// f from the failure payload. A nil result falls back to the payload itself.
func (a Attempt[T]) OrPanicWith(f func(err error) error) T {
	if a.isSuccess {
		return a.value
	}
	err := f(a.err)
	if err == nil {
		err = a.err
	}
	panic(err)
}

func (a Attempt[T]) IsSuccess() bool {
	return a.isSuccess
}

func (a Attempt[T]) IsFailure() bool {
	return !a.isSuccess
}

// IsEmpty reports whether a is the zero Attempt, produced by no constructor.
func (a Attempt[T]) IsEmpty() bool {
	return !a.isSuccess && a.err == nil
}

// IfSuccess invokes fn with the success payload only on success; the return
// value of fn is discarded and a flows through unchanged.
func (a Attempt[T]) IfSuccess(fn func(v T)) Attempt[T] {
	if a.isSuccess {
		fn(a.value)
	}
	return a
}

// IfFailure invokes fn with the failure payload only on failure.
func (a Attempt[T]) IfFailure(fn func(err error)) Attempt[T] {
	if !a.isSuccess {
		fn(a.err)
	}
	return a
}

// IfElse invokes exactly one of the two observers.
func (a Attempt[T]) IfElse(onSuccess func(v T), onFailure func(err error)) Attempt[T] {
	if a.isSuccess {
		onSuccess(a.value)
	} else {
		onFailure(a.err)
	}
	return a
}

func (a Attempt[T]) CreatedAt() time.Time {
	return a.createdAt
}

func (a Attempt[T]) Id() uuid.UUID {
	return a.id
}
