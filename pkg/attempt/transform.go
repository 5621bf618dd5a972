package attempt

// Map transforms the success payload through the Of fault boundary. A failed
// attempt short-circuits without invoking fn.
func Map[In, Out any](a Attempt[In], fn func(v In) Out) Attempt[Out] {
	if a.IsFailure() {
		return FailFrom[In, Out](a)
	}
	return Of(func() (Out, error) {
		return fn(a.value), nil
	})
}

// Try transforms through a function that reports failure as an error.
func Try[In, Out any](a Attempt[In], fn func(v In) (Out, error)) Attempt[Out] {
	if a.IsFailure() {
		return FailFrom[In, Out](a)
	}
	return Of(func() (Out, error) {
		return fn(a.value)
	})
}

// Switch transforms through a function that already produces an attempt,
// avoiding any nesting.
func Switch[In, Out any](a Attempt[In], fn func(v In) Attempt[Out]) Attempt[Out] {
	if a.IsFailure() {
		return FailFrom[In, Out](a)
	}
	return SwitchOf(func() Attempt[Out] {
		return fn(a.value)
	})
}

// Map is the same-type variant of the package-level Map.
func (a Attempt[T]) Map(fn func(v T) T) Attempt[T] {
	return Map(a, fn)
}

// Assert keeps a successful attempt whose payload satisfies pred unchanged.
// A false predicate builds a failure from onFail(value); a failed attempt
// short-circuits without invoking either function.
func (a Attempt[T]) Assert(pred func(v T) bool, onFail func(v T) error) Attempt[T] {
	if !a.isSuccess {
		return a
	}
	if pred(a.value) {
		return a
	}
	err := onFail(a.value)
	if err == nil {
		err = ErrAssertFailed
	}
	return Fail[T](err)
}
