package future

import (
	"context"
	"errors"

	"github.com/ib-77/attempt/pkg/attempt"
	"github.com/ib-77/attempt/pkg/attempt/solo"
)

// ErrUnsettled is returned by Await when the upstream channel closes
// without ever delivering an attempt.
var ErrUnsettled = errors.New("future: attempt never settled")

// Go runs fn on its own goroutine inside the fault boundary and returns a
// one-shot channel that delivers the resulting attempt and closes. When ctx
// is cancelled before delivery the channel closes without settling.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) <-chan attempt.Attempt[T] {
	out := make(chan attempt.Attempt[T])

	go func() {
		defer close(out)

		if ctx.Err() != nil {
			return
		}

		a := attempt.Of(func() (T, error) {
			return fn(ctx)
		})

		select {
		case out <- a:
		case <-ctx.Done():
		}
	}()

	return out
}

// GoSwitch is Go for functions that already produce an attempt.
func GoSwitch[T any](ctx context.Context, fn func(ctx context.Context) attempt.Attempt[T]) <-chan attempt.Attempt[T] {
	out := make(chan attempt.Attempt[T])

	go func() {
		defer close(out)

		if ctx.Err() != nil {
			return
		}

		a := attempt.SwitchOf(func() attempt.Attempt[T] {
			return fn(ctx)
		})

		select {
		case out <- a:
		case <-ctx.Done():
		}
	}()

	return out
}

// Settled returns an already-settled future.
func Settled[T any](a attempt.Attempt[T]) <-chan attempt.Attempt[T] {
	out := make(chan attempt.Attempt[T], 1)
	out <- a
	close(out)
	return out
}

// Then registers an attempt-returning continuation on in. The continuation
// starts only after the upstream attempt settles; failures short-circuit
// without invoking it.
func Then[In, Out any](ctx context.Context, in <-chan attempt.Attempt[In],
	onSuccess func(ctx context.Context, r In) attempt.Attempt[Out]) <-chan attempt.Attempt[Out] {

	return continuation(ctx, in, func(a attempt.Attempt[In]) attempt.Attempt[Out] {
		return solo.Switch(ctx, a, onSuccess)
	})
}

// Map registers a pure transformation continuation on in.
func Map[In, Out any](ctx context.Context, in <-chan attempt.Attempt[In],
	onSuccess func(ctx context.Context, r In) Out) <-chan attempt.Attempt[Out] {

	return continuation(ctx, in, func(a attempt.Attempt[In]) attempt.Attempt[Out] {
		return solo.Map(ctx, a, onSuccess)
	})
}

// Try registers an error-returning continuation on in.
func Try[In, Out any](ctx context.Context, in <-chan attempt.Attempt[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) <-chan attempt.Attempt[Out] {

	return continuation(ctx, in, func(a attempt.Attempt[In]) attempt.Attempt[Out] {
		return solo.Try(ctx, a, onTryExecute)
	})
}

// Tee registers a side effect that observes the settled attempt without
// changing it.
func Tee[T any](ctx context.Context, in <-chan attempt.Attempt[T],
	sideEffect func(ctx context.Context, r attempt.Attempt[T])) <-chan attempt.Attempt[T] {

	return continuation(ctx, in, func(a attempt.Attempt[T]) attempt.Attempt[T] {
		sideEffect(ctx, a)
		return a
	})
}

// Await blocks until the future settles. A cancelled context or a channel
// that closes without settling yields a failed attempt.
func Await[T any](ctx context.Context, in <-chan attempt.Attempt[T]) attempt.Attempt[T] {
	select {
	case a, ok := <-in:
		if !ok {
			return attempt.Fail[T](unsettledErr(ctx))
		}
		return a
	case <-ctx.Done():
		return attempt.Fail[T](ctx.Err())
	}
}

func continuation[In, Out any](ctx context.Context, in <-chan attempt.Attempt[In],
	apply func(a attempt.Attempt[In]) attempt.Attempt[Out]) <-chan attempt.Attempt[Out] {

	out := make(chan attempt.Attempt[Out])

	go func() {
		defer close(out)

		select {
		case a, ok := <-in:
			if !ok {
				return
			}

			next := apply(a)

			select {
			case out <- next:
			case <-ctx.Done():
			}
		case <-ctx.Done():
		}
	}()

	return out
}

func unsettledErr(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return ErrUnsettled
}
