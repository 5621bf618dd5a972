package custom

import (
	"context"
	"errors"

	"github.com/ib-77/attempt/pkg/attempt"
	"github.com/ib-77/attempt/pkg/attempt/core"
)

var ErrCancelled = errors.New("operation cancelled")

func CancelRemainingAttempts[In, Out any](ctx context.Context,
	inputCh <-chan attempt.Attempt[In], outCh chan<- attempt.Attempt[Out]) {

	required := core.IsProcessRemainingEnabled(ctx, true)

	if required {
		for in := range inputCh {

			if in.IsFailure() {
				outCh <- attempt.FailFrom[In, Out](in)
			} else {
				outCh <- attempt.Fail[Out](ErrCancelled)
			}
		}
	}
}

func CancelRemainingAttempt[In, Out any](ctx context.Context, in attempt.Attempt[In],
	outCh chan<- attempt.Attempt[Out]) {

	required := core.IsProcessRemainingEnabled(ctx, true)

	if required {

		if in.IsFailure() {
			outCh <- attempt.FailFrom[In, Out](in)
		} else {
			outCh <- attempt.Fail[Out](ErrCancelled)
		}
	}
}

func CancelRemainingValue[In, Out any](ctx context.Context, in attempt.Attempt[In],
	brokenF func(ctx context.Context, in attempt.Attempt[In]) Out, outCh chan<- Out) {

	required := core.IsProcessRemainingEnabled(ctx, true)

	if required {
		outCh <- brokenF(ctx, in)
	}
}

func CancelResult[T any](ctx context.Context, out T, outCh chan<- T) {
	required := core.IsProcessRemainingEnabled(ctx, true)

	if required {
		outCh <- out
	}
}

func CancelResults[T any](ctx context.Context, inputCh <-chan T, outCh chan<- T) {
	required := core.IsProcessRemainingEnabled(ctx, true)

	if required {
		for in := range inputCh {
			outCh <- in
		}
	}
}

func CancelRemainingValues[In, Out any](ctx context.Context, inputCh <-chan attempt.Attempt[In],
	brokenF func(ctx context.Context, in attempt.Attempt[In]) Out, outCh chan<- Out) {

	required := core.IsProcessRemainingEnabled(ctx, true)

	if required {
		for in := range inputCh {
			outCh <- brokenF(ctx, in)
		}
	}
}
