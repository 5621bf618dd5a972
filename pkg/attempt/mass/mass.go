package mass

import (
	"context"

	"github.com/ib-77/attempt/pkg/attempt"
	"github.com/ib-77/attempt/pkg/attempt/solo"
)

// lifting runs a solo stage on its own goroutine and relays the produced
// attempt through a second goroutine that honors cancellation. The onCancel
// handler fires when the stage never delivers.
func lifting[In, Out any](ctx context.Context, input attempt.Attempt[In],
	stage func(ctx context.Context, in attempt.Attempt[In]) attempt.Attempt[Out],
	onCancel func(ctx context.Context, in attempt.Attempt[In])) <-chan attempt.Attempt[Out] {

	ch := make(chan attempt.Attempt[Out])
	out := make(chan attempt.Attempt[Out])

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			ch <- stage(ctx, input)
		}
	}()

	go func() {
		defer close(out)

		select {
		case pr, ok := <-ch:
			if ok {
				out <- pr
			} else {
				if onCancel != nil {
					onCancel(ctx, input)
				}
			}
		case <-ctx.Done():
			if onCancel != nil {
				onCancel(ctx, input)
			}
		}
	}()

	return out
}

func Validating[T any](ctx context.Context, input attempt.Attempt[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string),
	onCancel func(ctx context.Context, in attempt.Attempt[T])) <-chan attempt.Attempt[T] {

	return lifting(ctx, input, func(ctx context.Context, in attempt.Attempt[T]) attempt.Attempt[T] {
		return solo.AndValidate[T](ctx, in, validate)
	}, onCancel)
}

func Asserting[T any](ctx context.Context, input attempt.Attempt[T],
	pred func(ctx context.Context, in T) bool,
	onFail func(ctx context.Context, in T) error,
	onCancel func(ctx context.Context, in attempt.Attempt[T])) <-chan attempt.Attempt[T] {

	return lifting(ctx, input, func(ctx context.Context, in attempt.Attempt[T]) attempt.Attempt[T] {
		return solo.Assert[T](ctx, in, pred, onFail)
	}, onCancel)
}

func Switching[In, Out any](ctx context.Context, input attempt.Attempt[In],
	switchOnSuccess func(ctx context.Context, r In) attempt.Attempt[Out],
	onCancel func(ctx context.Context, in attempt.Attempt[In])) <-chan attempt.Attempt[Out] {

	return lifting(ctx, input, func(ctx context.Context, in attempt.Attempt[In]) attempt.Attempt[Out] {
		return solo.Switch[In, Out](ctx, in, switchOnSuccess)
	}, onCancel)
}

func Mapping[In, Out any](ctx context.Context, input attempt.Attempt[In],
	mapOnSuccess func(ctx context.Context, r In) Out,
	onCancel func(ctx context.Context, in attempt.Attempt[In])) <-chan attempt.Attempt[Out] {

	return lifting(ctx, input, func(ctx context.Context, in attempt.Attempt[In]) attempt.Attempt[Out] {
		return solo.Map[In, Out](ctx, in, mapOnSuccess)
	}, onCancel)
}

func DoubleMapping[In, Out any](ctx context.Context, input attempt.Attempt[In],
	mapOnSuccess func(ctx context.Context, r In) Out,
	mapOnError func(ctx context.Context, err error) Out,
	mapOnCancel func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, in attempt.Attempt[In])) <-chan attempt.Attempt[Out] {

	return lifting(ctx, input, func(ctx context.Context, in attempt.Attempt[In]) attempt.Attempt[Out] {
		return solo.DoubleMap[In, Out](ctx, in, mapOnSuccess, mapOnError, mapOnCancel)
	}, onCancel)
}

func Teeing[T any](ctx context.Context, input attempt.Attempt[T],
	sideEffect func(ctx context.Context, r attempt.Attempt[T]),
	onCancel func(ctx context.Context, in attempt.Attempt[T])) <-chan attempt.Attempt[T] {

	return lifting(ctx, input, func(ctx context.Context, in attempt.Attempt[T]) attempt.Attempt[T] {
		return solo.Tee[T](ctx, in, sideEffect)
	}, onCancel)
}

func DoubleTeeing[T any](ctx context.Context, input attempt.Attempt[T],
	sideEffect func(ctx context.Context, r T),
	sideEffectOnError func(ctx context.Context, err error),
	sideEffectOnCancel func(ctx context.Context, err error),
	onCancel func(ctx context.Context, in attempt.Attempt[T])) <-chan attempt.Attempt[T] {

	return lifting(ctx, input, func(ctx context.Context, in attempt.Attempt[T]) attempt.Attempt[T] {
		return solo.DoubleTee[T](ctx, in, sideEffect, sideEffectOnError, sideEffectOnCancel)
	}, onCancel)
}

func Trying[In, Out any](ctx context.Context, input attempt.Attempt[In],
	onTryExecute func(ctx context.Context, r In) (Out, error),
	onCancel func(ctx context.Context, in attempt.Attempt[In])) <-chan attempt.Attempt[Out] {

	return lifting(ctx, input, func(ctx context.Context, in attempt.Attempt[In]) attempt.Attempt[Out] {
		return solo.Try[In, Out](ctx, in, onTryExecute)
	}, onCancel)
}

type FinallyHandlers[In, Out any] struct {
	OnSuccess func(ctx context.Context, r In) Out
	OnError   func(ctx context.Context, err error) Out
	OnCancel  func(ctx context.Context, err error) Out
}

type FinallyCancelHandlers[In, Out any] struct {
	OnBreak       func(ctx context.Context, in attempt.Attempt[In]) Out
	OnCancelValue func(ctx context.Context, in attempt.Attempt[In],
		brokenF func(ctx context.Context, in attempt.Attempt[In]) Out, outCh chan<- Out)
	OnCancelValues func(ctx context.Context, inputCh <-chan attempt.Attempt[In],
		brokenF func(ctx context.Context, in attempt.Attempt[In]) Out, outCh chan<- Out)
	OnCancelResult  func(ctx context.Context, out Out, outCh chan<- Out)
	OnCancelResults func(ctx context.Context, inputCh <-chan Out, outCh chan<- Out)
}

func Finalizing[In, Out any](ctx context.Context, inputCh <-chan attempt.Attempt[In],
	handlers FinallyHandlers[In, Out],
	cancelHandlers FinallyCancelHandlers[In, Out],
	onSuccessResult func(ctx context.Context, out Out)) <-chan Out {

	ch := make(chan Out)
	out := make(chan Out)

	go func() {
		defer close(ch)

		if ctx.Err() != nil {
			if cancelHandlers.OnCancelValues != nil {
				cancelHandlers.OnCancelValues(ctx, inputCh, cancelHandlers.OnBreak, ch)
			}
			return
		}

		for {
			select {
			case <-ctx.Done():
				if cancelHandlers.OnCancelValues != nil {
					cancelHandlers.OnCancelValues(ctx, inputCh, cancelHandlers.OnBreak, ch)
				}
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}

				res := solo.Finally[In, Out](ctx, in, handlers.OnSuccess, handlers.OnError, handlers.OnCancel)
				if ctx.Err() != nil {
					if cancelHandlers.OnCancelValue != nil {
						cancelHandlers.OnCancelValue(ctx, in, cancelHandlers.OnBreak, ch)
					}
					if cancelHandlers.OnCancelValues != nil {
						cancelHandlers.OnCancelValues(ctx, inputCh, cancelHandlers.OnBreak, ch)
					}
					return
				}

				select {
				case <-ctx.Done():
					if cancelHandlers.OnCancelValue != nil {
						cancelHandlers.OnCancelValue(ctx, in, cancelHandlers.OnBreak, ch)
					}
					if cancelHandlers.OnCancelValues != nil {
						cancelHandlers.OnCancelValues(ctx, inputCh, cancelHandlers.OnBreak, ch)
					}
					return
				case ch <- res:
				}
			}
		}
	}()

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				if cancelHandlers.OnCancelResults != nil {
					cancelHandlers.OnCancelResults(ctx, ch, out)
				}
				return
			case finalized, ok := <-ch:
				if !ok {
					return
				}

				select {
				case <-ctx.Done():
					if cancelHandlers.OnCancelResult != nil {
						cancelHandlers.OnCancelResult(ctx, finalized, out)
					}
					return
				case out <- finalized:
					if onSuccessResult != nil {
						onSuccessResult(ctx, finalized)
					}
				}
			}
		}
	}()

	return out
}
