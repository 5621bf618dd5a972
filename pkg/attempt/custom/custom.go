package custom

import (
	"context"
	"sync"

	"github.com/ib-77/attempt/pkg/attempt"
	"github.com/ib-77/attempt/pkg/attempt/core"
	"github.com/ib-77/attempt/pkg/attempt/mass"
)

func Run[T any](ctx context.Context, inputCh <-chan attempt.Attempt[T],
	engine func(ctx context.Context, input attempt.Attempt[T]) <-chan attempt.Attempt[T],
	handlers core.CancellationHandlers[T, T],
	onSuccess func(ctx context.Context, in attempt.Attempt[T]), lines int) <-chan attempt.Attempt[T] {

	out := make(chan attempt.Attempt[T])
	wg := &sync.WaitGroup{}

	for i := 0; i < lines; i++ {
		wg.Add(1)
		go core.Locomotive(ctx, inputCh, out, engine, handlers, onSuccess, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func Turnout[In, Out any](ctx context.Context, inputCh <-chan attempt.Attempt[In],
	engine func(ctx context.Context, input attempt.Attempt[In]) <-chan attempt.Attempt[Out],
	handlers core.CancellationHandlers[In, Out],
	onSuccess func(ctx context.Context, in attempt.Attempt[Out]), lines int) <-chan attempt.Attempt[Out] {

	out := make(chan attempt.Attempt[Out])
	wg := &sync.WaitGroup{}

	for i := 0; i < lines; i++ {
		wg.Add(1)
		go core.Locomotive(ctx, inputCh, out, engine, handlers, onSuccess, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func RunSingle[T any](ctx context.Context, inputCh <-chan attempt.Attempt[T],
	engine func(ctx context.Context, input attempt.Attempt[T]) <-chan attempt.Attempt[T],
	handlers core.CancellationHandlers[T, T],
	onSuccess func(ctx context.Context, in attempt.Attempt[T])) <-chan attempt.Attempt[T] {
	return Run[T](ctx, inputCh, engine, handlers, onSuccess, 1)
}

func Validate[T any](validate func(ctx context.Context, in T) (valid bool, errorMessage string),
	onCancel func(ctx context.Context, in attempt.Attempt[T])) func(ctx context.Context,
	input attempt.Attempt[T]) <-chan attempt.Attempt[T] {
	return func(ctx context.Context, input attempt.Attempt[T]) <-chan attempt.Attempt[T] {
		return mass.Validating(ctx, input, validate, onCancel)
	}
}

func Assert[T any](pred func(ctx context.Context, in T) bool,
	onFail func(ctx context.Context, in T) error,
	onCancel func(ctx context.Context, in attempt.Attempt[T])) func(ctx context.Context,
	input attempt.Attempt[T]) <-chan attempt.Attempt[T] {
	return func(ctx context.Context, input attempt.Attempt[T]) <-chan attempt.Attempt[T] {
		return mass.Asserting(ctx, input, pred, onFail, onCancel)
	}
}

func Switch[In, Out any](switchOnSuccess func(ctx context.Context, r In) attempt.Attempt[Out],
	onCancel func(ctx context.Context, in attempt.Attempt[In])) func(ctx context.Context,
	input attempt.Attempt[In]) <-chan attempt.Attempt[Out] {
	return func(ctx context.Context, input attempt.Attempt[In]) <-chan attempt.Attempt[Out] {
		return mass.Switching(ctx, input, switchOnSuccess, onCancel)
	}
}

func Map[In, Out any](mapOnSuccess func(ctx context.Context, r In) Out,
	onCancel func(ctx context.Context, in attempt.Attempt[In])) func(ctx context.Context,
	input attempt.Attempt[In]) <-chan attempt.Attempt[Out] {
	return func(ctx context.Context, input attempt.Attempt[In]) <-chan attempt.Attempt[Out] {
		return mass.Mapping(ctx, input, mapOnSuccess, onCancel)
	}
}

func DoubleMap[In, Out any](
	mapOnSuccess func(ctx context.Context, r In) Out,
	mapOnError func(ctx context.Context, err error) Out,
	mapOnCancel func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, in attempt.Attempt[In])) func(ctx context.Context,
	input attempt.Attempt[In]) <-chan attempt.Attempt[Out] {
	return func(ctx context.Context, input attempt.Attempt[In]) <-chan attempt.Attempt[Out] {
		return mass.DoubleMapping(ctx, input, mapOnSuccess, mapOnError, mapOnCancel, onCancel)
	}
}

func Tee[T any](sideEffect func(ctx context.Context, r attempt.Attempt[T]),
	onCancel func(ctx context.Context, in attempt.Attempt[T])) func(ctx context.Context,
	input attempt.Attempt[T]) <-chan attempt.Attempt[T] {
	return func(ctx context.Context, input attempt.Attempt[T]) <-chan attempt.Attempt[T] {
		return mass.Teeing(ctx, input, sideEffect, onCancel)
	}
}

func DoubleTee[T any](sideEffect func(ctx context.Context, r T),
	sideEffectOnError func(ctx context.Context, err error),
	sideEffectOnCancel func(ctx context.Context, err error),
	onCancel func(ctx context.Context, in attempt.Attempt[T])) func(ctx context.Context,
	input attempt.Attempt[T]) <-chan attempt.Attempt[T] {
	return func(ctx context.Context, input attempt.Attempt[T]) <-chan attempt.Attempt[T] {
		return mass.DoubleTeeing(ctx, input, sideEffect, sideEffectOnError, sideEffectOnCancel, onCancel)
	}
}

func Try[In, Out any](
	onTryExecute func(ctx context.Context, r In) (Out, error),
	onCancel func(ctx context.Context, in attempt.Attempt[In])) func(ctx context.Context,
	input attempt.Attempt[In]) <-chan attempt.Attempt[Out] {
	return func(ctx context.Context, input attempt.Attempt[In]) <-chan attempt.Attempt[Out] {
		return mass.Trying(ctx, input, onTryExecute, onCancel)
	}
}

func Finally[In, Out any](ctx context.Context, input <-chan attempt.Attempt[In],
	handlers mass.FinallyHandlers[In, Out],
	cancelHandlers mass.FinallyCancelHandlers[In, Out],
	onSuccessResult func(ctx context.Context, out Out)) <-chan Out {
	return mass.Finalizing(ctx, input, handlers, cancelHandlers, onSuccessResult)
}
