package lite

import (
	"context"
	"sync"

	"github.com/ib-77/attempt/pkg/attempt"
	"github.com/ib-77/attempt/pkg/attempt/core"
	"github.com/ib-77/attempt/pkg/attempt/mass"
)

func Run[T any](ctx context.Context, inputCh <-chan attempt.Attempt[T],
	engine func(ctx context.Context, input attempt.Attempt[T]) <-chan attempt.Attempt[T],
	lines int) <-chan attempt.Attempt[T] {

	out := make(chan attempt.Attempt[T])
	wg := &sync.WaitGroup{}

	for i := 0; i < lines; i++ {
		wg.Add(1)
		go core.Locomotive(ctx, inputCh, out, engine, core.CancellationHandlers[T, T]{}, nil, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func Turnout[In, Out any](ctx context.Context, inputCh <-chan attempt.Attempt[In],
	engine func(ctx context.Context, input attempt.Attempt[In]) <-chan attempt.Attempt[Out],
	lines int) <-chan attempt.Attempt[Out] {

	out := make(chan attempt.Attempt[Out])
	wg := &sync.WaitGroup{}

	for i := 0; i < lines; i++ {
		wg.Add(1)
		go core.Locomotive(ctx, inputCh, out, engine, core.CancellationHandlers[In, Out]{}, nil, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func Validate[T any](validate func(ctx context.Context, in T) (valid bool, errMsg string)) func(ctx context.Context,
	input attempt.Attempt[T]) <-chan attempt.Attempt[T] {
	return func(ctx context.Context, input attempt.Attempt[T]) <-chan attempt.Attempt[T] {
		return mass.Validating(ctx, input, validate, nil)
	}
}

func Assert[T any](pred func(ctx context.Context, in T) bool,
	onFail func(ctx context.Context, in T) error) func(ctx context.Context,
	input attempt.Attempt[T]) <-chan attempt.Attempt[T] {
	return func(ctx context.Context, input attempt.Attempt[T]) <-chan attempt.Attempt[T] {
		return mass.Asserting(ctx, input, pred, onFail, nil)
	}
}

func Switch[In, Out any](switchOnSuccess func(ctx context.Context, r In) attempt.Attempt[Out]) func(ctx context.Context,
	input attempt.Attempt[In]) <-chan attempt.Attempt[Out] {
	return func(ctx context.Context, input attempt.Attempt[In]) <-chan attempt.Attempt[Out] {
		return mass.Switching(ctx, input, switchOnSuccess, nil)
	}
}

func Map[In, Out any](mapOnSuccess func(ctx context.Context, r In) Out) func(ctx context.Context,
	input attempt.Attempt[In]) <-chan attempt.Attempt[Out] {
	return func(ctx context.Context, input attempt.Attempt[In]) <-chan attempt.Attempt[Out] {
		return mass.Mapping(ctx, input, mapOnSuccess, nil)
	}
}

func DoubleMap[In, Out any](
	mapOnSuccess func(ctx context.Context, r In) Out,
	mapOnError func(ctx context.Context, err error) Out,
	mapOnCancel func(ctx context.Context, err error) Out) func(ctx context.Context,
	input attempt.Attempt[In]) <-chan attempt.Attempt[Out] {
	return func(ctx context.Context, input attempt.Attempt[In]) <-chan attempt.Attempt[Out] {
		return mass.DoubleMapping(ctx, input, mapOnSuccess, mapOnError, mapOnCancel, nil)
	}
}

func Tee[T any](sideEffect func(ctx context.Context, r attempt.Attempt[T])) func(ctx context.Context,
	input attempt.Attempt[T]) <-chan attempt.Attempt[T] {
	return func(ctx context.Context, input attempt.Attempt[T]) <-chan attempt.Attempt[T] {
		return mass.Teeing(ctx, input, sideEffect, nil)
	}
}

func DoubleTee[T any](sideEffect func(ctx context.Context, r T),
	sideEffectOnError func(ctx context.Context, err error),
	sideEffectOnCancel func(ctx context.Context, err error)) func(ctx context.Context,
	input attempt.Attempt[T]) <-chan attempt.Attempt[T] {
	return func(ctx context.Context, input attempt.Attempt[T]) <-chan attempt.Attempt[T] {
		return mass.DoubleTeeing(ctx, input, sideEffect, sideEffectOnError, sideEffectOnCancel, nil)
	}
}

func Try[In, Out any](
	onTryExecute func(ctx context.Context, r In) (Out, error)) func(ctx context.Context,
	input attempt.Attempt[In]) <-chan attempt.Attempt[Out] {
	return func(ctx context.Context, input attempt.Attempt[In]) <-chan attempt.Attempt[Out] {
		return mass.Trying(ctx, input, onTryExecute, nil)
	}
}

func Finally[In, Out any](ctx context.Context, input <-chan attempt.Attempt[In],
	handlers mass.FinallyHandlers[In, Out]) <-chan Out {
	return mass.Finalizing(ctx, input, handlers, mass.FinallyCancelHandlers[In, Out]{}, nil)
}
