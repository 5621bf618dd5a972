package chain

import (
	"context"

	"github.com/ib-77/attempt/pkg/attempt"
	"github.com/ib-77/attempt/pkg/attempt/solo"
)

// Chain wraps an attempt.Attempt with context to enable fluent chaining
type Chain[T any] struct {
	ctx     context.Context
	current attempt.Attempt[T]
}

// Start creates a new chain from an attempt.Attempt
func Start[T any](ctx context.Context, a attempt.Attempt[T]) *Chain[T] {
	return &Chain[T]{
		ctx:     ctx,
		current: a,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{
		ctx:     ctx,
		current: attempt.Value(value),
	}
}

// Of creates a new chain by running fn inside the fault boundary
func Of[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Chain[T] {
	return &Chain[T]{
		ctx:     ctx,
		current: attempt.Of(func() (T, error) { return fn(ctx) }),
	}
}

// Attempt returns the underlying attempt.Attempt
func (c *Chain[T]) Attempt() attempt.Attempt[T] {
	return c.current
}

// Then chains a function that returns attempt.Attempt[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) attempt.Attempt[U]) *Chain[U] {
	return &Chain[U]{
		ctx:     c.ctx,
		current: solo.Switch[T, U](c.ctx, c.current, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx:     c.ctx,
		current: solo.Try[T, U](c.ctx, c.current, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx:     c.ctx,
		current: solo.Map[T, U](c.ctx, c.current, onSuccess),
	}
}

// Assert keeps the chain on the success track only while pred holds
func (c *Chain[T]) Assert(pred func(context.Context, T) bool,
	onFail func(context.Context, T) error) *Chain[T] {
	return &Chain[T]{
		ctx:     c.ctx,
		current: solo.Assert(c.ctx, c.current, pred, onFail),
	}
}

// Ensure performs a side effect without changing the attempt
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		current: solo.Tee[T](c.ctx, c.current,
			func(ctx context.Context, a attempt.Attempt[T]) {
				if a.IsSuccess() {
					onSuccess(ctx, a.Value())
				}
			}),
	}
}

// OrElse collapses the chain into the success payload or def
func (c *Chain[T]) OrElse(def T) T {
	return c.current.OrElse(def)
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U, onCancel func(context.Context, error) U) U {
	return solo.Finally[T, U](c.ctx, c.current, onSuccess, onFailure, onCancel)
}
