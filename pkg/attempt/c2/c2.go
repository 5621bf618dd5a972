package c2

import (
	"context"

	"github.com/ib-77/attempt/pkg/attempt"
	"github.com/ib-77/attempt/pkg/attempt/solo"
)

// Chain wraps an attempt.Attempt with context to enable fluent chaining
// while keeping the original input available for Finally.
type Chain[T, U any] struct {
	ctx    context.Context
	input  attempt.Attempt[T]
	result attempt.Attempt[U]
}

// Start creates a new chain from an attempt.Attempt
func Start[T, U any](ctx context.Context, a attempt.Attempt[T]) *Chain[T, U] {
	return &Chain[T, U]{
		ctx:   ctx,
		input: a,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T, T] {
	return &Chain[T, T]{
		ctx:    ctx,
		input:  attempt.Value(value),
		result: attempt.Value(value),
	}
}

// Result returns the underlying attempt.Attempt
func (c *Chain[T, U]) Result() attempt.Attempt[U] {
	return c.result
}

func (c *Chain[T, U]) Input() attempt.Attempt[T] {
	return c.input
}

// Then chains a function that returns attempt.Attempt[U]
func (c *Chain[T, U]) Then(onSuccess func(context.Context, T) attempt.Attempt[U]) *Chain[T, U] {
	return &Chain[T, U]{
		ctx:    c.ctx,
		input:  c.input,
		result: solo.Switch[T, U](c.ctx, c.input, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func (c *Chain[T, U]) ThenTry(tryOnSuccess func(context.Context, T) (U, error)) *Chain[T, U] {
	return &Chain[T, U]{
		ctx:    c.ctx,
		input:  c.input,
		result: solo.Try[T, U](c.ctx, c.input, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func (c *Chain[T, U]) Map(onSuccess func(context.Context, T) U) *Chain[T, U] {
	return &Chain[T, U]{
		ctx:    c.ctx,
		input:  c.input,
		result: solo.Map[T, U](c.ctx, c.input, onSuccess),
	}
}

// Ensure performs a side effect without changing the attempt
func (c *Chain[T, U]) Ensure(onSuccess func(context.Context, T)) *Chain[T, T] {
	return &Chain[T, T]{
		ctx:   c.ctx,
		input: c.input,
		result: solo.Tee[T](c.ctx, c.input,
			func(ctx context.Context, a attempt.Attempt[T]) {
				if a.IsSuccess() {
					onSuccess(ctx, a.Value())
				}
			}),
	}
}

// Finally collapses the chain into a final result using solo.Finally
func (c *Chain[T, U]) Finally(onSuccess func(context.Context, T) U,
	onFailure func(context.Context, error) U, onCancel func(context.Context, error) U) U {
	return solo.Finally[T, U](c.ctx, c.input, onSuccess, onFailure, onCancel)
}
