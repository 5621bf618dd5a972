package tiny

import (
	"context"

	"github.com/ib-77/attempt/pkg/attempt"
	"github.com/ib-77/attempt/pkg/attempt/solo"
)

type Chain[T any] struct {
	ctx context.Context
	res attempt.Attempt[T]
}

func Start[T any](ctx context.Context, a attempt.Attempt[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: a}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, attempt.Value(v))
}

func (c Chain[T]) Attempt() attempt.Attempt[T] {
	return c.res
}

// Then composes functions that already return attempt.Attempt[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) attempt.Attempt[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Value())}
}

func (c Chain[T]) RepeatUntil(onSuccess func(ctx context.Context, t T) attempt.Attempt[T],
	until func(ctx context.Context, t T) bool) Chain[T] {

	if c.res.IsFailure() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.res.IsFailure() || until(c.ctx, c.res.Value()) {
			return c
		}
	}
}

func (c Chain[T]) RepeatChainUntil(inC func(ctx context.Context, t T) Chain[T],
	until func(ctx context.Context, t T) bool) Chain[T] {

	if c.res.IsFailure() {
		return c
	}

	for {
		c = inC(c.ctx, c.res.Value())

		if c.res.IsFailure() || until(c.ctx, c.res.Value()) {
			return c
		}
	}
}

func (c Chain[T]) While(onSuccess func(ctx context.Context, t T) attempt.Attempt[T],
	while func(ctx context.Context, t T) bool) Chain[T] {

	for !c.res.IsFailure() && while(c.ctx, c.res.Value()) {
		c = c.Then(onSuccess)
	}
	return c
}

func (c Chain[T]) WhileChain(inC func(ctx context.Context, t T) Chain[T], while func(ctx context.Context, t T) bool) Chain[T] {

	for !c.res.IsFailure() && while(c.ctx, c.res.Value()) {
		c = inC(c.ctx, c.res.Value())
	}
	return c
}

func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	return c.or(alternative)
}

func (c Chain[T]) or(chains ...Chain[T]) Chain[T] {
	candidates := make([]Chain[T], 0, len(chains)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, chains...)

	hasCancel := false
	hasFail := false
	var cancelRes attempt.Attempt[T]
	var failRes attempt.Attempt[T]
	var cancelCtx, failCtx context.Context

	for _, ch := range candidates {
		res := ch.res

		if res.IsSuccess() {
			return Chain[T]{ctx: ch.ctx, res: res}
		}

		if attempt.IsCancellation(res.Err()) {
			if !hasCancel {
				hasCancel = true
				cancelRes = res
				cancelCtx = ch.ctx
			}
		} else {
			if !hasFail {
				hasFail = true
				failRes = res
				failCtx = ch.ctx
			}
		}
	}

	if hasCancel {
		return Chain[T]{ctx: cancelCtx, res: cancelRes}
	}
	if hasFail {
		return Chain[T]{ctx: failCtx, res: failRes}
	}

	return c
}

func (c Chain[T]) And(required Chain[T]) Chain[T] {
	return c.and(required)
}

func (c Chain[T]) and(chains ...Chain[T]) Chain[T] {
	candidates := make([]Chain[T], 0, len(chains)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, chains...)

	var res attempt.Attempt[T]
	for _, ch := range candidates {
		res = ch.res

		if res.IsFailure() {
			return Chain[T]{ctx: ch.ctx, res: res}
		}
	}

	return Chain[T]{ctx: c.ctx, res: res} // what context to return?
}

// ThenTry composes functions that return (T, error) — like repo calls
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: solo.Try(c.ctx, c.res, try)}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	if c.res.IsFailure() {
		return c
	}

	return Chain[T]{ctx: c.ctx, res: solo.Map(c.ctx, c.res, onSuccess)}
}

// Assert fails the chain when the predicate does not hold for the payload
func (c Chain[T]) Assert(pred func(ctx context.Context, t T) bool,
	onFail func(ctx context.Context, t T) error) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Assert(c.ctx, c.res, pred, onFail)}
}

// Ensure triggers side effects for success/failure without changing the attempt
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {

	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.Err())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.ctx, c.res.Value())
	}
	return c
}

// Finally collapses the chain to a final value, delegating to solo.Finally
func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, error) T,
	onCancel func(context.Context, error) T,
) T {
	return solo.Finally(c.ctx, c.res, onSuccess, onFailure, onCancel)
}
