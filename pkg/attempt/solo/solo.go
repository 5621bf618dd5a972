package solo

import (
	"context"
	"errors"

	"github.com/ib-77/attempt/pkg/attempt"
)

func Succeed[T any](input T) attempt.Attempt[T] {
	return attempt.Value(input)
}

func Fail[T any](err error) attempt.Attempt[T] {
	return attempt.Fail[T](err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) attempt.Attempt[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input attempt.Attempt[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) attempt.Attempt[T] {

	if input.IsSuccess() {

		if isValid, errMsg := validate(ctx, input.Value()); isValid {
			return input
		} else {
			return attempt.Fail[T](errors.New(errMsg))
		}
	}
	return input
}

func Assert[T any](ctx context.Context, input attempt.Attempt[T],
	pred func(ctx context.Context, in T) bool,
	onFail func(ctx context.Context, in T) error) attempt.Attempt[T] {

	return input.Assert(
		func(v T) bool { return pred(ctx, v) },
		func(v T) error { return onFail(ctx, v) })
}

func AssertAll[T any](
	ctx context.Context,
	input attempt.Attempt[T],
	breakOnError bool, // exit on first error
	inputsF ...func(ctx context.Context, in attempt.Attempt[T]) attempt.Attempt[T]) attempt.Attempt[T] {

	var err error
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current attempt.Attempt[T]) attempt.Attempt[T] {

			if current.IsFailure() {
				e := attempt.GetErrors(err)
				e = append(e, current.Err())
				err = errors.Join(e...)
			}

			if attempt.IsNil(err) {
				return current
			}

			return attempt.Fail[T](err)
		},
		inputsF...,
	)
}

func Switch[In any, Out any](ctx context.Context,
	input attempt.Attempt[In],
	onSuccess func(ctx context.Context, r In) attempt.Attempt[Out]) attempt.Attempt[Out] {

	return attempt.Switch(input, func(v In) attempt.Attempt[Out] {
		return onSuccess(ctx, v)
	})
}

func Map[In any, Out any](ctx context.Context,
	input attempt.Attempt[In],
	onSuccess func(ctx context.Context, r In) Out) attempt.Attempt[Out] {

	return attempt.Map(input, func(v In) Out {
		return onSuccess(ctx, v)
	})
}

func Tee[T any](ctx context.Context,
	input attempt.Attempt[T],
	onSuccess func(ctx context.Context, r attempt.Attempt[T])) attempt.Attempt[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[T any](ctx context.Context,
	input attempt.Attempt[T],
	condition func(ctx context.Context, r attempt.Attempt[T]) bool,
	onSuccessAndCondition func(ctx context.Context, r attempt.Attempt[T])) attempt.Attempt[T] {

	if input.IsSuccess() {
		if condition(ctx, input) {
			onSuccessAndCondition(ctx, input)
		}
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input attempt.Attempt[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error),
	onCancel func(ctx context.Context, err error)) attempt.Attempt[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	} else {
		if attempt.IsCancellation(input.Err()) {
			onCancel(ctx, input.Err())
		} else {
			onError(ctx, input.Err())
		}
	}

	return input
}

func DoubleMap[In any, Out any](ctx context.Context, input attempt.Attempt[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) attempt.Attempt[Out] {

	if input.IsSuccess() {
		return attempt.Map(input, func(v In) Out {
			return onSuccess(ctx, v)
		})
	}

	if attempt.IsCancellation(input.Err()) {
		onCancel(ctx, input.Err())
	} else {
		onError(ctx, input.Err())
	}

	return attempt.FailFrom[In, Out](input)
}

func Try[In any, Out any](ctx context.Context, input attempt.Attempt[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) attempt.Attempt[Out] {

	return attempt.Try(input, func(v In) (Out, error) {
		return onTryExecute(ctx, v)
	})
}

func FailOnError[T any](ctx context.Context, input attempt.Attempt[T],
	maybeErr func(ctx context.Context, in T) error) attempt.Attempt[T] {
	if input.IsSuccess() {
		err := maybeErr(ctx, input.Value())
		if err != nil {
			return attempt.Fail[T](err)
		} else {
			return input
		}
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input attempt.Attempt[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	} else if attempt.IsCancellation(input.Err()) {
		return onCancel(ctx, input.Err())
	} else {
		return onError(ctx, input.Err())
	}
}

func Join[T any](ctx context.Context,
	input attempt.Attempt[T],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current attempt.Attempt[T]) attempt.Attempt[T],
	inputsF ...func(ctx context.Context, in attempt.Attempt[T]) attempt.Attempt[T]) attempt.Attempt[T] {

	if len(inputsF) == 0 || concat == nil || !attempt.IsNil(ctx.Err()) {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if !attempt.IsNil(ctx.Err()) {
		return finalResult
	}

	if finalResult.IsSuccess() || !breakOnError {
		for _, in := range inputsF[1:] {
			if !attempt.IsNil(ctx.Err()) {
				return finalResult
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsFailure() && breakOnError {
				return nextRes
			} else {
				finalResult = nextRes
			}
		}
	}
	return finalResult
}
