package solo

import (
	"context"
	"errors"
	"fmt"

	"github.com/ib-77/result/pkg/rop"
)

// ErrValidation wraps every failure produced by Validate and AndValidate.
var ErrValidation = errors.New("validation failed")

// Result is a rop.Result whose failure payload is an error.
type Result[T any] = rop.Result[T, error]

func Succeed[T any](input T) Result[T] {
	return rop.Ok[T, error](input)
}

func Fail[T any](err error) Result[T] {
	return rop.Err[T](err)
}

// From converts a (value, error) pair. A typed nil pointer stored in err
// counts as no error.
func From[T any](value T, err error) Result[T] {
	if rop.IsNil(err) {
		return Succeed(value)
	}
	return Fail[T](err)
}

// Unpack converts back to a (value, error) pair.
func Unpack[T any](input Result[T]) (T, error) {
	if err, failed := input.Err(); failed {
		var zero T
		return zero, err
	}
	return input.Unwrap(), nil
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) Result[T] {

	if input.IsOk() {

		if isValid, errMsg := validate(ctx, input.Unwrap()); !isValid {
			return Fail[T](fmt.Errorf("%w: %s", ErrValidation, errMsg))
		}
	}
	return input
}

func Switch[In any, Out any](ctx context.Context,
	input Result[In],
	onSuccess func(ctx context.Context, r In) Result[Out]) Result[Out] {

	return rop.AndThen(input, func(r In) Result[Out] {
		return onSuccess(ctx, r)
	})
}

func Map[In any, Out any](ctx context.Context,
	input Result[In],
	onSuccess func(ctx context.Context, r In) Out) Result[Out] {

	return rop.Map(input, func(r In) Out {
		return onSuccess(ctx, r)
	})
}

func Tee[T any](ctx context.Context,
	input Result[T],
	onSuccess func(ctx context.Context, r T)) Result[T] {

	input.InspectOk(func(r T) {
		onSuccess(ctx, r)
	})
	return input
}

func TeeIf[T any](ctx context.Context,
	input Result[T],
	condition func(ctx context.Context, r T) bool,
	onSuccessAndCondition func(ctx context.Context, r T)) Result[T] {

	input.InspectOk(func(r T) {
		if condition(ctx, r) {
			onSuccessAndCondition(ctx, r)
		}
	})
	return input
}

func DoubleTee[T any](ctx context.Context, input Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error)) Result[T] {

	input.
		InspectOk(func(r T) { onSuccess(ctx, r) }).
		InspectErr(func(err error) { onError(ctx, err) })

	return input
}

func Try[In any, Out any](ctx context.Context, input Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) Result[Out] {

	return rop.AndThen(input, func(r In) Result[Out] {
		out, err := onTryExecute(ctx, r)
		return From(out, err)
	})
}

func FailOnError[T any](ctx context.Context, input Result[T],
	maybeErr func(ctx context.Context, in T) error) Result[T] {
	if input.IsOk() {
		if err := maybeErr(ctx, input.Unwrap()); err != nil {
			return Fail[T](err)
		}
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) Out {

	return rop.Match(input,
		func(r In) Out { return onSuccess(ctx, r) },
		func(err error) Out { return onError(ctx, err) })
}
