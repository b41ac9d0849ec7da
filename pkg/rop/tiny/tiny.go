package tiny

import (
	"context"

	"github.com/ib-77/result/pkg/rop"
)

type Chain[T, E any] struct {
	ctx context.Context
	res rop.Result[T, E]
}

func Start[T, E any](ctx context.Context, r rop.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{ctx: ctx, res: r}
}

func FromValue[T, E any](ctx context.Context, v T) Chain[T, E] {
	return Start(ctx, rop.Ok[T, E](v))
}

func (c Chain[T, E]) Result() rop.Result[T, E] {
	return c.res
}

// Then composes functions that already return rop.Result[T, E]
func (c Chain[T, E]) Then(onSuccess func(ctx context.Context, t T) rop.Result[T, E]) Chain[T, E] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Unwrap())}
}

// RepeatUntil runs onSuccess at least once and repeats it while the chain
// succeeds and until reports true.
func (c Chain[T, E]) RepeatUntil(onSuccess func(ctx context.Context, t T) rop.Result[T, E],
	until func(ctx context.Context, t T) bool) Chain[T, E] {

	if c.res.IsErr() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.res.IsErr() || !until(c.ctx, c.res.Unwrap()) {
			return c
		}
	}
}

func (c Chain[T, E]) RepeatChainUntil(inC func(ctx context.Context, t T) Chain[T, E],
	until func(ctx context.Context, t T) bool) Chain[T, E] {

	if c.res.IsErr() {
		return c
	}

	for {
		c = inC(c.ctx, c.res.Unwrap())

		if c.res.IsErr() || !until(c.ctx, c.res.Unwrap()) {
			return c
		}
	}
}

func (c Chain[T, E]) While(onSuccess func(ctx context.Context, t T) rop.Result[T, E],
	while func(ctx context.Context, t T) bool) Chain[T, E] {

	for c.res.IsOk() && while(c.ctx, c.res.Unwrap()) {
		c = c.Then(onSuccess)
	}
	return c
}

func (c Chain[T, E]) WhileChain(inC func(ctx context.Context, t T) Chain[T, E],
	while func(ctx context.Context, t T) bool) Chain[T, E] {

	for c.res.IsOk() && while(c.ctx, c.res.Unwrap()) {
		c = inC(c.ctx, c.res.Unwrap())
	}
	return c
}

// Or returns the first successful chain among c and alternatives, or the
// first failed one when none succeeds.
func (c Chain[T, E]) Or(alternatives ...Chain[T, E]) Chain[T, E] {
	if c.res.IsOk() {
		return c
	}
	for _, ch := range alternatives {
		if ch.res.IsOk() {
			return ch
		}
	}
	return c
}

// And returns the first failed chain among c and required, or the last one
// when all succeed.
func (c Chain[T, E]) And(required ...Chain[T, E]) Chain[T, E] {
	last := c
	for _, ch := range append([]Chain[T, E]{c}, required...) {
		if ch.res.IsErr() {
			return ch
		}
		last = ch
	}
	return Chain[T, E]{ctx: c.ctx, res: last.res}
}

// Map transforms the successful value to a new value
func (c Chain[T, E]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T, E] {
	return Chain[T, E]{ctx: c.ctx, res: rop.Map(c.res, func(t T) T {
		return onSuccess(c.ctx, t)
	})}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T, E]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, E)) Chain[T, E] {
	if onSuccess != nil {
		c.res.InspectOk(func(t T) { onSuccess(c.ctx, t) })
	}
	if onFailure != nil {
		c.res.InspectErr(func(e E) { onFailure(c.ctx, e) })
	}
	return c
}

// Finally collapses the chain to a final value
func (c Chain[T, E]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, E) T,
) T {
	return rop.Match(c.res,
		func(t T) T { return onSuccess(c.ctx, t) },
		func(e E) T { return onFailure(c.ctx, e) })
}
