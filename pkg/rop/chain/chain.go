package chain

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/result/pkg/rop"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T, E any] struct {
	ctx       context.Context
	id        uuid.UUID
	startedAt time.Time
	result    rop.Result[T, E]
}

// Start creates a new chain from a rop.Result
func Start[T, E any](ctx context.Context, result rop.Result[T, E], opts ...Option) *Chain[T, E] {
	o := newRunOptions(opts)
	return &Chain[T, E]{
		ctx:       ctx,
		id:        o.id,
		startedAt: o.clock().UTC(),
		result:    result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](ctx context.Context, value T, opts ...Option) *Chain[T, E] {
	return Start(ctx, rop.Ok[T, E](value), opts...)
}

// Result returns the underlying rop.Result
func (c *Chain[T, E]) Result() rop.Result[T, E] {
	return c.result
}

func (c *Chain[T, E]) ID() uuid.UUID {
	return c.id
}

// StartedAt is the UTC time the run began.
func (c *Chain[T, E]) StartedAt() time.Time {
	return c.startedAt
}

func (c *Chain[T, E]) Context() context.Context {
	return c.ctx
}

func derive[T, U, E any](c *Chain[T, E], result rop.Result[U, E]) *Chain[U, E] {
	return &Chain[U, E]{
		ctx:       c.ctx,
		id:        c.id,
		startedAt: c.startedAt,
		result:    result,
	}
}

// Then chains a function that returns rop.Result[U, E]
func Then[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) rop.Result[U, E]) *Chain[U, E] {
	return derive(c, rop.AndThen(c.result, func(v T) rop.Result[U, E] {
		return onSuccess(c.ctx, v)
	}))
}

// Map chains a pure transformation function
func Map[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) U) *Chain[U, E] {
	return derive(c, rop.Map(c.result, func(v T) U {
		return onSuccess(c.ctx, v)
	}))
}

// MapErr transforms the failure payload, possibly into another type
func MapErr[T, E, F any](c *Chain[T, E], onFailure func(context.Context, E) F) *Chain[T, F] {
	return &Chain[T, F]{
		ctx:       c.ctx,
		id:        c.id,
		startedAt: c.startedAt,
		result: rop.MapErr(c.result, func(e E) F {
			return onFailure(c.ctx, e)
		}),
	}
}

// Ensure performs a side effect on success without changing the result
func (c *Chain[T, E]) Ensure(onSuccess func(context.Context, T)) *Chain[T, E] {
	c.result.InspectOk(func(v T) {
		onSuccess(c.ctx, v)
	})
	return c
}

// EnsureErr performs a side effect on failure without changing the result
func (c *Chain[T, E]) EnsureErr(onFailure func(context.Context, E)) *Chain[T, E] {
	c.result.InspectErr(func(e E) {
		onFailure(c.ctx, e)
	})
	return c
}

// Finally collapses the chain into a final value
func Finally[T, E, U any](c *Chain[T, E], onSuccess func(context.Context, T) U, onFailure func(context.Context, E) U) U {
	return rop.Match(c.result,
		func(v T) U { return onSuccess(c.ctx, v) },
		func(e E) U { return onFailure(c.ctx, e) })
}
