package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/result/pkg/rop"
)

func TestStart_Result_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	base := rop.Ok[int, error](10)
	c := Start(ctx, base)
	out := c.Result()
	if !out.IsOk() || out.Unwrap() != 10 {
		t.Fatalf("expected success with 10, got %v", out)
	}
	if c.ID() == uuid.Nil {
		t.Fatalf("expected a generated run id")
	}
	if c.Context() != ctx {
		t.Fatalf("expected chain to keep its context")
	}
}

func TestFromValue_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := FromValue[int, error](ctx, 7)
	out := c.Result()
	if !out.IsOk() || out.Unwrap() != 7 {
		t.Fatalf("expected success with 7, got %v", out)
	}
}

func TestOptions(t *testing.T) {
	t.Parallel()

	id := uuid.MustParse("6f1c1c7e-3c1a-4f4e-9a55-0d5d2b0f9c11")
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))

	c := FromValue[int, error](context.Background(), 1,
		WithID(id),
		WithClock(func() time.Time { return at }))

	if c.ID() != id {
		t.Fatalf("expected id %s, got %s", id, c.ID())
	}
	if !c.StartedAt().Equal(at) || c.StartedAt().Location() != time.UTC {
		t.Fatalf("expected start time %s in UTC, got %s", at, c.StartedAt())
	}

	next := Map(c, func(ctx context.Context, v int) string { return strconv.Itoa(v) })
	if next.ID() != id || !next.StartedAt().Equal(at) {
		t.Fatalf("derived chain must keep run id and start time")
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := errors.New("boom")
	c := Start(ctx, rop.Err[int](err))
	called := false
	c2 := Then(c, func(ctx context.Context, v int) rop.Result[string, error] {
		called = true
		return rop.Ok[string, error]("ok")
	})
	out := c2.Result()
	if out.IsOk() || out.UnwrapErr().Error() != "boom" {
		t.Fatalf("expected failure 'boom', got %v", out)
	}
	if called {
		t.Fatalf("Then onSuccess must not be called on failure input")
	}
}

func TestThen_SuccessAndError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := Then(FromValue[int, string](ctx, 3), func(ctx context.Context, v int) rop.Result[string, string] {
		return rop.Ok[string, string]("val_" + strconv.Itoa(v))
	})
	if out := c.Result(); !out.IsOk() || out.Unwrap() != "val_3" {
		t.Fatalf("expected success 'val_3', got %v", out)
	}

	c = Then(FromValue[int, string](ctx, 9), func(ctx context.Context, v int) rop.Result[string, string] {
		return rop.Err[string]("try-error")
	})
	if out := c.Result(); !out.IsErr() || out.UnwrapErr() != "try-error" {
		t.Fatalf("expected failure 'try-error', got %v", out)
	}
}

func TestMap_SuccessAndFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := FromValue[int, error](ctx, 5)
	c2 := Map(c, func(ctx context.Context, v int) string { return "n:" + strconv.Itoa(v) })
	out := c2.Result()
	if !out.IsOk() || out.Unwrap() != "n:5" {
		t.Fatalf("expected success 'n:5', got %v", out)
	}

	called := false
	c3 := Start(ctx, rop.Err[int](errors.New("oops")))
	c4 := Map(c3, func(ctx context.Context, v int) string {
		called = true
		return "ignored"
	})
	out2 := c4.Result()
	if out2.IsOk() || out2.UnwrapErr().Error() != "oops" || called {
		t.Fatalf("expected failure 'oops' without calling map, got %v (called=%v)", out2, called)
	}
}

func TestMapErr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := MapErr(Start(ctx, rop.Err[int](errors.New("io"))), func(ctx context.Context, err error) int {
		return len(err.Error())
	})
	if out := c.Result(); out.UnwrapErr() != 2 {
		t.Fatalf("expected mapped failure 2, got %v", out)
	}

	called := false
	c2 := MapErr(FromValue[int, error](ctx, 1), func(ctx context.Context, err error) int {
		called = true
		return 0
	})
	if out := c2.Result(); out.Unwrap() != 1 || called {
		t.Fatalf("expected success 1 without calling onFailure, got %v (called=%v)", out, called)
	}
}

func TestEnsure_SideEffectCalledOnSuccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	called := 0
	c := FromValue[int, error](ctx, 11).
		Ensure(func(ctx context.Context, v int) { called++ }).
		Ensure(func(ctx context.Context, v int) { called++ })
	out := c.Result()
	if !out.IsOk() || out.Unwrap() != 11 {
		t.Fatalf("expected success with 11, got %v", out)
	}
	if called != 2 {
		t.Fatalf("expected both Ensure calls to run, got %d", called)
	}

	called = 0
	c2 := Start(ctx, rop.Err[int](errors.New("x"))).Ensure(func(ctx context.Context, v int) { called++ })
	if out2 := c2.Result(); out2.IsOk() || called != 0 {
		t.Fatalf("Ensure onSuccess must not be called for failure result")
	}
}

func TestEnsureErr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var seen []string
	Start(ctx, rop.Err[int]("bad")).
		EnsureErr(func(ctx context.Context, e string) { seen = append(seen, e) }).
		Ensure(func(ctx context.Context, v int) { seen = append(seen, "ok") })
	if len(seen) != 1 || seen[0] != "bad" {
		t.Fatalf("expected only failure side effect, got %v", seen)
	}
}

func TestFinally_SuccessFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	onOk := func(ctx context.Context, v int) string { return "ok" }
	onFail := func(ctx context.Context, err error) string { return "fail" }

	if s := Finally(FromValue[int, error](ctx, 2), onOk, onFail); s != "ok" {
		t.Fatalf("expected 'ok', got %q", s)
	}
	if f := Finally(Start(ctx, rop.Err[int](errors.New("e"))), onOk, onFail); f != "fail" {
		t.Fatalf("expected 'fail', got %q", f)
	}
}
