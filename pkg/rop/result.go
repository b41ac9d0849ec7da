package rop

import "fmt"

// Result holds either a success value of type T or a failure value of type E.
//
// The zero value is a success holding the zero T.
type Result[T, E any] struct {
	ok    T
	err   E
	isErr bool
}

func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{
		ok:    value,
		isErr: false,
	}
}

func Err[T, E any](value E) Result[T, E] {
	return Result[T, E]{
		err:   value,
		isErr: true,
	}
}

// OkWith builds the success payload directly in the result slot.
func OkWith[T, E any](build func() T) Result[T, E] {
	var r Result[T, E]
	r.ok = build()
	return r
}

// ErrWith builds the failure payload directly in the result slot.
func ErrWith[T, E any](build func() E) Result[T, E] {
	r := Result[T, E]{isErr: true}
	r.err = build()
	return r
}

func (r Result[T, E]) IsOk() bool {
	return !r.isErr
}

func (r Result[T, E]) IsErr() bool {
	return r.isErr
}

// Ok returns the success payload and true, or the zero T and false.
func (r Result[T, E]) Ok() (T, bool) {
	if r.isErr {
		var zero T
		return zero, false
	}
	return r.ok, true
}

// Err returns the failure payload and true, or the zero E and false.
func (r Result[T, E]) Err() (E, bool) {
	if !r.isErr {
		var zero E
		return zero, false
	}
	return r.err, true
}

// Unwrap returns the success payload. It panics if r holds a failure.
func (r Result[T, E]) Unwrap() T {
	if r.isErr {
		violation("Unwrap", true, r.err)
	}
	return r.ok
}

// UnwrapErr returns the failure payload. It panics if r holds a success.
func (r Result[T, E]) UnwrapErr() E {
	if !r.isErr {
		violation("UnwrapErr", false, r.ok)
	}
	return r.err
}

func (r Result[T, E]) UnwrapOr(defaultValue T) T {
	if r.isErr {
		return defaultValue
	}
	return r.ok
}

// UnwrapOrElse calls orElse with the failure payload only when r holds a failure.
func (r Result[T, E]) UnwrapOrElse(orElse func(E) T) T {
	if r.isErr {
		return orElse(r.err)
	}
	return r.ok
}

// RefOk points into r's success slot. It panics if r holds a failure.
func (r *Result[T, E]) RefOk() *T {
	if r.isErr {
		violation("RefOk", true, r.err)
	}
	return &r.ok
}

// RefErr points into r's failure slot. It panics if r holds a success.
func (r *Result[T, E]) RefErr() *E {
	if !r.isErr {
		violation("RefErr", false, r.ok)
	}
	return &r.err
}

// Take moves the success payload out, leaving the zero T behind.
// It panics if r holds a failure.
func (r *Result[T, E]) Take() T {
	if r.isErr {
		violation("Take", true, r.err)
	}
	v := r.ok
	var zero T
	r.ok = zero
	return v
}

// TakeErr moves the failure payload out, leaving the zero E behind.
// It panics if r holds a success.
func (r *Result[T, E]) TakeErr() E {
	if !r.isErr {
		violation("TakeErr", false, r.ok)
	}
	v := r.err
	var zero E
	r.err = zero
	return v
}

// InspectOk calls f with the success payload, if any, and returns r.
func (r *Result[T, E]) InspectOk(f func(T)) *Result[T, E] {
	if !r.isErr {
		f(r.ok)
	}
	return r
}

// InspectErr calls f with the failure payload, if any, and returns r.
func (r *Result[T, E]) InspectErr(f func(E)) *Result[T, E] {
	if r.isErr {
		f(r.err)
	}
	return r
}

func (r Result[T, E]) String() string {
	if r.isErr {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.ok)
}
