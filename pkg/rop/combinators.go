package rop

// Map applies onOk to the success payload. A failure passes through and
// onOk is not called.
func Map[T, U, E any](r Result[T, E], onOk func(T) U) Result[U, E] {
	if r.isErr {
		return Err[U](r.err)
	}
	return Ok[U, E](onOk(r.ok))
}

// MapErr applies onErr to the failure payload. A success passes through and
// onErr is not called.
func MapErr[T, E, F any](r Result[T, E], onErr func(E) F) Result[T, F] {
	if !r.isErr {
		return Ok[T, F](r.ok)
	}
	return Err[T](onErr(r.err))
}

// AndThen returns the result of onOk for a success, or propagates the
// failure without calling onOk.
func AndThen[T, U, E any](r Result[T, E], onOk func(T) Result[U, E]) Result[U, E] {
	if r.isErr {
		return Err[U](r.err)
	}
	return onOk(r.ok)
}

// OrElse is the failure-side counterpart of AndThen.
func OrElse[T, E, F any](r Result[T, E], onErr func(E) Result[T, F]) Result[T, F] {
	if !r.isErr {
		return Ok[T, F](r.ok)
	}
	return onErr(r.err)
}

// Match collapses r into a single value.
func Match[T, E, U any](r Result[T, E], onOk func(T) U, onErr func(E) U) U {
	if r.isErr {
		return onErr(r.err)
	}
	return onOk(r.ok)
}
