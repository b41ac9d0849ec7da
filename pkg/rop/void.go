package rop

// Void is the success payload of a computation that yields no data.
type Void struct{}

func OkVoid[E any]() Result[Void, E] {
	return Ok[Void, E](Void{})
}

// Check is Unwrap for Result[Void, E]: it returns silently on success and
// panics on failure.
func Check[E any](r Result[Void, E]) {
	if r.isErr {
		violation("Check", true, r.err)
	}
}

func MapVoid[U, E any](r Result[Void, E], onOk func() U) Result[U, E] {
	if r.isErr {
		return Err[U](r.err)
	}
	return Ok[U, E](onOk())
}

func AndThenVoid[U, E any](r Result[Void, E], onOk func() Result[U, E]) Result[U, E] {
	if r.isErr {
		return Err[U](r.err)
	}
	return onOk()
}
