// Package rop defines Result[T, E], a value that holds either a success
// payload T or a failure payload E, and the combinators that chain
// computations over it.
//
// Highlights:
// - Ok/Err/OkWith/ErrWith: construct a Result
// - IsOk/IsErr: query the held variant
// - Unwrap/UnwrapErr/RefOk/RefErr/Take/TakeErr: variant access, panics on the wrong variant
// - UnwrapOr/UnwrapOrElse/Ok/Err: total access that never panics
// - Map/MapErr/AndThen/OrElse/Match: derive a new Result or a final value
// - InspectOk/InspectErr: side effects that return the same *Result for chaining
// - Void/OkVoid/Check/MapVoid/AndThenVoid: success without a payload
//
// Accessing the wrong variant is a programming error. Such calls panic with
// an error wrapping ErrContractViolation.
package rop
