// Package solo contains single-value, synchronous ROP primitives for results
// whose failure payload is a Go error. They bridge rop.Result to the
// (value, error) convention and carry a context.Context into every step.
//
// Highlights:
// - Succeed/Fail/From/Unpack: convert between Result[T] and (T, error)
// - Validate/AndValidate: apply validation producing failure on invalid input
// - Switch: move from Result[In] to Result[Out]
// - Map: transform successful values
// - Try: call a function (Out, error) and convert error to failure
// - Tee/TeeIf/DoubleTee/FailOnError: side-effect helpers
// - Finally: reduce to a concrete value via success/error handlers
package solo
