// Package chain provides a fluent wrapper around rop.Result[T, E]
// for building synchronous Railway-Oriented chains.
//
// Every chain carries a context.Context handed to each step, and a run id
// with a start time so that side effects from one run can be correlated.
// Derived chains keep the id of the chain they came from.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a value
// - Then: switch to a new Result[U, E] via a function
// - Map/MapErr: transform the success or failure payload
// - Ensure/EnsureErr: run side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
