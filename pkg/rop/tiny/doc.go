// Package tiny provides a minimal fluent Chain[T, E] for synchronous
// composition of rop.Result[T, E] values whose success type never changes.
//
// It parallels the chain package but keeps API surface very small:
// - Start/FromValue: create a Chain
// - Then/Map: compose result-returning functions or transform the value
// - RepeatUntil/While and their *Chain variants: loop while the chain succeeds
// - Or/And: pick the first success or the first failure among chains
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
//
// Tiny is ideal for small services or tests where lightweight synchronous
// chaining improves readability.
package tiny
