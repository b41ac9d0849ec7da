// Package codec encodes rop.Result values as JSON objects holding exactly one
// of the keys "ok" or "err".
//
//	{"ok": 42}
//	{"err": "not found"}
//
// Results whose failure payload is a Go error travel as the error text; see
// MarshalError and UnmarshalError.
package codec
