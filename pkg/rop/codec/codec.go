package codec

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/ib-77/result/pkg/rop"
)

var (
	// ErrMalformed is returned when a document holds neither or both variants.
	ErrMalformed = errors.New("codec: malformed result")
	ErrPayload   = errors.New("codec: payload")
)

type envelope struct {
	Ok  json.RawMessage `json:"ok,omitempty"`
	Err json.RawMessage `json:"err,omitempty"`
}

func Marshal[T, E any](r rop.Result[T, E]) ([]byte, error) {
	var (
		env envelope
		err error
	)
	if v, ok := r.Ok(); ok {
		env.Ok, err = encodePayload(v)
	} else {
		e, _ := r.Err()
		env.Err, err = encodePayload(e)
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(env)
}

func Unmarshal[T, E any](data []byte) (rop.Result[T, E], error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return rop.Result[T, E]{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	switch {
	case env.Ok != nil && env.Err == nil:
		var v T
		if err := json.Unmarshal(env.Ok, &v); err != nil {
			return rop.Result[T, E]{}, fmt.Errorf("%w: ok: %w", ErrPayload, err)
		}
		return rop.Ok[T, E](v), nil
	case env.Err != nil && env.Ok == nil:
		var e E
		if err := json.Unmarshal(env.Err, &e); err != nil {
			return rop.Result[T, E]{}, fmt.Errorf("%w: err: %w", ErrPayload, err)
		}
		return rop.Err[T](e), nil
	default:
		return rop.Result[T, E]{}, ErrMalformed
	}
}

// MarshalError encodes a failure as its error text.
func MarshalError[T any](r rop.Result[T, error]) ([]byte, error) {
	return Marshal(rop.MapErr(r, func(err error) string {
		return err.Error()
	}))
}

// UnmarshalError decodes the error text of a failure into a new error value.
func UnmarshalError[T any](data []byte) (rop.Result[T, error], error) {
	r, err := Unmarshal[T, string](data)
	if err != nil {
		return rop.Result[T, error]{}, err
	}
	return rop.MapErr(r, func(text string) error {
		return errors.New(text)
	}), nil
}

// encodePayload marshals one variant payload.
func encodePayload(v any) (json.RawMessage, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPayload, err)
	}
	return raw, nil
}
