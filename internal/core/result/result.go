// Package result implements the tagged success/failure envelope returned by
// mutating endpoints when tagged results are enabled.
//
// On the wire a Result is either
//
//	{"type":"ok","value":...}
//	{"type":"error","message":"...","errors":["..."]}
package result

import (
	"encoding/json"
	"fmt"
)

const (
	TypeOK    = "ok"
	TypeError = "error"
)

// Result holds either a value or a failure, never both.
type Result[T any] struct {
	ok      bool
	value   T
	message string
	errors  []string
}

// OK wraps a successful value.
func OK[T any](value T) Result[T] {
	return Result[T]{ok: true, value: value}
}

// Err wraps a failure. errs may be empty.
func Err[T any](message string, errs ...string) Result[T] {
	if errs == nil {
		errs = []string{}
	}
	return Result[T]{message: message, errors: errs}
}

func (r Result[T]) IsOK() bool { return r.ok }

// Value returns the wrapped value and whether the result is a success.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.ok
}

// Failure returns the message and error list of a failed result.
func (r Result[T]) Failure() (string, []string) {
	return r.message, r.errors
}

// Map transforms the value of a success and passes failures through.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if !r.ok {
		return Result[U]{message: r.message, errors: r.errors}
	}
	return OK(fn(r.value))
}

type okWire[T any] struct {
	Type  string `json:"type"`
	Value T      `json:"value"`
}

type errWire struct {
	Type    string   `json:"type"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.ok {
		return json.Marshal(okWire[T]{Type: TypeOK, Value: r.value})
	}
	errs := r.errors
	if errs == nil {
		errs = []string{}
	}
	return json.Marshal(errWire{Type: TypeError, Message: r.message, Errors: errs})
}

func (r *Result[T]) UnmarshalJSON(data []byte) error {
	var tag struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}

	switch tag.Type {
	case TypeOK:
		var w okWire[T]
		if err := json.Unmarshal(data, &w); err != nil {
			return err
		}
		*r = OK(w.Value)
	case TypeError:
		var w errWire
		if err := json.Unmarshal(data, &w); err != nil {
			return err
		}
		*r = Err[T](w.Message, w.Errors...)
	default:
		return fmt.Errorf("result: unknown type %q", tag.Type)
	}
	return nil
}
