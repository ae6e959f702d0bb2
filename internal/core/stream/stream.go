// Package stream holds helpers for lazy, single-pass sequences of
// (value, error) pairs as produced by the repositories.
package stream

import (
	"errors"
	"iter"
	"sync/atomic"
)

// ErrConsumed is yielded when a single-pass sequence is ranged over again.
var ErrConsumed = errors.New("stream: sequence already consumed")

// Once guards seq so that it can be iterated a single time. Later
// iterations yield ErrConsumed and nothing else.
func Once[T any](seq iter.Seq2[T, error]) iter.Seq2[T, error] {
	var used atomic.Bool
	return func(yield func(T, error) bool) {
		if used.Swap(true) {
			var zero T
			yield(zero, ErrConsumed)
			return
		}
		seq(yield)
	}
}

// Map applies fn to each value as it is pulled. Errors pass through.
func Map[T, U any](seq iter.Seq2[T, error], fn func(T) U) iter.Seq2[U, error] {
	return func(yield func(U, error) bool) {
		for v, err := range seq {
			if err != nil {
				var zero U
				yield(zero, err)
				return
			}
			if !yield(fn(v), nil) {
				return
			}
		}
	}
}

// Collect drains seq into a slice and stops at the first error.
func Collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	out := []T{}
	for v, err := range seq {
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// FromSlice turns a slice into a sequence that never fails.
func FromSlice[T any](items []T) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for _, v := range items {
			if !yield(v, nil) {
				return
			}
		}
	}
}

// Fail returns a sequence yielding err once.
func Fail[T any](err error) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		yield(zero, err)
	}
}
