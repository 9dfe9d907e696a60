// Package result holds the outcome of a fallible operation as
// a single value, so that it can be stored, passed around, or
// combined with optional values through [opt.Optioner].
package result

import "github.com/rogpeppe/oktup/opt"

// Of holds either the successful outcome of an operation,
// a T, or the error it failed with.
type Of[T any] struct {
	val T
	err error
}

// From captures the two results of a fallible call. When err is
// non-nil, val is dropped. The usual use is to wrap a call directly:
//
//	r := result.From(os.ReadFile(name))
func From[T any](val T, err error) Of[T] {
	if err != nil {
		return Of[T]{err: err}
	}
	return Of[T]{val: val}
}

// Value is shorthand for From(val, nil).
func Value[T any](val T) Of[T] {
	return From(val, nil)
}

// Error is shorthand for From(zero, err). A nil err
// yields a successful zero T.
func Error[T any](err error) Of[T] {
	var zero T
	return From(zero, err)
}

// Get unpacks r into the conventional value and error pair.
func (r Of[T]) Get() (T, error) {
	return r.val, r.err
}

// Err reports the failure held by r, or nil on success.
func (r Of[T]) Err() error {
	return r.err
}

// MustValue is like Get but panics with the held error
// instead of returning it.
func (r Of[T]) MustValue() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.val
}

// Opt implements [opt.Optioner]. Success maps to a present value;
// failure maps to an absent one, and the error is lost.
func (r Of[T]) Opt() opt.Opt[T] {
	return opt.FromResult(r.val, r.err)
}
