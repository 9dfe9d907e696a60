// Package tuplefunc provides functions that convert multiple-return
// functions into single-return functions. This makes it trivial to
// pass arbitrary functions to generic operations that are designed
// to operate on functions returning a single value.
//
// For functions with as many return parameters as can be represented
// by the tuple package, this package provides a function to convert
// to each form.
//
// The names of the functions in this package match the following
// regular expression:
//
//	To(R|RE|RO)_0_[0-9]+
//
// Each letter represents one aspect of the function that's being
// converted to.
//
//	R - return parameters gathered into a tuple
//	E - error return kept alongside the tuple
//	O - error return folded into an optional tuple
//
// The first number is the number of argument parameters (always zero
// for now); the second number is the number of return parameters (not
// including error for an E or O function).
//
// So, for example:
//
//	ToRO_0_3
//
// converts from (for some types R0, R1 and R2)
//
//	func() (R0, R1, R2, error)
//
// to:
//
//	func() opt.Opt[tuple.T3[R0, R1, R2]]
//
// The resulting value is absent whenever the original
// function returned a non-nil error.
package tuplefunc

//go:generate go run ../../internal/cmd/gentuple --kind tuplefunc --output tuplefunc_gen.go
