// Package tuple holds a collection of generic struct types
// that hold a specific number of values, from T1 to T10.
// Element i of a tuple is held in field Vi.
//
// See the tuple/tuplefunc package for a way to convert
// multiple-return functions to tuple-returning functions.
package tuple

//go:generate go run ../internal/cmd/gentuple --kind tuple --output tuple_gen.go
