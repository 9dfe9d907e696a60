// Package oktup combines several optional values into a single
// optional tuple that's present only when all of them are present.
//
// Any value implementing [opt.Optioner] can be combined: that
// includes [opt.Opt] and [result.Of] values and pointers to them,
// as well as any type that defines its own Opt method.
//
//	a := opt.Some(1)
//	b := result.From(strconv.Atoi("99"))
//	if t, ok := oktup.All2(a, b).Get(); ok {
//		fmt.Println(t.V0 + t.V1)
//	}
//
// Every argument is converted, from left to right, even when an earlier
// one turns out to be absent. When the result is absent, there's no
// way to tell which of the arguments caused it; callers that need to
// know must inspect the arguments themselves.
//
// All1 to All10 accept arguments of differing types. Arguments that
// all share the same type can be combined in any number with [All].
package oktup

import "github.com/rogpeppe/oktup/opt"

//go:generate go run ./internal/cmd/gentuple --kind all --output all_gen.go

// All returns the values of all its arguments, in order,
// if they are all present. Otherwise it returns an absent value.
//
// When called with no arguments, All returns a present
// empty slice.
func All[T any](xs ...opt.Optioner[T]) opt.Opt[[]T] {
	vals := make([]T, len(xs))
	allOK := true
	for i, x := range xs {
		v, ok := opt.Of(x).Get()
		vals[i] = v
		allOK = allOK && ok
	}
	if !allOK {
		return opt.None[[]T]()
	}
	return opt.Some(vals)
}
