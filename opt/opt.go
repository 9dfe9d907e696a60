// Package opt implements an optional value type, Opt, together with
// the Optioner interface used to convert other types into one.
package opt

import (
	"fmt"
	"reflect"
)

// Opt holds either a value of type T ("present") or nothing
// ("absent"). The zero Opt is absent.
type Opt[T any] struct {
	x       T
	present bool
}

// Optioner is implemented by types that can be converted into an
// optional value.
//
// Opt must not have side effects that another conversion could
// observe: callers may convert several Optioners in turn and rely only
// on the results. A type with a failure mode should report failure as
// an absent value rather than by panicking.
//
// Opt[T] implements Optioner[T] by returning itself. Since the method
// has a value receiver, *Opt[T] implements it too, copying the value
// out of the pointed-to Opt. [Of] treats a nil pointer of any
// type as absent, so implementations need not check for one.
type Optioner[T any] interface {
	Opt() Opt[T]
}

// Some returns a present Opt holding x.
func Some[T any](x T) Opt[T] {
	return Opt[T]{
		x:       x,
		present: true,
	}
}

// None returns an absent Opt.
func None[T any]() Opt[T] {
	return Opt[T]{}
}

// New returns an Opt holding x if ok is true, or an absent Opt
// otherwise. It's useful with "comma-ok" results:
//
//	v, ok := m[key]
//	o := opt.New(v, ok)
func New[T any](x T, ok bool) Opt[T] {
	if !ok {
		return Opt[T]{}
	}
	return Some(x)
}

// FromResult returns an Opt holding x if err is nil,
// or an absent Opt otherwise. The error is discarded.
// It can be called directly on the results of a function:
//
//	o := opt.FromResult(strconv.Atoi(s))
func FromResult[T any](x T, err error) Opt[T] {
	if err != nil {
		return Opt[T]{}
	}
	return Some(x)
}

// FromPtr returns an Opt holding a copy of *p,
// or an absent Opt if p is nil.
func FromPtr[T any](p *T) Opt[T] {
	if p == nil {
		return Opt[T]{}
	}
	return Some(*p)
}

// Lookup returns the value for k in m if there is one.
func Lookup[M ~map[K]V, K comparable, V any](m M, k K) Opt[V] {
	v, ok := m[k]
	return New(v, ok)
}

// Of converts x to an Opt by calling its Opt method.
// A nil x converts to an absent Opt, as does a nil pointer
// held in x, whatever its type.
func Of[T any](x Optioner[T]) Opt[T] {
	switch x := x.(type) {
	case nil:
		return Opt[T]{}
	case Opt[T]:
		return x
	case *Opt[T]:
		if x == nil {
			return Opt[T]{}
		}
		return *x
	}
	if v := reflect.ValueOf(x); v.Kind() == reflect.Pointer && v.IsNil() {
		return Opt[T]{}
	}
	return x.Opt()
}

// Opt implements [Optioner] by returning o unchanged.
func (o Opt[T]) Opt() Opt[T] {
	return o
}

// Get returns the value held by o and reports whether it's present.
// If it's absent, the zero value of T is returned.
func (o Opt[T]) Get() (T, bool) {
	return o.x, o.present
}

// IsPresent reports whether o holds a value.
func (o Opt[T]) IsPresent() bool {
	return o.present
}

// Value returns the value held by o, or the zero value if there is none.
func (o Opt[T]) Value() T {
	return o.x
}

// MustValue returns the value held by o.
// It panics if o is absent.
func (o Opt[T]) MustValue() T {
	if !o.present {
		panic(fmt.Errorf("opt: MustValue called on absent %T", o))
	}
	return o.x
}

// Or returns the value held by o, or def if o is absent.
func (o Opt[T]) Or(def T) T {
	if !o.present {
		return def
	}
	return o.x
}

// Ptr returns a pointer to a copy of the value held by o,
// or nil if o is absent.
func (o Opt[T]) Ptr() *T {
	if !o.present {
		return nil
	}
	x := o.x
	return &x
}

// String implements [fmt.Stringer].
func (o Opt[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.x)
}
