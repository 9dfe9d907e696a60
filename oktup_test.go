package oktup_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"

	"github.com/rogpeppe/oktup"
	"github.com/rogpeppe/oktup/opt"
	"github.com/rogpeppe/oktup/result"
	"github.com/rogpeppe/oktup/tuple"
)

func TestAll2Present(t *testing.T) {
	got := oktup.All2(opt.Some(1), opt.Some("jay"))
	qt.Assert(t, qt.Equals(got, opt.Some(tuple.Mk2(1, "jay"))))
}

func TestAll2Absent(t *testing.T) {
	qt.Assert(t, qt.IsFalse(oktup.All2(opt.Some(1), opt.None[string]()).IsPresent()))
	qt.Assert(t, qt.IsFalse(oktup.All2(opt.None[int](), opt.Some("jay")).IsPresent()))
	qt.Assert(t, qt.IsFalse(oktup.All2(opt.None[int](), opt.None[string]()).IsPresent()))
}

func TestOrderPreserved(t *testing.T) {
	got, ok := oktup.All3(opt.Some("a"), opt.Some("b"), opt.Some("c")).Get()
	qt.Assert(t, qt.IsTrue(ok))
	a, b, c := got.Values()
	qt.Assert(t, qt.Equals(a, "a"))
	qt.Assert(t, qt.Equals(b, "b"))
	qt.Assert(t, qt.Equals(c, "c"))
}

func TestMixedTypes(t *testing.T) {
	got := oktup.All3(opt.Some(1), opt.Some(2.0), opt.Some("x"))
	qt.Assert(t, qt.Equals(got, opt.Some(tuple.T3[int, float64, string]{V0: 1, V1: 2.0, V2: "x"})))
}

func TestMixedOptioners(t *testing.T) {
	o := opt.Some(uint8(3))
	r := result.Value(4.5)
	got := oktup.All4(result.Value(1), opt.Some(2), &o, &r)
	qt.Assert(t, qt.Equals(got, opt.Some(tuple.Mk4(1, 2, uint8(3), 4.5))))

	got = oktup.All4(result.Error[int](errors.New("oops")), opt.Some(2), &o, &r)
	qt.Assert(t, qt.Equals(got, opt.None[tuple.T4[int, int, uint8, float64]]()))
}

func TestAll1IsPassThrough(t *testing.T) {
	for _, o := range []opt.Opt[int]{opt.Some(5), opt.Some(0), opt.None[int]()} {
		got := oktup.All1(o)
		v, ok := o.Get()
		qt.Assert(t, qt.Equals(got, opt.New(tuple.Mk1(v), ok)))
	}
}

func TestNilOptionerIsAbsent(t *testing.T) {
	var x opt.Optioner[int]
	qt.Assert(t, qt.IsFalse(oktup.All2(opt.Some(1), x).IsPresent()))
}

func TestNilPointersAreAbsent(t *testing.T) {
	got := oktup.All2((*opt.Opt[int])(nil), (*result.Of[string])(nil))
	qt.Assert(t, qt.IsFalse(got.IsPresent()))

	o := opt.Some(1)
	got = oktup.All2(&o, (*result.Of[string])(nil))
	qt.Assert(t, qt.IsFalse(got.IsPresent()))
}

func TestBorrowedConversionIsRepeatable(t *testing.T) {
	o := opt.Some("jay")
	r := result.Value(1)
	first := oktup.All2(&o, &r)
	second := oktup.All2(&o, &r)
	qt.Assert(t, qt.Equals(first, opt.Some(tuple.Mk2("jay", 1))))
	qt.Assert(t, qt.Equals(second, first))
	// The sources are still intact.
	qt.Assert(t, qt.Equals(o, opt.Some("jay")))
	qt.Assert(t, qt.Equals(r.MustValue(), 1))
}

// recorder is an Optioner that logs each conversion.
type recorder struct {
	log     *[]string
	name    string
	present bool
}

func (r recorder) Opt() opt.Opt[string] {
	*r.log = append(*r.log, r.name)
	return opt.New(r.name, r.present)
}

func TestAllConversionsAreEagerAndInOrder(t *testing.T) {
	var log []string
	got := oktup.All3(
		recorder{&log, "a", false},
		recorder{&log, "b", true},
		recorder{&log, "c", false},
	)
	qt.Assert(t, qt.IsFalse(got.IsPresent()))
	qt.Assert(t, qt.DeepEquals(log, []string{"a", "b", "c"}))
}

// answer is present only when it holds 42.
type answer struct {
	x int
}

func (a answer) Opt() opt.Opt[answer] {
	return opt.New(a, a.x == 42)
}

func TestCustomOptioner(t *testing.T) {
	got := oktup.All3(opt.Some(1), opt.Some("jay"), answer{42})
	qt.Assert(t, qt.Equals(got, opt.Some(tuple.Mk3(1, "jay", answer{42}))))

	got = oktup.All3(opt.Some(1), opt.Some("jay"), answer{41})
	qt.Assert(t, qt.IsFalse(got.IsPresent()))
}

func TestAll10(t *testing.T) {
	type T10 = tuple.T10[int, int8, int16, int32, int64, uint, string, float32, float64, bool]
	want := T10{V0: 1, V1: 2, V2: 3, V3: 4, V4: 5, V5: 6, V6: "7", V7: 8, V8: 9, V9: true}
	all := func(absent int) opt.Opt[T10] {
		return oktup.All10(
			opt.New(want.V0, absent != 0),
			opt.New(want.V1, absent != 1),
			opt.New(want.V2, absent != 2),
			opt.New(want.V3, absent != 3),
			opt.New(want.V4, absent != 4),
			opt.New(want.V5, absent != 5),
			opt.New(want.V6, absent != 6),
			opt.New(want.V7, absent != 7),
			opt.New(want.V8, absent != 8),
			opt.New(want.V9, absent != 9),
		)
	}
	qt.Assert(t, qt.Equals(all(-1), opt.Some(want)))
	for i := 0; i < 10; i++ {
		qt.Assert(t, qt.IsFalse(all(i).IsPresent()), qt.Commentf("absent at %d", i))
	}
}

func TestEachArity(t *testing.T) {
	s := opt.Some(1)
	n := opt.None[int]()
	tests := []struct {
		arity   int
		present func() bool
		absent  func() bool
	}{{
		arity:   1,
		present: func() bool { return oktup.All1(s).IsPresent() },
		absent:  func() bool { return oktup.All1(n).IsPresent() },
	}, {
		arity:   2,
		present: func() bool { return oktup.All2(s, s).IsPresent() },
		absent:  func() bool { return oktup.All2(s, n).IsPresent() },
	}, {
		arity:   3,
		present: func() bool { return oktup.All3(s, s, s).IsPresent() },
		absent:  func() bool { return oktup.All3(s, s, n).IsPresent() },
	}, {
		arity:   4,
		present: func() bool { return oktup.All4(s, s, s, s).IsPresent() },
		absent:  func() bool { return oktup.All4(n, s, s, s).IsPresent() },
	}, {
		arity:   5,
		present: func() bool { return oktup.All5(s, s, s, s, s).IsPresent() },
		absent:  func() bool { return oktup.All5(s, s, n, s, s).IsPresent() },
	}, {
		arity:   6,
		present: func() bool { return oktup.All6(s, s, s, s, s, s).IsPresent() },
		absent:  func() bool { return oktup.All6(s, s, s, s, s, n).IsPresent() },
	}, {
		arity:   7,
		present: func() bool { return oktup.All7(s, s, s, s, s, s, s).IsPresent() },
		absent:  func() bool { return oktup.All7(s, n, s, s, s, s, s).IsPresent() },
	}, {
		arity:   8,
		present: func() bool { return oktup.All8(s, s, s, s, s, s, s, s).IsPresent() },
		absent:  func() bool { return oktup.All8(s, s, s, s, n, s, s, s).IsPresent() },
	}, {
		arity:   9,
		present: func() bool { return oktup.All9(s, s, s, s, s, s, s, s, s).IsPresent() },
		absent:  func() bool { return oktup.All9(s, s, s, s, s, s, s, n, s).IsPresent() },
	}, {
		arity:   10,
		present: func() bool { return oktup.All10(s, s, s, s, s, s, s, s, s, s).IsPresent() },
		absent:  func() bool { return oktup.All10(s, s, s, s, s, s, s, s, s, n).IsPresent() },
	}}
	for _, test := range tests {
		t.Run(fmt.Sprint(test.arity), func(t *testing.T) {
			qt.Assert(t, qt.IsTrue(test.present()))
			qt.Assert(t, qt.IsFalse(test.absent()))
		})
	}
}

var allTests = []struct {
	testName string
	xs       []opt.Optioner[int]
	want     opt.Opt[[]int]
}{{
	testName: "NoArgs",
	xs:       nil,
	want:     opt.Some([]int{}),
}, {
	testName: "AllPresent",
	xs:       []opt.Optioner[int]{opt.Some(1), result.Value(2), opt.Some(3)},
	want:     opt.Some([]int{1, 2, 3}),
}, {
	testName: "OneAbsent",
	xs:       []opt.Optioner[int]{opt.Some(1), result.Error[int](errors.New("no")), opt.Some(3)},
	want:     opt.None[[]int](),
}, {
	testName: "NilOptioner",
	xs:       []opt.Optioner[int]{opt.Some(1), nil},
	want:     opt.None[[]int](),
}, {
	testName: "ManyArgs",
	xs: []opt.Optioner[int]{
		opt.Some(0), opt.Some(1), opt.Some(2), opt.Some(3),
		opt.Some(4), opt.Some(5), opt.Some(6), opt.Some(7),
		opt.Some(8), opt.Some(9), opt.Some(10), opt.Some(11),
	},
	want: opt.Some([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}),
}}

func TestAll(t *testing.T) {
	for _, test := range allTests {
		t.Run(test.testName, func(t *testing.T) {
			got := oktup.All(test.xs...)
			qt.Assert(t, qt.CmpEquals(got, test.want, cmp.AllowUnexported(opt.Opt[[]int]{})))
		})
	}
}

func TestAllNoArgsIsNonNil(t *testing.T) {
	got, ok := oktup.All[int]().Get()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsNotNil(got))
	qt.Assert(t, qt.HasLen(got, 0))
}

func TestAllIsEager(t *testing.T) {
	var log []string
	got := oktup.All[string](
		recorder{&log, "a", true},
		recorder{&log, "b", false},
		recorder{&log, "c", true},
	)
	qt.Assert(t, qt.IsFalse(got.IsPresent()))
	qt.Assert(t, qt.DeepEquals(log, []string{"a", "b", "c"}))
}
