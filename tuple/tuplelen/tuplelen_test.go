package tuplelen_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/hlist/tuple"
	"github.com/rogpeppe/hlist/tuple/tuplelen"
)

var boundTests = []struct {
	bound tuplelen.Bound
	want  string
	// ok holds whether each length 0..5 satisfies bound.
	ok [6]bool
}{{
	bound: tuplelen.Eq(3),
	want:  "len == 3",
	ok:    [6]bool{3: true},
}, {
	bound: tuplelen.Ge(2),
	want:  "len >= 2",
	ok:    [6]bool{2: true, 3: true, 4: true, 5: true},
}, {
	bound: tuplelen.Gt(2),
	want:  "len > 2",
	ok:    [6]bool{3: true, 4: true, 5: true},
}, {
	bound: tuplelen.Le(2),
	want:  "len <= 2",
	ok:    [6]bool{0: true, 1: true, 2: true},
}, {
	bound: tuplelen.Lt(2),
	want:  "len < 2",
	ok:    [6]bool{0: true, 1: true},
}, {
	bound: tuplelen.Range(1, 3),
	want:  "1 <= len < 3",
	ok:    [6]bool{1: true, 2: true},
}, {
	bound: tuplelen.Range(3, 3),
	want:  "3 <= len < 3",
}, {
	bound: tuplelen.Lt(0),
	want:  "len < 0",
}, {
	bound: tuplelen.Ge(0),
	want:  "len >= 0",
	ok:    [6]bool{true, true, true, true, true, true},
}, {
	bound: tuplelen.Ge(1).And(tuplelen.Le(4)),
	want:  "len >= 1 && len <= 4",
	ok:    [6]bool{1: true, 2: true, 3: true, 4: true},
}, {
	bound: tuplelen.Bound{},
	want:  "false",
}}

func TestBoundContains(t *testing.T) {
	for _, test := range boundTests {
		t.Run(test.want, func(t *testing.T) {
			qt.Assert(t, qt.Equals(test.bound.String(), test.want))
			for n, ok := range test.ok {
				qt.Check(t, qt.Equals(test.bound.Contains(n), ok), qt.Commentf("len %d", n))
			}
		})
	}
}

func TestBoundCheck(t *testing.T) {
	tuples := []tuple.Tuple{
		tuple.New0(),
		tuple.New1(1),
		tuple.New2(1, "two"),
		tuple.New3(1, "two", 3.0),
		tuple.New4(1, "two", 3.0, false),
		tuple.New5(1, 2, 3, 4, 5),
	}
	for _, test := range boundTests {
		t.Run(test.want, func(t *testing.T) {
			for n, tup := range tuples {
				err := test.bound.Check(tup)
				if test.ok[n] {
					qt.Check(t, qt.IsNil(err), qt.Commentf("tuple %v", tup))
					continue
				}
				qt.Check(t, qt.ErrorIs(err, tuplelen.ErrBound), qt.Commentf("tuple %v", tup))
				qt.Check(t, qt.ErrorMatches(err, fmt.Sprintf("tuple length %d does not satisfy %s", n, test.want)))
			}
		})
	}
}

func TestThreeTupleBounds(t *testing.T) {
	type three = tuple.T3[int, int, int]

	for _, b := range []tuplelen.Bound{
		tuplelen.Eq(3),
		tuplelen.Gt(2),
		tuplelen.Ge(2),
		tuplelen.Ge(3),
		tuplelen.Range(3, 4),
	} {
		qt.Check(t, qt.IsNil(tuplelen.Check[three](b)), qt.Commentf("%v", b))
	}
	for _, b := range []tuplelen.Bound{
		tuplelen.Ge(4),
		tuplelen.Gt(4),
		tuplelen.Eq(2),
	} {
		err := tuplelen.Check[three](b)
		qt.Check(t, qt.ErrorIs(err, tuplelen.ErrBound), qt.Commentf("%v", b))
	}
}

func TestCheckReportsFirstViolation(t *testing.T) {
	err := tuplelen.Check[tuple.T2[int, int]](tuplelen.Ge(1), tuplelen.Lt(2), tuplelen.Eq(5))
	var lerr *tuplelen.Error
	qt.Assert(t, qt.IsTrue(errors.As(err, &lerr)))
	qt.Assert(t, qt.Equals(lerr.Len, 2))
	qt.Assert(t, qt.Equals(lerr.Bound.String(), "len < 2"))
}

func TestMust(t *testing.T) {
	tup := tuple.New3(1, "a", true)
	qt.Assert(t, qt.Equals(tuplelen.Must(tup, tuplelen.Range(1, 4)), tup))
	qt.Assert(t, qt.Equals(tuplelen.Must(tup), tup))

	qt.Assert(t, qt.PanicMatches(func() {
		tuplelen.Must(tup, tuplelen.Le(2))
	}, `tuple length 3 does not satisfy len <= 2`))
}

func TestMustWithInterfaceValue(t *testing.T) {
	var tup tuple.Tuple = tuple.New2("a", "b")
	qt.Assert(t, qt.Equals(tuplelen.Must(tup, tuplelen.Eq(2)), tup))
}
