package tuple_test

import (
	"hash/maphash"
	"slices"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"

	"github.com/rogpeppe/hlist/option"
	"github.com/rogpeppe/hlist/result"
	"github.com/rogpeppe/hlist/tuple"
)

func TestNew(t *testing.T) {
	qt.Assert(t, qt.Equals(tuple.New0(), tuple.Unit{}))
	qt.Assert(t, qt.Equals(tuple.New1(1), tuple.Cons[int, tuple.Unit]{Head: 1}))

	got := tuple.New3(1, 2.0, "3")
	want := tuple.Cons[int, tuple.Cons[float64, tuple.Cons[string, tuple.Unit]]]{
		Head: 1,
		Tail: tuple.Cons[float64, tuple.Cons[string, tuple.Unit]]{
			Head: 2.0,
			Tail: tuple.Cons[string, tuple.Unit]{
				Head: "3",
				Tail: tuple.Unit{},
			},
		},
	}
	qt.Assert(t, qt.Equals(got, want))
	qt.Assert(t, qt.Equals(got.Len(), 3))
	qt.Assert(t, qt.Equals(got.String(), "(1, 2, 3)"))
}

func TestZeroValue(t *testing.T) {
	var got tuple.T3[int, string, bool]
	qt.Assert(t, qt.Equals(got, tuple.New3(0, "", false)))

	type wrapper struct {
		a tuple.T2[int, int]
		b tuple.T2[string, bool]
	}
	qt.Assert(t, qt.Equals(wrapper{}, wrapper{
		a: tuple.New2(0, 0),
		b: tuple.New2("", false),
	}))
}

func TestLen(t *testing.T) {
	qt.Assert(t, qt.Equals(tuple.New0().Len(), 0))
	qt.Assert(t, qt.Equals(tuple.New2(1, false).Len(), 2))
	qt.Assert(t, qt.Equals(tuple.New3(1, 2, 3).Len(), 3))
	qt.Assert(t, qt.Equals(tuple.New8(1, 2, 3, 4, 5, 6, 7, 8).Len(), 8))

	qt.Assert(t, qt.Equals(tuple.LenOf[tuple.Unit](), 0))
	qt.Assert(t, qt.Equals(tuple.LenOf[tuple.T4[int, string, bool, []byte]](), 4))
}

func TestIsEmpty(t *testing.T) {
	qt.Assert(t, qt.IsTrue(tuple.New0().IsEmpty()))
	qt.Assert(t, qt.IsFalse(tuple.New2(1, false).IsEmpty()))
	qt.Assert(t, qt.IsFalse(tuple.New1(tuple.Unit{}).IsEmpty()))
}

func TestValues(t *testing.T) {
	qt.Assert(t, qt.HasLen(tuple.New0().Values(), 0))
	qt.Assert(t, qt.CmpEquals(
		tuple.New4(1, "two", 3.0, []int{4}).Values(),
		[]any{1, "two", 3.0, []int{4}},
		cmp.Comparer(func(x, y []int) bool { return cmp.Equal(x, y) }),
	))
}

func TestString(t *testing.T) {
	qt.Assert(t, qt.Equals(tuple.Unit{}.String(), "()"))
	qt.Assert(t, qt.Equals(tuple.New1("x").String(), "(x)"))
	qt.Assert(t, qt.Equals(tuple.New2(tuple.New2(1, 2), tuple.New0()).String(), "((1, 2), ())"))
}

func TestSplit(t *testing.T) {
	h, rest := tuple.New3("", 2, 3.0).Split()
	qt.Assert(t, qt.Equals(h, ""))
	qt.Assert(t, qt.Equals(rest, tuple.New2(2, 3.0)))

	h1, rest1 := tuple.New1(1).Split()
	qt.Assert(t, qt.Equals(h1, 1))
	qt.Assert(t, qt.Equals(rest1, tuple.Unit{}))
}

func TestPushBack(t *testing.T) {
	t0 := tuple.New0()
	t1 := tuple.PushBack0(t0, 1)
	t2 := tuple.PushBack1(t1, "str")
	t3 := tuple.PushBack2(t2, false)
	qt.Assert(t, qt.Equals(t3, tuple.New3(1, "str", false)))
	qt.Assert(t, qt.Equals(t3.Len(), t2.Len()+1))

	t8 := tuple.PushBack7(tuple.New7(1, 2, 3, 4, 5, 6, 7), "last")
	qt.Assert(t, qt.Equals(t8.Len(), 8))
	_, _, _, _, _, _, _, last := tuple.Unpack8(t8)
	qt.Assert(t, qt.Equals(last, "last"))
}

func TestPushFront(t *testing.T) {
	t0 := tuple.New0()
	t1 := tuple.PushFront(t0, 1)
	t2 := tuple.PushFront(t1, "str")
	t3 := tuple.PushFront(t2, false)
	qt.Assert(t, qt.Equals(t3, tuple.New3(false, "str", 1)))
	qt.Assert(t, qt.Equals(t3.Len(), t2.Len()+1))
	qt.Assert(t, qt.Equals(t3.Head, false))
	qt.Assert(t, qt.Equals(t3.Tail, t2))
}

func TestConcat(t *testing.T) {
	t1 := tuple.New2(1, 2)
	t2 := tuple.New3(3.0, false, option.Some(1))
	got := tuple.Concat2(t1, t2)
	qt.Assert(t, qt.Equals(got, tuple.New5(1, 2, 3.0, false, option.Some(1))))
	qt.Assert(t, qt.Equals(got.Len(), t1.Len()+t2.Len()))
}

func TestConcatIdentity(t *testing.T) {
	a := tuple.New3("a", 'b', 3)
	qt.Assert(t, qt.Equals(tuple.Concat0(tuple.Unit{}, a), a))
	qt.Assert(t, qt.Equals(tuple.Concat3(a, tuple.Unit{}), a))
	qt.Assert(t, qt.Equals(tuple.Concat0(tuple.Unit{}, tuple.Unit{}), tuple.Unit{}))
}

func TestConcatAssociative(t *testing.T) {
	a := tuple.New1(1)
	b := tuple.New2("b", "c")
	c := tuple.New1(true)
	qt.Assert(t, qt.Equals(
		tuple.Concat3(tuple.Concat1(a, b), c),
		tuple.Concat1(a, tuple.Concat2(b, c)),
	))
}

func TestUnpack(t *testing.T) {
	a, b, c := tuple.Unpack3(tuple.New3("", 2, 3.0))
	qt.Assert(t, qt.Equals(a, ""))
	qt.Assert(t, qt.Equals(b, 2))
	qt.Assert(t, qt.Equals(c, 3.0))
}

func TestSplitN(t *testing.T) {
	a, b, rest := tuple.Split2(tuple.New5(1, 2.0, "", []int{1}, true))
	qt.Assert(t, qt.Equals(a, 1))
	qt.Assert(t, qt.Equals(b, 2.0))
	qt.Assert(t, qt.Equals(rest.Len(), 3))
	qt.Assert(t, qt.DeepEquals(rest, tuple.New3("", []int{1}, true)))

	// An exact match leaves an empty rest.
	x, y, rest0 := tuple.Split2(tuple.New2("x", "y"))
	qt.Assert(t, qt.Equals(x, "x"))
	qt.Assert(t, qt.Equals(y, "y"))
	qt.Assert(t, qt.Equals(rest0, tuple.Unit{}))
}

func TestPrefix(t *testing.T) {
	a, b := tuple.Prefix2(tuple.New5(1, 2, 3, 4, 5))
	qt.Assert(t, qt.Equals(a, 1))
	qt.Assert(t, qt.Equals(b, 2))

	// The ignored remainder may be empty.
	a, b = tuple.Prefix2(tuple.New2(6, 7))
	qt.Assert(t, qt.Equals(a, 6))
	qt.Assert(t, qt.Equals(b, 7))

	only := tuple.Prefix1(tuple.New3("only", 0, 0))
	qt.Assert(t, qt.Equals(only, "only"))
}

func TestRefs(t *testing.T) {
	tup := tuple.New4(1, "str", 3.0, false)
	refs := tuple.Refs4(&tup)
	qt.Assert(t, qt.Equals(refs.Len(), tup.Len()))

	a, b, c, d := tuple.Unpack4(refs)
	qt.Assert(t, qt.Equals(a.Value(), 1))
	qt.Assert(t, qt.Equals(b.Value(), "str"))
	qt.Assert(t, qt.Equals(c.Value(), 3.0))
	qt.Assert(t, qt.Equals(d.Value(), false))
	qt.Assert(t, qt.Equals(tuple.Deref4(refs), tup))

	// References see changes to the original.
	tup.Tail.Head = "changed"
	qt.Assert(t, qt.Equals(b.Value(), "changed"))

	qt.Assert(t, qt.Equals(tuple.Refs0(&tuple.Unit{}), tuple.Unit{}))
	qt.Assert(t, qt.Equals(tuple.Deref0(tuple.Unit{}), tuple.Unit{}))
}

func TestZeroRef(t *testing.T) {
	var r tuple.Ref[int]
	qt.Assert(t, qt.Equals(r.String(), "<nil>"))
	qt.Assert(t, qt.PanicMatches(func() {
		r.Value()
	}, `tuple.Ref.Value called on zero Ref`))

	x := 5
	qt.Assert(t, qt.Equals(tuple.RefTo(&x).String(), "&5"))
}

func TestPtrs(t *testing.T) {
	tup := tuple.New4(1, "str", 3.0, false)
	ptrs := tuple.Ptrs4(&tup)
	qt.Assert(t, qt.Equals(ptrs.Len(), 4))

	a, b, c, d := tuple.Unpack4(ptrs)
	qt.Assert(t, qt.Equals(a, &tup.Head))
	qt.Assert(t, qt.Equals(d, &tup.Tail.Tail.Tail.Head))

	*a = 10
	*b = "mutated"
	*c *= 2
	*d = true
	qt.Assert(t, qt.Equals(tup, tuple.New4(10, "mutated", 6.0, true)))

	qt.Assert(t, qt.Equals(tuple.Ptrs0(&tuple.Unit{}), tuple.Unit{}))
}

func TestSome(t *testing.T) {
	got := tuple.Some3(tuple.New3(1, 2.0, "3"))
	qt.Assert(t, qt.Equals(got, tuple.New3(option.Some(1), option.Some(2.0), option.Some("3"))))
	qt.Assert(t, qt.Equals(got.String(), "(Some(1), Some(2), Some(3))"))
	qt.Assert(t, qt.Equals(tuple.Some0(tuple.Unit{}), tuple.Unit{}))
}

func TestOk(t *testing.T) {
	type none struct{}
	got := tuple.Ok4[none](tuple.New4(1, "str", 3.0, false))
	qt.Assert(t, qt.Equals(got, tuple.New4(
		result.Ok[int, none](1),
		result.Ok[string, none]("str"),
		result.Ok[float64, none](3.0),
		result.Ok[bool, none](false),
	)))
	qt.Assert(t, qt.Equals(tuple.Ok0[error](tuple.Unit{}), tuple.Unit{}))

	withErr := tuple.Ok2[error](tuple.New2("a", 1))
	v, ok := withErr.Head.Value()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v, "a"))
}

var compareTests = []struct {
	x, y tuple.T3[int, string, float64]
	want int
}{{
	x:    tuple.New3(1, "a", 1.0),
	y:    tuple.New3(1, "a", 1.0),
	want: 0,
}, {
	x:    tuple.New3(2, "a", 1.0),
	y:    tuple.New3(1, "b", 2.0),
	want: 1,
}, {
	x:    tuple.New3(1, "a", 2.0),
	y:    tuple.New3(1, "b", 1.0),
	want: -1,
}, {
	x:    tuple.New3(1, "b", 1.0),
	y:    tuple.New3(1, "b", 0.5),
	want: 1,
}}

func TestCompare(t *testing.T) {
	for _, test := range compareTests {
		t.Run("", func(t *testing.T) {
			qt.Assert(t, qt.Equals(tuple.Compare3(test.x, test.y), test.want))
			qt.Assert(t, qt.Equals(tuple.Compare3(test.y, test.x), -test.want))
		})
	}
	qt.Assert(t, qt.Equals(tuple.Compare0(tuple.Unit{}, tuple.Unit{}), 0))
}

func TestCompareFunc(t *testing.T) {
	type entry = tuple.T2[tuple.T2[int, string], bool]
	falseFirst := func(a, b bool) int {
		switch {
		case a == b:
			return 0
		case !a:
			return -1
		}
		return 1
	}
	entries := []entry{
		tuple.New2(tuple.New2(2, "a"), false),
		tuple.New2(tuple.New2(1, "b"), true),
		tuple.New2(tuple.New2(1, "b"), false),
		tuple.New2(tuple.New2(1, "a"), true),
	}
	slices.SortFunc(entries, func(x, y entry) int {
		return tuple.CompareFunc2(x, y, tuple.Compare2[int, string], falseFirst)
	})
	qt.Assert(t, qt.DeepEquals(entries, []entry{
		tuple.New2(tuple.New2(1, "a"), true),
		tuple.New2(tuple.New2(1, "b"), false),
		tuple.New2(tuple.New2(1, "b"), true),
		tuple.New2(tuple.New2(2, "a"), false),
	}))

	// Elements that are not ordered types.
	x := tuple.New1([]int{1, 2})
	y := tuple.New1([]int{1, 3})
	qt.Assert(t, qt.Equals(tuple.CompareFunc1(x, y, slices.Compare[[]int]), -1))
	qt.Assert(t, qt.Equals(tuple.CompareFunc0(tuple.Unit{}, tuple.Unit{}), 0))
}

func TestEqualityAndHash(t *testing.T) {
	seed := maphash.MakeSeed()
	a := tuple.New3(1, "x", true)
	b := tuple.New3(1, "x", true)
	c := tuple.New3(1, "x", false)
	qt.Assert(t, qt.IsTrue(a == b))
	qt.Assert(t, qt.IsFalse(a == c))
	qt.Assert(t, qt.Equals(maphash.Comparable(seed, a), maphash.Comparable(seed, b)))

	m := map[tuple.T2[string, int]]bool{
		tuple.New2("a", 1): true,
	}
	qt.Assert(t, qt.IsTrue(m[tuple.New2("a", 1)]))
	qt.Assert(t, qt.IsFalse(m[tuple.New2("a", 2)]))
}

func TestCopySemantics(t *testing.T) {
	a := tuple.New2(1, "x")
	b := a
	b.Head = 2
	qt.Assert(t, qt.Equals(a.Head, 1))
	qt.Assert(t, qt.Equals(b.Head, 2))
}

// secondOf only accepts tuples holding at least two values.
func secondOf[A0, A1 any, R tuple.Tuple](t tuple.AtLeast2[A0, A1, R]) A1 {
	_, b := tuple.Prefix2(t)
	return b
}

// exactlyThree only accepts tuples holding exactly three values.
func exactlyThree[A0, A1, A2 any](t tuple.T3[A0, A1, A2]) int {
	return t.Len()
}

func TestCompileTimeBounds(t *testing.T) {
	qt.Assert(t, qt.Equals(secondOf(tuple.New2(1, "two")), "two"))
	qt.Assert(t, qt.Equals(secondOf(tuple.New5(1, 2, 3, 4, 5)), 2))
	qt.Assert(t, qt.Equals(exactlyThree(tuple.New3(1, 2, 3)), 3))
}
