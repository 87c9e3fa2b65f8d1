package option_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/hlist/option"
)

func TestSome(t *testing.T) {
	o := option.Some(42)
	v, ok := o.Get()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v, 42))
	qt.Assert(t, qt.IsTrue(o.IsSome()))
	qt.Assert(t, qt.IsFalse(o.IsNone()))
	qt.Assert(t, qt.Equals(o.Value(), 42))
	qt.Assert(t, qt.Equals(o.Or(1), 42))
	qt.Assert(t, qt.Equals(o.String(), "Some(42)"))
}

func TestNone(t *testing.T) {
	o := option.None[string]()
	v, ok := o.Get()
	qt.Assert(t, qt.IsFalse(ok))
	qt.Assert(t, qt.Equals(v, ""))
	qt.Assert(t, qt.IsTrue(o.IsNone()))
	qt.Assert(t, qt.Equals(o.Or("def"), "def"))
	qt.Assert(t, qt.Equals(o.String(), "None"))
	qt.Assert(t, qt.PanicMatches(func() {
		o.Value()
	}, `option.Value called on None`))
}

func TestZeroIsNone(t *testing.T) {
	var o option.Option[int]
	qt.Assert(t, qt.Equals(o, option.None[int]()))
	qt.Assert(t, qt.Not(qt.Equals(option.Some(0), o)))
}
