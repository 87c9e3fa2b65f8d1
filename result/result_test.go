package result_test

import (
	"errors"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/hlist/result"
)

func TestOk(t *testing.T) {
	r := result.Ok[string, error]("hello")
	qt.Assert(t, qt.IsTrue(r.IsOk()))
	qt.Assert(t, qt.IsFalse(r.IsErr()))

	v, ok := r.Value()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v, "hello"))

	e, isErr := r.Err()
	qt.Assert(t, qt.IsFalse(isErr))
	qt.Assert(t, qt.IsNil(e))

	qt.Assert(t, qt.Equals(r.Must(), "hello"))
	qt.Assert(t, qt.Equals(r.String(), "Ok(hello)"))
}

func TestErr(t *testing.T) {
	r := result.Err[int](errors.New("bang"))
	qt.Assert(t, qt.IsTrue(r.IsErr()))

	_, ok := r.Value()
	qt.Assert(t, qt.IsFalse(ok))

	e, isErr := r.Err()
	qt.Assert(t, qt.IsTrue(isErr))
	qt.Assert(t, qt.ErrorMatches(e, "bang"))

	qt.Assert(t, qt.Equals(r.String(), "Err(bang)"))
	qt.Assert(t, qt.PanicMatches(func() {
		r.Must()
	}, `result.Must called on Err\(bang\)`))
}

func TestNonErrorFailureType(t *testing.T) {
	type unit struct{}
	r := result.Ok[int, unit](1)
	qt.Assert(t, qt.Equals(r, result.Ok[int, unit](1)))
	qt.Assert(t, qt.Not(qt.Equals(r, result.Err[int](unit{}))))

	v, e, ok := result.Err[int]("code 7").Get()
	qt.Assert(t, qt.Equals(v, 0))
	qt.Assert(t, qt.Equals(e, "code 7"))
	qt.Assert(t, qt.IsFalse(ok))
}
