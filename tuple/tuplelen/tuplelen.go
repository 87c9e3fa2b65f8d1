// Package tuplelen checks tuple lengths against bounds when
// the program runs.
//
// The tuple package can express lower bounds and exact
// lengths in function signatures (tuple.AtLeastN and tuple.TN),
// which the compiler checks. Go's type system has no way to
// express the other relations, so this package provides all
// of them as values of type [Bound] which are checked at the
// point of call, usually once on entry to a function:
//
//	func pair[T tuple.Tuple](t T) {
//		tuplelen.Must(t, tuplelen.Range(1, 3))
//		...
//	}
//
// Unlike a compile-time bound, a violation is only found
// when the check runs.
package tuplelen

import (
	"errors"
	"fmt"
	"math"

	"github.com/rogpeppe/hlist/tuple"
)

// ErrBound is the error matched by all errors returned
// for length bound violations.
var ErrBound = errors.New("tuple length out of bounds")

// Bound is a constraint on a tuple length: the length must
// be in the half-open interval [lo, hi).
//
// The zero Bound admits no length.
type Bound struct {
	lo, hi int
	desc   string
}

// Eq returns the bound len == n.
func Eq(n int) Bound {
	return Bound{
		lo:   n,
		hi:   inc(n),
		desc: fmt.Sprintf("len == %d", n),
	}
}

// Ge returns the bound len >= n.
func Ge(n int) Bound {
	return Bound{
		lo:   n,
		hi:   math.MaxInt,
		desc: fmt.Sprintf("len >= %d", n),
	}
}

// Gt returns the bound len > n.
func Gt(n int) Bound {
	return Bound{
		lo:   inc(n),
		hi:   math.MaxInt,
		desc: fmt.Sprintf("len > %d", n),
	}
}

// Le returns the bound len <= n.
func Le(n int) Bound {
	return Bound{
		lo:   0,
		hi:   inc(n),
		desc: fmt.Sprintf("len <= %d", n),
	}
}

// Lt returns the bound len < n.
func Lt(n int) Bound {
	return Bound{
		lo:   0,
		hi:   n,
		desc: fmt.Sprintf("len < %d", n),
	}
}

// Range returns the bound lo <= len < hi.
// It is equivalent to Ge(lo).And(Lt(hi)).
func Range(lo, hi int) Bound {
	b := Ge(lo).And(Lt(hi))
	b.desc = fmt.Sprintf("%d <= len < %d", lo, hi)
	return b
}

// And returns the bound satisfied by lengths that
// satisfy both b and c.
func (b Bound) And(c Bound) Bound {
	return Bound{
		lo:   max(b.lo, c.lo),
		hi:   min(b.hi, c.hi),
		desc: b.String() + " && " + c.String(),
	}
}

// Contains reports whether n satisfies b.
func (b Bound) Contains(n int) bool {
	return n >= b.lo && n < b.hi
}

// Check returns an error if the length of t does not satisfy b.
func (b Bound) Check(t tuple.Tuple) error {
	return b.check(t.Len())
}

func (b Bound) check(n int) error {
	if b.Contains(n) {
		return nil
	}
	return &Error{
		Len:   n,
		Bound: b,
	}
}

func (b Bound) String() string {
	if b.desc == "" {
		return "false"
	}
	return b.desc
}

// Check returns an error if the length of tuples of type T
// does not satisfy all the given bounds. It does not
// need a tuple value, so T must be Unit or a Cons type
// rather than an interface type.
func Check[T tuple.Tuple](bounds ...Bound) error {
	return checkAll(tuple.LenOf[T](), bounds)
}

// Must returns t. It panics with an *Error if the
// length of t does not satisfy all the given bounds.
func Must[T tuple.Tuple](t T, bounds ...Bound) T {
	if err := checkAll(t.Len(), bounds); err != nil {
		panic(err)
	}
	return t
}

func checkAll(n int, bounds []Bound) error {
	for _, b := range bounds {
		if err := b.check(n); err != nil {
			return err
		}
	}
	return nil
}

// Error describes a tuple length that does not satisfy a bound.
type Error struct {
	Len   int
	Bound Bound
}

func (e *Error) Error() string {
	return fmt.Sprintf("tuple length %d does not satisfy %v", e.Len, e.Bound)
}

// Is reports whether target is ErrBound.
func (e *Error) Is(target error) bool {
	return target == ErrBound
}

// inc returns n+1 without overflowing.
func inc(n int) int {
	if n == math.MaxInt {
		return n
	}
	return n + 1
}
