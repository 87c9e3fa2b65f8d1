// Package result provides a value type that holds either
// a success value or a failure value.
package result

import "fmt"

// Result holds either a success value of type T
// or a failure value of type E.
//
// Unlike the usual (T, error) return pair, E can be
// any type chosen by the caller. The zero value is a failure
// holding the zero E. A Result is comparable when both
// T and E are.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok returns a successful Result holding v.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		value: v,
		ok:    true,
	}
}

// Err returns a failed Result holding e.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{
		err: e,
	}
}

// IsOk reports whether r holds a success value.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr reports whether r holds a failure value.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Value returns the success value and reports whether
// there is one.
func (r Result[T, E]) Value() (T, bool) {
	return r.value, r.ok
}

// Err returns the failure value and reports whether
// there is one.
func (r Result[T, E]) Err() (E, bool) {
	return r.err, !r.ok
}

// Get returns both halves of r. Exactly one of
// them is meaningful, according to ok.
func (r Result[T, E]) Get() (v T, e E, ok bool) {
	return r.value, r.err, r.ok
}

// Must returns the success value.
// It panics if r holds a failure.
func (r Result[T, E]) Must() T {
	if !r.ok {
		panic(fmt.Sprintf("result.Must called on Err(%v)", r.err))
	}
	return r.value
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}
