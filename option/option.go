// Package option provides a value type that either holds
// a value or holds nothing.
package option

import "fmt"

// Option holds either a value of type T (it is "some")
// or nothing (it is "none").
//
// The zero value is none. An Option is comparable
// when T is.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{
		value: v,
		ok:    true,
	}
}

// None returns an Option holding nothing.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value held by o and reports
// whether there is one.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether o holds nothing.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Value returns the value held by o.
// It panics if o is none.
func (o Option[T]) Value() T {
	if !o.ok {
		panic("option.Value called on None")
	}
	return o.value
}

// Or returns the value held by o, or def if o is none.
func (o Option[T]) Or(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
