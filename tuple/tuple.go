package tuple

import (
	"fmt"
	"strings"
)

// Tuple is implemented by [Unit] and all instances of [Cons].
// It cannot be implemented outside this package.
type Tuple interface {
	// Len returns the number of values in the tuple.
	Len() int

	// IsEmpty reports whether the tuple holds no values.
	IsEmpty() bool

	// Values returns all the values in the tuple, in order.
	Values() []any

	// String formats the tuple as a parenthesized,
	// comma-separated list.
	String() string

	appendValues(dst []any) []any
}

// Unit is the empty tuple. All Unit values are identical.
type Unit struct{}

// T0 is the tuple type holding no values.
type T0 = Unit

func (Unit) Len() int {
	return 0
}

func (Unit) IsEmpty() bool {
	return true
}

func (Unit) Values() []any {
	return nil
}

func (Unit) String() string {
	return "()"
}

func (Unit) appendValues(dst []any) []any {
	return dst
}

// Cons is a non-empty tuple: Head holds the first
// value and Tail holds the rest of the tuple.
//
// T should be either Unit or another Cons type;
// instantiating it with an interface type such
// as Tuple produces a type whose zero value
// is not a valid tuple.
type Cons[H any, T Tuple] struct {
	Head H
	Tail T
}

func (c Cons[H, T]) Len() int {
	return 1 + c.Tail.Len()
}

func (c Cons[H, T]) IsEmpty() bool {
	return false
}

func (c Cons[H, T]) Values() []any {
	return c.appendValues(make([]any, 0, c.Len()))
}

func (c Cons[H, T]) appendValues(dst []any) []any {
	return c.Tail.appendValues(append(dst, c.Head))
}

func (c Cons[H, T]) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, v := range c.Values() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, v)
	}
	b.WriteByte(')')
	return b.String()
}

// Split returns the first value in the tuple and
// the tuple holding the rest of the values.
func (c Cons[H, T]) Split() (H, T) {
	return c.Head, c.Tail
}

// LenOf returns the length of any tuple of type T.
func LenOf[T Tuple]() int {
	var t T
	return t.Len()
}

// PushFront returns the tuple holding v followed by
// all the values in t.
func PushFront[V any, T Tuple](t T, v V) Cons[V, T] {
	return Cons[V, T]{
		Head: v,
		Tail: t,
	}
}

// New0 returns the empty tuple.
func New0() Unit {
	return Unit{}
}

// Concat0 returns r: the empty tuple is
// the identity for concatenation.
func Concat0[R Tuple](_ Unit, r R) R {
	return r
}

// PushBack0 returns the tuple holding only a0.
func PushBack0[A0 any](_ Unit, a0 A0) T1[A0] {
	return New1(a0)
}

// Refs0 returns the empty tuple.
func Refs0(*Unit) Unit {
	return Unit{}
}

// Ptrs0 returns the empty tuple.
func Ptrs0(*Unit) Unit {
	return Unit{}
}

// Deref0 returns the empty tuple.
func Deref0(Unit) Unit {
	return Unit{}
}

// Some0 returns the empty tuple.
func Some0(Unit) Unit {
	return Unit{}
}

// Ok0 returns the empty tuple.
func Ok0[E any](Unit) Unit {
	return Unit{}
}

// Compare0 returns 0: all empty tuples are equal.
func Compare0(_, _ Unit) int {
	return 0
}

// CompareFunc0 returns 0. It takes no comparison functions.
func CompareFunc0(_, _ Unit) int {
	return 0
}

// Ref is a read-only reference to a value.
// The zero Ref refers to nothing.
type Ref[T any] struct {
	p *T
}

// RefTo returns a reference to the value that p points to.
func RefTo[T any](p *T) Ref[T] {
	return Ref[T]{p}
}

// Value returns the current value that r refers to.
// It panics if r is the zero Ref.
func (r Ref[T]) Value() T {
	if r.p == nil {
		panic("tuple.Ref.Value called on zero Ref")
	}
	return *r.p
}

func (r Ref[T]) String() string {
	if r.p == nil {
		return "<nil>"
	}
	return fmt.Sprintf("&%v", *r.p)
}
