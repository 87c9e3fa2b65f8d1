// Package tuple implements heterogeneous tuples as
// recursive generic lists.
//
// A tuple is either [Unit], the empty tuple, or a [Cons],
// which holds one value (the head) and the tuple holding
// the remaining values (the tail). The type of a tuple spells
// out the type of every value it holds, so a tuple's length
// and element types are fixed when the program is compiled.
//
// For example the tuple holding 1, 2.0 and "3" has type
//
//	Cons[int, Cons[float64, Cons[string, Unit]]]
//
// which can be written more briefly using the alias
// T3[int, float64, string], and constructed with
// New3(1, 2.0, "3").
//
// Tuples are ordinary values: they are copied on assignment,
// they are comparable with == when all their elements are,
// and their zero value holds the zero value of every element.
//
// Go methods cannot have their own type parameters, so
// operations whose result type depends on the shape of
// the tuple are provided as one function per length, from
// 0 to 8: New3, Unpack3 and Concat3 all operate on tuples
// holding three values. Operations that do not depend on
// the shape, such as [PushFront] and the right hand operand
// of Concat3, work for tuples of any length.
//
// Ordering is provided by CompareN for tuples of ordered
// values and by CompareFuncN, which takes one comparison
// function per element, for any other element types,
// including nested tuples.
//
// Destructuring comes in three forms: UnpackN requires
// exactly N values, SplitN returns the first N values and
// the tuple holding the rest, and PrefixN returns the first
// N values and ignores the rest, which may be empty.
//
// # Length bounds
//
// A function can require a minimum tuple length by taking a
// parameter of type AtLeastN, and an exact length by taking TN:
//
//	func second[A0, A1 any, R tuple.Tuple](t tuple.AtLeast2[A0, A1, R]) A1
//
// Calls with a shorter tuple fail to compile. Upper bounds
// cannot be expressed in Go's type system; see the tuplelen
// package for checks of all the length relations made when
// the program runs.
//
// # References
//
// RefsN returns a tuple of [Ref] values, which permit reading
// but not writing the original elements; PtrsN returns a tuple
// of pointers, which permit both. Go does not stop a pointer
// view from being used at the same time as other views of the
// same tuple: callers must avoid writing through a pointer view
// while any other view of the tuple is in use.
package tuple

//go:generate go run ../cmd/tuplegen tuple -o tuple_gen.go
