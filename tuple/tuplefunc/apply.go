package tuplefunc

import "github.com/rogpeppe/hlist/tuple"

// Apply calls f with the tuple t. Combined with the ToA
// functions it calls a multiple-argument function with
// the values held by a tuple:
//
//	Apply(ToA_2_1(strings.Repeat), tuple.New2("ab", 3))
func Apply[T tuple.Tuple, R any](f func(T) R, t T) R {
	return f(t)
}
