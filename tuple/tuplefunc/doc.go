// Package tuplefunc adapts functions with several parameters or
// several results so that they take or return a single tuple.
// A generic helper written for func(T) R can then be used with
// a function of any shape.
//
// Each generated function comes in a To/From pair:
//
//	ToA_N_1, FromA_N_1      func(A0, ..., An) R            <-> func(tuple.TN[A0, ..., An]) R
//	ToR_1_N, FromR_1_N      func(A) (R0, ..., Rn)          <-> func(A) tuple.TN[R0, ..., Rn]
//	ToRE_1_N, FromRE_1_N    func(A) (R0, ..., Rn, error)   <-> func(A) (tuple.TN[...], error)
//	ToCRE_1_N, FromCRE_1_N  as ToRE_1_N, FromRE_1_N with a leading context.Context
//
// A marks a tupled argument list, R a tupled result list, E a
// trailing error result that stays outside the tuple, and C a
// leading context.Context parameter that is passed through unchanged.
// The two numbers count the arguments and the results, not
// counting the context or the error. The To function always produces
// the tuple form and the From function undoes it.
//
// For example ToCRE_1_3 turns
//
//	func(context.Context, A) (R0, R1, R2, error)
//
// into
//
//	func(context.Context, A) (tuple.T3[R0, R1, R2], error)
//
// [Apply] calls a tuple-argument function with a tuple value.
package tuplefunc

//go:generate go run ../../cmd/tuplegen tuplefunc -o tuplefunc_gen.go
