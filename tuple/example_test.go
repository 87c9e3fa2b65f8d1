package tuple_test

import (
	"fmt"

	"github.com/rogpeppe/hlist/tuple"
)

func Example() {
	t := tuple.New3(1, 2.0, "3")
	fmt.Println(t, t.Len())

	t4 := tuple.PushBack3(t, true)
	a, b, rest := tuple.Split2(t4)
	fmt.Println(a, b, rest)

	fmt.Println(tuple.Some3(t))

	// output:
	// (1, 2, 3) 3
	// 1 2 (3, true)
	// (Some(1), Some(2), Some(3))
}

func ExampleConcat2() {
	t := tuple.Concat2(tuple.New2("a", "b"), tuple.New3(1, 2, 3))
	fmt.Println(t, t.Len())

	// output:
	// (a, b, 1, 2, 3) 5
}

func ExamplePtrs2() {
	t := tuple.New2(1, "x")
	n, s := tuple.Unpack2(tuple.Ptrs2(&t))
	*n++
	*s += "y"
	fmt.Println(t)

	// output:
	// (2, xy)
}
