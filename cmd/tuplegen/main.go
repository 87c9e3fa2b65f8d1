// The tuplegen command generates the per-length code
// of the tuple and tuplefunc packages. It is run by
// go generate:
//
//	tuplegen tuple -o tuple_gen.go
//	tuplegen tuplefunc -o tuplefunc_gen.go
//
// Flags may also be set with TUPLEGEN_* environment variables,
// for example TUPLEGEN_MAX=12.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

// Version is set via -ldflags.
var Version = "dev"

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(Version),
	); err != nil {
		os.Exit(1)
	}
}
