package tuplegen

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/go-quicktest/qt"
)

const modulePath = "github.com/rogpeppe/hlist"

// TestBuildAtLimit checks that code generated at the largest
// permitted arity compiles. The generated packages are written
// inside this package's directory so that they belong to the
// main module and can import its packages.
func TestBuildAtLimit(t *testing.T) {
	if testing.Short() {
		t.Skip("compiling generated code is slow")
	}
	goCmd, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go command not available")
	}
	dir, err := os.MkdirTemp(".", "genbuild")
	qt.Assert(t, qt.IsNil(err))
	t.Cleanup(func() {
		os.RemoveAll(dir)
	})

	tupleSrc, err := Generate(KindTuple, Config{Max: Limit})
	qt.Assert(t, qt.IsNil(err))
	funcSrc, err := Generate(KindTupleFunc, Config{
		Max:         Limit,
		TupleImport: modulePath + "/internal/tuplegen/" + filepath.ToSlash(dir) + "/tuple",
	})
	qt.Assert(t, qt.IsNil(err))
	handWritten, err := os.ReadFile(filepath.Join("..", "..", "tuple", "tuple.go"))
	qt.Assert(t, qt.IsNil(err))

	writeFile(t, filepath.Join(dir, "tuple", "tuple.go"), handWritten)
	writeFile(t, filepath.Join(dir, "tuple", "tuple_gen.go"), tupleSrc)
	writeFile(t, filepath.Join(dir, "tuplefunc", "tuplefunc_gen.go"), funcSrc)

	cmd := exec.Command(goCmd, "build", "./"+filepath.ToSlash(dir)+"/...")
	out, err := cmd.CombinedOutput()
	qt.Assert(t, qt.IsNil(err), qt.Commentf("%s", out))
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	qt.Assert(t, qt.IsNil(os.MkdirAll(filepath.Dir(path), 0o777)))
	qt.Assert(t, qt.IsNil(os.WriteFile(path, data, 0o666)))
}
