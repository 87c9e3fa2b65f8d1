package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
)

func runCmd(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestTupleToStdout(t *testing.T) {
	stdout, _, err := runCmd(t, "tuple", "-n", "2")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.StringContains(stdout, "package tuple\n"))
	qt.Assert(t, qt.StringContains(stdout, "func Concat2["))
	qt.Assert(t, qt.IsFalse(strings.Contains(stdout, "func Concat3[")))
}

func TestTupleFuncToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "gen.go")
	stdout, stderr, err := runCmd(t, "tuplefunc", "-o", out, "-v", "--tuple-import", "example.com/tuple")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(stdout, ""))
	qt.Assert(t, qt.StringContains(stderr, "wrote file"))

	data, err := os.ReadFile(out)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.StringContains(string(data), `"example.com/tuple"`))
	qt.Assert(t, qt.StringContains(string(data), "func ToCRE_1_8["))
}

func TestEnvironment(t *testing.T) {
	t.Setenv("TUPLEGEN_MAX", "1")
	t.Setenv("TUPLEGEN_PACKAGE", "hlist")
	stdout, _, err := runCmd(t, "tuple")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.StringContains(stdout, "package hlist\n"))
	qt.Assert(t, qt.IsFalse(strings.Contains(stdout, "T2[")))
}

func TestFlagOverridesEnvironment(t *testing.T) {
	t.Setenv("TUPLEGEN_MAX", "1")
	stdout, _, err := runCmd(t, "tuple", "--max", "2")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.StringContains(stdout, "type T2["))
}

func TestInvalidMax(t *testing.T) {
	_, _, err := runCmd(t, "tuple", "-n", "0")
	// Zero selects the default.
	qt.Assert(t, qt.IsNil(err))

	_, _, err = runCmd(t, "tuple", "-n", "49")
	qt.Assert(t, qt.ErrorMatches(err, `invalid maximum arity: 49 is not in \[1, 48\]`))
}

func TestUnexpectedArgs(t *testing.T) {
	_, _, err := runCmd(t, "tuple", "extra")
	qt.Assert(t, qt.ErrorMatches(err, `unknown command "extra" for "tuplegen tuple"`))
}
