package tuplefunc_test

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/hlist/tuple"
	"github.com/rogpeppe/hlist/tuple/tuplefunc"
)

func TestToA(t *testing.T) {
	repeat := tuplefunc.ToA_2_1(strings.Repeat)
	qt.Assert(t, qt.Equals(repeat(tuple.New2("ab", 3)), "ababab"))
	qt.Assert(t, qt.Equals(tuplefunc.Apply(repeat, tuple.New2("x", 2)), "xx"))

	sum := tuplefunc.ToA_3_1(func(a, b, c int) int {
		return a + b + c
	})
	qt.Assert(t, qt.Equals(sum(tuple.New3(1, 2, 3)), 6))
}

func TestFromA(t *testing.T) {
	join := tuplefunc.FromA_2_1(func(t tuple.T2[string, string]) string {
		a, b := tuple.Unpack2(t)
		return a + "-" + b
	})
	qt.Assert(t, qt.Equals(join("x", "y"), "x-y"))
}

func TestToRFromR(t *testing.T) {
	cut := tuplefunc.ToR_1_3(func(s string) (string, string, bool) {
		return strings.Cut(s, "=")
	})
	qt.Assert(t, qt.Equals(cut("k=v"), tuple.New3("k", "v", true)))

	back := tuplefunc.FromR_1_3(cut)
	k, v, ok := back("a=b")
	qt.Assert(t, qt.Equals(k, "a"))
	qt.Assert(t, qt.Equals(v, "b"))
	qt.Assert(t, qt.IsTrue(ok))
}

func TestToRE(t *testing.T) {
	parse := tuplefunc.ToRE_1_1(strconv.Atoi)
	got, err := parse("42")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, tuple.New1(42)))

	_, err = parse("x")
	qt.Assert(t, qt.ErrorMatches(err, `strconv.Atoi: parsing "x": invalid syntax`))
}

func TestToCRE(t *testing.T) {
	f := tuplefunc.ToCRE_1_2(func(ctx context.Context, s string) (string, int, error) {
		if err := ctx.Err(); err != nil {
			return "", 0, err
		}
		return s, len(s), nil
	})
	got, err := f(context.Background(), "abc")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, tuple.New2("abc", 3)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = f(ctx, "abc")
	qt.Assert(t, qt.IsTrue(errors.Is(err, context.Canceled)))
}

func TestFromRE(t *testing.T) {
	split := tuplefunc.ToRE_1_2(func(s string) (string, string, error) {
		k, v, ok := strings.Cut(s, "=")
		if !ok {
			return "", "", errors.New("no separator")
		}
		return k, v, nil
	})
	back := tuplefunc.FromRE_1_2(split)
	k, v, err := back("k=v")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(k, "k"))
	qt.Assert(t, qt.Equals(v, "v"))

	_, _, err = back("kv")
	qt.Assert(t, qt.ErrorMatches(err, `no separator`))
}

func TestFromCRE(t *testing.T) {
	f := tuplefunc.FromCRE_1_1(func(ctx context.Context, n int) (tuple.T1[string], error) {
		if err := ctx.Err(); err != nil {
			return tuple.T1[string]{}, err
		}
		return tuple.New1(strconv.Itoa(n)), nil
	})
	s, err := f(context.Background(), 7)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(s, "7"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = f(ctx, 7)
	qt.Assert(t, qt.ErrorIs(err, context.Canceled))
}
