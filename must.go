package aoc

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func Int(s string) int {
	return MustGet(strconv.Atoi(s))
}

// Ints parses the whitespace- or sep-separated integers in s.
// An empty sep splits on whitespace.
func Ints(s, sep string) []int {
	var fields []string
	if sep == "" {
		fields = strings.Fields(s)
	} else {
		fields = strings.Split(s, sep)
	}
	ns := make([]int, len(fields))
	for i, f := range fields {
		ns[i] = Int(strings.TrimSpace(f))
	}
	return ns
}

func DigVal(b byte) int {
	if b >= '0' && b <= '9' {
		return int(b - '0')
	}
	panic(fmt.Sprintf("bogus digit %q", string(b)))
}

// Or returns the first non-zero element of list, or else returns the zero T.
//
// This is the proposal from
// https://github.com/golang/go/issues/60204#issuecomment-1581245334.
func Or[T comparable](list ...T) T {
	var zero T
	for _, v := range list {
		if v != zero {
			return v
		}
	}
	return zero
}

func AbsInt[T constraints.Signed](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// Lines splits s on "\n". A trailing newline does not produce an empty
// last line.
func Lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
