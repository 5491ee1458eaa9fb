// Package lists compares two columns of location IDs.
package lists

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/lanternfish/aoc2024"
)

var ErrBadLine = errors.New("lists: line is not two integers")

// Parse splits lines of "a   b" into the left and right columns.
func Parse(input string) (left, right []int, err error) {
	for i, line := range aoc.Lines(input) {
		f := strings.Fields(line)
		if len(f) != 2 {
			return nil, nil, fmt.Errorf("%w: line %d: %q", ErrBadLine, i+1, line)
		}
		a, errA := strconv.Atoi(f[0])
		b, errB := strconv.Atoi(f[1])
		if err := errors.Join(errA, errB); err != nil {
			return nil, nil, fmt.Errorf("%w: line %d: %v", ErrBadLine, i+1, err)
		}
		left = append(left, a)
		right = append(right, b)
	}
	return left, right, nil
}

// Distance pairs the smallest of a with the smallest of b, and so on, and
// sums the differences of each pair. a and b are not modified.
func Distance[T constraints.Signed](a, b []T) T {
	if len(a) != len(b) {
		panic(fmt.Sprintf("lists: length mismatch %d != %d", len(a), len(b)))
	}
	a, b = slices.Clone(a), slices.Clone(b)
	slices.Sort(a)
	slices.Sort(b)
	var sum T
	for i := range a {
		sum += aoc.AbsInt(a[i], b[i])
	}
	return sum
}

// Similarity sums each value of a multiplied by the number of times it
// occurs in b.
func Similarity[T constraints.Integer](a, b []T) T {
	counts := map[T]T{}
	for _, v := range b {
		counts[v]++
	}
	var sum T
	for _, v := range a {
		sum += v * counts[v]
	}
	return sum
}

func TotalDistance(input string) int {
	l, r, err := Parse(input)
	aoc.MustDo(err)
	return Distance(l, r)
}

func SimilarityScore(input string) int {
	l, r, err := Parse(input)
	aoc.MustDo(err)
	return Similarity(l, r)
}
