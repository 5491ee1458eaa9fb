// Package reports grades reactor safety reports: sequences of levels
// that must move steadily in one direction.
package reports

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lanternfish/aoc2024"
)

// Kind is why a report was graded the way it was.
type Kind int

const (
	Safe    Kind = iota
	TooSlow      // two adjacent levels are equal
	TooFast      // adjacent levels differ by more than 3
	Maxima       // levels were rising and then fell
	Minima       // levels were falling and then rose
)

func (k Kind) String() string {
	switch k {
	case Safe:
		return "Safe"
	case TooSlow:
		return "TooSlow"
	case TooFast:
		return "TooFast"
	case Maxima:
		return "Maxima"
	case Minima:
		return "Minima"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Grade is the result of grading a report. For an unsafe report, Index
// is the position of the first bad difference: it lies between levels
// Index and Index+1.
type Grade struct {
	Kind  Kind
	Index int
}

func (g Grade) String() string {
	if g.Kind == Safe {
		return "Safe"
	}
	return fmt.Sprintf("%v(%d)", g.Kind, g.Index)
}

// MaxStep is the largest safe change between adjacent levels.
const MaxStep = 3

// GradeReport grades levels. A report is safe when every adjacent
// difference is nonzero, at most MaxStep, and of the same sign.
func GradeReport(levels []int) Grade {
	var increasing, decreasing bool
	for i := 0; i+1 < len(levels); i++ {
		slope := levels[i+1] - levels[i]
		switch {
		case slope == 0:
			return Grade{TooSlow, i}
		case slope > 0:
			increasing = true
			if decreasing {
				return Grade{Minima, i}
			}
			if slope > MaxStep {
				return Grade{TooFast, i}
			}
		default:
			decreasing = true
			if increasing {
				return Grade{Maxima, i}
			}
			if slope < -MaxStep {
				return Grade{TooFast, i}
			}
		}
	}
	return Grade{Kind: Safe}
}

// Recover grades levels with one level removed, choosing which to remove
// from g: either end of the bad difference, or the level before it, whose
// difference set the direction. It returns the first safe grade found,
// or g if no single removal helps.
func Recover(levels []int, g Grade) Grade {
	if g.Kind == Safe {
		return g
	}
	for _, idx := range []int{g.Index + 1, g.Index, g.Index - 1} {
		if idx < 0 || idx >= len(levels) {
			continue
		}
		if retry := GradeReport(slices.Delete(slices.Clone(levels), idx, idx+1)); retry.Kind == Safe {
			return retry
		}
	}
	return g
}

func parse(input string) [][]int {
	var rs [][]int
	for _, line := range aoc.Lines(input) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rs = append(rs, aoc.Ints(line, ""))
	}
	return rs
}

// CountSafe counts the safe reports, one per line.
func CountSafe(input string) int {
	n := 0
	for _, r := range parse(input) {
		if GradeReport(r).Kind == Safe {
			n++
		}
	}
	return n
}

// CountSafeDampened counts the reports that are safe, or become safe with
// one level removed.
func CountSafeDampened(input string) int {
	n := 0
	for _, r := range parse(input) {
		if Recover(r, GradeReport(r)).Kind == Safe {
			n++
		}
	}
	return n
}
