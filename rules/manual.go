package rules

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lanternfish/aoc2024"
)

var (
	// ErrNoUpdates indicates the input lacks the blank line separating
	// rules from updates.
	ErrNoUpdates = errors.New("rules: no blank line before updates")
	// ErrBadRule indicates a rule line that is not two pages split by "|".
	ErrBadRule = errors.New("rules: malformed rule")
	// ErrBadPage indicates a page number that is not an integer.
	ErrBadPage = errors.New("rules: malformed page number")
)

// Manual is a parsed safety manual: the ordering rules and the updates to
// print.
type Manual struct {
	Rules   RuleSet
	Updates [][]int
}

// ParseManual parses "L|R" rule lines, a blank line, then one
// comma-separated update per line.
func ParseManual(text string) (*Manual, error) {
	ruleText, updateText, ok := strings.Cut(text, "\n\n")
	if !ok {
		return nil, ErrNoUpdates
	}
	m := &Manual{Rules: RuleSet{}}
	for i, line := range strings.Split(ruleText, "\n") {
		l, r, ok := strings.Cut(line, "|")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadRule, i+1, line)
		}
		left, err := page(l)
		if err != nil {
			return nil, err
		}
		right, err := page(r)
		if err != nil {
			return nil, err
		}
		m.Rules[Rule{left, right}] = struct{}{}
	}
	for _, line := range aoc.Lines(updateText) {
		var update []int
		for _, f := range strings.Split(line, ",") {
			n, err := page(f)
			if err != nil {
				return nil, err
			}
			update = append(update, n)
		}
		m.Updates = append(m.Updates, update)
	}
	return m, nil
}

func page(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadPage, s)
	}
	return n, nil
}

func MustParseManual(text string) *Manual {
	return aoc.MustGet(ParseManual(text))
}

// MiddleSum sums the middle page of every correctly ordered update.
func MiddleSum(input string) int {
	m := MustParseManual(input)
	sum := 0
	for _, u := range m.Updates {
		if IsConsistent(m.Rules, u) {
			sum += u[len(u)/2]
		}
	}
	return sum
}

// ReorderedMiddleSum fixes the order of every incorrectly ordered update
// and sums their middle pages.
func ReorderedMiddleSum(input string) int {
	m := MustParseManual(input)
	sum := 0
	for _, u := range m.Updates {
		if !IsConsistent(m.Rules, u) {
			fixed := Reorder(m.Rules, u)
			sum += fixed[len(fixed)/2]
		}
	}
	return sum
}
