// Package rules checks page-update sequences against pairwise ordering
// rules.
//
// A rule L|R means: if both L and R are in a sequence, L comes first.
// Rules about pages that are not in the sequence are ignored.
package rules

import "fmt"

type Rule struct {
	Left, Right int
}

// Contains reports whether n is either side of r.
func (r Rule) Contains(n int) bool { return r.Left == n || r.Right == n }

func (r Rule) String() string { return fmt.Sprintf("%d|%d", r.Left, r.Right) }

// RuleSet is a set of rules.
type RuleSet map[Rule]struct{}

func NewRuleSet(rules ...Rule) RuleSet {
	s := make(RuleSet, len(rules))
	for _, r := range rules {
		s[r] = struct{}{}
	}
	return s
}

func (s RuleSet) Has(r Rule) bool {
	_, ok := s[r]
	return ok
}

// ActiveRules returns the rules of s whose two pages both occur in seq,
// whether or not seq currently honors them. Candidate pairs are taken in
// both orders.
func ActiveRules(s RuleSet, seq []int) RuleSet {
	active := RuleSet{}
	for i, a := range seq {
		for j, b := range seq {
			if i == j {
				continue
			}
			if r := (Rule{a, b}); s.Has(r) {
				active[r] = struct{}{}
			}
		}
	}
	return active
}

// PartialRules returns the rules of s with n on either side.
func PartialRules(s RuleSet, n int) []Rule {
	var rs []Rule
	for r := range s {
		if r.Contains(n) {
			rs = append(rs, r)
		}
	}
	return rs
}

// CheckRule reports whether the page at seq[idx] satisfies r. If it is
// r.Left, r.Right must appear at or after idx; if it is r.Right, r.Left
// must appear before idx. The search runs toward where the partner should
// be, so an ordered sequence finds it quickly.
//
// CheckRule panics if seq[idx] is on neither side of r.
func CheckRule(r Rule, seq []int, idx int) bool {
	n := seq[idx]
	switch n {
	case r.Left:
		for i := idx; i < len(seq); i++ {
			if seq[i] == r.Right {
				return true
			}
		}
	case r.Right:
		for i := idx - 1; i >= 0; i-- {
			if seq[i] == r.Left {
				return true
			}
		}
	default:
		panic(fmt.Sprintf("rules: page %d is not in rule %v", n, r))
	}
	return false
}

// IsConsistent reports whether seq honors every rule in s that applies
// to it.
//
// An active rule always has its partner page somewhere in seq, so a
// search that fails to find it is a genuine ordering violation.
func IsConsistent(s RuleSet, seq []int) bool {
	active := ActiveRules(s, seq)
	for idx, n := range seq {
		for _, r := range PartialRules(active, n) {
			if !CheckRule(r, seq, idx) {
				return false
			}
		}
	}
	return true
}

// Reorder returns seq reordered so that it honors s. It places pages
// one at a time, each time taking the earliest remaining page that no
// remaining page must precede, so pages with no rule between them keep
// their relative order.
//
// Reorder panics if the active rules of seq form a cycle.
func Reorder(s RuleSet, seq []int) []int {
	active := ActiveRules(s, seq)
	placed := make([]bool, len(seq))
	out := make([]int, 0, len(seq))
	for len(out) < len(seq) {
		next := -1
		for i := range seq {
			if !placed[i] && !blocked(active, seq, placed, i) {
				next = i
				break
			}
		}
		if next < 0 {
			panic(fmt.Sprintf("rules: ordering rules for %v form a cycle", seq))
		}
		placed[next] = true
		out = append(out, seq[next])
	}
	return out
}

// blocked reports whether some unplaced page of seq must come before
// seq[i].
func blocked(active RuleSet, seq []int, placed []bool, i int) bool {
	for j, p := range seq {
		if j != i && !placed[j] && active.Has(Rule{p, seq[i]}) {
			return true
		}
	}
	return false
}
