// Package aoc is the harness for the Advent of Code 2024 solvers: a
// puzzle registry, sample verification from doc comments, input loading
// and the small point and parsing helpers shared by the day packages.
package aoc

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"runtime"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/maps"
)

// Puzzle is one registered part of one day.
type Puzzle struct {
	Day   int
	Part  int
	Name  string // func name, e.g. "day4p2"
	Solve func(input string) any
}

// Registry holds puzzles by name, in registration order.
type Registry struct {
	puzzles []Puzzle
	byName  map[string]Puzzle
}

var std = &Registry{}

// ErrNoInputs is returned by Runner.Run when the Runner has no InputSource.
var ErrNoInputs = errors.New("aoc: runner has no input source")

var nameRx = regexp.MustCompile(`^day(\d+)p(\d+)$`)

func funcName(f func(string) any) string {
	rv := reflect.ValueOf(f)
	rf := runtime.FuncForPC(rv.Pointer())
	if rf == nil {
		panic("no func found")
	}
	name := rf.Name()
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// Add registers each puzzle func. The funcs must be named dayNpM
// (e.g. day5p1); the day and part are taken from the name.
func (r *Registry) Add(puzFuncs ...func(string) any) {
	if r.byName == nil {
		r.byName = map[string]Puzzle{}
	}
	for _, f := range puzFuncs {
		name := funcName(f)
		m := nameRx.FindStringSubmatch(name)
		if m == nil {
			panic(fmt.Sprintf("puzzle func %q not named dayNpM", name))
		}
		if _, dup := r.byName[name]; dup {
			panic(fmt.Sprintf("puzzle func %q registered twice", name))
		}
		p := Puzzle{Day: Int(m[1]), Part: Int(m[2]), Name: name, Solve: f}
		r.puzzles = append(r.puzzles, p)
		r.byName[name] = p
	}
}

// Add registers puzzle funcs with the default registry.
func Add(puzFuncs ...func(string) any) { std.Add(puzFuncs...) }

// Default returns the registry used by Add.
func Default() *Registry { return std }

// Lookup returns the puzzle registered under name.
func (r *Registry) Lookup(name string) (Puzzle, bool) {
	p, ok := r.byName[name]
	return p, ok
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	set := map[int]bool{}
	for _, p := range r.puzzles {
		set[p.Day] = true
	}
	days := maps.Keys(set)
	slices.Sort(days)
	return days
}

// Parts returns the parts of day ordered by part number.
func (r *Registry) Parts(day int) []Puzzle {
	var ps []Puzzle
	for _, p := range r.puzzles {
		if p.Day == day {
			ps = append(ps, p)
		}
	}
	slices.SortFunc(ps, func(a, b Puzzle) int { return a.Part - b.Part })
	return ps
}

// Result is the answer to one part.
type Result struct {
	Day, Part int
	Value     any
	Elapsed   time.Duration
}

func (r Result) String() string {
	return fmt.Sprintf("Day %d Part %d result: %v", r.Day, r.Part, r.Value)
}

// Runner solves registered puzzles.
type Runner struct {
	Registry *Registry
	Samples  map[string]Sample
	Inputs   InputSource
	Logger   *zap.Logger
	Out      io.Writer // results are printed here if non-nil

	// VerifySamples makes every part with a sample check its answer
	// against want= before the real input is loaded.
	VerifySamples bool
}

// Run solves the given days in ascending order, or every registered day
// if none are given.
func (r *Runner) Run(days ...int) ([]Result, error) {
	reg := Or(r.Registry, std)
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if r.Inputs == nil {
		return nil, ErrNoInputs
	}
	if len(days) == 0 {
		days = reg.Days()
	} else {
		days = slices.Clone(days)
		slices.Sort(days)
	}

	var results []Result
	for _, day := range days {
		parts := reg.Parts(day)
		if len(parts) == 0 {
			return results, fmt.Errorf("no puzzles registered for day %d", day)
		}
		log.Debug("running day", zap.Int("day", day), zap.Int("parts", len(parts)))

		var (
			input  string
			loaded bool
		)
		for _, p := range parts {
			if r.VerifySamples {
				if err := r.verify(log, p); err != nil {
					return results, err
				}
			}
			if !loaded {
				raw, err := r.Inputs.Input(day)
				if err != nil {
					return results, fmt.Errorf("day %d input: %w", day, err)
				}
				input, loaded = TrimInput(string(raw)), true
			}
			t0 := time.Now()
			v := p.Solve(input)
			res := Result{Day: day, Part: p.Part, Value: v, Elapsed: time.Since(t0)}
			log.Info("solved",
				zap.String("puzzle", p.Name),
				zap.Any("value", v),
				zap.Duration("took", res.Elapsed.Round(time.Microsecond)))
			if r.Out != nil {
				fmt.Fprintln(r.Out, res)
			}
			results = append(results, res)
		}
	}
	return results, nil
}

func (r *Runner) verify(log *zap.Logger, p Puzzle) error {
	s, ok := r.Samples[p.Name]
	if !ok {
		log.Warn("no sample", zap.String("puzzle", p.Name))
		return nil
	}
	got := fmt.Sprint(p.Solve(TrimInput(s.Input)))
	if got != s.Want {
		return fmt.Errorf("%v sample: got=%v; want %v", p.Name, got, s.Want)
	}
	log.Debug("sample ok", zap.String("puzzle", p.Name), zap.String("value", got))
	return nil
}

// TrimInput strips the trailing newline(s) that puzzle inputs are
// delivered with; the solvers expect the last line unterminated.
func TrimInput(s string) string {
	return strings.TrimRight(s, "\n")
}
