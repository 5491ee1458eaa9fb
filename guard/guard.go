// Package guard simulates a guard patrolling a lab map: walk forward,
// turn right at obstacles, stop on leaving the map.
package guard

import (
	"errors"
	"fmt"

	"github.com/lanternfish/aoc2024"
	"github.com/lanternfish/aoc2024/grid"
)

const (
	Open     = '.'
	Obstacle = '#'
	Start    = '^'
)

var (
	ErrBadTile = errors.New("guard: unexpected tile")
	ErrNoGuard = errors.New("guard: no guard on map")
	ErrLoop    = errors.New("guard: patrol never leaves the map")
)

// Facing is one of the four cardinal directions, in clockwise order.
type Facing int

const (
	FacingNorth Facing = iota
	FacingEast
	FacingSouth
	FacingWest
)

func (f Facing) Delta() aoc.Pt { return aoc.NorthClockwise[f] }

// Turn returns the facing 90° clockwise from f.
func (f Facing) Turn() Facing { return (f + 1) % 4 }

func (f Facing) String() string {
	return [...]string{"north", "east", "south", "west"}[f]
}

type Guard struct {
	Pos    aoc.Pt
	Facing Facing
}

// Lab is the map the guard walks. Its grid holds only Open and Obstacle
// tiles; the guard's start tile is stored as Open.
type Lab struct {
	tiles *grid.Grid
	start Guard
}

// Parse reads a lab map of '.', '#' and a single '^' marking the guard,
// who starts facing north.
func Parse(text string) (*Lab, error) {
	g, err := grid.Parse(text)
	if err != nil {
		return nil, err
	}
	lab := &Lab{tiles: g}
	found := false
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			switch c := g.At(x, y); *c {
			case Open, Obstacle:
			case Start:
				if found {
					return nil, fmt.Errorf("%w: second guard at (%d,%d)", ErrBadTile, x, y)
				}
				found = true
				lab.start = Guard{Pos: aoc.Pt{X: x, Y: y}, Facing: FacingNorth}
				*c = Open
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadTile, *c, x, y)
			}
		}
	}
	if !found {
		return nil, ErrNoGuard
	}
	return lab, nil
}

func MustParse(text string) *Lab {
	return aoc.MustGet(Parse(text))
}

// Start returns the guard as placed on the map.
func (l *Lab) Start() Guard { return l.start }

// WithObstacle returns a copy of l with an extra obstacle at p. The guard
// start is unchanged.
func (l *Lab) WithObstacle(p aoc.Pt) *Lab {
	g := l.tiles.Clone()
	if c := g.At(p.X, p.Y); c != nil {
		*c = Obstacle
	}
	return &Lab{tiles: g, start: l.start}
}

// StepResult is the outcome of one Step.
type StepResult int

const (
	Moved  StepResult = iota // stepped onto the next tile
	Turned                   // blocked; turned right without moving
	Left                     // the next tile is off the map; the walk is over
)

// Step advances g one transition on l.
func Step(l *Lab, g *Guard) StepResult {
	next := g.Pos.Add(g.Facing.Delta())
	if !l.tiles.InBounds(next.X, next.Y) {
		return Left
	}
	if l.tiles.GetPt(next) == Obstacle {
		g.Facing = g.Facing.Turn()
		return Turned
	}
	g.Pos = next
	return Moved
}

// patrol runs the guard from l's start, calling visit (if non-nil) with
// the guard after every move. It returns true if the guard loops, false
// once it leaves the map.
func patrol(l *Lab, visit func(Guard)) (loops bool) {
	g := l.start
	turns := map[Guard]bool{}
	for {
		switch Step(l, &g) {
		case Left:
			return false
		case Moved:
			if visit != nil {
				visit(g)
			}
		case Turned:
			// Every cycle turns, so turn states are enough to find one.
			if turns[g] {
				return true
			}
			turns[g] = true
		}
	}
}

// Walk runs the guard from its start until it leaves the map and returns
// the set of tiles it stood on, including the start. It panics with
// ErrLoop if the guard never leaves.
func Walk(l *Lab) map[aoc.Pt]bool {
	visited := map[aoc.Pt]bool{l.start.Pos: true}
	if patrol(l, func(g Guard) { visited[g.Pos] = true }) {
		panic(ErrLoop)
	}
	return visited
}

// Loops reports whether the guard, starting from l's start, walks forever.
// A guard that repeats a position and facing is in a loop.
func Loops(l *Lab) bool {
	return patrol(l, nil)
}

// Visited counts the distinct tiles the guard stands on before leaving.
func Visited(input string) int {
	return len(Walk(MustParse(input)))
}

// LoopObstructions counts the tiles where one added obstacle would trap
// the guard in a loop. The guard's start tile is not a candidate, and
// tiles off the guard's original path cannot change it.
func LoopObstructions(input string) int {
	lab := MustParse(input)
	n := 0
	for p := range Walk(lab) {
		if p == lab.start.Pos {
			continue
		}
		if Loops(lab.WithObstacle(p)) {
			n++
		}
	}
	return n
}
