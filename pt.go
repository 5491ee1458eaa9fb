package aoc

import "golang.org/x/exp/constraints"

type Pt2[T constraints.Signed] struct {
	X, Y T
}

type Pt = Pt2[int]

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] { return Pt2[T]{p.X + q.X, p.Y + q.Y} }
func (p Pt2[T]) Sub(q Pt2[T]) Pt2[T] { return Pt2[T]{p.X - q.X, p.Y - q.Y} }

// In reports whether p lies in [0,w)×[0,h).
func (p Pt2[T]) In(w, h T) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}

// ForNeighbors calls f with each of the 8 points around p, stopping
// early if f returns false.
func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

// Unit direction vectors. Y grows downward, as in puzzle text.
var (
	North     = Pt{0, -1}
	NorthEast = Pt{1, -1}
	East      = Pt{1, 0}
	SouthEast = Pt{1, 1}
	South     = Pt{0, 1}
	SouthWest = Pt{-1, 1}
	West      = Pt{-1, 0}
	NorthWest = Pt{-1, -1}
)

// Dirs8 is every unit direction, axis-aligned and diagonal.
var Dirs8 = dirs8()

func dirs8() []Pt {
	var ds []Pt
	Pt{}.ForNeighbors(func(d Pt) bool {
		ds = append(ds, d)
		return true
	})
	return ds
}

// NorthClockwise is the four cardinal directions, starting north and
// turning clockwise.
var NorthClockwise = []Pt{North, East, South, West}
