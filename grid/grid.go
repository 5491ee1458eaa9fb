// Package grid is a rectangular buffer of single-byte cells built from
// newline-delimited text, with directional and stencil pattern matching.
//
// Reads outside the grid never fail: they return Sentinel, which no
// pattern symbol can equal, so scans stop at the edges on their own.
package grid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lanternfish/aoc2024"
)

// Sentinel is returned for out-of-bounds reads. In a kernel it marks a
// cell that matches anything.
const Sentinel = '.'

var (
	// ErrNoNewline indicates the text has a single line, so the width
	// cannot be inferred.
	ErrNoNewline = errors.New("grid: text has no newline")
	// ErrRagged indicates a line whose length differs from the first.
	ErrRagged = errors.New("grid: line length differs from first line")
)

// Grid is a width×height buffer of cells stored row-major.
type Grid struct {
	width, height int
	cells         []byte
}

// Parse builds a Grid from text. The width is the length of the first
// line and the height is the newline count plus one, so the text must not
// end with a newline.
func Parse(text string) (*Grid, error) {
	width := strings.IndexByte(text, '\n')
	if width < 0 {
		return nil, ErrNoNewline
	}
	height := strings.Count(text, "\n") + 1
	cells := make([]byte, 0, width*height)
	for y, line := range strings.Split(text, "\n") {
		if len(line) != width {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrRagged, y+1, len(line), width)
		}
		cells = append(cells, line...)
	}
	return &Grid{width: width, height: height, cells: cells}, nil
}

// MustParse is like Parse but panics on malformed text.
func MustParse(text string) *Grid {
	return aoc.MustGet(Parse(text))
}

// New returns a width×height grid filled with Sentinel.
func New(width, height int) *Grid {
	cells := make([]byte, width*height)
	for i := range cells {
		cells[i] = Sentinel
	}
	return &Grid{width: width, height: height, cells: cells}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) InBounds(x, y int) bool {
	return aoc.Pt{X: x, Y: y}.In(g.width, g.height)
}

// Get returns the cell at (x,y), or Sentinel if it is out of bounds.
func (g *Grid) Get(x, y int) byte {
	if !g.InBounds(x, y) {
		return Sentinel
	}
	return g.cells[x+y*g.width]
}

// GetPt is Get for a point.
func (g *Grid) GetPt(p aoc.Pt) byte { return g.Get(p.X, p.Y) }

// At returns a pointer to the cell at (x,y) for in-place updates, or nil
// if (x,y) is out of bounds.
func (g *Grid) At(x, y int) *byte {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.cells[x+y*g.width]
}

// Clone returns a copy of g that can be changed independently.
func (g *Grid) Clone() *Grid {
	return &Grid{width: g.width, height: g.height, cells: append([]byte(nil), g.cells...)}
}

// Count returns the number of cells holding sym.
func (g *Grid) Count(sym byte) int {
	n := 0
	for _, c := range g.cells {
		if c == sym {
			n++
		}
	}
	return n
}

// Points calls f with the coordinates of every cell, row by row.
func (g *Grid) Points(f func(p aoc.Pt)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			f(aoc.Pt{X: x, Y: y})
		}
	}
}

// String renders the grid in the text form Parse accepts.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(len(g.cells) + g.height)
	for y := 0; y < g.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(g.cells[y*g.width : (y+1)*g.width])
	}
	return sb.String()
}
