// Package antenna finds the antinodes produced by pairs of same-frequency
// antennas on a city map.
package antenna

import (
	"github.com/lanternfish/aoc2024"
	"github.com/lanternfish/aoc2024/grid"
)

const antinode = '#'

// Stations groups antenna positions by frequency. Every cell other than
// grid.Sentinel is an antenna.
func Stations(g *grid.Grid) map[byte][]aoc.Pt {
	st := map[byte][]aoc.Pt{}
	g.Points(func(p aoc.Pt) {
		if f := g.GetPt(p); f != grid.Sentinel {
			st[f] = append(st[f], p)
		}
	})
	return st
}

// pairs calls f with every ordered pair of distinct same-frequency antennas.
func pairs(st map[byte][]aoc.Pt, f func(a, b aoc.Pt)) {
	for _, ps := range st {
		for i, a := range ps {
			for j, b := range ps {
				if i != j {
					f(a, b)
				}
			}
		}
	}
}

// Antinode returns the point beyond b, as far from b as b is from a.
// It panics if a == b; one antenna makes no antinode.
func Antinode(a, b aoc.Pt) aoc.Pt {
	if a == b {
		panic("antenna: antinode of a single antenna")
	}
	return b.Add(b.Sub(a))
}

// mark sets the cell at p, if it is on the map.
func mark(m *grid.Grid, p aoc.Pt) bool {
	c := m.At(p.X, p.Y)
	if c == nil {
		return false
	}
	*c = antinode
	return true
}

// Antinodes counts the distinct on-map antinodes.
func Antinodes(input string) int {
	city := grid.MustParse(input)
	m := grid.New(city.Width(), city.Height())
	pairs(Stations(city), func(a, b aoc.Pt) {
		mark(m, Antinode(a, b))
	})
	return m.Count(antinode)
}

// Harmonics counts the distinct on-map points in line with any pair of
// same-frequency antennas at whole multiples of their spacing, the
// antennas themselves included.
func Harmonics(input string) int {
	city := grid.MustParse(input)
	m := grid.New(city.Width(), city.Height())
	pairs(Stations(city), func(a, b aoc.Pt) {
		step := b.Sub(a)
		for p := b; mark(m, p); p = p.Add(step) {
		}
	})
	return m.Count(antinode)
}
