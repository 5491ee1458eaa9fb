package grid

import "github.com/lanternfish/aoc2024"

// MatchDirection reports whether pattern appears in g starting at start
// and stepping by dir between symbols. It stops at the first mismatch;
// running off the grid is a mismatch.
func MatchDirection(g *Grid, start, dir aoc.Pt, pattern string) bool {
	p := start
	for i := 0; i < len(pattern); i++ {
		if g.GetPt(p) != pattern[i] {
			return false
		}
		p = p.Add(dir)
	}
	return true
}

// CountWord counts the (start, direction) pairs, over all 8 directions,
// at which word appears. Overlapping matches are all counted.
func CountWord(g *Grid, word string) int {
	n := 0
	g.Points(func(p aoc.Pt) {
		for _, d := range aoc.Dirs8 {
			if MatchDirection(g, p, d, word) {
				n++
			}
		}
	})
	return n
}

// MatchKernel reports whether kernel k matches g with its top-left cell
// at anchor. Sentinel cells in k match anything.
func MatchKernel(g *Grid, anchor aoc.Pt, k *Grid) bool {
	for ky := 0; ky < k.height; ky++ {
		for kx := 0; kx < k.width; kx++ {
			want := k.Get(kx, ky)
			if want == Sentinel {
				continue
			}
			if g.Get(anchor.X+kx, anchor.Y+ky) != want {
				return false
			}
		}
	}
	return true
}

// CountKernels counts the anchors at which each kernel matches, summed
// over kernels. Every cell of g is tried as an anchor.
func CountKernels(g *Grid, kernels ...*Grid) int {
	n := 0
	g.Points(func(p aoc.Pt) {
		for _, k := range kernels {
			if MatchKernel(g, p, k) {
				n++
			}
		}
	})
	return n
}

// Rotate returns k turned 90° clockwise.
func Rotate(k *Grid) *Grid {
	r := New(k.height, k.width)
	for y := 0; y < k.height; y++ {
		for x := 0; x < k.width; x++ {
			*r.At(k.height-1-y, x) = k.Get(x, y)
		}
	}
	return r
}

// Rotations returns k and its three clockwise rotations.
func Rotations(k *Grid) []*Grid {
	ks := []*Grid{k}
	for i := 0; i < 3; i++ {
		ks = append(ks, Rotate(ks[len(ks)-1]))
	}
	return ks
}
