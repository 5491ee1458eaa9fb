package guard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanternfish/aoc2024"
	"github.com/lanternfish/aoc2024/grid"
)

func fixture(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return aoc.TrimInput(string(b))
}

func TestParse(t *testing.T) {
	lab, err := Parse(fixture(t, "sample.txt"))
	require.NoError(t, err)
	assert.Equal(t, Guard{Pos: aoc.Pt{X: 4, Y: 6}, Facing: FacingNorth}, lab.Start())
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse("..\n.X")
	assert.ErrorIs(t, err, ErrBadTile)

	_, err = Parse("^.\n.^")
	assert.ErrorIs(t, err, ErrBadTile)

	_, err = Parse("..\n.#")
	assert.ErrorIs(t, err, ErrNoGuard)

	_, err = Parse("..^")
	assert.ErrorIs(t, err, grid.ErrNoNewline)

	assert.Panics(t, func() { MustParse("..\n.X") })
}

func TestFacing_Turn(t *testing.T) {
	f := FacingNorth
	var deltas []aoc.Pt
	for i := 0; i < 4; i++ {
		deltas = append(deltas, f.Delta())
		f = f.Turn()
	}
	assert.Equal(t, FacingNorth, f)
	assert.Equal(t, []aoc.Pt{aoc.North, aoc.East, aoc.South, aoc.West}, deltas)
}

func TestStep(t *testing.T) {
	lab := MustParse("#.\n^.")
	g := lab.Start()

	assert.Equal(t, Turned, Step(lab, &g))
	assert.Equal(t, Guard{Pos: aoc.Pt{X: 0, Y: 1}, Facing: FacingEast}, g)

	assert.Equal(t, Moved, Step(lab, &g))
	assert.Equal(t, aoc.Pt{X: 1, Y: 1}, g.Pos)

	assert.Equal(t, Left, Step(lab, &g))
	assert.Equal(t, aoc.Pt{X: 1, Y: 1}, g.Pos, "leaving does not move the guard")
}

func TestWalk_Sample(t *testing.T) {
	assert.Equal(t, 41, Visited(fixture(t, "sample.txt")))
}

func TestWalk_StraightOut(t *testing.T) {
	// Revisits are impossible on a straight walk; the start counts.
	assert.Equal(t, 3, Visited("...\n...\n.^."))
}

func TestWalk_Loop(t *testing.T) {
	boxed := MustParse(".#.\n#^#\n.#.")
	assert.PanicsWithError(t, ErrLoop.Error(), func() { Walk(boxed) })

	circuit := ".#...\n....#\n.^...\n#....\n...#."
	assert.True(t, Loops(MustParse(circuit)))
	assert.PanicsWithError(t, ErrLoop.Error(), func() { Visited(circuit) })
}

func TestLoops(t *testing.T) {
	lab := MustParse(fixture(t, "sample.txt"))
	assert.False(t, Loops(lab))
	assert.True(t, Loops(lab.WithObstacle(aoc.Pt{X: 3, Y: 6})))
	assert.False(t, Loops(lab), "WithObstacle must not change the original")

	boxed := MustParse(".#.\n#^#\n.#.")
	assert.True(t, Loops(boxed))
}

func TestLoopObstructions_Sample(t *testing.T) {
	assert.Equal(t, 6, LoopObstructions(fixture(t, "sample.txt")))
}
