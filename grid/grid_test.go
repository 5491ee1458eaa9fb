package grid

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanternfish/aoc2024"
)

func fixture(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	if os.IsNotExist(err) && name == "input.txt" {
		t.Skip("no puzzle input in testdata")
	}
	require.NoError(t, err)
	return aoc.TrimInput(string(b))
}

func TestParse_Dimensions(t *testing.T) {
	g, err := Parse("abc\ndef")
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, byte('e'), g.Get(1, 1))
	assert.Equal(t, byte('c'), g.Get(2, 0))
}

func TestParse_NoNewline(t *testing.T) {
	_, err := Parse("abcdef")
	require.ErrorIs(t, err, ErrNoNewline)
	assert.Panics(t, func() { MustParse("abcdef") })
}

func TestParse_Ragged(t *testing.T) {
	_, err := Parse("abc\nde\nfgh")
	require.ErrorIs(t, err, ErrRagged)
	assert.Contains(t, err.Error(), "line 2")

	// A trailing newline leaves an empty last line.
	_, err = Parse("abc\ndef\n")
	require.ErrorIs(t, err, ErrRagged)
}

func TestGet_OutOfBoundsIsSentinel(t *testing.T) {
	g := MustParse(fixture(t, "sample.txt"))
	for _, p := range []aoc.Pt{
		{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 10, Y: 0}, {X: 0, Y: 10},
		{X: -5, Y: -5}, {X: 100, Y: 3}, {X: 3, Y: 100}, {X: 10, Y: 10},
	} {
		assert.Equal(t, byte(Sentinel), g.GetPt(p), "at %v", p)
		assert.Nil(t, g.At(p.X, p.Y), "At %v", p)
	}
}

func TestRoundTrip(t *testing.T) {
	text := fixture(t, "sample.txt")
	g := MustParse(text)
	lines := strings.Split(text, "\n")
	for y, line := range lines {
		for x := 0; x < len(line); x++ {
			require.Equal(t, line[x], g.Get(x, y), "at (%d,%d)", x, y)
		}
	}
	assert.Equal(t, text, g.String())
}

func TestNewAndAt(t *testing.T) {
	g := New(4, 3)
	assert.Equal(t, 12, g.Count(Sentinel))
	*g.At(3, 2) = '#'
	*g.At(0, 0) = '#'
	assert.Equal(t, 2, g.Count('#'))
	assert.Equal(t, "#...\n....\n...#", g.String())
}
