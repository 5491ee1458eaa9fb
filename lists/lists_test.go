package lists

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanternfish/aoc2024"
)

func fixture(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return aoc.TrimInput(string(b))
}

func TestParse(t *testing.T) {
	l, r, err := Parse(fixture(t, "sample.txt"))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 2, 1, 3, 3}, l)
	assert.Equal(t, []int{4, 3, 5, 3, 9, 3}, r)

	_, _, err = Parse("1 2\n3")
	assert.ErrorIs(t, err, ErrBadLine)
	_, _, err = Parse("1 two")
	assert.ErrorIs(t, err, ErrBadLine)
}

func TestDistance(t *testing.T) {
	a := []int{3, 1}
	b := []int{1, 5}
	assert.Equal(t, 2, Distance(a, b))
	assert.Equal(t, []int{3, 1}, a, "inputs stay unsorted")
	assert.Equal(t, int64(0), Distance([]int64{-2, 7}, []int64{7, -2}))
	assert.Panics(t, func() { Distance([]int{1}, nil) })
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 0, Similarity([]int{1, 2}, []int{3, 4}))
	assert.Equal(t, uint(12), Similarity([]uint{4}, []uint{4, 4, 4}))
}

func TestSample(t *testing.T) {
	in := fixture(t, "sample.txt")
	assert.Equal(t, 11, TotalDistance(in))
	assert.Equal(t, 31, SimilarityScore(in))
}
