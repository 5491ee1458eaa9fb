package reports

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

func TestGradeReport(t *testing.T) {
	tests := []struct {
		levels []int
		want   Grade
	}{
		{[]int{7, 6, 4, 2, 1}, Grade{Kind: Safe}},
		{[]int{1, 2, 7, 8, 9}, Grade{TooFast, 1}},
		{[]int{9, 7, 6, 2, 1}, Grade{TooFast, 2}},
		{[]int{1, 3, 2, 4, 5}, Grade{Maxima, 1}},
		{[]int{8, 6, 4, 4, 1}, Grade{TooSlow, 2}},
		{[]int{1, 3, 6, 7, 9}, Grade{Kind: Safe}},
		{[]int{5, 3, 4}, Grade{Minima, 1}},
		{[]int{5}, Grade{Kind: Safe}},
		{nil, Grade{Kind: Safe}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeReport(tt.levels), "levels %v", tt.levels)
	}
}

func TestGrade_String(t *testing.T) {
	assert.Equal(t, "Safe", Grade{Kind: Safe, Index: 4}.String())
	assert.Equal(t, "Maxima(1)", Grade{Maxima, 1}.String())
}

func TestRecover(t *testing.T) {
	tests := []struct {
		name   string
		levels []int
		safe   bool
	}{
		{"drop the high end of a jump", []int{1, 3, 2, 4, 5}, true},
		{"drop a repeated level", []int{8, 6, 4, 4, 1}, true},
		{"too many jumps", []int{1, 2, 7, 8, 9}, false},
		{"drop the peak", []int{5, 8, 4, 3, 1}, true},
		{"drop the far end of the first difference", []int{5, 9, 6, 7, 8}, true},
		{"first difference set the wrong direction", []int{3, 2, 4, 5, 6}, true},
		{"drop the last level", []int{1, 2, 3, 4, 9}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			levels := append([]int(nil), tt.levels...)
			g := Recover(levels, GradeReport(levels))
			assert.Equal(t, tt.safe, g.Kind == Safe, "got %v", g)
			assert.Equal(t, tt.levels, levels, "Recover must not modify its input")
		})
	}
}

func TestCountSafe_Sample(t *testing.T) {
	in := fixture(t, "sample.txt")
	assert.Equal(t, 2, CountSafe(in))
	assert.Equal(t, 4, CountSafeDampened(in))
}

func TestCountSafeDampened_EdgeCases(t *testing.T) {
	assert.Equal(t, 2, CountSafeDampened("5 8 4 3 1\n5 9 6 7 8"))
}

func TestCountSafe_BadNumberPanics(t *testing.T) {
	assert.Panics(t, func() { CountSafe("1 2 x") })
}
