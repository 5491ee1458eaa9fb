package grid

// crossKernel is two MAS diagonals crossing on the A.
var crossKernel = MustParse("M.S\n.A.\nM.S")

// WordSearch counts occurrences of XMAS in any of the 8 directions.
func WordSearch(input string) int {
	return CountWord(MustParse(input), "XMAS")
}

// CrossSearch counts X-shaped pairs of MAS, in any of four orientations.
func CrossSearch(input string) int {
	return CountKernels(MustParse(input), Rotations(crossKernel)...)
}
