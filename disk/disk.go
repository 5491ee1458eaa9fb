// Package disk compacts an amphipod's disk map and computes the
// filesystem checksum.
//
// A disk map is a string of digits alternating between the length of a
// file and the length of the free space after it. Files are numbered
// from 0 in order of appearance.
package disk

import "github.com/lanternfish/aoc2024"

const free = -1

// Blocks expands a disk map into one entry per block: the file id, or -1
// for a free block. It panics on a non-digit.
func Blocks(diskMap string) []int {
	var blocks []int
	for i := 0; i < len(diskMap); i++ {
		id := free
		if i%2 == 0 {
			id = i / 2
		}
		for n := aoc.DigVal(diskMap[i]); n > 0; n-- {
			blocks = append(blocks, id)
		}
	}
	return blocks
}

// Checksum sums position × file id over the used blocks.
func Checksum(blocks []int) int {
	sum := 0
	for pos, id := range blocks {
		if id != free {
			sum += pos * id
		}
	}
	return sum
}

// CompactBlocks moves file blocks one at a time from the end of the disk
// to the leftmost free block until no gaps remain, and returns the
// checksum.
func CompactBlocks(diskMap string) int {
	b := Blocks(diskMap)
	l, r := 0, len(b)-1
	for {
		for l < len(b) && b[l] != free {
			l++
		}
		for r >= 0 && b[r] == free {
			r--
		}
		if l >= r {
			break
		}
		b[l], b[r] = b[r], free
	}
	return Checksum(b)
}

type span struct{ pos, len int }

// CompactFiles moves whole files, highest id first, each once, into the
// leftmost span of free blocks that fits it and lies to its left, and
// returns the checksum.
func CompactFiles(diskMap string) int {
	var files, gaps []span
	pos := 0
	for i := 0; i < len(diskMap); i++ {
		n := aoc.DigVal(diskMap[i])
		if i%2 == 0 {
			files = append(files, span{pos, n})
		} else if n > 0 {
			gaps = append(gaps, span{pos, n})
		}
		pos += n
	}

	for id := len(files) - 1; id >= 0; id-- {
		f := &files[id]
		for gi := range gaps {
			g := &gaps[gi]
			if g.pos >= f.pos {
				break
			}
			if g.len >= f.len {
				f.pos = g.pos
				g.pos += f.len
				g.len -= f.len
				break
			}
		}
	}

	sum := 0
	for id, f := range files {
		for p := f.pos; p < f.pos+f.len; p++ {
			sum += p * id
		}
	}
	return sum
}
