package main

import (
	_ "embed"

	"github.com/lanternfish/aoc2024"
	"github.com/lanternfish/aoc2024/antenna"
	"github.com/lanternfish/aoc2024/disk"
	"github.com/lanternfish/aoc2024/grid"
	"github.com/lanternfish/aoc2024/guard"
	"github.com/lanternfish/aoc2024/lists"
	"github.com/lanternfish/aoc2024/reports"
	"github.com/lanternfish/aoc2024/rules"
	"github.com/lanternfish/aoc2024/scan"
)

// The doc comments below carry each puzzle's sample; see aoc.ExtractSamples.
//
//go:embed puzzles.go
var puzzleSrc []byte

func init() {
	aoc.Add(
		day1p1, day1p2,
		day2p1, day2p2,
		day3p1, day3p2,
		day4p1, day4p2,
		day5p1, day5p2,
		day6p1, day6p2,
		day8p1, day8p2,
		day9p1, day9p2,
	)
}

/*
want=11
3   4
4   3
2   5
1   3
3   9
3   3
*/
func day1p1(input string) any { return lists.TotalDistance(input) }

// want=31
func day1p2(input string) any { return lists.SimilarityScore(input) }

/*
want=2
7 6 4 2 1
1 2 7 8 9
9 7 6 2 1
1 3 2 4 5
8 6 4 4 1
1 3 6 7 9
*/
func day2p1(input string) any { return reports.CountSafe(input) }

// want=4
func day2p2(input string) any { return reports.CountSafeDampened(input) }

/*
want=161
xmul(2,4)%&mul[3,7]!@^do_not_mul(5,5)+mul(32,64]then(mul(11,8)mul(8,5))
*/
func day3p1(input string) any { return scan.Sum(input) }

/*
want=48
xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))
*/
func day3p2(input string) any { return scan.SumEnabled(input) }

/*
want=18
MMMSXXMASM
MSAMXMSMSA
AMXSXMAAMM
MSAMASMSMX
XMASAMXAMM
XXAMMXXAMA
SMSMSASXSS
SAXAMASAAA
MAMMMXMMMM
MXMXAXMASX
*/
func day4p1(input string) any { return grid.WordSearch(input) }

// want=9
func day4p2(input string) any { return grid.CrossSearch(input) }

/*
want=143
47|53
97|13
97|61
97|47
75|29
61|13
75|53
29|13
97|29
53|29
61|53
97|53
61|29
47|13
75|47
97|75
47|61
75|61
47|29
75|13
53|13

75,47,61,53,29
97,61,53,29,13
75,29,13
75,97,47,61,53
61,13,29
97,13,75,29,47
*/
func day5p1(input string) any { return rules.MiddleSum(input) }

// want=123
func day5p2(input string) any { return rules.ReorderedMiddleSum(input) }

/*
want=41
....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
*/
func day6p1(input string) any { return guard.Visited(input) }

// want=6
func day6p2(input string) any { return guard.LoopObstructions(input) }

/*
want=14
............
........0...
.....0......
.......0....
....0.......
......A.....
............
............
........A...
.........A..
............
............
*/
func day8p1(input string) any { return antenna.Antinodes(input) }

// want=34
func day8p2(input string) any { return antenna.Harmonics(input) }

/*
want=1928
2333133121414131402
*/
func day9p1(input string) any { return disk.CompactBlocks(input) }

// want=2858
func day9p2(input string) any { return disk.CompactFiles(input) }
