package solutions

import (
	"slices"

	"github.com/dhamidi/advent2020/parser"
	"github.com/dhamidi/advent2020/puzzle"
)

const expenseTarget = 2020

func Day01() puzzle.Day {
	return puzzle.New(1, parseExpenses, day01Part1, day01Part2)
}

// parseExpenses returns the report entries in ascending order.
func parseExpenses(input string) ([]uint32, error) {
	entries, err := parser.Parse(lines(parser.Uint32), input)
	if err != nil {
		return nil, err
	}
	slices.Sort(entries)
	return entries, nil
}

func day01Part1(entries []uint32) (uint64, error) {
	a, b, ok := pairSum(entries, expenseTarget)
	if !ok {
		return 0, puzzle.ErrNoSolution
	}
	return uint64(a) * uint64(b), nil
}

func day01Part2(entries []uint32) (uint64, error) {
	for i, a := range entries {
		if a > expenseTarget {
			break
		}
		if b, c, ok := pairSum(entries[i+1:], expenseTarget-a); ok {
			return uint64(a) * uint64(b) * uint64(c), nil
		}
	}
	return 0, puzzle.ErrNoSolution
}

// pairSum finds two entries of the sorted slice adding up to target.
func pairSum(sorted []uint32, target uint32) (uint32, uint32, bool) {
	lo, hi := 0, len(sorted)-1
	for lo < hi {
		switch sum := uint64(sorted[lo]) + uint64(sorted[hi]); {
		case sum == uint64(target):
			return sorted[lo], sorted[hi], true
		case sum < uint64(target):
			lo++
		default:
			hi--
		}
	}
	return 0, 0, false
}
