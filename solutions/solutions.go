// Package solutions implements Advent of Code 2020 days on top of the
// parser package.
package solutions

import (
	"github.com/dhamidi/advent2020/parser"
	"github.com/dhamidi/advent2020/puzzle"
)

// All returns every implemented day in ascending order.
func All() []puzzle.Day {
	return []puzzle.Day{
		Day01(),
		Day02(),
		Day04(),
		Day07(),
		Day08(),
		Day14(),
	}
}

// lines parses one value of p per line.
func lines[T any](p parser.Parser[T]) parser.Parser[[]T] {
	return parser.SeparatedList1(parser.Char('\n'), p)
}
