package solutions

import (
	"strings"

	"github.com/dhamidi/advent2020/parser"
	"github.com/dhamidi/advent2020/puzzle"
)

// PasswordEntry is one line of the password database: a policy followed by
// the password it applies to.
type PasswordEntry struct {
	Lo, Hi   int
	Letter   byte
	Password string
}

func Day02() puzzle.Day {
	return puzzle.New(2, parsePasswords, day02Part1, day02Part2)
}

// passwordEntry parses "1-3 a: abcde".
var passwordEntry = parser.Map(
	parser.Pair(
		parser.Tuple(
			parser.Terminated(parser.Uint8, parser.Char('-')),
			parser.Terminated(parser.Uint8, parser.Char(' ')),
			parser.Terminated(parser.AnyChar, parser.Tag(": ")),
		),
		parser.Alpha1,
	),
	func(v parser.Tuple2[parser.Tuple3[uint8, uint8, byte], string]) PasswordEntry {
		return PasswordEntry{
			Lo:       int(v.First.First),
			Hi:       int(v.First.Second),
			Letter:   v.First.Third,
			Password: v.Second,
		}
	},
)

func parsePasswords(input string) ([]PasswordEntry, error) {
	return parser.Parse(lines(passwordEntry), input)
}

func day02Part1(entries []PasswordEntry) (int, error) {
	valid := 0
	for _, e := range entries {
		n := strings.Count(e.Password, string(e.Letter))
		if e.Lo <= n && n <= e.Hi {
			valid++
		}
	}
	return valid, nil
}

func day02Part2(entries []PasswordEntry) (int, error) {
	valid := 0
	for _, e := range entries {
		if e.letterAt(e.Lo) != e.letterAt(e.Hi) {
			valid++
		}
	}
	return valid, nil
}

// letterAt reports whether the 1-based position pos holds the policy letter.
func (e PasswordEntry) letterAt(pos int) bool {
	return pos >= 1 && pos <= len(e.Password) && e.Password[pos-1] == e.Letter
}
