package solutions

import (
	"slices"
	"unicode"

	"github.com/dhamidi/advent2020/parser"
	"github.com/dhamidi/advent2020/puzzle"
)

// Passport maps field keys such as "byr" to their raw values.
type Passport map[string]string

func Day04() puzzle.Day {
	return puzzle.New(4, parsePassports, day04Part1, day04Part2)
}

var (
	passportField = parser.Pair(
		parser.Terminated(parser.TakeWhile1(unicode.IsLower), parser.Char(':')),
		parser.TakeWhile1(func(r rune) bool { return !unicode.IsSpace(r) }),
	)

	passport = parser.Map(
		parser.SeparatedList1(parser.OneOf(" \n"), passportField),
		func(fields []parser.Tuple2[string, string]) Passport {
			p := make(Passport, len(fields))
			for _, f := range fields {
				p[f.First] = f.Second
			}
			return p
		},
	)
)

// parsePassports reads passports separated by blank lines.
func parsePassports(input string) ([]Passport, error) {
	return parser.Parse(parser.SeparatedList1(parser.Tag("\n\n"), passport), input)
}

var passportValidators = map[string]func(string) bool{
	"byr": yearBetween(1920, 2002),
	"iyr": yearBetween(2010, 2020),
	"eyr": yearBetween(2020, 2030),
	"hgt": validHeight,
	"hcl": validHairColor,
	"ecl": validEyeColor,
	"pid": validPassportID,
}

func (p Passport) complete() bool {
	for key := range passportValidators {
		if _, ok := p[key]; !ok {
			return false
		}
	}
	return true
}

func (p Passport) valid() bool {
	for key, check := range passportValidators {
		value, ok := p[key]
		if !ok || !check(value) {
			return false
		}
	}
	return true
}

func day04Part1(passports []Passport) (int, error) {
	n := 0
	for _, p := range passports {
		if p.complete() {
			n++
		}
	}
	return n, nil
}

func day04Part2(passports []Passport) (int, error) {
	n := 0
	for _, p := range passports {
		if p.valid() {
			n++
		}
	}
	return n, nil
}

func yearBetween(lo, hi uint16) func(string) bool {
	year := parser.Verify(parser.Uint16, func(y uint16) bool { return lo <= y && y <= hi })
	return func(s string) bool {
		_, err := parser.Parse(year, s)
		return err == nil && len(s) == 4
	}
}

var height = parser.Verify(
	parser.Pair(parser.Uint16, parser.Alt(parser.Tag("cm"), parser.Tag("in"))),
	func(h parser.Tuple2[uint16, string]) bool {
		if h.Second == "cm" {
			return 150 <= h.First && h.First <= 193
		}
		return 59 <= h.First && h.First <= 76
	},
)

func validHeight(s string) bool {
	_, err := parser.Parse(height, s)
	return err == nil
}

var hairColor = parser.Preceded(
	parser.Char('#'),
	parser.Verify(
		parser.TakeWhile1(func(r rune) bool { return '0' <= r && r <= '9' || 'a' <= r && r <= 'f' }),
		func(s string) bool { return len(s) == 6 },
	),
)

func validHairColor(s string) bool {
	_, err := parser.Parse(hairColor, s)
	return err == nil
}

var eyeColors = []string{"amb", "blu", "brn", "gry", "grn", "hzl", "oth"}

func validEyeColor(s string) bool {
	return slices.Contains(eyeColors, s)
}

func validPassportID(s string) bool {
	digits, err := parser.Parse(parser.Digit1, s)
	return err == nil && len(digits) == 9
}
