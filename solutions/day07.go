package solutions

import (
	"github.com/dhamidi/advent2020/parser"
	"github.com/dhamidi/advent2020/puzzle"
)

const shinyGold = "shiny gold"

// BagContent is a count of bags of one colour held directly by another bag.
type BagContent struct {
	Count uint
	Color string
}

// BagRules maps a bag colour to the bags it must directly contain.
type BagRules map[string][]BagContent

func Day07() puzzle.Day {
	return puzzle.New(7, parseBagRules, day07Part1, day07Part2)
}

var (
	bagColor = parser.Recognize(parser.Tuple(parser.Alpha1, parser.Char(' '), parser.Alpha1))

	// " bags" is tried first so the plural is consumed in full.
	bag = parser.Terminated(bagColor, parser.Alt(parser.Tag(" bags"), parser.Tag(" bag")))

	bagContent = parser.Map(
		parser.Pair(parser.Terminated(parser.Uint, parser.Char(' ')), bag),
		func(v parser.Tuple2[uint, string]) BagContent {
			return BagContent{Count: v.First, Color: v.Second}
		},
	)

	bagContents = parser.Alt(
		parser.Value([]BagContent(nil), parser.Tag("no other bags")),
		parser.SeparatedList1(parser.Tag(", "), bagContent),
	)

	bagRule = parser.Terminated(
		parser.Pair(parser.Terminated(bag, parser.Tag(" contain ")), bagContents),
		parser.Char('.'),
	)
)

func parseBagRules(input string) (BagRules, error) {
	parsed, err := parser.Parse(lines(bagRule), input)
	if err != nil {
		return nil, err
	}
	rules := make(BagRules, len(parsed))
	for _, r := range parsed {
		if _, dup := rules[r.First]; dup {
			return nil, puzzle.InvalidInput("duplicate rule for %s bags", r.First)
		}
		rules[r.First] = r.Second
	}
	return rules, nil
}

func day07Part1(rules BagRules) (int, error) {
	holders := make(map[string][]string)
	for outer, contents := range rules {
		for _, c := range contents {
			holders[c.Color] = append(holders[c.Color], outer)
		}
	}

	seen := make(map[string]bool)
	queue := []string{shinyGold}
	for len(queue) > 0 {
		color := queue[0]
		queue = queue[1:]
		for _, outer := range holders[color] {
			if !seen[outer] {
				seen[outer] = true
				queue = append(queue, outer)
			}
		}
	}
	return len(seen), nil
}

func day07Part2(rules BagRules) (uint64, error) {
	if _, ok := rules[shinyGold]; !ok {
		return 0, puzzle.ErrNoSolution
	}
	return rules.countInside(shinyGold, make(map[string]uint64), make(map[string]bool))
}

// countInside returns the number of bags nested in a bag of the given colour.
func (rules BagRules) countInside(color string, memo map[string]uint64, visiting map[string]bool) (uint64, error) {
	if n, ok := memo[color]; ok {
		return n, nil
	}
	if visiting[color] {
		return 0, puzzle.InvalidInput("%s bags contain themselves", color)
	}
	visiting[color] = true
	defer delete(visiting, color)

	var total uint64
	for _, c := range rules[color] {
		inner, err := rules.countInside(c.Color, memo, visiting)
		if err != nil {
			return 0, err
		}
		total += uint64(c.Count) * (1 + inner)
	}
	memo[color] = total
	return total, nil
}
