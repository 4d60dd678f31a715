package solutions

import (
	"slices"

	"github.com/dhamidi/advent2020/parser"
	"github.com/dhamidi/advent2020/puzzle"
)

type Op int

const (
	OpNop Op = iota
	OpAcc
	OpJmp
)

type Instruction struct {
	Op  Op
	Arg int64
}

func Day08() puzzle.Day {
	return puzzle.New(8, parseProgram, day08Part1, day08Part2)
}

var instruction = parser.Map(
	parser.Pair(
		parser.Terminated(
			parser.Alt(
				parser.Value(OpNop, parser.Tag("nop")),
				parser.Value(OpAcc, parser.Tag("acc")),
				parser.Value(OpJmp, parser.Tag("jmp")),
			),
			parser.Char(' '),
		),
		parser.Int64,
	),
	func(v parser.Tuple2[Op, int64]) Instruction {
		return Instruction{Op: v.First, Arg: v.Second}
	},
)

func parseProgram(input string) ([]Instruction, error) {
	return parser.Parse(lines(instruction), input)
}

// execute runs program until it terminates by stepping just past the last
// instruction or is about to run an instruction a second time.
func execute(program []Instruction) (acc int64, terminated bool) {
	visited := make([]bool, len(program))
	pc := int64(0)
	for {
		if pc == int64(len(program)) {
			return acc, true
		}
		if pc < 0 || pc > int64(len(program)) || visited[pc] {
			return acc, false
		}
		visited[pc] = true

		in := program[pc]
		switch in.Op {
		case OpAcc:
			acc += in.Arg
			pc++
		case OpJmp:
			pc += in.Arg
		default:
			pc++
		}
	}
}

func day08Part1(program []Instruction) (int64, error) {
	acc, terminated := execute(program)
	if terminated {
		return 0, puzzle.InvalidInput("program has no loop")
	}
	return acc, nil
}

func day08Part2(program []Instruction) (int64, error) {
	patched := slices.Clone(program)
	for i, in := range program {
		switch in.Op {
		case OpNop:
			patched[i].Op = OpJmp
		case OpJmp:
			patched[i].Op = OpNop
		default:
			continue
		}
		if acc, terminated := execute(patched); terminated {
			return acc, nil
		}
		patched[i] = in
	}
	return 0, puzzle.ErrNoSolution
}
