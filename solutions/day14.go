package solutions

import (
	"math/bits"

	"github.com/dhamidi/advent2020/parser"
	"github.com/dhamidi/advent2020/puzzle"
)

const addressBits = 36

// Bitmask is a 36-bit mask of forced ones and floating bits. Bits set in
// neither are forced zeros.
type Bitmask struct {
	Ones     uint64
	Floating uint64
}

// DockingOp is either a mask update or a memory write.
type DockingOp struct {
	Mask    *Bitmask
	Address uint64
	Value   uint64
}

func Day14() puzzle.Day {
	return puzzle.New(14, parseDocking, day14Part1, day14Part2)
}

var bitmask = parser.Verify(
	parser.FoldMany1(parser.OneOf("01X"), func() Bitmask { return Bitmask{} }, func(m Bitmask, c byte) Bitmask {
		m.Ones <<= 1
		m.Floating <<= 1
		switch c {
		case '1':
			m.Ones |= 1
		case 'X':
			m.Floating |= 1
		}
		return m
	}),
	func(m Bitmask) bool { return bits.Len64(m.Ones|m.Floating) <= addressBits },
)

var dockingOp = parser.Alt(
	parser.Map(parser.Preceded(parser.Tag("mask = "), bitmask), func(m Bitmask) DockingOp {
		return DockingOp{Mask: &m}
	}),
	parser.Map(
		parser.Pair(
			parser.Delimited(parser.Tag("mem["), parser.Uint64, parser.Tag("] = ")),
			parser.Uint64,
		),
		func(v parser.Tuple2[uint64, uint64]) DockingOp {
			return DockingOp{Address: v.First, Value: v.Second}
		},
	),
)

func parseDocking(input string) ([]DockingOp, error) {
	ops, err := parser.Parse(lines(dockingOp), input)
	if err != nil {
		return nil, err
	}
	if ops[0].Mask == nil {
		return nil, puzzle.InvalidInput("program must start with a mask")
	}
	return ops, nil
}

func (m Bitmask) applyValue(v uint64) uint64 {
	return v&m.Floating | m.Ones
}

// addresses calls yield with every address produced by decoding addr
// through m.
func (m Bitmask) addresses(addr uint64, yield func(uint64)) {
	base := (addr | m.Ones) &^ m.Floating
	sub := uint64(0)
	for {
		yield(base | sub)
		sub = (sub - m.Floating) & m.Floating
		if sub == 0 {
			return
		}
	}
}

func day14Part1(ops []DockingOp) (uint64, error) {
	mem := make(map[uint64]uint64)
	var mask Bitmask
	for _, op := range ops {
		if op.Mask != nil {
			mask = *op.Mask
			continue
		}
		mem[op.Address] = mask.applyValue(op.Value)
	}
	return sumValues(mem), nil
}

func day14Part2(ops []DockingOp) (uint64, error) {
	mem := make(map[uint64]uint64)
	var mask Bitmask
	for _, op := range ops {
		if op.Mask != nil {
			mask = *op.Mask
			continue
		}
		if bits.OnesCount64(mask.Floating) > 16 {
			return 0, puzzle.InvalidInput("mask has too many floating bits")
		}
		mask.addresses(op.Address, func(addr uint64) {
			mem[addr] = op.Value
		})
	}
	return sumValues(mem), nil
}

func sumValues(mem map[uint64]uint64) uint64 {
	var total uint64
	for _, v := range mem {
		total += v
	}
	return total
}
