package parser

import (
	"math/big"

	"lukechampine.com/uint128"
)

// I128 is a 128-bit two's-complement signed integer.
type I128 struct {
	bits uint128.Uint128
}

// I128From64 sign-extends v to 128 bits.
func I128From64(v int64) I128 {
	return I128{bits: uint128.New(uint64(v), uint64(v>>63))}
}

// I128FromBits reinterprets u as a two's-complement value.
func I128FromBits(u uint128.Uint128) I128 {
	return I128{bits: u}
}

// Bits returns the two's-complement bit pattern of i.
func (i I128) Bits() uint128.Uint128 {
	return i.bits
}

// Sign returns -1, 0 or +1.
func (i I128) Sign() int {
	switch {
	case i.bits.Hi>>63 == 1:
		return -1
	case i.bits.IsZero():
		return 0
	}
	return 1
}

// Big returns i as a *big.Int.
func (i I128) Big() *big.Int {
	if i.Sign() >= 0 {
		return i.bits.Big()
	}
	return new(big.Int).Neg(i.magnitude().Big())
}

func (i I128) String() string {
	if i.Sign() >= 0 {
		return i.bits.String()
	}
	return "-" + i.magnitude().String()
}

// magnitude returns |i| as an unsigned value; it is 2^127 for the minimum.
func (i I128) magnitude() uint128.Uint128 {
	return i.bits.Xor(uint128.Max).AddWrap64(1)
}

type uint128Arith struct{}

func (uint128Arith) Bits() uint                                       { return 128 }
func (uint128Arith) Zero() uint128.Uint128                            { return uint128.Zero }
func (uint128Arith) One() uint128.Uint128                             { return uint128.From64(1) }
func (uint128Arith) FromUint8(v uint8) uint128.Uint128                { return uint128.From64(uint64(v)) }
func (uint128Arith) WrappingSub(a, b uint128.Uint128) uint128.Uint128 { return a.SubWrap(b) }
func (uint128Arith) Less(a, b uint128.Uint128) bool                   { return a.Cmp(b) < 0 }
func (uint128Arith) Shl(a uint128.Uint128, n uint) uint128.Uint128    { return a.Lsh(n) }
func (uint128Arith) Not(a uint128.Uint128) uint128.Uint128            { return a.Xor(uint128.Max) }

func (uint128Arith) CheckedMul(a, b uint128.Uint128) (uint128.Uint128, bool) {
	p := a.MulWrap(b)
	if !a.IsZero() && !p.Div(a).Equals(b) {
		return uint128.Zero, false
	}
	return p, true
}

func (uint128Arith) CheckedAdd(a, b uint128.Uint128) (uint128.Uint128, bool) {
	sum := a.AddWrap(b)
	return sum, sum.Cmp(a) >= 0
}

type int128Arith struct{}

func (int128Arith) Unsigned() UnsignedArith[uint128.Uint128] { return uint128Arith{} }
func (int128Arith) FromBits(u uint128.Uint128) I128          { return I128{bits: u} }

// Uint128 extracts a decimal 128-bit unsigned integer.
func Uint128(input string) (uint128.Uint128, string, error) {
	return takeUnsigned[uint128.Uint128](uint128Arith{}, input)
}

// Int128 extracts an optionally signed decimal 128-bit integer.
func Int128(input string) (I128, string, error) {
	return takeSigned[I128, uint128.Uint128](int128Arith{}, input)
}
