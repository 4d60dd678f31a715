package parser

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// UnsignedArith describes a fixed-width unsigned integer representation U
// with the operations decimal extraction needs.
type UnsignedArith[U any] interface {
	Bits() uint
	Zero() U
	One() U
	FromUint8(v uint8) U
	CheckedMul(a, b U) (U, bool)
	CheckedAdd(a, b U) (U, bool)
	WrappingSub(a, b U) U
	Less(a, b U) bool
	Shl(a U, n uint) U
	Not(a U) U
}

// SignedArith pairs a signed representation S with the unsigned
// representation U of the same width.
type SignedArith[S, U any] interface {
	Unsigned() UnsignedArith[U]
	// FromBits reinterprets the two's-complement bit pattern u as S.
	FromBits(u U) S
}

// TakeUnsigned returns a parser extracting a decimal U.
func TakeUnsigned[U any](arith UnsignedArith[U]) Parser[U] {
	return func(input string) (U, string, error) {
		return takeUnsigned(arith, input)
	}
}

// TakeSigned returns a parser extracting an optionally signed decimal S.
func TakeSigned[S, U any](arith SignedArith[S, U]) Parser[S] {
	return func(input string) (S, string, error) {
		return takeSigned(arith, input)
	}
}

func takeUnsigned[U any](a UnsignedArith[U], input string) (U, string, error) {
	n := a.Zero()
	if len(input) == 0 {
		return n, input, fail(input, KindUnsignedEmpty)
	}
	if !isDigit(input[0]) {
		return n, input, fail(input, KindUnsignedInvalid)
	}
	ten := a.FromUint8(10)
	i := 0
	for ; i < len(input) && isDigit(input[i]); i++ {
		var ok bool
		if n, ok = a.CheckedMul(n, ten); ok {
			n, ok = a.CheckedAdd(n, a.FromUint8(input[i]-'0'))
		}
		if !ok {
			return a.Zero(), input, fail(input, KindUnsignedOverflow)
		}
	}
	return n, input[i:], nil
}

func takeSigned[S, U any](a SignedArith[S, U], input string) (S, string, error) {
	var zero S
	u := a.Unsigned()

	digits := input
	negative := false
	if len(digits) > 0 && (digits[0] == '-' || digits[0] == '+') {
		negative = digits[0] == '-'
		digits = digits[1:]
	}

	mag, rest, err := takeUnsigned(u, digits)
	if err != nil {
		kind, _ := KindOf(err)
		return zero, input, fail(input, kind.Signed())
	}

	if negative {
		if !u.Less(u.Zero(), mag) {
			return a.FromBits(mag), rest, nil
		}
		// -m is representable iff m-1 < 2^(W-1).
		mag = u.WrappingSub(mag, u.One())
	}
	if !u.Less(mag, u.Shl(u.One(), u.Bits()-1)) {
		return zero, input, fail(input, KindSignedOverflow)
	}
	if negative {
		// ^(m-1) == -m in two's complement.
		mag = u.Not(mag)
	}
	return a.FromBits(mag), rest, nil
}

// nativeUnsigned implements UnsignedArith for Go's built-in unsigned types.
type nativeUnsigned[U constraints.Unsigned] struct{}

func (nativeUnsigned[U]) Bits() uint           { return uint(bits.OnesCount64(uint64(^U(0)))) }
func (nativeUnsigned[U]) Zero() U              { return 0 }
func (nativeUnsigned[U]) One() U               { return 1 }
func (nativeUnsigned[U]) FromUint8(v uint8) U  { return U(v) }
func (nativeUnsigned[U]) WrappingSub(a, b U) U { return a - b }
func (nativeUnsigned[U]) Less(a, b U) bool     { return a < b }
func (nativeUnsigned[U]) Shl(a U, n uint) U    { return a << n }
func (nativeUnsigned[U]) Not(a U) U            { return ^a }

func (nativeUnsigned[U]) CheckedMul(a, b U) (U, bool) {
	if a != 0 && b > ^U(0)/a {
		return 0, false
	}
	return a * b, true
}

func (nativeUnsigned[U]) CheckedAdd(a, b U) (U, bool) {
	sum := a + b
	return sum, sum >= a
}

// nativeSigned implements SignedArith for Go's built-in signed types. U must
// have the same width as S.
type nativeSigned[S constraints.Signed, U constraints.Unsigned] struct{}

func (nativeSigned[S, U]) Unsigned() UnsignedArith[U] { return nativeUnsigned[U]{} }
func (nativeSigned[S, U]) FromBits(u U) S             { return S(u) }

var (
	uint8Arith  = nativeUnsigned[uint8]{}
	uint16Arith = nativeUnsigned[uint16]{}
	uint32Arith = nativeUnsigned[uint32]{}
	uint64Arith = nativeUnsigned[uint64]{}
	uintArith   = nativeUnsigned[uint]{}

	int8Arith  = nativeSigned[int8, uint8]{}
	int16Arith = nativeSigned[int16, uint16]{}
	int32Arith = nativeSigned[int32, uint32]{}
	int64Arith = nativeSigned[int64, uint64]{}
	intArith   = nativeSigned[int, uint]{}
)

// Uint8 extracts a decimal uint8.
func Uint8(input string) (uint8, string, error) { return takeUnsigned[uint8](uint8Arith, input) }

// Uint16 extracts a decimal uint16.
func Uint16(input string) (uint16, string, error) { return takeUnsigned[uint16](uint16Arith, input) }

// Uint32 extracts a decimal uint32.
func Uint32(input string) (uint32, string, error) { return takeUnsigned[uint32](uint32Arith, input) }

// Uint64 extracts a decimal uint64.
func Uint64(input string) (uint64, string, error) { return takeUnsigned[uint64](uint64Arith, input) }

// Uint extracts a decimal uint.
func Uint(input string) (uint, string, error) { return takeUnsigned[uint](uintArith, input) }

// Int8 extracts an optionally signed decimal int8.
func Int8(input string) (int8, string, error) { return takeSigned[int8, uint8](int8Arith, input) }

// Int16 extracts an optionally signed decimal int16.
func Int16(input string) (int16, string, error) { return takeSigned[int16, uint16](int16Arith, input) }

// Int32 extracts an optionally signed decimal int32.
func Int32(input string) (int32, string, error) { return takeSigned[int32, uint32](int32Arith, input) }

// Int64 extracts an optionally signed decimal int64.
func Int64(input string) (int64, string, error) { return takeSigned[int64, uint64](int64Arith, input) }

// Int extracts an optionally signed decimal int.
func Int(input string) (int, string, error) { return takeSigned[int, uint](intArith, input) }
