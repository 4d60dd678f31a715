package parser

import (
	"strings"
	"unicode/utf8"
)

// Parser consumes a prefix of input. On success rest is the unconsumed
// suffix; on failure rest is input and err is an *Error.
type Parser[T any] func(input string) (value T, rest string, err error)

// Char matches the single byte c.
func Char(c byte) Parser[byte] {
	return func(input string) (byte, string, error) {
		if len(input) > 0 && input[0] == c {
			return c, input[1:], nil
		}
		return 0, input, fail(input, KindChar)
	}
}

// AnyChar consumes any single byte.
func AnyChar(input string) (byte, string, error) {
	if len(input) == 0 {
		return 0, input, fail(input, KindEOF)
	}
	return input[0], input[1:], nil
}

// AnyRune consumes a single UTF-8 encoded codepoint. Invalid encodings
// yield utf8.RuneError and consume one byte.
func AnyRune(input string) (rune, string, error) {
	if len(input) == 0 {
		return 0, input, fail(input, KindEOF)
	}
	r, size := utf8.DecodeRuneInString(input)
	return r, input[size:], nil
}

// OneOf matches a single byte contained in set.
func OneOf(set string) Parser[byte] {
	return func(input string) (byte, string, error) {
		if len(input) > 0 && strings.IndexByte(set, input[0]) >= 0 {
			return input[0], input[1:], nil
		}
		return 0, input, fail(input, KindOneOf)
	}
}

// Tag matches the literal t byte for byte. Input shorter than t fails with
// KindEOF, a mismatch with KindTag.
func Tag(t string) Parser[string] {
	return func(input string) (string, string, error) {
		if len(input) < len(t) {
			return "", input, fail(input, KindEOF)
		}
		if input[:len(t)] != t {
			return "", input, fail(input, KindTag)
		}
		return input[:len(t)], input[len(t):], nil
	}
}

// Take consumes exactly n bytes.
func Take(n int) Parser[string] {
	return func(input string) (string, string, error) {
		if n < 0 || len(input) < n {
			return "", input, fail(input, KindEOF)
		}
		return input[:n], input[n:], nil
	}
}

// TakeWhile consumes the longest prefix of codepoints satisfying pred.
// It never fails.
func TakeWhile(pred func(rune) bool) Parser[string] {
	return func(input string) (string, string, error) {
		n := runePrefix(input, pred)
		return input[:n], input[n:], nil
	}
}

// TakeWhile1 is like TakeWhile but fails with KindTakeWhile1 when nothing
// matches.
func TakeWhile1(pred func(rune) bool) Parser[string] {
	return func(input string) (string, string, error) {
		n := runePrefix(input, pred)
		if n == 0 {
			return "", input, fail(input, KindTakeWhile1)
		}
		return input[:n], input[n:], nil
	}
}

func runePrefix(input string, pred func(rune) bool) int {
	for i, r := range input {
		if !pred(r) {
			return i
		}
	}
	return len(input)
}

// bytePrefix is the ASCII counterpart of runePrefix.
func bytePrefix(input string, pred func(byte) bool) int {
	for i := 0; i < len(input); i++ {
		if !pred(input[i]) {
			return i
		}
	}
	return len(input)
}

func split0(pred func(byte) bool) Parser[string] {
	return func(input string) (string, string, error) {
		n := bytePrefix(input, pred)
		return input[:n], input[n:], nil
	}
}

func split1(pred func(byte) bool, kind Kind) Parser[string] {
	return func(input string) (string, string, error) {
		n := bytePrefix(input, pred)
		if n == 0 {
			return "", input, fail(input, kind)
		}
		return input[:n], input[n:], nil
	}
}

func isAlpha(c byte) bool   { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }
func isDigit(c byte) bool   { return '0' <= c && c <= '9' }
func isNewline(c byte) bool { return c == '\n' }

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

var (
	alpha0   = split0(isAlpha)
	alpha1   = split1(isAlpha, KindAlpha)
	digit0   = split0(isDigit)
	digit1   = split1(isDigit, KindDigit)
	space0   = split0(isSpace)
	space1   = split1(isSpace, KindSpace)
	newline0 = split0(isNewline)
	newline1 = split1(isNewline, KindNewline)
)

// Alpha0 consumes zero or more ASCII letters.
func Alpha0(input string) (string, string, error) { return alpha0(input) }

// Alpha1 consumes one or more ASCII letters.
func Alpha1(input string) (string, string, error) { return alpha1(input) }

// Digit0 consumes zero or more ASCII digits.
func Digit0(input string) (string, string, error) { return digit0(input) }

// Digit1 consumes one or more ASCII digits.
func Digit1(input string) (string, string, error) { return digit1(input) }

// Space0 consumes zero or more ASCII whitespace bytes.
func Space0(input string) (string, string, error) { return space0(input) }

// Space1 consumes one or more ASCII whitespace bytes.
func Space1(input string) (string, string, error) { return space1(input) }

// Newline0 consumes zero or more '\n' bytes.
func Newline0(input string) (string, string, error) { return newline0(input) }

// Newline1 consumes one or more '\n' bytes.
func Newline1(input string) (string, string, error) { return newline1(input) }
