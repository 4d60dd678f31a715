package parser

import (
	"errors"
	"fmt"
	"strings"
)

// Kind tags the reason a parser failed.
type Kind int

const (
	KindUnknown Kind = iota

	// Primitive combinators
	KindEOF
	KindChar
	KindTag
	KindOneOf
	KindTakeWhile1
	KindAlpha
	KindDigit
	KindSpace
	KindNewline

	// Algebra
	KindAlt
	KindMapRes
	KindMapOpt
	KindVerify

	// Adaptation
	KindNotFullyParsed

	// Integers
	KindUnsignedEmpty
	KindUnsignedInvalid
	KindUnsignedOverflow
	KindSignedEmpty
	KindSignedInvalid
	KindSignedOverflow
)

var kindNames = map[Kind]string{
	KindUnknown:          "unknown",
	KindEOF:              "unexpected end of input",
	KindChar:             "character mismatch",
	KindTag:              "literal mismatch",
	KindOneOf:            "character not in set",
	KindTakeWhile1:       "expected at least one matching character",
	KindAlpha:            "expected alphabetic character",
	KindDigit:            "expected digit",
	KindSpace:            "expected whitespace",
	KindNewline:          "expected newline",
	KindAlt:              "no alternative matched",
	KindMapRes:           "conversion failed",
	KindMapOpt:           "conversion produced no value",
	KindVerify:           "verification failed",
	KindNotFullyParsed:   "not fully parsed",
	KindUnsignedEmpty:    "empty input parsed as unsigned integer",
	KindUnsignedInvalid:  "invalid character in unsigned integer",
	KindUnsignedOverflow: "unsigned integer overflow",
	KindSignedEmpty:      "empty input parsed as signed integer",
	KindSignedInvalid:    "invalid character in signed integer",
	KindSignedOverflow:   "signed integer overflow",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Signed maps an unsigned integer kind to its signed counterpart.
// All other kinds are returned unchanged.
func (k Kind) Signed() Kind {
	switch k {
	case KindUnsignedEmpty:
		return KindSignedEmpty
	case KindUnsignedInvalid:
		return KindSignedInvalid
	case KindUnsignedOverflow:
		return KindSignedOverflow
	}
	return k
}

// IsOverflow reports whether k is a signed or unsigned overflow.
func (k Kind) IsOverflow() bool {
	return k == KindUnsignedOverflow || k == KindSignedOverflow
}

// Error is the failure value returned by every parser in this package.
// Remainder is always a suffix of the input given to the parser that failed.
type Error struct {
	Remainder string
	Kind      Kind
	// Err is the cause reported by a MapRes conversion, if any.
	Err error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return fmt.Sprintf("%s at %q", msg, excerpt(e.Remainder))
}

func (e *Error) Unwrap() error {
	return e.Err
}

func fail(input string, kind Kind) *Error {
	return &Error{Remainder: input, Kind: kind}
}

// KindOf returns the Kind carried by err, which may be an *Error or a
// *SyntaxError anywhere in the chain.
func KindOf(err error) (Kind, bool) {
	var serr *SyntaxError
	if errors.As(err, &serr) {
		return serr.Kind, true
	}
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Kind, true
	}
	return KindUnknown, false
}

const excerptLen = 24

func excerpt(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 && i < excerptLen {
		return s[:i] + "…"
	}
	if len(s) > excerptLen {
		return s[:excerptLen] + "…"
	}
	return s
}
