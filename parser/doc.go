// Package parser provides parser combinators over in-memory text with positioned
// error reporting and overflow-checked integer extraction.
//
// # Overview
//
// A Parser consumes a prefix of its input and returns the produced value
// together with the unconsumed remainder:
//
//	type Parser[T any] func(input string) (value T, rest string, err error)
//
// The input is a plain Go string. Combinators only ever reslice it, so every
// remainder is a suffix of the string originally handed to the top-level
// parser and the byte offset of any failure can be recovered from its length.
//
// # Composition
//
// Small parsers are combined into larger ones:
//
//	policy := parser.Tuple(
//	    parser.Terminated(parser.Uint, parser.Char('-')),
//	    parser.Terminated(parser.Uint, parser.Char(' ')),
//	    parser.Terminated(parser.AnyChar, parser.Tag(": ")),
//	)
//	rows, err := parser.Parse(parser.SeparatedList1(parser.Char('\n'), policy), input)
//
// Parse is the only place a failure turns into a *SyntaxError carrying a
// line/column position; it also rejects input that was not fully consumed.
//
// # Errors
//
// Every failing combinator returns a *Error holding the remainder at which it
// failed and a Kind. Alt returns the error of its last alternative. Opt and
// the repetition combinators treat failure as the end of the match and never
// propagate it.
//
// # Integers
//
// Uint8 … Uint128, Uint and Int8 … Int128, Int extract decimal integers of a
// fixed width. Overflow is always an error, never a clamped or truncated value.
// Signed extraction accepts an optional '+' or '-' and handles the asymmetric
// two's-complement range, so "-128" parses as an int8 while "128" does not.
//
// There is no support for streaming input. All input must be in memory.
package parser
