package parser

import (
	"errors"
	"fmt"
	"strings"
)

// Position is a location in the input handed to Parse.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// PositionOf locates remainder, which must be a suffix of input.
func PositionOf(input, remainder string) Position {
	offset := len(input) - len(remainder)
	if offset < 0 || input[offset:] != remainder {
		offset = 0
	}
	consumed := input[:offset]
	line := strings.Count(consumed, "\n") + 1
	column := offset - strings.LastIndexByte(consumed, '\n')
	return Position{Offset: offset, Line: line, Column: column}
}

// SyntaxError is the application-level form of a parse failure.
type SyntaxError struct {
	Kind      Kind
	Pos       Position
	Remainder string
	Err       error

	line string
}

func (e *SyntaxError) Error() string {
	msg := e.Kind.String()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return fmt.Sprintf("%s: %s; remainder: %q", e.Pos, msg, excerpt(e.Remainder))
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Context renders the input line containing the failure with a caret under
// the failing column.
func (e *SyntaxError) Context() string {
	return fmt.Sprintf("%4d | %s\n     | %s^", e.Pos.Line, e.line, strings.Repeat(" ", e.Pos.Column-1))
}

func newSyntaxError(input, remainder string, kind Kind, cause error) *SyntaxError {
	pos := PositionOf(input, remainder)
	start := pos.Offset - (pos.Column - 1)
	line := input[start:]
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	return &SyntaxError{
		Kind:      kind,
		Pos:       pos,
		Remainder: remainder,
		Err:       cause,
		line:      line,
	}
}

// Parse runs p over input and requires all of it to be consumed.
func Parse[T any](p Parser[T], input string) (T, error) {
	value, rest, err := p(input)
	return Finish(input, value, rest, err)
}

// Finish converts the result of running a parser over input into a value or
// a *SyntaxError. A successful parse that leaves input unconsumed fails with
// KindNotFullyParsed.
func Finish[T any](input string, value T, rest string, err error) (T, error) {
	var zero T
	if err != nil {
		var perr *Error
		if errors.As(err, &perr) {
			return zero, newSyntaxError(input, perr.Remainder, perr.Kind, perr.Err)
		}
		return zero, fmt.Errorf("parse: %w", err)
	}
	if rest != "" {
		return zero, newSyntaxError(input, rest, KindNotFullyParsed, nil)
	}
	return value, nil
}
