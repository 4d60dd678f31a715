package parser

import (
	"errors"
	"strings"
	"testing"
)

func TestParseRequiresFullConsumption(t *testing.T) {
	input := "123abc"
	_, rest, err := Uint32(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = Parse(Uint32, input)
	var serr *SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("err = %v, want *SyntaxError", err)
	}
	if serr.Kind != KindNotFullyParsed {
		t.Errorf("Kind = %v, want %v", serr.Kind, KindNotFullyParsed)
	}
	if serr.Remainder != rest {
		t.Errorf("Remainder = %q, want %q", serr.Remainder, rest)
	}
	if serr.Pos.Offset != 3 {
		t.Errorf("Offset = %d, want 3", serr.Pos.Offset)
	}
}

func TestParseSuccess(t *testing.T) {
	got, err := Parse(SeparatedList1(Char(','), Int16), "1,-2,+3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int16{1, -2, 3}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSyntaxErrorPosition(t *testing.T) {
	input := "nop +0\nacc +1\njmp x4"
	instr := Pair(Terminated(Alpha1, Char(' ')), Int64)
	_, err := Parse(SeparatedList1(Char('\n'), instr), input)

	// The list stops before the malformed row, so the failure is reported
	// as unconsumed input at the separator.
	var serr *SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("err = %v, want *SyntaxError", err)
	}
	if serr.Kind != KindNotFullyParsed {
		t.Errorf("Kind = %v, want %v", serr.Kind, KindNotFullyParsed)
	}
	want := Position{Offset: 13, Line: 2, Column: 7}
	if serr.Pos != want {
		t.Errorf("Pos = %+v, want %+v", serr.Pos, want)
	}

	_, err = Parse(instr, "jmp x4")
	if !errors.As(err, &serr) {
		t.Fatalf("err = %v, want *SyntaxError", err)
	}
	if serr.Kind != KindSignedInvalid {
		t.Errorf("Kind = %v, want %v", serr.Kind, KindSignedInvalid)
	}
	if serr.Pos.Column != 5 {
		t.Errorf("Column = %d, want 5", serr.Pos.Column)
	}
	ctx := serr.Context()
	if !strings.Contains(ctx, "jmp x4") || !strings.HasSuffix(ctx, "    ^") {
		t.Errorf("Context() = %q", ctx)
	}
	if !strings.HasPrefix(serr.Error(), "1:5: ") {
		t.Errorf("Error() = %q, want position prefix", serr.Error())
	}
}

func TestPositionOf(t *testing.T) {
	input := "ab\ncd\n\nef"
	tests := []struct {
		offset int
		line   int
		column int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{3, 2, 1},
		{6, 3, 1},
		{7, 4, 1},
		{9, 4, 3},
	}

	for _, tt := range tests {
		pos := PositionOf(input, input[tt.offset:])
		if pos.Line != tt.line || pos.Column != tt.column || pos.Offset != tt.offset {
			t.Errorf("PositionOf(offset %d) = %+v, want %d:%d", tt.offset, pos, tt.line, tt.column)
		}
	}
}

func TestFinishForeignError(t *testing.T) {
	cause := errors.New("boom")
	_, err := Finish("abc", 0, "abc", cause)
	if !errors.Is(err, cause) {
		t.Errorf("err = %v, want wrapped cause", err)
	}
	if _, ok := KindOf(err); ok {
		t.Error("KindOf reported a kind for a foreign error")
	}
}
