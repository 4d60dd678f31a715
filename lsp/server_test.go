package lsp

import (
	"testing"

	"github.com/dhamidi/advent2020/parser"
	"github.com/dhamidi/advent2020/puzzle"
)

func testDays() []puzzle.Day {
	parse := func(input string) ([]uint32, error) {
		return parser.Parse(parser.SeparatedList1(parser.Char('\n'), parser.Uint32), input)
	}
	count := func(values []uint32) (int, error) { return len(values), nil }
	return []puzzle.Day{
		puzzle.New(1, parse, count, count),
		puzzle.New(12, parse, count, count),
	}
}

func TestDayOf(t *testing.T) {
	days := testDays()

	tests := []struct {
		path string
		want int
	}{
		{"/tmp/inputs/day01.txt", 1},
		{"day1", 1},
		{"inputs/day12.example.txt", 12},
		{"inputs/day13.txt", 0},
		{"inputs/day1x.txt", 0},
		{"inputs/notes.txt", 0},
		{"inputs/day.txt", 0},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			d := DayOf(days, tt.path)
			got := 0
			if d != nil {
				got = d.Number()
			}
			if got != tt.want {
				t.Errorf("DayOf(%q) = %d, want %d", tt.path, got, tt.want)
			}
		})
	}
}

func TestDiagnose(t *testing.T) {
	days := testDays()

	diags, ok := Diagnose(days, "day01.txt", "1721\n979\n366\n")
	if !ok {
		t.Fatal("day01.txt not recognised")
	}
	if len(diags) != 0 {
		t.Errorf("valid input produced %d diagnostics", len(diags))
	}

	diags, ok = Diagnose(days, "day01.txt", "1721\n97x9\n")
	if !ok || len(diags) != 1 {
		t.Fatalf("got %d diagnostics (ok=%v), want 1", len(diags), ok)
	}
	d := diags[0]
	if d.Range.Start.Line != 1 || d.Range.Start.Character != 2 {
		t.Errorf("start = %+v, want line 1 character 2", d.Range.Start)
	}
	if d.Range.End.Character != 3 {
		t.Errorf("end = %+v, want character 3", d.Range.End)
	}
	if d.Message != parser.KindNotFullyParsed.String() {
		t.Errorf("message = %q", d.Message)
	}
	if d.Severity == nil || d.Source == nil || *d.Source != "advent" {
		t.Errorf("severity/source not set: %+v", d)
	}

	diags, _ = Diagnose(days, "day01.txt", "99999999999\n")
	if len(diags) != 1 || diags[0].Message != parser.KindUnsignedOverflow.String() {
		t.Errorf("overflow diagnostics = %+v", diags)
	}

	if _, ok := Diagnose(days, "README.md", "anything"); ok {
		t.Error("README.md was diagnosed")
	}
}

func TestURIToPath(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"file:///home/user/inputs/day01.txt", "/home/user/inputs/day01.txt"},
		{"file:///tmp/with%20space/day02.txt", "/tmp/with space/day02.txt"},
		{"inputs/day03.txt", "inputs/day03.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			got, err := uriToPath(tt.uri)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("uriToPath(%q) = %q, want %q", tt.uri, got, tt.want)
			}
		})
	}
}
