package puzzle

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/dhamidi/advent2020/parser"
)

type staticInputs map[int]string

func (s staticInputs) Input(ctx context.Context, day int) (string, error) {
	input, ok := s[day]
	if !ok {
		return "", fmt.Errorf("no input for day %d", day)
	}
	return input, nil
}

func parseNumbers(input string) ([]int, error) {
	return parser.Parse(parser.SeparatedList1(parser.Char('\n'), parser.Int), input)
}

func sum(values []int) (int, error) {
	total := 0
	for _, v := range values {
		total += v
	}
	return total, nil
}

func largest(values []int) (int, error) {
	if len(values) == 0 {
		return 0, ErrNoSolution
	}
	best := values[0]
	for _, v := range values[1:] {
		if v > best {
			best = v
		}
	}
	return best, nil
}

func noSolution([]int) (string, error) {
	return "", ErrNoSolution
}

func TestDayEvaluate(t *testing.T) {
	d := New(3, parseNumbers, sum, largest)

	if d.Name() != "day03" {
		t.Errorf("Name() = %q, want %q", d.Name(), "day03")
	}

	results := d.Evaluate("1\n5\n-2")
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Value != "4" || results[0].Err != nil {
		t.Errorf("part1 = %+v, want 4", results[0])
	}
	if results[1].Value != "5" || results[1].Err != nil {
		t.Errorf("part2 = %+v, want 5", results[1])
	}
}

func TestDayEvaluateParseFailure(t *testing.T) {
	d := New(3, parseNumbers, sum, noSolution)

	results := d.Evaluate("1\nx")
	for _, res := range results {
		if kind, ok := parser.KindOf(res.Err); !ok || kind != parser.KindNotFullyParsed {
			t.Errorf("%s err = %v, want not fully parsed", res.Part, res.Err)
		}
	}
	if err := d.Check("1\n2"); err != nil {
		t.Errorf("Check() = %v", err)
	}

	results = d.Evaluate("1")
	if !errors.Is(results[1].Err, ErrNoSolution) {
		t.Errorf("part2 err = %v, want ErrNoSolution", results[1].Err)
	}
}

func TestSelect(t *testing.T) {
	days := []Day{
		New(1, parseNumbers, sum, largest),
		New(7, parseNumbers, sum, largest),
	}

	tests := []struct {
		selectors []string
		want      []int
		wantErr   bool
	}{
		{nil, []int{1, 7}, false},
		{[]string{"day07"}, []int{7}, false},
		{[]string{"7", "1"}, []int{7, 1}, false},
		{[]string{"day7"}, []int{7}, false},
		{[]string{"day25"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.selectors, ","), func(t *testing.T) {
			got, err := Select(days, tt.selectors)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d days, want %d", len(got), len(tt.want))
			}
			for i, d := range got {
				if d.Number() != tt.want[i] {
					t.Errorf("day[%d] = %d, want %d", i, d.Number(), tt.want[i])
				}
			}
		})
	}
}

func TestRunnerRun(t *testing.T) {
	var out bytes.Buffer
	r := &Runner{
		Inputs: staticInputs{1: "1\n2\n3\n", 2: "10\n20"},
		Out:    &out,
		Year:   2020,
	}
	days := []Day{
		New(1, parseNumbers, sum, largest),
		New(2, parseNumbers, sum, noSolution),
	}

	if err := r.Run(context.Background(), days, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}

	text := out.String()
	for _, want := range []string{"Advent", "2020", "day01", "day02", "6", "30", ErrNoSolution.Error()} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
	if lines := strings.Count(text, "\n"); lines != 3 {
		t.Errorf("got %d lines, want 3:\n%s", lines, text)
	}
}

func TestRunnerMissingInput(t *testing.T) {
	r := &Runner{Inputs: staticInputs{}, Out: &bytes.Buffer{}, Year: 2020}
	err := r.Run(context.Background(), []Day{New(4, parseNumbers, sum, largest)}, nil)
	if err == nil || !strings.Contains(err.Error(), "day04") {
		t.Errorf("err = %v, want error naming day04", err)
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "  0.00"},
		{1050 * time.Microsecond, "  1.05"},
		{1234567 * time.Microsecond, "1234.56"},
	}

	for _, tt := range tests {
		t.Run(strconv.Quote(tt.want), func(t *testing.T) {
			if got := formatElapsed(tt.d); got != tt.want {
				t.Errorf("formatElapsed(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}
