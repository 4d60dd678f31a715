package puzzle

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"github.com/tliron/commonlog"
)

const valueWidth = 16

var log = commonlog.GetLogger("advent.puzzle")

// InputSource provides the raw input for a day.
type InputSource interface {
	Input(ctx context.Context, day int) (string, error)
}

// Runner evaluates days and prints their results.
type Runner struct {
	Inputs InputSource
	Out    io.Writer
	Year   int
}

// Select returns the days matching selectors, which are either day names
// ("day07") or numbers ("7"). No selectors selects every day.
func Select(days []Day, selectors []string) ([]Day, error) {
	if len(selectors) == 0 {
		return days, nil
	}
	var selected []Day
	for _, sel := range selectors {
		d := find(days, sel)
		if d == nil {
			return nil, fmt.Errorf("unknown day: %s", sel)
		}
		selected = append(selected, d)
	}
	return selected, nil
}

func find(days []Day, selector string) Day {
	n, err := strconv.Atoi(strings.TrimPrefix(selector, "day"))
	for _, d := range days {
		if d.Name() == selector || (err == nil && d.Number() == n) {
			return d
		}
	}
	return nil
}

// Run evaluates the selected days in order.
func (r *Runner) Run(ctx context.Context, days []Day, selectors []string) error {
	selected, err := Select(days, selectors)
	if err != nil {
		return err
	}

	out := termenv.NewOutput(r.Out)
	fmt.Fprintf(r.Out, "%s %s %s %s\n",
		out.String("Advent").Foreground(termenv.ANSIBrightRed).Bold(),
		out.String("of").Foreground(termenv.ANSIBrightWhite),
		out.String("Code").Foreground(termenv.ANSIBrightGreen).Bold(),
		out.String(strconv.Itoa(r.Year)).Foreground(termenv.ANSIBrightBlue),
	)

	for _, d := range selected {
		if err := ctx.Err(); err != nil {
			return err
		}

		input, err := r.Inputs.Input(ctx, d.Number())
		if err != nil {
			return fmt.Errorf("%s: %w", d.Name(), err)
		}
		input = strings.TrimSuffix(input, "\n")

		start := time.Now()
		results := d.Evaluate(input)
		elapsed := time.Since(start)
		log.Debugf("evaluated %s in %s", d.Name(), elapsed)

		r.print(out, d, elapsed, results)
	}
	return nil
}

func (r *Runner) print(out *termenv.Output, d Day, elapsed time.Duration, results []Result) {
	expanded := false
	for _, res := range results {
		if strings.Contains(res.text(), "\n") {
			expanded = true
		}
	}

	fmt.Fprintf(r.Out, "%s (%s ms)",
		out.String(d.Name()).Foreground(termenv.ANSIBrightBlue),
		out.String(formatElapsed(elapsed)).Foreground(termenv.ANSIBrightWhite),
	)
	if expanded {
		fmt.Fprintln(r.Out)
	} else {
		fmt.Fprint(r.Out, " |")
	}

	for _, res := range results {
		part := out.String(res.Part).Foreground(termenv.ANSIBrightGreen)
		text := res.text()
		if !expanded {
			text = runewidth.FillLeft(text, valueWidth)
		}
		value := out.String(text).Foreground(termenv.ANSIBrightWhite).Bold()
		if res.Err != nil {
			value = out.String(text).Foreground(termenv.ANSIBrightRed).Bold().Underline()
		}
		if expanded {
			fmt.Fprintf(r.Out, "%s\n%s\n", part, value)
		} else {
			fmt.Fprintf(r.Out, " %s %s |", part, value)
		}
	}
	if !expanded {
		fmt.Fprintln(r.Out)
	}
}

func (res Result) text() string {
	if res.Err != nil {
		return res.Err.Error()
	}
	return res.Value
}

// formatElapsed renders d as milliseconds with two decimals, e.g. "  1.05".
func formatElapsed(d time.Duration) string {
	ns := d.Nanoseconds()
	return fmt.Sprintf("%3d.%02d", ns/1_000_000, ns/1_000%1_000/10)
}
