// Package puzzle describes a day's puzzle as a parse step followed by two
// parts, and runs days against their inputs.
package puzzle

import (
	"errors"
	"fmt"
)

var (
	ErrNoSolution   = errors.New("no solution found")
	ErrInvalidInput = errors.New("invalid input")
)

// Result is the outcome of one part of a day.
type Result struct {
	Part  string
	Value string
	Err   error
}

// Day is a single puzzle.
type Day interface {
	Number() int
	Name() string
	// Check parses input without solving.
	Check(input string) error
	Evaluate(input string) []Result
}

type day[T, A, B any] struct {
	number int
	parse  func(string) (T, error)
	part1  func(T) (A, error)
	part2  func(T) (B, error)
}

// New builds a Day from a parse function and two parts. The parsed value is
// shared by both parts.
func New[T, A, B any](number int, parse func(string) (T, error), part1 func(T) (A, error), part2 func(T) (B, error)) Day {
	return &day[T, A, B]{
		number: number,
		parse:  parse,
		part1:  part1,
		part2:  part2,
	}
}

func (d *day[T, A, B]) Number() int {
	return d.number
}

func (d *day[T, A, B]) Name() string {
	return fmt.Sprintf("day%02d", d.number)
}

func (d *day[T, A, B]) Check(input string) error {
	_, err := d.parse(input)
	return err
}

func (d *day[T, A, B]) Evaluate(input string) []Result {
	results := []Result{{Part: "part1"}, {Part: "part2"}}
	parsed, err := d.parse(input)
	if err != nil {
		for i := range results {
			results[i].Err = err
		}
		return results
	}
	results[0].Value, results[0].Err = format(d.part1(parsed))
	results[1].Value, results[1].Err = format(d.part2(parsed))
	return results
}

func format[V any](v V, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return fmt.Sprint(v), nil
}

// InvalidInput returns an error wrapping ErrInvalidInput.
func InvalidInput(msg string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(msg, args...))
}
