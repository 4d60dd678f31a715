package parser

// Tuple2 holds the results of Pair.
type Tuple2[A, B any] struct {
	First  A
	Second B
}

// Tuple3 holds the results of Tuple.
type Tuple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Alt tries each parser against the same input and returns the first success.
// If every alternative fails, the error of the last one is returned.
func Alt[T any](options ...Parser[T]) Parser[T] {
	return func(input string) (value T, rest string, err error) {
		if len(options) == 0 {
			return value, input, fail(input, KindAlt)
		}
		for _, p := range options {
			value, rest, err = p(input)
			if err == nil {
				return value, rest, nil
			}
		}
		var zero T
		return zero, input, err
	}
}

// Pair runs pa then pb on the remainder.
func Pair[A, B any](pa Parser[A], pb Parser[B]) Parser[Tuple2[A, B]] {
	return func(input string) (Tuple2[A, B], string, error) {
		var out Tuple2[A, B]
		a, rest, err := pa(input)
		if err != nil {
			return out, input, err
		}
		b, rest, err := pb(rest)
		if err != nil {
			return out, input, err
		}
		out.First, out.Second = a, b
		return out, rest, nil
	}
}

// Tuple runs pa, pb and pc in sequence.
func Tuple[A, B, C any](pa Parser[A], pb Parser[B], pc Parser[C]) Parser[Tuple3[A, B, C]] {
	return func(input string) (Tuple3[A, B, C], string, error) {
		var out Tuple3[A, B, C]
		a, rest, err := pa(input)
		if err != nil {
			return out, input, err
		}
		b, rest, err := pb(rest)
		if err != nil {
			return out, input, err
		}
		c, rest, err := pc(rest)
		if err != nil {
			return out, input, err
		}
		out.First, out.Second, out.Third = a, b, c
		return out, rest, nil
	}
}

// Preceded runs prefix then p, keeping the value of p.
func Preceded[A, T any](prefix Parser[A], p Parser[T]) Parser[T] {
	return func(input string) (value T, rest string, err error) {
		_, rest, err = prefix(input)
		if err != nil {
			return value, input, err
		}
		value, rest, err = p(rest)
		if err != nil {
			return value, input, err
		}
		return value, rest, nil
	}
}

// Terminated runs p then suffix, keeping the value of p.
func Terminated[T, B any](p Parser[T], suffix Parser[B]) Parser[T] {
	return func(input string) (value T, rest string, err error) {
		value, rest, err = p(input)
		if err != nil {
			return value, input, err
		}
		_, rest, err = suffix(rest)
		if err != nil {
			var zero T
			return zero, input, err
		}
		return value, rest, nil
	}
}

// Delimited runs left, inner and right, keeping the value of inner.
func Delimited[L, T, R any](left Parser[L], inner Parser[T], right Parser[R]) Parser[T] {
	return Preceded(left, Terminated(inner, right))
}

// FoldMany0 applies p until it fails, combining each value into the
// accumulator returned by init. A success that consumes nothing also ends the
// repetition and is not folded, so FoldMany0 always terminates.
func FoldMany0[T, Acc any](p Parser[T], init func() Acc, f func(Acc, T) Acc) Parser[Acc] {
	return func(input string) (Acc, string, error) {
		acc, rest := foldLoop(p, init(), input, f)
		return acc, rest, nil
	}
}

// FoldMany1 is like FoldMany0 but requires at least one application of p.
// The error of the first application is returned if it fails.
func FoldMany1[T, Acc any](p Parser[T], init func() Acc, f func(Acc, T) Acc) Parser[Acc] {
	return func(input string) (Acc, string, error) {
		first, rest, err := p(input)
		if err != nil {
			var zero Acc
			return zero, input, err
		}
		acc, rest := foldLoop(p, f(init(), first), rest, f)
		return acc, rest, nil
	}
}

func foldLoop[T, Acc any](p Parser[T], acc Acc, input string, f func(Acc, T) Acc) (Acc, string) {
	for {
		value, rest, err := p(input)
		if err != nil || len(rest) == len(input) {
			return acc, input
		}
		acc = f(acc, value)
		input = rest
	}
}

func appendValue[T any](values []T, v T) []T { return append(values, v) }

func emptySlice[T any]() []T { return nil }

// Many0 collects the values of p until it fails.
func Many0[T any](p Parser[T]) Parser[[]T] {
	return FoldMany0(p, emptySlice[T], appendValue[T])
}

// Many1 collects the values of p, requiring at least one.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return FoldMany1(p, emptySlice[T], appendValue[T])
}

// SeparatedList1 parses one or more values of p separated by sep. A separator
// not followed by a value is left unconsumed.
func SeparatedList1[S, T any](sep Parser[S], p Parser[T]) Parser[[]T] {
	return func(input string) ([]T, string, error) {
		first, rest, err := p(input)
		if err != nil {
			return nil, input, err
		}
		values := []T{first}
		for {
			_, afterSep, err := sep(rest)
			if err != nil || len(afterSep) == len(rest) {
				return values, rest, nil
			}
			value, afterValue, err := p(afterSep)
			if err != nil {
				return values, rest, nil
			}
			values = append(values, value)
			rest = afterValue
		}
	}
}

// SeparatedList0 is like SeparatedList1 but succeeds with no values when the
// first application of p fails.
func SeparatedList0[S, T any](sep Parser[S], p Parser[T]) Parser[[]T] {
	list := SeparatedList1(sep, p)
	return func(input string) ([]T, string, error) {
		values, rest, err := list(input)
		if err != nil {
			return nil, input, nil
		}
		return values, rest, nil
	}
}

// Opt returns a pointer to the value of p, or nil with the input untouched
// when p fails.
func Opt[T any](p Parser[T]) Parser[*T] {
	return func(input string) (*T, string, error) {
		value, rest, err := p(input)
		if err != nil {
			return nil, input, nil
		}
		return &value, rest, nil
	}
}

// Map transforms the value of p.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(input string) (U, string, error) {
		value, rest, err := p(input)
		if err != nil {
			var zero U
			return zero, input, err
		}
		return f(value), rest, nil
	}
}

// MapRes transforms the value of p with a conversion that may fail. A failed
// conversion is reported as KindMapRes at the position p started from.
func MapRes[T, U any](p Parser[T], f func(T) (U, error)) Parser[U] {
	return func(input string) (U, string, error) {
		var zero U
		value, rest, err := p(input)
		if err != nil {
			return zero, input, err
		}
		out, err := f(value)
		if err != nil {
			return zero, input, &Error{Remainder: input, Kind: KindMapRes, Err: err}
		}
		return out, rest, nil
	}
}

// MapOpt is like MapRes for conversions that signal failure with ok == false.
func MapOpt[T, U any](p Parser[T], f func(T) (U, bool)) Parser[U] {
	return func(input string) (U, string, error) {
		var zero U
		value, rest, err := p(input)
		if err != nil {
			return zero, input, err
		}
		out, ok := f(value)
		if !ok {
			return zero, input, fail(input, KindMapOpt)
		}
		return out, rest, nil
	}
}

// Verify succeeds only if pred accepts the value of p.
func Verify[T any](p Parser[T], pred func(T) bool) Parser[T] {
	return func(input string) (T, string, error) {
		value, rest, err := p(input)
		if err != nil {
			return value, input, err
		}
		if !pred(value) {
			var zero T
			return zero, input, fail(input, KindVerify)
		}
		return value, rest, nil
	}
}

// Value replaces the result of p with v.
func Value[T, U any](v U, p Parser[T]) Parser[U] {
	return Map(p, func(T) U { return v })
}

// Recognize returns the slice of input consumed by p.
func Recognize[T any](p Parser[T]) Parser[string] {
	return func(input string) (string, string, error) {
		_, rest, err := p(input)
		if err != nil {
			return "", input, err
		}
		return input[:len(input)-len(rest)], rest, nil
	}
}
