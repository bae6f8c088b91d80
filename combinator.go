package combineur

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Result is the outcome of applying a parser to an input slice. On success
// Rest holds the unconsumed suffix; on failure Rest holds the suffix at the
// point parsing could not proceed. Rest is always a suffix of the input the
// parser was given, never a copy.
type Result[T any] struct {
	Value T
	Rest  string
	OK    bool
}

func Success[T any](value T, rest string) Result[T] {
	return Result[T]{Value: value, Rest: rest, OK: true}
}

func Failure[T any](rest string) Result[T] {
	return Result[T]{Rest: rest}
}

// Parser consumes a prefix of its input and produces a value. Parsers are
// stateless values; the same parser can be applied repeatedly and from
// multiple goroutines.
type Parser[T any] func(input string) Result[T]

// Pair is the combined output of two sequenced parsers.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// MatchLiteral consumes exactly the given prefix and produces no value.
func MatchLiteral(expected string) Parser[struct{}] {
	return func(input string) Result[struct{}] {
		if strings.HasPrefix(input, expected) {
			return Success(struct{}{}, input[len(expected):])
		}

		return Failure[struct{}](input)
	}
}

// AnyChar consumes a single character from a non-empty input.
func AnyChar() Parser[rune] {
	return func(input string) Result[rune] {
		if len(input) == 0 {
			return Failure[rune](input)
		}

		r, size := utf8.DecodeRuneInString(input)

		return Success(r, input[size:])
	}
}

// Identifier consumes an ASCII letter followed by any run of ASCII letters,
// digits or hyphens, producing the consumed text.
func Identifier() Parser[string] {
	return func(input string) Result[string] {
		if len(input) == 0 || !isAlpha(input[0]) {
			return Failure[string](input)
		}

		end := 1

		for end < len(input) && isIdentifierChar(input[end]) {
			end++
		}

		return Success(input[:end], input[end:])
	}
}

func isAlpha(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}

func isIdentifierChar(c byte) bool {
	return ('0' <= c && c <= '9') || isAlpha(c) || c == '-'
}

// Map transforms a parser's value, propagating failure unchanged.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(input string) Result[B] {
		r := p(input)

		if !r.OK {
			return Failure[B](r.Rest)
		}

		return Success(f(r.Value), r.Rest)
	}
}

// Both runs two parsers in sequence and pairs their values. Input consumed
// by a successful first parser is not restored when the second fails; use
// Either at the granularity where backtracking is needed.
func Both[A, B any](p1 Parser[A], p2 Parser[B]) Parser[Pair[A, B]] {
	return func(input string) Result[Pair[A, B]] {
		r1 := p1(input)

		if !r1.OK {
			return Failure[Pair[A, B]](r1.Rest)
		}

		r2 := p2(r1.Rest)

		if !r2.OK {
			return Failure[Pair[A, B]](r2.Rest)
		}

		return Success(Pair[A, B]{Left: r1.Value, Right: r2.Value}, r2.Rest)
	}
}

// Left sequences two parsers and keeps only the first value.
func Left[A, B any](p1 Parser[A], p2 Parser[B]) Parser[A] {
	return Map(Both(p1, p2), func(p Pair[A, B]) A {
		return p.Left
	})
}

// Right sequences two parsers and keeps only the second value.
func Right[A, B any](p1 Parser[A], p2 Parser[B]) Parser[B] {
	return Map(Both(p1, p2), func(p Pair[A, B]) B {
		return p.Right
	})
}

// Either tries the first parser and, if it fails, retries the second on the
// same original input. This is the only combinator that backtracks.
func Either[T any](p1, p2 Parser[T]) Parser[T] {
	return func(input string) Result[T] {
		if r := p1(input); r.OK {
			return r
		}

		return p2(input)
	}
}

// OneOrMore applies a parser repeatedly, collecting values until it fails,
// and fails with the original input if the very first application fails.
func OneOrMore[T any](p Parser[T]) Parser[[]T] {
	return func(input string) Result[[]T] {
		first := p(input)

		if !first.OK {
			return Failure[[]T](input)
		}

		values := []T{first.Value}
		rest := first.Rest

		for {
			r := p(rest)

			if !r.OK {
				break
			}

			values = append(values, r.Value)
			rest = r.Rest
		}

		return Success(values, rest)
	}
}

// ZeroOrMore is OneOrMore without the non-empty requirement; it never fails.
func ZeroOrMore[T any](p Parser[T]) Parser[[]T] {
	return func(input string) Result[[]T] {
		values := make([]T, 0)
		rest := input

		for {
			r := p(rest)

			if !r.OK {
				break
			}

			values = append(values, r.Value)
			rest = r.Rest
		}

		return Success(values, rest)
	}
}

// Pred filters a parser's value; a rejected value fails with the original
// input restored, so sibling Either branches retry from the same point.
func Pred[T any](p Parser[T], predicate func(T) bool) Parser[T] {
	return func(input string) Result[T] {
		r := p(input)

		if !r.OK {
			return r
		}

		if !predicate(r.Value) {
			return Failure[T](input)
		}

		return r
	}
}

// AndThen picks the second parser from the first parser's value, running it
// on the input remaining after the first.
func AndThen[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return func(input string) Result[B] {
		r := p(input)

		if !r.OK {
			return Failure[B](r.Rest)
		}

		return f(r.Value)(r.Rest)
	}
}

func whitespaceChar() Parser[rune] {
	return Pred(AnyChar(), unicode.IsSpace)
}

// Space1 consumes one or more whitespace characters.
func Space1() Parser[[]rune] {
	return OneOrMore(whitespaceChar())
}

// Space0 consumes any amount of whitespace, including none.
func Space0() Parser[[]rune] {
	return ZeroOrMore(whitespaceChar())
}

// WhitespaceWrap runs a parser with surrounding whitespace skipped.
func WhitespaceWrap[T any](p Parser[T]) Parser[T] {
	return Right(Space0(), Left(p, Space0()))
}
