/*
Copyright 2026 Bcp47 Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package langtag

// parser consumes a prefix of the remaining subtag sequence and, on
// success, produces a value together with the unconsumed remainder.
// The input slice is never mutated; the remainder is always a subslice
// of the input, so parsers are free of shared state and safe to reuse.
//
// Every parser built from popIf either fails or consumes at least one
// subtag. This guarantees that the repetition combinators below always
// terminate.
type parser[T any] func(in []string) (value T, rest []string, ok bool)

// popIf consumes the head subtag when pred accepts it. It fails on an
// empty sequence and never skips ahead.
func popIf(pred func(string) bool) parser[string] {
	return func(in []string) (string, []string, bool) {
		if len(in) == 0 || !pred(in[0]) {
			return "", in, false
		}
		return in[0], in[1:], true
	}
}

// segment matches a head subtag whose length lies within [minLen, maxLen]
// and whose bytes all satisfy class. An empty subtag satisfies no such
// bound, so consecutive, leading, or trailing hyphens in the original
// input can never be consumed.
func segment(minLen, maxLen int, class func(byte) bool) parser[string] {
	return popIf(func(s string) bool {
		if len(s) < minLen || len(s) > maxLen {
			return false
		}
		for i := 0; i < len(s); i++ {
			if !class(s[i]) {
				return false
			}
		}
		return true
	})
}

// alphaExactly matches a head subtag of exactly n ASCII letters.
func alphaExactly(n int) parser[string] { return segment(n, n, isAlpha) }

// alphaBetween matches a head subtag of minLen to maxLen ASCII letters.
func alphaBetween(minLen, maxLen int) parser[string] { return segment(minLen, maxLen, isAlpha) }

// literal matches the head subtag by exact string equality.
func literal(want string) parser[string] {
	return popIf(func(s string) bool { return s == want })
}

// oneOf tries each alternative in order against the same starting input
// and returns the first success. The order is semantically significant:
// the grammar resolves ambiguity by priority, not by longest match.
func oneOf[T any](parsers ...parser[T]) parser[T] {
	return func(in []string) (T, []string, bool) {
		for _, p := range parsers {
			if v, rest, ok := p(in); ok {
				return v, rest, true
			}
		}
		var zero T
		return zero, in, false
	}
}

// maybe always succeeds. When p matches it returns p's value and the
// advanced remainder; otherwise it returns the zero value and the input
// unchanged. Matched subtags are never empty, so for string-valued
// parsers the zero value unambiguously encodes absence.
func maybe[T any](p parser[T]) parser[T] {
	return func(in []string) (T, []string, bool) {
		if v, rest, ok := p(in); ok {
			return v, rest, true
		}
		var zero T
		return zero, in, true
	}
}

// many applies p zero or more times, collecting the values in order.
// It never fails; it stops at the first non-match.
func many[T any](p parser[T]) parser[[]T] {
	return func(in []string) ([]T, []string, bool) {
		var values []T
		rest := in
		for {
			v, next, ok := p(rest)
			if !ok {
				return values, rest, true
			}
			values = append(values, v)
			rest = next
		}
	}
}

// some applies p one or more times; it fails if the first application fails.
func some[T any](p parser[T]) parser[[]T] {
	return func(in []string) ([]T, []string, bool) {
		first, rest, ok := p(in)
		if !ok {
			return nil, in, false
		}
		more, rest, _ := many(p)(rest)
		return append([]T{first}, more...), rest, true
	}
}

// mapValue transforms a successful result's value via f and propagates
// failure unchanged.
func mapValue[A, B any](p parser[A], f func(A) B) parser[B] {
	return func(in []string) (B, []string, bool) {
		v, rest, ok := p(in)
		if !ok {
			var zero B
			return zero, in, false
		}
		return f(v), rest, true
	}
}

// andThen sequences two parsers, feeding the first value to f to decide
// the continuation. A failure at either step fails the whole sequence
// with no partial result.
func andThen[A, B any](p parser[A], f func(A) parser[B]) parser[B] {
	return func(in []string) (B, []string, bool) {
		v, rest, ok := p(in)
		if !ok {
			var zero B
			return zero, in, false
		}
		result, rest, ok := f(v)(rest)
		if !ok {
			var zero B
			return zero, in, false
		}
		return result, rest, true
	}
}
