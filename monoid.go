// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package writ

// Monoid contract and standard instances for the accumulator type.

// Monoid supplies the identity element and combining operation for an
// accumulator type W. Concat must be associative and Empty must be a
// two-sided identity for it; writ cannot verify either at runtime.
type Monoid[W any] struct {
	Empty  W
	Concat func(a, b W) W
}

// Number constrains the numeric monoid constructors.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// StringMonoid is string concatenation with "" as identity.
func StringMonoid() Monoid[string] {
	return Monoid[string]{
		Empty:  "",
		Concat: func(a, b string) string { return a + b },
	}
}

// SliceMonoid is slice concatenation with nil as identity.
// Concat copies into a fresh slice; the result never aliases an operand.
func SliceMonoid[T any]() Monoid[[]T] {
	return Monoid[[]T]{
		Concat: func(a, b []T) []T {
			if len(a)+len(b) == 0 {
				return nil
			}
			out := make([]T, 0, len(a)+len(b))
			out = append(out, a...)
			return append(out, b...)
		},
	}
}

// SumMonoid is numeric addition with 0 as identity.
func SumMonoid[N Number]() Monoid[N] {
	return Monoid[N]{
		Concat: func(a, b N) N { return a + b },
	}
}

// ProductMonoid is numeric multiplication with 1 as identity.
func ProductMonoid[N Number]() Monoid[N] {
	return Monoid[N]{
		Empty:  1,
		Concat: func(a, b N) N { return a * b },
	}
}

// AllMonoid is logical AND with true as identity.
func AllMonoid() Monoid[bool] {
	return Monoid[bool]{
		Empty:  true,
		Concat: func(a, b bool) bool { return a && b },
	}
}

// AnyMonoid is logical OR with false as identity.
func AnyMonoid() Monoid[bool] {
	return Monoid[bool]{
		Concat: func(a, b bool) bool { return a || b },
	}
}

// Dual flips the argument order of Concat. Dual(Dual(m)) behaves as m.
// Useful for observing combination order: under Dual, later output lands on
// the left.
func Dual[W any](m Monoid[W]) Monoid[W] {
	return Monoid[W]{
		Empty:  m.Empty,
		Concat: func(a, b W) W { return m.Concat(b, a) },
	}
}
