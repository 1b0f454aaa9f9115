// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package writ

import "code.hybscloud.com/kont"

// Writer operations.
// Writer[W, A] accumulates monoidal output alongside a result.

// Pair holds two values. It is kont's pair type, shared so that values
// cross the bridge to kont's Writer effect without repacking.
type Pair[A, B any] = kont.Pair[A, B]

// Writer is a deferred computation producing a result of type A together
// with accumulated output of type W. Constructing a Writer performs no
// work; [Run], [Eval] or [Exec] forces it. Values are immutable and freely
// shareable; every operation returns a new Writer.
type Writer[W, A any] func() (A, W)

// Run forces the computation, returning the result and the accumulated
// output.
func Run[W, A any](fa Writer[W, A]) (A, W) {
	return fa()
}

// Eval forces the computation and discards the output.
func Eval[W, A any](fa Writer[W, A]) A {
	a, _ := fa()
	return a
}

// Exec forces the computation and discards the result, keeping the output.
func Exec[W, A any](fa Writer[W, A]) W {
	_, w := fa()
	return w
}

// Tell produces a computation whose output is exactly w and whose result is
// the unit value. The base case for writing output.
func Tell[W any](w W) Writer[W, struct{}] {
	return func() (struct{}, W) {
		return struct{}{}, w
	}
}

// Of lifts a pure value. The result is a and the output is the monoid
// identity.
func Of[W, A any](m Monoid[W], a A) Writer[W, A] {
	return func() (A, W) {
		return a, m.Empty
	}
}

// Map applies a pure function to the result. The output passes through
// unchanged.
func Map[W, A, B any](fa Writer[W, A], f func(A) B) Writer[W, B] {
	return func() (B, W) {
		a, w := fa()
		return f(a), w
	}
}

// Chain sequences two computations (monadic bind). It forces fa, passes the
// result to f, forces the resulting computation, and concatenates the two
// outputs in execution order: Concat(first, second).
func Chain[W, A, B any](m Monoid[W], fa Writer[W, A], f func(A) Writer[W, B]) Writer[W, B] {
	return func() (B, W) {
		a, w1 := fa()
		b, w2 := f(a)()
		return b, m.Concat(w1, w2)
	}
}

// Ap applies a wrapped function to a wrapped value. fab is forced before
// fa, and the outputs concatenate in that order.
func Ap[W, A, B any](m Monoid[W], fab Writer[W, func(A) B], fa Writer[W, A]) Writer[W, B] {
	return func() (B, W) {
		f, w1 := fab()
		a, w2 := fa()
		return f(a), m.Concat(w1, w2)
	}
}

// Then sequences two computations, discarding the first result. The outputs
// still concatenate in execution order.
func Then[W, A, B any](m Monoid[W], fa Writer[W, A], fb Writer[W, B]) Writer[W, B] {
	return func() (B, W) {
		_, w1 := fa()
		b, w2 := fb()
		return b, m.Concat(w1, w2)
	}
}

// Listen exposes the accumulated output as part of the result while still
// propagating the same output onward unchanged.
func Listen[W, A any](fa Writer[W, A]) Writer[W, Pair[A, W]] {
	return func() (Pair[A, W], W) {
		a, w := fa()
		return Pair[A, W]{Fst: a, Snd: w}, w
	}
}

// Pass applies the output-transforming function carried in the result to
// the output produced by fa, and drops the function from the result.
func Pass[W, A any](fa Writer[W, Pair[A, func(W) W]]) Writer[W, A] {
	return func() (A, W) {
		p, w := fa()
		return p.Fst, p.Snd(w)
	}
}

// Listens is Listen with the exposed output projected through f before
// pairing with the result. The propagated output is unchanged.
func Listens[W, A, B any](fa Writer[W, A], f func(W) B) Writer[W, Pair[A, B]] {
	return func() (Pair[A, B], W) {
		a, w := fa()
		return Pair[A, B]{Fst: a, Snd: f(w)}, w
	}
}

// Censor replaces the output with f applied to it. The result is unchanged.
func Censor[W, A any](fa Writer[W, A], f func(W) W) Writer[W, A] {
	return func() (A, W) {
		a, w := fa()
		return a, f(w)
	}
}
