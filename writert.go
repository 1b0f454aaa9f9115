// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package writ

// WriterT operations.
// WriterT[W, A] is Writer[W, A] inside an arbitrary effect context M,
// supplied as an Effect dictionary.

// WriterT is a deferred computation producing, inside an effect context M,
// a result of type A together with accumulated output of type W. Forcing it
// yields M<Pair[A, W]> as [Erased], in the representation of the [Effect]
// instance the computation was built with. A WriterT must only be combined
// with and run against that same instance.
//
// Like [Writer], construction performs no work and values are immutable.
type WriterT[W, A any] func() Erased

// RunT forces the computation, returning the wrapped pair M<Pair[A, W]>.
// Recover the concrete type with the instance's From helper
// ([FromIdentity], [FromOption], [FromEither], [FromDeferred]).
func RunT[W, A any](fa WriterT[W, A]) Erased {
	return fa()
}

// EvalT forces the computation and discards the output, producing M<A>.
func EvalT[W, A any](m Effect, fa WriterT[W, A]) Erased {
	return m.Map(fa(), func(v Erased) Erased {
		return v.(Pair[A, W]).Fst
	})
}

// ExecT forces the computation and discards the result, producing M<W>.
func ExecT[W, A any](m Effect, fa WriterT[W, A]) Erased {
	return m.Map(fa(), func(v Erased) Erased {
		return v.(Pair[A, W]).Snd
	})
}

// TellT produces a computation whose output is exactly w and whose result
// is the unit value.
func TellT[W any](m Effect, w W) WriterT[W, struct{}] {
	return func() Erased {
		return m.Of(Pair[struct{}, W]{Fst: struct{}{}, Snd: w})
	}
}

// OfT lifts a pure value. The result is a and the output is the monoid
// identity.
func OfT[W, A any](m Effect, mo Monoid[W], a A) WriterT[W, A] {
	return func() Erased {
		return m.Of(Pair[A, W]{Fst: a, Snd: mo.Empty})
	}
}

// LiftT embeds an effect-context value M<A> into a computation with empty
// output. ma must be in the representation of the same Effect instance.
func LiftT[W, A any](m Effect, mo Monoid[W], ma Erased) WriterT[W, A] {
	return func() Erased {
		return m.Map(ma, func(v Erased) Erased {
			return Pair[A, W]{Fst: v.(A), Snd: mo.Empty}
		})
	}
}

// MapT applies a pure function to the result. The output passes through
// unchanged, and any failure of the context propagates untouched.
func MapT[W, A, B any](m Effect, fa WriterT[W, A], f func(A) B) WriterT[W, B] {
	return func() Erased {
		return m.Map(fa(), func(v Erased) Erased {
			p := v.(Pair[A, W])
			return Pair[B, W]{Fst: f(p.Fst), Snd: p.Snd}
		})
	}
}

// ChainT sequences two computations (monadic bind). Effect sequencing is
// delegated to the instance's Chain; the outputs concatenate in execution
// order: Concat(first, second).
func ChainT[W, A, B any](m Effect, mo Monoid[W], fa WriterT[W, A], f func(A) WriterT[W, B]) WriterT[W, B] {
	return func() Erased {
		return m.Chain(fa(), func(v Erased) Erased {
			p := v.(Pair[A, W])
			return m.Map(f(p.Fst)(), func(u Erased) Erased {
				q := u.(Pair[B, W])
				return Pair[B, W]{Fst: q.Fst, Snd: mo.Concat(p.Snd, q.Snd)}
			})
		})
	}
}

// ApT applies a wrapped function to a wrapped value. The effect of fab is
// sequenced before the effect of fa, and the outputs concatenate in that
// order.
func ApT[W, A, B any](m Effect, mo Monoid[W], fab WriterT[W, func(A) B], fa WriterT[W, A]) WriterT[W, B] {
	return func() Erased {
		return m.Chain(fab(), func(v Erased) Erased {
			p := v.(Pair[func(A) B, W])
			return m.Map(fa(), func(u Erased) Erased {
				q := u.(Pair[A, W])
				return Pair[B, W]{Fst: p.Fst(q.Fst), Snd: mo.Concat(p.Snd, q.Snd)}
			})
		})
	}
}

// ThenT sequences two computations, discarding the first result.
func ThenT[W, A, B any](m Effect, mo Monoid[W], fa WriterT[W, A], fb WriterT[W, B]) WriterT[W, B] {
	return ChainT(m, mo, fa, func(A) WriterT[W, B] { return fb })
}

// ListenT exposes the accumulated output as part of the result while still
// propagating the same output onward unchanged.
func ListenT[W, A any](m Effect, fa WriterT[W, A]) WriterT[W, Pair[A, W]] {
	return func() Erased {
		return m.Map(fa(), func(v Erased) Erased {
			p := v.(Pair[A, W])
			return Pair[Pair[A, W], W]{Fst: p, Snd: p.Snd}
		})
	}
}

// PassT applies the output-transforming function carried in the result to
// the output produced by fa, and drops the function from the result.
func PassT[W, A any](m Effect, fa WriterT[W, Pair[A, func(W) W]]) WriterT[W, A] {
	return func() Erased {
		return m.Map(fa(), func(v Erased) Erased {
			p := v.(Pair[Pair[A, func(W) W], W])
			return Pair[A, W]{Fst: p.Fst.Fst, Snd: p.Fst.Snd(p.Snd)}
		})
	}
}

// ListensT is ListenT with the exposed output projected through f before
// pairing with the result.
func ListensT[W, A, B any](m Effect, fa WriterT[W, A], f func(W) B) WriterT[W, Pair[A, B]] {
	return func() Erased {
		return m.Map(fa(), func(v Erased) Erased {
			p := v.(Pair[A, W])
			return Pair[Pair[A, B], W]{
				Fst: Pair[A, B]{Fst: p.Fst, Snd: f(p.Snd)},
				Snd: p.Snd,
			}
		})
	}
}

// CensorT replaces the output with f applied to it. The result is
// unchanged.
func CensorT[W, A any](m Effect, fa WriterT[W, A], f func(W) W) WriterT[W, A] {
	return func() Erased {
		return m.Map(fa(), func(v Erased) Erased {
			p := v.(Pair[A, W])
			return Pair[A, W]{Fst: p.Fst, Snd: f(p.Snd)}
		})
	}
}
