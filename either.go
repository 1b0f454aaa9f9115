// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package writ

import "code.hybscloud.com/kont"

// Error-capable effect context built on kont's Either.

// Fallible is the error-capable effect context: M<A> is
// kont.Either[E, Erased]. Left short-circuits Map and Chain, so a [WriterT]
// over Fallible propagates the error unmodified and discards the output
// accumulated so far — failure handling belongs to the context, never to
// the Writer layer.
type Fallible[E any] struct{}

// Of implements Effect.
func (Fallible[E]) Of(a Erased) Erased { return kont.Right[E, Erased](a) }

// Map implements Effect.
func (Fallible[E]) Map(ma Erased, f func(Erased) Erased) Erased {
	return kont.MapEither(ma.(kont.Either[E, Erased]), f)
}

// Chain implements Effect.
func (Fallible[E]) Chain(ma Erased, f func(Erased) Erased) Erased {
	return kont.FlatMapEither(ma.(kont.Either[E, Erased]), func(v Erased) kont.Either[E, Erased] {
		return f(v).(kont.Either[E, Erased])
	})
}

// FromEither recovers the typed Either from a Fallible-context Erased.
func FromEither[E, A any](v Erased) kont.Either[E, A] {
	return kont.MapEither(v.(kont.Either[E, Erased]), func(x Erased) A { return x.(A) })
}

// FailT is the failed computation in the Fallible effect context.
func FailT[W, A, E any](e E) WriterT[W, A] {
	return func() Erased { return kont.Left[E, Erased](e) }
}
