// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package writ

// Effect contract for the wrapping computation context.

// Erased is a type alias for any, marking type-erased values inside an
// effect context. Go generics cannot abstract over the type constructor M,
// so [WriterT] stores M<Pair[A, W]> as Erased and each [Effect] instance
// works on its own concrete representation (Option[Erased],
// kont.Either[E, Erased], kont.Eff[Erased], ...). Concrete types are
// recovered via type assertions at instance boundaries.
type Erased = any

// Effect is the monad dictionary for an effect context M.
//
//   - Of lifts a pure value into the context.
//   - Map transforms the wrapped value.
//   - Chain sequences two computations, where f returns the next wrapped
//     computation in the same context.
//
// Instances must satisfy the monad laws, and Map must agree with
// Chain(ma, func(a) Of(f(a))). If the context can fail (absence, error),
// Map and Chain must propagate the failure without calling f.
type Effect interface {
	Of(a Erased) Erased
	Map(ma Erased, f func(Erased) Erased) Erased
	Chain(ma Erased, f func(Erased) Erased) Erased
}

// Identity is the trivial effect context: M<A> is A itself.
// [WriterT] over Identity behaves exactly like [Writer].
type Identity struct{}

// Of implements Effect.
func (Identity) Of(a Erased) Erased { return a }

// Map implements Effect.
func (Identity) Map(ma Erased, f func(Erased) Erased) Erased { return f(ma) }

// Chain implements Effect.
func (Identity) Chain(ma Erased, f func(Erased) Erased) Erased { return f(ma) }

// FromIdentity recovers the typed value from an Identity-context Erased.
func FromIdentity[A any](v Erased) A { return v.(A) }
