// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package writ

import "code.hybscloud.com/kont"

// Deferred effect context built on kont's continuation monad.

// Deferred is the suspended effect context: M<A> is kont.Eff[Erased], a
// computation in kont's continuation world. Construction performs no work;
// the computation runs when a kont runner drives it. A [WriterT] over
// Deferred inherits whatever suspension and effect semantics the embedded
// kont computations carry.
type Deferred struct{}

// Of implements Effect.
func (Deferred) Of(a Erased) Erased { return kont.Pure(a) }

// Map implements Effect.
func (Deferred) Map(ma Erased, f func(Erased) Erased) Erased {
	return kont.Map(ma.(kont.Eff[Erased]), f)
}

// Chain implements Effect.
func (Deferred) Chain(ma Erased, f func(Erased) Erased) Erased {
	return kont.Bind(ma.(kont.Eff[Erased]), func(v Erased) kont.Eff[Erased] {
		return f(v).(kont.Eff[Erased])
	})
}

// FromDeferred recovers the typed kont computation from a Deferred-context
// Erased. The result composes with further kont combinators and runs under
// any kont handler.
func FromDeferred[A any](v Erased) kont.Eff[A] {
	return kont.Map(v.(kont.Eff[Erased]), func(x Erased) A { return x.(A) })
}

// RunDeferred drives a pure Deferred-context computation to completion.
// The computation must not perform effect operations; use [FromDeferred]
// and a kont handler when it does.
func RunDeferred[A any](v Erased) A {
	r := kont.RunWith(v.(kont.Eff[Erased]), func(x Erased) kont.Resumed { return x })
	return r.(A)
}
