// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package writ

import "code.hybscloud.com/kont"

// Bridge between the monoidal Writer world and kont's algebraic Writer
// effect. kont accumulates discrete []W entries through Tell operations;
// writ folds output into a single monoid value. Both conversions preserve
// entry order.

// ToEff converts a Writer into a kont computation that tells the
// accumulated output as a single entry and produces the result. The Writer
// is forced when the kont computation is driven, not at conversion time.
// Drive the result with kont.RunWriter or compose it with further kont
// combinators.
func ToEff[W, A any](fa Writer[W, A]) kont.Eff[A] {
	return kont.Suspend[kont.Resumed, A](func(k func(A) kont.Resumed) kont.Resumed {
		a, w := fa()
		return kont.TellWriter(w, kont.Pure(a))(k)
	})
}

// FromEff converts a kont Writer-effect computation into a Writer by
// running it under kont's Writer handler and folding the told entries
// through the monoid in order. The kont computation must perform no effects
// other than the Writer family handled by kont.RunWriter.
func FromEff[W, A any](m Monoid[W], eff kont.Eff[A]) Writer[W, A] {
	return func() (A, W) {
		a, entries := kont.RunWriter[W, A](eff)
		w := m.Empty
		for _, e := range entries {
			w = m.Concat(w, e)
		}
		return a, w
	}
}
