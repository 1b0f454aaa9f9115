// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package writ provides a monoid-accumulating Writer monad and its
// transformer over pluggable effect contexts, as a companion to
// [code.hybscloud.com/kont].
//
// A [Writer] computation produces a result together with output accumulated
// through a [Monoid]. Where kont models Writer as an algebraic effect that
// collects discrete []W entries, writ models it monadically: output is a
// single value of the accumulator type, combined with the monoid's Concat in
// program order.
//
// # Core Types
//
//   - [Writer]: deferred pair computation func() (A, W), the plain
//     (identity-effect) specialization
//   - [WriterT]: the same computation inside an arbitrary effect context M,
//     supplied as an [Effect] dictionary
//   - [Monoid]: accumulator contract (Empty identity, associative Concat)
//   - [Pair]: kont's pair type, shared for Listen results and bridging
//
// # Operations
//
// Writer: [Of], [Tell], [Map], [Ap], [Chain], [Then], [Listen], [Pass],
// [Listens], [Censor], forced with [Run], [Eval], [Exec].
//
// WriterT carries the same operation set with a T suffix ([OfT], [TellT],
// [MapT], [ApT], [ChainT], [ThenT], [ListenT], [PassT], [ListensT],
// [CensorT], [EvalT], [ExecT]) plus [LiftT] for embedding an effect-context
// value with empty output. Operations that need the identity element or
// combine two outputs take the [Monoid]; all take the [Effect] first.
//
// Both worlds combine output strictly left to right: the output of the
// computation forced earlier is always the left operand of Concat.
//
// # Effect Contexts
//
// Go generics cannot abstract over a type constructor M, so WriterT stores
// the wrapped pair as [Erased] and delegates sequencing to an [Effect]
// monad dictionary. Concrete types are recovered by assertion at instance
// boundaries, following kont's Erased convention for its frame chain.
//
//   - [Identity]: trivial context; recover with [FromIdentity]
//   - [Optional]: absence short-circuits, via [Option]; recover with [FromOption]
//   - [Fallible]: failure short-circuits, via [kont.Either]; recover with [FromEither]
//   - [Deferred]: suspended [kont.Eff] computations; recover with
//     [FromDeferred], or [RunDeferred] for pure ones
//
// Failure semantics belong entirely to the context: writ never inspects or
// recovers from an absent or failed step, it propagates the instance's own
// short-circuit unchanged.
//
// # Bridge
//
// [ToEff] and [FromEff] convert between writ's monoidal Writer and kont's
// algebraic Writer effect. ToEff tells the accumulated output as a single
// entry; FromEff folds told entries through the monoid in order.
//
// # Example
//
//	mo := writ.StringMonoid()
//	step := writ.Chain(mo, writ.Tell("a"), func(struct{}) writ.Writer[string, struct{}] {
//		return writ.Tell("b")
//	})
//	log := writ.Exec(step) // "ab"
package writ
