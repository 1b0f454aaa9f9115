// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package writ

// Option type and the absence-capable effect context built on it.

// Option represents a value that is either present (Some) or absent (None).
type Option[A any] struct {
	present bool
	value   A
}

// Some creates a present Option.
func Some[A any](a A) Option[A] {
	return Option[A]{present: true, value: a}
}

// None creates an absent Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// IsSome returns true if the value is present.
func (o Option[A]) IsSome() bool {
	return o.present
}

// IsNone returns true if the value is absent.
func (o Option[A]) IsNone() bool {
	return !o.present
}

// Get returns the value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	if o.present {
		return o.value, true
	}
	var zero A
	return zero, false
}

// GetOrElse returns the value, or def when absent.
func (o Option[A]) GetOrElse(def A) A {
	if o.present {
		return o.value
	}
	return def
}

// MapOption applies a function to the present value.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.present {
		return Some(f(o.value))
	}
	return None[B]()
}

// FlatMapOption sequences two Option computations.
func FlatMapOption[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if o.present {
		return f(o.value)
	}
	return None[B]()
}

// MatchOption pattern matches on the Option, calling onNone or onSome.
func MatchOption[A, T any](o Option[A], onNone func() T, onSome func(A) T) T {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// Optional is the absence-capable effect context: M<A> is Option[Erased].
// None short-circuits Map and Chain, so a [WriterT] over Optional drops both
// result and output as soon as any step is absent.
type Optional struct{}

// Of implements Effect.
func (Optional) Of(a Erased) Erased { return Some(a) }

// Map implements Effect.
func (Optional) Map(ma Erased, f func(Erased) Erased) Erased {
	return MapOption(ma.(Option[Erased]), f)
}

// Chain implements Effect.
func (Optional) Chain(ma Erased, f func(Erased) Erased) Erased {
	return FlatMapOption(ma.(Option[Erased]), func(v Erased) Option[Erased] {
		return f(v).(Option[Erased])
	})
}

// FromOption recovers the typed Option from an Optional-context Erased.
func FromOption[A any](v Erased) Option[A] {
	return MapOption(v.(Option[Erased]), func(x Erased) A { return x.(A) })
}

// NoneT is the absent computation in the Optional effect context.
func NoneT[W, A any]() WriterT[W, A] {
	return func() Erased { return None[Erased]() }
}
