// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package writ_test

import (
	"strings"
	"testing"

	"code.hybscloud.com/writ"
)

func TestWriterTell(t *testing.T) {
	_, w := writ.Run(writ.Tell("hello"))
	if w != "hello" {
		t.Fatalf("got output %q, want %q", w, "hello")
	}
}

func TestWriterOf(t *testing.T) {
	mo := writ.StringMonoid()
	a, w := writ.Run(writ.Of(mo, 42))
	if a != 42 {
		t.Fatalf("got result %d, want 42", a)
	}
	if w != "" {
		t.Fatalf("got output %q, want empty", w)
	}
}

func TestWriterChainAccumulatesInOrder(t *testing.T) {
	mo := writ.StringMonoid()
	comp := writ.Chain(mo, writ.Tell("a"), func(struct{}) writ.Writer[string, struct{}] {
		return writ.Tell("b")
	})
	if w := writ.Exec(comp); w != "ab" {
		t.Fatalf("got output %q, want %q", w, "ab")
	}
}

func TestWriterChainOfScenario(t *testing.T) {
	mo := writ.StringMonoid()
	comp := writ.Chain(mo, writ.Of(mo, 1), func(n int) writ.Writer[string, int] {
		return writ.Of(mo, n+1)
	})
	a, w := writ.Run(comp)
	if a != 2 {
		t.Fatalf("got result %d, want 2", a)
	}
	if w != "" {
		t.Fatalf("got output %q, want empty", w)
	}
}

func TestWriterEvalExec(t *testing.T) {
	mo := writ.StringMonoid()
	comp := writ.Then(mo, writ.Tell("log"), writ.Of(mo, "result"))
	if a := writ.Eval(comp); a != "result" {
		t.Fatalf("got result %q, want %q", a, "result")
	}
	if w := writ.Exec(comp); w != "log" {
		t.Fatalf("got output %q, want %q", w, "log")
	}
}

func TestWriterMapKeepsOutput(t *testing.T) {
	mo := writ.StringMonoid()
	comp := writ.Map(writ.Then(mo, writ.Tell("log"), writ.Of(mo, 3)), func(n int) int {
		return n * 2
	})
	a, w := writ.Run(comp)
	if a != 6 {
		t.Fatalf("got result %d, want 6", a)
	}
	if w != "log" {
		t.Fatalf("got output %q, want %q", w, "log")
	}
}

func TestWriterApOrder(t *testing.T) {
	mo := writ.StringMonoid()
	fab := writ.Then(mo, writ.Tell("f"), writ.Of(mo, func(n int) int { return n + 1 }))
	fa := writ.Then(mo, writ.Tell("x"), writ.Of(mo, 41))
	a, w := writ.Run(writ.Ap(mo, fab, fa))
	if a != 42 {
		t.Fatalf("got result %d, want 42", a)
	}
	if w != "fx" {
		t.Fatalf("got output %q, want %q", w, "fx")
	}
}

func TestWriterListen(t *testing.T) {
	mo := writ.StringMonoid()
	inner := writ.Then(mo, writ.Tell("inner"), writ.Of(mo, 7))
	p, w := writ.Run(writ.Listen(inner))
	if p.Fst != 7 {
		t.Fatalf("got result %d, want 7", p.Fst)
	}
	if p.Snd != "inner" {
		t.Fatalf("listened output = %q, want %q", p.Snd, "inner")
	}
	if w != "inner" {
		t.Fatalf("propagated output = %q, want %q", w, "inner")
	}
}

func TestWriterPass(t *testing.T) {
	mo := writ.StringMonoid()
	upper := func(w string) string { return strings.ToUpper(w) }
	inner := writ.Then(mo, writ.Tell("quiet"),
		writ.Of(mo, writ.Pair[int, func(string) string]{Fst: 1, Snd: upper}))
	a, w := writ.Run(writ.Pass(inner))
	if a != 1 {
		t.Fatalf("got result %d, want 1", a)
	}
	if w != "QUIET" {
		t.Fatalf("got output %q, want %q", w, "QUIET")
	}
}

func TestWriterListens(t *testing.T) {
	mo := writ.StringMonoid()
	inner := writ.Then(mo, writ.Tell("four"), writ.Of(mo, true))
	p, w := writ.Run(writ.Listens(inner, func(w string) int { return len(w) }))
	if p.Fst != true {
		t.Fatalf("got result %v, want true", p.Fst)
	}
	if p.Snd != 4 {
		t.Fatalf("projected output = %d, want 4", p.Snd)
	}
	if w != "four" {
		t.Fatalf("propagated output = %q, want %q", w, "four")
	}
}

func TestWriterCensor(t *testing.T) {
	mo := writ.StringMonoid()
	inner := writ.Then(mo, writ.Tell("secret"), writ.Of(mo, "result"))
	a, w := writ.Run(writ.Censor(inner, func(string) string { return "[REDACTED]" }))
	if a != "result" {
		t.Fatalf("got result %q, want %q", a, "result")
	}
	if w != "[REDACTED]" {
		t.Fatalf("got output %q, want %q", w, "[REDACTED]")
	}
}

func TestWriterSliceOutput(t *testing.T) {
	mo := writ.SliceMonoid[int]()
	comp := writ.Chain(mo, writ.Tell([]int{1, 2}), func(struct{}) writ.Writer[[]int, struct{}] {
		return writ.Tell([]int{3})
	})
	w := writ.Exec(comp)
	if len(w) != 3 || w[0] != 1 || w[1] != 2 || w[2] != 3 {
		t.Fatalf("got output %v, want [1 2 3]", w)
	}
}

func TestWriterSumOutput(t *testing.T) {
	mo := writ.SumMonoid[int]()
	comp := writ.Chain(mo, writ.Tell(2), func(struct{}) writ.Writer[int, struct{}] {
		return writ.Tell(3)
	})
	if w := writ.Exec(comp); w != 5 {
		t.Fatalf("got output %d, want 5", w)
	}
}

func TestWriterDeferredUntilRun(t *testing.T) {
	_ = writ.StringMonoid()
	forced := 0
	base := writ.Writer[string, int](func() (int, string) {
		forced++
		return 1, "x"
	})
	comp := writ.Map(writ.Censor(base, func(w string) string { return w + "y" }), func(n int) int {
		return n + 1
	})
	if forced != 0 {
		t.Fatalf("forced %d times before Run, want 0", forced)
	}
	a, w := writ.Run(comp)
	if forced != 1 {
		t.Fatalf("forced %d times after Run, want 1", forced)
	}
	if a != 2 || w != "xy" {
		t.Fatalf("got (%d, %q), want (2, %q)", a, w, "xy")
	}
}
