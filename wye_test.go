// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wye_test

import (
	"testing"

	wye "code.hybscloud.com/wye"
)

func TestStepDoneIsStable(t *testing.T) {
	w := wye.Done[int, int, int](wye.End{})
	sf1 := wye.Step(w)
	sf2 := wye.Step(w)
	if sf1.Tag != wye.StepDone || sf2.Tag != wye.StepDone {
		t.Fatalf("Done wye must always step to Done")
	}
	if _, ok := sf1.Cause.(wye.End); !ok {
		t.Fatalf("expected End cause, got %#v", sf1.Cause)
	}
}

func TestAwaitLReceivesOnlyLeftKinds(t *testing.T) {
	var seen wye.ReceiveKind
	w := wye.AwaitL[int, string, int](func(ry wye.ReceiveY[int, string]) wye.W[int, string, int] {
		seen = ry.Kind
		return wye.Emit([]int{ry.L}, wye.Done[int, string, int](wye.End{}))
	})
	sf := wye.Step(w)
	if sf.Tag != wye.StepAwaitL {
		t.Fatalf("expected AwaitL, got %v", sf.Tag)
	}
	out := sf.Recv(wye.ReceiveLeft[int, string](42))
	if seen != wye.KindReceiveL {
		t.Fatalf("expected KindReceiveL, got %v", seen)
	}
	sf2 := wye.Step(out)
	if sf2.Tag != wye.StepEmit || sf2.Batch[0] != 42 {
		t.Fatalf("expected emit [42], got %v %v", sf2.Tag, sf2.Batch)
	}
}

func TestFeedLDropsTailOnceAwaitingR(t *testing.T) {
	// yipWithL(1, ...) fills its one-slot buffer on the first left value
	// and then awaits R only; feedL must stop consuming there.
	w := wye.FeedL([]int{1}, wye.YipWithL(1, func(a, b int) int { return a + b }))
	sf := wye.Step(w)
	if sf.Tag != wye.StepAwaitR {
		t.Fatalf("expected AwaitR once the buffer fills, got %v", sf.Tag)
	}
	// Feeding more left values is a no-op once the wye wants only R.
	w2 := wye.FeedL([]int{1, 2, 3}, wye.YipWithL(1, func(a, b int) int { return a + b }))
	sf2 := wye.Step(w2)
	if sf2.Tag != wye.StepAwaitR {
		t.Fatalf("expected AwaitR regardless of extra left input, got %v", sf2.Tag)
	}
}

func TestKillLShortCircuitsFurtherLeftAwaits(t *testing.T) {
	w := wye.KillL[int, int, int](wye.End{}, wye.Merge[int]())
	sf := wye.Step(w)
	if sf.Tag != wye.StepAwaitR {
		t.Fatalf("expected AwaitR-only after KillL on merge, got %v", sf.Tag)
	}
	out := sf.Recv(wye.ReceiveRight[int, int](9))
	sf2 := wye.Step(out)
	if sf2.Tag != wye.StepEmit || sf2.Batch[0] != 9 {
		t.Fatalf("expected emit [9] after right arrival, got %v %v", sf2.Tag, sf2.Batch)
	}
}

func TestKillByResolvesBothSides(t *testing.T) {
	w := wye.KillBy[int, int, int](wye.Kill{Wrapped: wye.End{}}, wye.Merge[int]())
	sf := wye.Step(w)
	if sf.Tag != wye.StepDone {
		t.Fatalf("expected Done after killBy, got %v", sf.Tag)
	}
	if _, ok := sf.Cause.(wye.Kill); !ok {
		t.Fatalf("expected Kill cause, got %#v", sf.Cause)
	}
}

func TestFlipSwapsAwaitSide(t *testing.T) {
	w := wye.AwaitL[int, string, bool](func(wye.ReceiveY[int, string]) wye.W[int, string, bool] {
		return wye.Done[int, string, bool](wye.End{})
	})
	flipped := wye.Flip(w)
	sf := wye.Step(flipped)
	if sf.Tag != wye.StepAwaitR {
		t.Fatalf("expected AwaitR after flipping an AwaitL, got %v", sf.Tag)
	}
}

func TestSafeRecvConvertsPanicToErr(t *testing.T) {
	w := wye.AwaitL[int, int, int](func(wye.ReceiveY[int, int]) wye.W[int, int, int] {
		panic("boom")
	})
	out := wye.FeedL([]int{1}, w)
	sf := wye.Step(out)
	if sf.Tag != wye.StepDone {
		t.Fatalf("expected Done after panicking receiver, got %v", sf.Tag)
	}
	if _, ok := sf.Cause.(wye.Err); !ok {
		t.Fatalf("expected Err cause, got %#v", sf.Cause)
	}
}
