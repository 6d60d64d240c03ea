// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wye

// W is an immutable value describing a suspended two-input merge
// computation. W[L, R, O] merges a left input stream of L, a right input
// stream of R, into a single output stream of O.
//
// A W value is always one of three things, inspected via [step]:
//   - Emit: a finite batch of output values followed by a continuation.
//   - Await: a request for more input from [SideL], [SideR], or
//     [SideBoth], carrying a receiver that consumes a [ReceiveY].
//   - Done: a terminal marker carrying a [Cause].
//
// Values are built bottom-up and never mutated; stepping a Done wye
// always yields the same cause (invariant 1 of the wye data model).
type W[L, R, O any] struct {
	k     kind
	batch []O
	cont  func() W[L, R, O]
	side  Side
	recv  func(ReceiveY[L, R]) W[L, R, O]
	cause Cause
}

type kind uint8

const (
	kEmit kind = iota
	kAwait
	kDone
)

// Emit returns a wye that yields batch, then continues as next.
func Emit[L, R, O any](batch []O, next W[L, R, O]) W[L, R, O] {
	return W[L, R, O]{k: kEmit, batch: batch, cont: func() W[L, R, O] { return next }}
}

// Done returns a terminal wye carrying cause.
func Done[L, R, O any](cause Cause) W[L, R, O] {
	return W[L, R, O]{k: kDone, cause: cause}
}

// AwaitL returns a wye that requests a value from the left side only.
// recv is invoked with ReceiveL or HaltL/HaltOne, never ReceiveR/HaltR.
func AwaitL[L, R, O any](recv func(ReceiveY[L, R]) W[L, R, O]) W[L, R, O] {
	return W[L, R, O]{k: kAwait, side: SideL, recv: recv}
}

// AwaitR returns a wye that requests a value from the right side only.
// recv is invoked with ReceiveR or HaltR/HaltOne, never ReceiveL/HaltL.
func AwaitR[L, R, O any](recv func(ReceiveY[L, R]) W[L, R, O]) W[L, R, O] {
	return W[L, R, O]{k: kAwait, side: SideR, recv: recv}
}

// AwaitBoth returns a wye that requests a value from whichever side
// arrives first. recv may be invoked with any ReceiveY kind.
func AwaitBoth[L, R, O any](recv func(ReceiveY[L, R]) W[L, R, O]) W[L, R, O] {
	return W[L, R, O]{k: kAwait, side: SideBoth, recv: recv}
}

// StepTag identifies which shape a [StepForm] carries.
type StepTag uint8

const (
	StepEmit StepTag = iota
	StepAwaitL
	StepAwaitR
	StepAwaitBoth
	StepDone
)

// StepForm is the result of stepping a wye: exactly one of an emitted
// batch with its continuation, an await node with its receiver, or a
// terminal cause.
type StepForm[L, R, O any] struct {
	Tag   StepTag
	Batch []O
	Cont  W[L, R, O]
	Recv  func(ReceiveY[L, R]) W[L, R, O]
	Cause Cause
}

// step inspects w without advancing it: Emit/Await/Done classification.
func step[L, R, O any](w W[L, R, O]) StepForm[L, R, O] {
	switch w.k {
	case kEmit:
		return StepForm[L, R, O]{Tag: StepEmit, Batch: w.batch, Cont: w.cont()}
	case kAwait:
		switch w.side {
		case SideL:
			return StepForm[L, R, O]{Tag: StepAwaitL, Recv: w.recv}
		case SideR:
			return StepForm[L, R, O]{Tag: StepAwaitR, Recv: w.recv}
		default:
			return StepForm[L, R, O]{Tag: StepAwaitBoth, Recv: w.recv}
		}
	default:
		return StepForm[L, R, O]{Tag: StepDone, Cause: w.cause}
	}
}

// Step is the exported form of step, for library and driver code outside
// this package that needs to inspect a wye one node at a time (e.g. a
// custom driver, or a test asserting on shape rather than output).
func Step[L, R, O any](w W[L, R, O]) StepForm[L, R, O] { return step(w) }

// safeRecv invokes recv(ry), converting a panic into Done(Err(...)) rather
// than letting it escape into the caller (feed/kill loops, the driver's
// actor goroutine).
func safeRecv[L, R, O any](recv func(ReceiveY[L, R]) W[L, R, O], ry ReceiveY[L, R]) (w W[L, R, O]) {
	defer func() {
		if r := recover(); r != nil {
			w = Done[L, R, O](recoveredCause(r))
		}
	}()
	return recv(ry)
}

// prependEmits wraps accumulated output in front of w: Emit(out, w) if out
// is non-empty, otherwise w unchanged. Used by feed/kill to return emitted
// batches collected while walking a wye forward.
func prependEmits[L, R, O any](out []O, w W[L, R, O]) W[L, R, O] {
	if len(out) == 0 {
		return w
	}
	return Emit(out, w)
}

// appendCopy appends v to a fresh copy of s, never aliasing s's backing
// array. Wye values are immutable and may be branched from the same
// point more than once (e.g. by a test re-driving a constructor), so
// buffered constructors (yipWithL, timedQueue) must not share storage.
func appendCopy[T any](s []T, v T) []T {
	out := make([]T, len(s)+1)
	copy(out, s)
	out[len(s)] = v
	return out
}
