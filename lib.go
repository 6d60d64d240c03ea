// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wye

import "time"

// Pair is the tuple type produced by Yip and YipL.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// EitherSide tags which side an Either-tagged output value came from.
type EitherSide uint8

const (
	EitherLeft EitherSide = iota
	EitherRight
)

// Tagged is the output type of Either: a value annotated with the side it
// arrived on.
type Tagged[A, B any] struct {
	Side  EitherSide
	Left  A
	Right B
}

// Merge emits any value from either side, halting once both have halted.
func Merge[T any]() W[T, T, T] { return mergeStep[T](false, false) }

func mergeStep[T any](lDone, rDone bool) W[T, T, T] {
	switch {
	case lDone && rDone:
		return Done[T, T, T](End{})
	case lDone:
		return AwaitR[T, T, T](func(ry ReceiveY[T, T]) W[T, T, T] {
			if ry.Kind == KindReceiveR {
				return Emit([]T{ry.R}, mergeStep[T](lDone, rDone))
			}
			return Done[T, T, T](ry.Cause)
		})
	case rDone:
		return AwaitL[T, T, T](func(ry ReceiveY[T, T]) W[T, T, T] {
			if ry.Kind == KindReceiveL {
				return Emit([]T{ry.L}, mergeStep[T](lDone, rDone))
			}
			return Done[T, T, T](ry.Cause)
		})
	default:
		return AwaitBoth[T, T, T](func(ry ReceiveY[T, T]) W[T, T, T] {
			switch ry.Kind {
			case KindReceiveL:
				return Emit([]T{ry.L}, mergeStep[T](lDone, rDone))
			case KindReceiveR:
				return Emit([]T{ry.R}, mergeStep[T](lDone, rDone))
			case KindHaltL:
				return mergeStep[T](true, rDone)
			case KindHaltR:
				return mergeStep[T](lDone, true)
			default: // KindHaltOne
				return Done[T, T, T](ry.Cause)
			}
		})
	}
}

// MergeHaltBoth is Merge but halts as soon as either side halts, rather
// than draining the surviving side.
func MergeHaltBoth[T any]() W[T, T, T] {
	return AwaitBoth[T, T, T](func(ry ReceiveY[T, T]) W[T, T, T] {
		switch ry.Kind {
		case KindReceiveL:
			return Emit([]T{ry.L}, MergeHaltBoth[T]())
		case KindReceiveR:
			return Emit([]T{ry.R}, MergeHaltBoth[T]())
		default:
			return Done[T, T, T](ry.Cause)
		}
	})
}

// MergeHaltL halts precisely when the left side halts; once the right
// side halts first, it keeps draining the left side alone.
func MergeHaltL[T any]() W[T, T, T] { return mergeHaltLStep[T](false) }

func mergeHaltLStep[T any](rDone bool) W[T, T, T] {
	if rDone {
		return AwaitL[T, T, T](func(ry ReceiveY[T, T]) W[T, T, T] {
			if ry.Kind == KindReceiveL {
				return Emit([]T{ry.L}, mergeHaltLStep[T](rDone))
			}
			return Done[T, T, T](ry.Cause)
		})
	}
	return AwaitBoth[T, T, T](func(ry ReceiveY[T, T]) W[T, T, T] {
		switch ry.Kind {
		case KindReceiveL:
			return Emit([]T{ry.L}, mergeHaltLStep[T](rDone))
		case KindReceiveR:
			return Emit([]T{ry.R}, mergeHaltLStep[T](rDone))
		case KindHaltR:
			return mergeHaltLStep[T](true)
		default: // KindHaltL, KindHaltOne
			return Done[T, T, T](ry.Cause)
		}
	})
}

// Either tags every value with the side it came from. It is a lossless
// tagging: stripping the tag and splitting back by side recovers the
// original left/right outputs (testable property 6).
func Either[A, B any]() W[A, B, Tagged[A, B]] { return eitherStep[A, B](false, false) }

func eitherStep[A, B any](lDone, rDone bool) W[A, B, Tagged[A, B]] {
	switch {
	case lDone && rDone:
		return Done[A, B, Tagged[A, B]](End{})
	case lDone:
		return AwaitR[A, B, Tagged[A, B]](func(ry ReceiveY[A, B]) W[A, B, Tagged[A, B]] {
			if ry.Kind == KindReceiveR {
				return Emit([]Tagged[A, B]{{Side: EitherRight, Right: ry.R}}, eitherStep[A, B](lDone, rDone))
			}
			return Done[A, B, Tagged[A, B]](ry.Cause)
		})
	case rDone:
		return AwaitL[A, B, Tagged[A, B]](func(ry ReceiveY[A, B]) W[A, B, Tagged[A, B]] {
			if ry.Kind == KindReceiveL {
				return Emit([]Tagged[A, B]{{Side: EitherLeft, Left: ry.L}}, eitherStep[A, B](lDone, rDone))
			}
			return Done[A, B, Tagged[A, B]](ry.Cause)
		})
	default:
		return AwaitBoth[A, B, Tagged[A, B]](func(ry ReceiveY[A, B]) W[A, B, Tagged[A, B]] {
			switch ry.Kind {
			case KindReceiveL:
				return Emit([]Tagged[A, B]{{Side: EitherLeft, Left: ry.L}}, eitherStep[A, B](lDone, rDone))
			case KindReceiveR:
				return Emit([]Tagged[A, B]{{Side: EitherRight, Right: ry.R}}, eitherStep[A, B](lDone, rDone))
			case KindHaltL:
				return eitherStep[A, B](true, rDone)
			case KindHaltR:
				return eitherStep[A, B](lDone, true)
			default:
				return Done[A, B, Tagged[A, B]](ry.Cause)
			}
		})
	}
}

// Yip pairwise zips the two sides; halts as soon as either halts.
func Yip[A, B any]() W[A, B, Pair[A, B]] {
	return YipWith(func(a A, b B) Pair[A, B] { return Pair[A, B]{Left: a, Right: b} })
}

// YipWith is Yip with a combining function; it produces exactly
// min(len(L), len(R)) outputs (testable property 7).
func YipWith[A, B, O any](f func(A, B) O) W[A, B, O] {
	return yipWithStep(f, nil, nil)
}

// yipWithStep holds at most one pending value, on one side at a time.
// Once a side has a pending value, the node awaits only the opposite
// side — never AwaitBoth — so a value already held can never be
// overwritten; it is consumed into an emit or the wye halts first.
func yipWithStep[A, B, O any](f func(A, B) O, pendingA *A, pendingB *B) W[A, B, O] {
	switch {
	case pendingA != nil:
		return AwaitR[A, B, O](func(ry ReceiveY[A, B]) W[A, B, O] {
			if ry.Kind == KindReceiveR {
				return Emit([]O{f(*pendingA, ry.R)}, yipWithStep[A, B, O](f, nil, nil))
			}
			return Done[A, B, O](ry.Cause)
		})
	case pendingB != nil:
		return AwaitL[A, B, O](func(ry ReceiveY[A, B]) W[A, B, O] {
			if ry.Kind == KindReceiveL {
				return Emit([]O{f(ry.L, *pendingB)}, yipWithStep[A, B, O](f, nil, nil))
			}
			return Done[A, B, O](ry.Cause)
		})
	default:
		return AwaitBoth[A, B, O](func(ry ReceiveY[A, B]) W[A, B, O] {
			switch ry.Kind {
			case KindReceiveL:
				a := ry.L
				return yipWithStep(f, &a, nil)
			case KindReceiveR:
				b := ry.R
				return yipWithStep(f, nil, &b)
			default:
				return Done[A, B, O](ry.Cause)
			}
		})
	}
}

// YipL is YipWithL with the identity combining function.
func YipL[A, B any](n int) W[A, B, Pair[A, B]] {
	return YipWithL(n, func(a A, b B) Pair[A, B] { return Pair[A, B]{Left: a, Right: b} })
}

// YipWithL is a left-biased buffered zip: up to n left values may be
// buffered before a right value is required. When the buffer is empty
// only the left side is read; when it is at capacity only the right side
// is read; otherwise both are read. At all times len(buffer) <= n
// (testable property 8: the buffer never exceeds n+1 in flight).
func YipWithL[A, B, O any](n int, f func(A, B) O) W[A, B, O] {
	return yipWithLStep(n, f, nil)
}

func yipWithLStep[A, B, O any](n int, f func(A, B) O, buf []A) W[A, B, O] {
	switch {
	case len(buf) == 0:
		return AwaitL[A, B, O](func(ry ReceiveY[A, B]) W[A, B, O] {
			if ry.Kind == KindReceiveL {
				return yipWithLStep(n, f, appendCopy(buf, ry.L))
			}
			return Done[A, B, O](ry.Cause)
		})
	case len(buf) >= n:
		return AwaitR[A, B, O](func(ry ReceiveY[A, B]) W[A, B, O] {
			if ry.Kind == KindReceiveR {
				return Emit([]O{f(buf[0], ry.R)}, yipWithLStep(n, f, buf[1:]))
			}
			return Done[A, B, O](ry.Cause)
		})
	default:
		return AwaitBoth[A, B, O](func(ry ReceiveY[A, B]) W[A, B, O] {
			switch ry.Kind {
			case KindReceiveL:
				return yipWithLStep(n, f, appendCopy(buf, ry.L))
			case KindReceiveR:
				return Emit([]O{f(buf[0], ry.R)}, yipWithLStep(n, f, buf[1:]))
			default:
				return Done[A, B, O](ry.Cause)
			}
		})
	}
}

// BoundedQueue passes every right value through unchanged, allowing up to
// n left ("ack") values to be outstanding before throttling the right
// side. The left side's values themselves are discarded; only their
// arrival matters.
func BoundedQueue[I any](n int) W[any, I, I] {
	return YipWithL[any, I, I](n, func(_ any, i I) I { return i })
}

// UnboundedQueue emits every right value unchanged. A value arriving on
// the left is treated as a kill switch: it terminates the wye
// immediately rather than being queued. This is a deliberate design
// choice inherited from the specification, not an oversight — document
// it prominently at call sites that can produce left values.
func UnboundedQueue[I any]() W[any, I, I] {
	return AwaitBoth[any, I, I](func(ry ReceiveY[any, I]) W[any, I, I] {
		switch ry.Kind {
		case KindReceiveL:
			return Done[any, I, I](End{})
		case KindReceiveR:
			return Emit([]I{ry.R}, UnboundedQueue[I]())
		case KindHaltL:
			return unboundedQueueRightOnly[I]()
		default:
			return Done[any, I, I](ry.Cause)
		}
	})
}

func unboundedQueueRightOnly[I any]() W[any, I, I] {
	return AwaitR[any, I, I](func(ry ReceiveY[any, I]) W[any, I, I] {
		if ry.Kind == KindReceiveR {
			return Emit([]I{ry.R}, unboundedQueueRightOnly[I]())
		}
		return Done[any, I, I](ry.Cause)
	})
}

// DrainR echoes the left side as output and drains (discards) the right
// side, applying backpressure so at most n left values may be
// outstanding (unacknowledged by a right arrival) at once.
func DrainR[I any](n int) W[I, any, I] { return drainRStep[I](n, 0) }

func drainRStep[I any](n, outstanding int) W[I, any, I] {
	if outstanding >= n {
		return AwaitR[I, any, I](func(ry ReceiveY[I, any]) W[I, any, I] {
			if ry.Kind == KindReceiveR {
				return drainRStep[I](n, outstanding-1)
			}
			return Done[I, any, I](ry.Cause)
		})
	}
	return AwaitBoth[I, any, I](func(ry ReceiveY[I, any]) W[I, any, I] {
		switch ry.Kind {
		case KindReceiveL:
			return Emit([]I{ry.L}, drainRStep[I](n, outstanding+1))
		case KindReceiveR:
			o := outstanding - 1
			if o < 0 {
				o = 0
			}
			return drainRStep[I](n, o)
		default:
			return Done[I, any, I](ry.Cause)
		}
	})
}

// DrainL is Flip(DrainR(n)): it echoes the right side and drains the left.
func DrainL[I any](n int) W[any, I, I] { return Flip(DrainR[I](n)) }

// EchoLeft seeds on its first left value, then emits the most recently
// seen left value in response to every subsequent right arrival. It
// halts when either side halts.
func EchoLeft[A any]() W[A, any, A] {
	return AwaitL[A, any, A](func(ry ReceiveY[A, any]) W[A, any, A] {
		if ry.Kind == KindReceiveL {
			return echoLeftStep(ry.L)
		}
		return Done[A, any, A](ry.Cause)
	})
}

func echoLeftStep[A any](last A) W[A, any, A] {
	return AwaitBoth[A, any, A](func(ry ReceiveY[A, any]) W[A, any, A] {
		switch ry.Kind {
		case KindReceiveL:
			return echoLeftStep(ry.L)
		case KindReceiveR:
			return Emit([]A{last}, echoLeftStep(last))
		default:
			return Done[A, any, A](ry.Cause)
		}
	})
}

// Interrupt passes the right side through unchanged and halts as soon as
// the left side emits true.
func Interrupt[I any]() W[bool, I, I] {
	return AwaitBoth[bool, I, I](func(ry ReceiveY[bool, I]) W[bool, I, I] {
		switch ry.Kind {
		case KindReceiveL:
			if ry.L {
				return Done[bool, I, I](End{})
			}
			return Interrupt[I]()
		case KindReceiveR:
			return Emit([]I{ry.R}, Interrupt[I]())
		default:
			return Done[bool, I, I](ry.Cause)
		}
	})
}

// TimedQueue passes the right side through, treating left values as
// timestamps marking "now". Right values are only admitted (blocking
// further right reads once the condition is hit) while the number of
// unacknowledged right values is below maxSize and the oldest of them is
// no older than d relative to the most recent left timestamp.
func TimedQueue[I any](d time.Duration, maxSize int) W[time.Duration, I, I] {
	return timedQueueStep[I](d, maxSize, nil, 0)
}

func timedQueueStep[I any](d time.Duration, maxSize int, ages []time.Duration, now time.Duration) W[time.Duration, I, I] {
	blocked := len(ages) >= maxSize || (len(ages) > 0 && now-ages[0] > d)
	if blocked {
		return AwaitL[time.Duration, I, I](func(ry ReceiveY[time.Duration, I]) W[time.Duration, I, I] {
			if ry.Kind != KindReceiveL {
				return Done[time.Duration, I, I](ry.Cause)
			}
			rest := ages
			if len(rest) > 0 && ry.L-rest[0] > d {
				rest = rest[1:]
			}
			return timedQueueStep[I](d, maxSize, rest, ry.L)
		})
	}
	return AwaitBoth[time.Duration, I, I](func(ry ReceiveY[time.Duration, I]) W[time.Duration, I, I] {
		switch ry.Kind {
		case KindReceiveL:
			return timedQueueStep[I](d, maxSize, ages, ry.L)
		case KindReceiveR:
			return Emit([]I{ry.R}, timedQueueStep[I](d, maxSize, appendCopy(ages, now), now))
		default:
			return Done[time.Duration, I, I](ry.Cause)
		}
	})
}

// Dynamic begins by reading L. After each value it consults f (if the
// value came from the left) or g (if from the right) for the next
// Request, and emits the raw ReceiveY so the caller can see which side
// produced each value.
func Dynamic[I, J any](f func(I) Request, g func(J) Request) W[I, J, ReceiveY[I, J]] {
	return dynamicAwait[I, J](ReqL, f, g)
}

func dynamicAwait[I, J any](req Request, f func(I) Request, g func(J) Request) W[I, J, ReceiveY[I, J]] {
	switch req {
	case ReqL:
		return AwaitL[I, J, ReceiveY[I, J]](func(ry ReceiveY[I, J]) W[I, J, ReceiveY[I, J]] {
			if ry.Kind != KindReceiveL {
				return Done[I, J, ReceiveY[I, J]](ry.Cause)
			}
			return Emit([]ReceiveY[I, J]{ry}, dynamicAwait[I, J](f(ry.L), f, g))
		})
	case ReqR:
		return AwaitR[I, J, ReceiveY[I, J]](func(ry ReceiveY[I, J]) W[I, J, ReceiveY[I, J]] {
			if ry.Kind != KindReceiveR {
				return Done[I, J, ReceiveY[I, J]](ry.Cause)
			}
			return Emit([]ReceiveY[I, J]{ry}, dynamicAwait[I, J](g(ry.R), f, g))
		})
	default: // ReqBoth
		return AwaitBoth[I, J, ReceiveY[I, J]](func(ry ReceiveY[I, J]) W[I, J, ReceiveY[I, J]] {
			switch ry.Kind {
			case KindReceiveL:
				return Emit([]ReceiveY[I, J]{ry}, dynamicAwait[I, J](f(ry.L), f, g))
			case KindReceiveR:
				return Emit([]ReceiveY[I, J]{ry}, dynamicAwait[I, J](g(ry.R), f, g))
			default:
				return Done[I, J, ReceiveY[I, J]](ry.Cause)
			}
		})
	}
}

// Dynamic1 specializes Dynamic to a single value type on both sides,
// unwrapping the ReceiveY envelope so the output is plain I.
func Dynamic1[I any](f func(I) Request) W[I, I, I] {
	return unwrapReceiveY[I](Dynamic[I, I](f, f))
}

func unwrapReceiveY[I any](w W[I, I, ReceiveY[I, I]]) W[I, I, I] {
	sf := step(w)
	switch sf.Tag {
	case StepDone:
		return Done[I, I, I](sf.Cause)
	case StepEmit:
		out := make([]I, len(sf.Batch))
		for i, ry := range sf.Batch {
			if ry.Kind == KindReceiveL {
				out[i] = ry.L
			} else {
				out[i] = ry.R
			}
		}
		cont := sf.Cont
		return Emit(out, unwrapReceiveY[I](cont))
	default:
		recv := sf.Recv
		wrap := func(ry ReceiveY[I, I]) W[I, I, I] { return unwrapReceiveY[I](recv(ry)) }
		switch sf.Tag {
		case StepAwaitL:
			return AwaitL[I, I, I](wrap)
		case StepAwaitR:
			return AwaitR[I, I, I](wrap)
		default:
			return AwaitBoth[I, I, I](wrap)
		}
	}
}
