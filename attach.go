// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wye

// AttachL pre-composes a single-input transformer p: I0 -> I onto the left
// side of w: (I, R) -> O, producing a wye (I0, R) -> O.
//
// Stepping policy, per the wye specification:
//   - If w emits, the output passes through.
//   - If w awaits L, p is driven until it emits or awaits; p's emitted
//     output is fed into w via FeedL (bulk, not one value at a time —
//     the specification leaves this as an open question and resolves it
//     toward FeedL's existing bulk contract). When p awaits, the result
//     awaits L of I0 and forwards the value or failure to p.
//   - If w awaits R, the result awaits R and forwards transparently.
//   - If w awaits Both, the side that actually arrives decides what gets
//     driven: ReceiveL feeds p, ReceiveR feeds w directly, HaltL
//     propagates into p, HaltR kills the right side of w.
//   - If p ends, KillL is applied to w with p's end cause, and the
//     result never awaits L again.
func AttachL[I0, I, R, O any](p Process1[I0, I], w W[I, R, O]) W[I0, R, O] {
	return normalizeAttachL(p, w)
}

// AttachR is attachL with both sides flipped, so p attaches to the right
// side of w instead of the left.
func AttachR[I0, I, L, O any](p Process1[I0, I], w W[L, I, O]) W[L, I0, O] {
	return Flip(AttachL(p, Flip(w)))
}

// normalizeAttachL drives p forward — feeding its emitted batches into w
// and applying KillL when p ends — until p suspends awaiting an I0 value.
// Only then is w's own shape inspected (stepAttachL).
func normalizeAttachL[I0, I, R, O any](p Process1[I0, I], w W[I, R, O]) W[I0, R, O] {
	for {
		sp := step1(p)
		switch sp.Tag {
		case p1StepEmit:
			w = FeedL(sp.Batch, w)
			p = sp.Cont
		case p1StepDone:
			return deadAttachL[I0](KillL(sp.Cause, w))
		default: // p1StepAwait
			return stepAttachL(sp.Recv, sp.OnHalt, w)
		}
	}
}

// deadAttachL forwards a wye that no longer needs left input because its
// upstream Process1 has ended; KillL already guarantees w never awaits L
// again, so this only ever sees Emit, AwaitR, or Done.
func deadAttachL[I0, I, R, O any](w W[I, R, O]) W[I0, R, O] {
	sf := step(w)
	switch sf.Tag {
	case StepDone:
		return Done[I0, R, O](sf.Cause)
	case StepEmit:
		cont := sf.Cont
		return Emit[I0, R, O](sf.Batch, deadAttachL[I0](cont))
	default: // StepAwaitR (StepAwaitL/Both cannot occur: w was just KillL'd)
		recv := sf.Recv
		return AwaitR[I0, R, O](func(ry ReceiveY[I0, R]) W[I0, R, O] {
			return deadAttachL[I0](recv(ReceiveY[I, R]{Kind: ry.Kind, R: ry.R, Cause: ry.Cause}))
		})
	}
}

// stepAttachL handles the case where p is suspended awaiting an I0 value,
// inspecting w's own shape to decide how attachL's result must await.
func stepAttachL[I0, I, R, O any](pRecv func(I0) Process1[I0, I], pOnHalt func(Cause) Process1[I0, I], w W[I, R, O]) W[I0, R, O] {
	sf := step(w)
	switch sf.Tag {
	case StepDone:
		return Done[I0, R, O](sf.Cause)
	case StepEmit:
		cont := sf.Cont
		return Emit[I0, R, O](sf.Batch, stepAttachL(pRecv, pOnHalt, cont))
	case StepAwaitR:
		recv := sf.Recv
		return AwaitR[I0, R, O](func(ry ReceiveY[I0, R]) W[I0, R, O] {
			w2 := recv(ReceiveY[I, R]{Kind: ry.Kind, R: ry.R, Cause: ry.Cause})
			return normalizeAttachL(Await1(pRecv, pOnHalt), w2)
		})
	case StepAwaitL:
		return AwaitL[I0, R, O](func(ry ReceiveY[I0, R]) W[I0, R, O] {
			if ry.Kind == KindReceiveL {
				return normalizeAttachL(safeRecv1(pRecv, ry.L), w)
			}
			return normalizeAttachL(safeOnHalt1(pOnHalt, ry.Cause), w)
		})
	default: // StepAwaitBoth
		recv := sf.Recv
		return AwaitBoth[I0, R, O](func(ry ReceiveY[I0, R]) W[I0, R, O] {
			switch ry.Kind {
			case KindReceiveL:
				return normalizeAttachL(safeRecv1(pRecv, ry.L), w)
			case KindReceiveR:
				w2 := recv(ReceiveY[I, R]{Kind: KindReceiveR, R: ry.R})
				return normalizeAttachL(Await1(pRecv, pOnHalt), w2)
			case KindHaltR:
				w2 := recv(ReceiveY[I, R]{Kind: KindHaltR, Cause: ry.Cause})
				return normalizeAttachL(Await1(pRecv, pOnHalt), w2)
			default: // KindHaltL, KindHaltOne
				return normalizeAttachL(safeOnHalt1(pOnHalt, ry.Cause), w)
			}
		})
	}
}
