// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wye

// Flip swaps the two sides of w: every AwaitL becomes AwaitR and vice
// versa, and every ReceiveL/HaltL delivered to the flipped receiver is
// reinterpreted as ReceiveR/HaltR. Output values pass through unchanged.
//
// Flip is an involution: Flip(Flip(w)) behaves identically to w on every
// input (testable property 1 in the wye specification).
func Flip[L, R, O any](w W[L, R, O]) W[R, L, O] {
	sf := step(w)
	switch sf.Tag {
	case StepDone:
		return Done[R, L, O](sf.Cause)
	case StepEmit:
		cont := sf.Cont
		return W[R, L, O]{k: kEmit, batch: sf.Batch, cont: func() W[R, L, O] { return Flip(cont) }}
	default:
		recv := sf.Recv
		flipped := func(ry ReceiveY[R, L]) W[R, L, O] {
			return Flip(recv(flipReceiveY[L, R](ry)))
		}
		switch sf.Tag {
		case StepAwaitL:
			return AwaitR[R, L, O](flipped)
		case StepAwaitR:
			return AwaitL[R, L, O](flipped)
		default:
			return AwaitBoth[R, L, O](flipped)
		}
	}
}
