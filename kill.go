// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wye

// KillL returns a wye identical to w except every future AwaitL is
// resolved via HaltL(cause) and every AwaitBoth is resolved the same way,
// so the result never again requests from the left side (invariant 4 of
// the wye data model). cause is normalized through [killCause] first, so
// killing an already-killed wye collapses rather than nesting Kill.
//
// Emits encountered while walking the wye forward are preserved in order
// and prepended to the returned wye, matching FeedL's contract.
func KillL[L, R, O any](cause Cause, w W[L, R, O]) W[L, R, O] {
	cause = killCause(cause)
	var out []O
	for {
		sf := step(w)
		switch sf.Tag {
		case StepEmit:
			out = append(out, sf.Batch...)
			w = sf.Cont
		case StepAwaitR:
			// Keep the kill in force past the right receive: whatever w
			// becomes after it is walked forward the same way.
			recv := sf.Recv
			return prependEmits(out, AwaitR[L, R, O](func(ry ReceiveY[L, R]) W[L, R, O] {
				return KillL(cause, recv(ry))
			}))
		case StepDone:
			return prependEmits(out, w)
		default: // StepAwaitL, StepAwaitBoth
			w = safeRecv(sf.Recv, HaltLeft[L, R](cause))
		}
	}
}

// KillR is the right-side symmetric counterpart of KillL, derived via Flip.
func KillR[L, R, O any](cause Cause, w W[L, R, O]) W[L, R, O] {
	return Flip(KillL(cause, Flip(w)))
}

// KillBy kills both sides of w with the same cause. The wye driver uses
// this to realize an externally triggered Terminate(cause): the wye can
// no longer request from either side, so stepping it further can only
// emit buffered output or reach Done.
func KillBy[L, R, O any](cause Cause, w W[L, R, O]) W[L, R, O] {
	return KillR(cause, KillL(cause, w))
}
