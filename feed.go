// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wye

// FeedL delivers a finite sequence of left-side values into w, iteratively
// stepping it until either the sequence is exhausted, w halts, or w awaits
// only the opposite side. In the last case the remaining input was never
// requested and is dropped; the caller gets emitted_output ++ w at that
// state. The loop is iterative, not recursive, so it is stack-safe for
// arbitrarily long input sequences.
func FeedL[L, R, O any](values []L, w W[L, R, O]) W[L, R, O] {
	var out []O
	for {
		sf := step(w)
		switch sf.Tag {
		case StepEmit:
			out = append(out, sf.Batch...)
			w = sf.Cont
		case StepAwaitR, StepDone:
			return prependEmits(out, w)
		default: // StepAwaitL, StepAwaitBoth
			if len(values) == 0 {
				return prependEmits(out, w)
			}
			v := values[0]
			values = values[1:]
			w = safeRecv(sf.Recv, ReceiveLeft[L, R](v))
		}
	}
}

// FeedR is the right-side symmetric counterpart of FeedL, derived via Flip
// the way the algebra's Design Notes treat L/R symmetry throughout.
func FeedR[L, R, O any](values []R, w W[L, R, O]) W[L, R, O] {
	return Flip(FeedL(values, Flip(w)))
}
