// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wye_test

import (
	wye "code.hybscloud.com/wye"
)

// runToCompletion drives w by feeding from ls/rs as each side is
// requested, alternating which side is preferred when both arrive at an
// AwaitBoth node, until w reaches Done or both inputs have been
// exhausted and offered. It returns every emitted value in arrival order
// and the terminal cause.
func runToCompletion[L, R, O any](w wye.W[L, R, O], ls []L, rs []R) (out []O, cause wye.Cause) {
	li, ri := 0, 0
	preferLeft := true
	for {
		sf := wye.Step(w)
		switch sf.Tag {
		case wye.StepDone:
			return out, sf.Cause
		case wye.StepEmit:
			out = append(out, sf.Batch...)
			w = sf.Cont
		case wye.StepAwaitL:
			if li < len(ls) {
				w = sf.Recv(wye.ReceiveLeft[L, R](ls[li]))
				li++
			} else {
				w = sf.Recv(wye.HaltLeft[L, R](wye.End{}))
			}
		case wye.StepAwaitR:
			if ri < len(rs) {
				w = sf.Recv(wye.ReceiveRight[L, R](rs[ri]))
				ri++
			} else {
				w = sf.Recv(wye.HaltRight[L, R](wye.End{}))
			}
		default: // wye.StepAwaitBoth
			haveL, haveR := li < len(ls), ri < len(rs)
			switch {
			case !haveL && !haveR:
				w = sf.Recv(wye.HaltEither[L, R](wye.End{}))
			case haveL && (preferLeft || !haveR):
				w = sf.Recv(wye.ReceiveLeft[L, R](ls[li]))
				li++
				preferLeft = false
			default:
				w = sf.Recv(wye.ReceiveRight[L, R](rs[ri]))
				ri++
				preferLeft = true
			}
		}
	}
}
