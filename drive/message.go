// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package drive

import "code.hybscloud.com/wye"

// message is the closed set of things the actor mailbox accepts, the way
// protofsm's StateMachine accepts a single Event type over its events
// channel — generalized here into six concrete shapes because the wye
// driver's actor has more than one kind of thing to react to.
type message interface{ isMessage() }

type msgReadyL[L any] struct {
	batch []L
	next  wye.Producer[L]
}

func (msgReadyL[L]) isMessage() {}

type msgReadyR[R any] struct {
	batch []R
	next  wye.Producer[R]
}

func (msgReadyR[R]) isMessage() {}

type msgDoneL struct{ cause wye.Cause }

func (msgDoneL) isMessage() {}

type msgDoneR struct{ cause wye.Cause }

func (msgDoneR) isMessage() {}

// getResult is what a pending Get call is eventually resolved with:
// either a non-empty batch, or the terminal cause once the wye is Done
// and both sides have finished shutting down.
type getResult[O any] struct {
	batch []O
	cause wye.Cause
	done  bool
}

type msgGet[O any] struct {
	reply chan getResult[O]
}

func (msgGet[O]) isMessage() {}

type msgTerminate struct {
	cause wye.Cause
	reply chan struct{}
}

func (msgTerminate) isMessage() {}
