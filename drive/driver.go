// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package drive binds two Producer sources and a wye value into a running
// output stream. All state mutations are serialized through a single
// actor goroutine draining a mailbox; concurrency arises only from the
// two producers reading in parallel with each other and with the actor.
package drive

import (
	"context"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"code.hybscloud.com/wye"
)

// Driver binds a wye W[L, R, O] to two Producers and drives it to
// completion. Construct one with New; consume its output through Stream.
type Driver[L, R, O any] struct {
	logger   *zerolog.Logger
	strategy wye.Strategy

	ctx    context.Context
	cancel context.CancelCauseFunc
	group  *errgroup.Group

	mailbox chan message

	counters *xsync.MapOf[string, int64]

	// actor-owned; touched only inside run().
	yy       wye.W[L, R, O]
	left     sideState[L]
	right    sideState[R]
	leftBias bool
	pending  chan getResult[O]
	halted   bool
}

// New starts a driver for w, reading the left side from left and the
// right side from right. The returned Driver's actor goroutine is already
// running; call Stream to consume its output.
func New[L, R, O any](ctx context.Context, w wye.W[L, R, O], left wye.Producer[L], right wye.Producer[R], opts ...Option[L, R, O]) *Driver[L, R, O] {
	d := &Driver[L, R, O]{
		strategy: wye.GoStrategy{},
		yy:       w,
		left:     readySide(left),
		right:    readySide(right),
		leftBias: true,
		mailbox:  make(chan message, 8),
		counters: xsync.NewMapOf[string, int64](),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		nop := zerolog.Nop()
		d.logger = &nop
	}

	d.ctx, d.cancel = context.WithCancelCause(ctx)
	d.group = new(errgroup.Group)

	d.group.Go(func() error {
		d.run()
		return nil
	})

	return d
}

// run is the actor loop: exactly one goroutine ever executes this body,
// so yy/left/right/leftBias/pending need no locking.
func (d *Driver[L, R, O]) run() {
	d.tryComplete()
	for !d.halted {
		select {
		case <-d.ctx.Done():
			d.halted = true
		case m := <-d.mailbox:
			d.handle(m)
		}
	}
	d.cancel(context.Canceled)
}

func (d *Driver[L, R, O]) handle(m message) {
	switch msg := m.(type) {
	case msgReadyL[L]:
		d.left = sideState[L]{kind: sideReady, producer: msg.next}
		d.leftBias = false
		d.yy = wye.FeedL(msg.batch, d.yy)
	case msgReadyR[R]:
		d.right = sideState[R]{kind: sideReady, producer: msg.next}
		d.leftBias = true
		d.yy = wye.FeedR(msg.batch, d.yy)
	case msgDoneL:
		d.left = sideState[L]{kind: sideDone, cause: msg.cause}
		d.leftBias = false
		d.yy = wye.KillL(msg.cause, d.yy)
	case msgDoneR:
		d.right = sideState[R]{kind: sideDone, cause: msg.cause}
		d.leftBias = true
		d.yy = wye.KillR(msg.cause, d.yy)
	case msgGet[O]:
		d.pending = msg.reply
	case msgTerminate:
		d.yy = wye.KillBy(msg.cause, d.yy)
		close(msg.reply)
	}
	d.tryComplete()
}

// tryComplete steps yy as far as it can go without blocking: delivering
// output to a pending Get, launching any Ready sides a StepAwait demands,
// and resolving a terminal Done once both sides report SideDone.
func (d *Driver[L, R, O]) tryComplete() {
	for {
		sf := wye.Step(d.yy)
		switch sf.Tag {
		case wye.StepEmit:
			if len(sf.Batch) == 0 {
				d.yy = sf.Cont
				continue
			}
			if d.pending == nil {
				return
			}
			d.pending <- getResult[O]{batch: sf.Batch}
			d.pending = nil
			d.yy = sf.Cont
			return
		case wye.StepAwaitL:
			if d.left.kind == sideDone {
				d.yy = wye.KillL(d.left.cause, d.yy)
				continue
			}
			d.runL()
			return
		case wye.StepAwaitR:
			if d.right.kind == sideDone {
				d.yy = wye.KillR(d.right.cause, d.yy)
				continue
			}
			d.runR()
			return
		case wye.StepAwaitBoth:
			switch {
			case d.left.kind == sideDone && d.right.kind == sideDone:
				d.yy = wye.KillBy(d.left.cause, d.yy)
			case d.left.kind == sideDone:
				d.yy = wye.KillL(d.left.cause, d.yy)
			case d.right.kind == sideDone:
				d.yy = wye.KillR(d.right.cause, d.yy)
			default:
				if d.leftBias {
					d.runL()
					d.runR()
				} else {
					d.runR()
					d.runL()
				}
				return
			}
			continue
		case wye.StepDone:
			d.terminateL(sf.Cause)
			d.terminateR(sf.Cause)
			if d.left.kind == sideDone && d.right.kind == sideDone {
				d.halted = true
				if d.pending != nil {
					d.pending <- getResult[O]{cause: sf.Cause, done: true}
					d.pending = nil
				}
			}
			return
		}
	}
}

// runL transitions the left side from Ready to Running, invoking its
// producer through the configured Strategy. Completion posts ReadyL or
// DoneL back to the mailbox.
func (d *Driver[L, R, O]) runL() {
	if d.left.kind != sideReady {
		return
	}
	producer := d.left.producer
	ctx, cancel := context.WithCancel(d.ctx)
	d.left = sideState[L]{kind: sideRunning, cancel: cancel}
	d.bumpCounter("left.reads")
	d.strategy.Exec(func() {
		batch, next, cause, done := producer.Next(ctx)
		if done {
			d.post(msgDoneL{cause: cause})
		} else {
			d.post(msgReadyL[L]{batch: batch, next: next})
		}
	})
}

// runR is runL's right-side counterpart.
func (d *Driver[L, R, O]) runR() {
	if d.right.kind != sideReady {
		return
	}
	producer := d.right.producer
	ctx, cancel := context.WithCancel(d.ctx)
	d.right = sideState[R]{kind: sideRunning, cancel: cancel}
	d.bumpCounter("right.reads")
	d.strategy.Exec(func() {
		batch, next, cause, done := producer.Next(ctx)
		if done {
			d.post(msgDoneR{cause: cause})
		} else {
			d.post(msgReadyR[R]{batch: batch, next: next})
		}
	})
}

// terminateL asks the left side to wind down with cause. A Ready side has
// no in-flight read to cancel, so it is marked done immediately; a
// Running side is interrupted via its cancel handle and will post DoneL
// once its in-flight Next call observes the cancellation.
func (d *Driver[L, R, O]) terminateL(cause wye.Cause) {
	switch d.left.kind {
	case sideReady:
		d.left = sideState[L]{kind: sideDone, cause: cause}
	case sideRunning:
		d.left.cancel()
	}
}

// terminateR is terminateL's right-side counterpart.
func (d *Driver[L, R, O]) terminateR(cause wye.Cause) {
	switch d.right.kind {
	case sideReady:
		d.right = sideState[R]{kind: sideDone, cause: cause}
	case sideRunning:
		d.right.cancel()
	}
}

// post delivers m to the actor mailbox, giving up if the driver has
// already shut down.
func (d *Driver[L, R, O]) post(m message) {
	select {
	case d.mailbox <- m:
	case <-d.ctx.Done():
	}
}

// get requests the next output batch, blocking until it arrives, the
// driver halts, or ctx is canceled.
func (d *Driver[L, R, O]) get(ctx context.Context) getResult[O] {
	reply := make(chan getResult[O], 1)
	select {
	case d.mailbox <- msgGet[O]{reply: reply}:
	case <-ctx.Done():
		return getResult[O]{cause: wye.Kill{Wrapped: wye.Err{Err: ctx.Err()}}, done: true}
	case <-d.ctx.Done():
		return getResult[O]{cause: wye.End{}, done: true}
	}
	select {
	case r := <-reply:
		return r
	case <-ctx.Done():
		return getResult[O]{cause: wye.Kill{Wrapped: wye.Err{Err: ctx.Err()}}, done: true}
	case <-d.ctx.Done():
		return getResult[O]{cause: wye.End{}, done: true}
	}
}

// terminate cancels the driver's wye with cause, through the mailbox, and
// waits for the actor to acknowledge the cancellation was applied.
func (d *Driver[L, R, O]) terminate(cause wye.Cause) {
	reply := make(chan struct{})
	select {
	case d.mailbox <- msgTerminate{cause: cause, reply: reply}:
		<-reply
	case <-d.ctx.Done():
	}
}

// Wait blocks until the driver's background goroutines have exited.
func (d *Driver[L, R, O]) Wait() error { return d.group.Wait() }

// bumpCounter increments a named counter in the xsync.MapOf stats map.
// Only ever called from the actor goroutine, so the load-then-store is
// race-free despite not being a single atomic operation; the map itself
// is still safe for concurrent reads from Stats.
func (d *Driver[L, R, O]) bumpCounter(name string) {
	cur, _ := d.counters.Load(name)
	d.counters.Store(name, cur+1)
}
