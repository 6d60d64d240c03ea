// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package wye provides a nondeterministic two-input stream combinator,
// the algebra for composing two sources of values (left and right) into
// one, plus a driver for running that algebra against real producers.
//
// The core type [W] represents a wye computation as a defunctionalized
// tagged state: [Emit] a batch and continue, await one or both sides
// for the next input ([AwaitL], [AwaitR], [AwaitBoth]), or [Done] with a
// terminal [Cause]. Stepping is
// iterative rather than recursive, so long-running wyes never grow the
// Go call stack.
//
// # Design Philosophy
//
// wye provides:
//   - A small, closed algebra (emit / await / done) that every
//     combinator in this package compiles down to
//   - Trampolined, allocation-light stepping via [Step]
//   - A single actor-style driver ([code.hybscloud.com/wye/drive]) that
//     turns the pure algebra into a pull-based [drive.Stream]
//
// # Core Algebra
//
//   - [W]: the wye computation itself — [Emit], [AwaitL], [AwaitR],
//     [AwaitBoth], [Done]
//   - [Step]: advance one [W] to its next decision point
//   - [StepTag], [StepAwaitL], [StepAwaitR], [StepAwaitBoth], [StepEmit], [StepDone]
//   - [ReceiveY]: what a receiver is handed — a left value, a right
//     value, or a halt notice for one or both sides
//   - [Cause]: why a wye stopped — [End], [Kill], [Err]
//
// # Feeding and Flipping
//
//   - [FeedL], [FeedR]: push a batch of values into whichever side is
//     currently awaiting it; extra values past what the wye still wants
//     are dropped
//   - [KillL], [KillR], [KillBy]: force one or both sides closed,
//     resolving any pending await with a halt notice
//   - [Flip]: swap left and right, lazily and stack-safely
//   - [AttachL], [AttachR]: pre-compose a [Process1] onto one side
//     before it reaches the wye
//
// # Library
//
// Ready-made combinators built on the core algebra:
//
//   - [Merge], [MergeHaltBoth], [MergeHaltL]: interleave two streams of
//     the same type, with different end-of-input behavior
//   - [Either], [Tagged]: tag each value with which side it came from
//   - [Yip], [YipWith], [YipWithL], [YipL]: pairwise zip, with optional
//     bounded left-side buffering
//   - [BoundedQueue], [UnboundedQueue]: acknowledgement-throttled queues
//     where the left side carries acks (or a kill switch)
//   - [DrainR], [DrainL]: pass one side through, discarding the other
//   - [EchoLeft]: repeat the latest left value for every right arrival
//   - [Interrupt]: halt as soon as the left side reports true
//   - [TimedQueue]: age-ordered queue driven by a virtual clock on the
//     left side
//   - [Dynamic], [Dynamic1]: request-driven dispatch, where a policy
//     function decides which side to await next
//
// # Driver
//
// The [code.hybscloud.com/wye/drive] subpackage wraps a [W] with two
// [Producer] sources behind a single-actor mailbox, exposing a
// pull-based [drive.Stream] and live [drive.Stats]. See that package's
// documentation for driver-specific options ([drive.WithLogger],
// [drive.WithStrategy], [drive.WithBias]).
//
// # Example
//
//	add := func(a, b int) int { return a + b }
//	w := wye.FeedL([]int{1}, wye.YipWith(add))
//	w = wye.FeedR([]int{10}, w)
//	sf := wye.Step(w)
//	// sf.Tag == wye.StepEmit, sf.Batch == []int{11}
package wye
