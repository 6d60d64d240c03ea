// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wye

// Process1 is a single-input stream transformer: I0 in, I out. It is the
// external collaborator attachL/attachR pre-compose onto one side of a
// wye, and exposes the same three-node step shape as W, specialized to
// one side instead of two.
type Process1[I0, I any] struct {
	k      proc1Kind
	batch  []I
	cont   func() Process1[I0, I]
	recv   func(I0) Process1[I0, I]
	onHalt func(Cause) Process1[I0, I]
	cause  Cause
}

type proc1Kind uint8

const (
	p1Emit proc1Kind = iota
	p1Await
	p1Done
)

// Emit1 returns a Process1 that yields batch, then continues as next.
func Emit1[I0, I any](batch []I, next Process1[I0, I]) Process1[I0, I] {
	return Process1[I0, I]{k: p1Emit, batch: batch, cont: func() Process1[I0, I] { return next }}
}

// Done1 returns a terminal Process1 carrying cause.
func Done1[I0, I any](cause Cause) Process1[I0, I] {
	return Process1[I0, I]{k: p1Done, cause: cause}
}

// Await1 returns a Process1 that requests one I0 value, or invokes onHalt
// if its upstream ends before supplying one.
func Await1[I0, I any](recv func(I0) Process1[I0, I], onHalt func(Cause) Process1[I0, I]) Process1[I0, I] {
	return Process1[I0, I]{k: p1Await, recv: recv, onHalt: onHalt}
}

// Identity1 returns a Process1 that passes its input through unchanged.
// attachL(Identity1(), w) behaves identically to w (testable property 9).
func Identity1[I any]() Process1[I, I] {
	var loop func() Process1[I, I]
	loop = func() Process1[I, I] {
		return Await1[I, I](func(i I) Process1[I, I] {
			return Emit1([]I{i}, loop())
		}, func(c Cause) Process1[I, I] {
			return Done1[I, I](c)
		})
	}
	return loop()
}

type proc1StepTag uint8

const (
	p1StepEmit proc1StepTag = iota
	p1StepAwait
	p1StepDone
)

type proc1StepForm[I0, I any] struct {
	Tag    proc1StepTag
	Batch  []I
	Cont   Process1[I0, I]
	Recv   func(I0) Process1[I0, I]
	OnHalt func(Cause) Process1[I0, I]
	Cause  Cause
}

func step1[I0, I any](p Process1[I0, I]) proc1StepForm[I0, I] {
	switch p.k {
	case p1Emit:
		return proc1StepForm[I0, I]{Tag: p1StepEmit, Batch: p.batch, Cont: p.cont()}
	case p1Await:
		return proc1StepForm[I0, I]{Tag: p1StepAwait, Recv: p.recv, OnHalt: p.onHalt}
	default:
		return proc1StepForm[I0, I]{Tag: p1StepDone, Cause: p.cause}
	}
}

func safeRecv1[I0, I any](recv func(I0) Process1[I0, I], v I0) (p Process1[I0, I]) {
	defer func() {
		if r := recover(); r != nil {
			p = Done1[I0, I](recoveredCause(r))
		}
	}()
	return recv(v)
}

func safeOnHalt1[I0, I any](onHalt func(Cause) Process1[I0, I], c Cause) (p Process1[I0, I]) {
	defer func() {
		if r := recover(); r != nil {
			p = Done1[I0, I](recoveredCause(r))
		}
	}()
	return onHalt(c)
}
