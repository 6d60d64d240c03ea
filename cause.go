// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wye

import "fmt"

// Cause is the reason a side or a wye terminated: [End], [Kill], or [Err].
//
// Kill is idempotent: normalizing a Kill around an already-Kill cause
// collapses to a single Kill rather than nesting, so no code path ever
// observes Kill(Kill(c)).
type Cause interface {
	// Unwrap exposes the underlying error for errors.Is/errors.As, or nil
	// for End and for a Kill that does not wrap an Err.
	Unwrap() error
	cause()
}

// End is the graceful, expected termination of a side or a wye.
type End struct{}

func (End) Unwrap() error { return nil }
func (End) cause()        {}

// Kill is an externally requested termination, wrapping the cause that
// triggered it (often [End] for a plain cancellation).
type Kill struct {
	Wrapped Cause
}

func (k Kill) Unwrap() error { return k.Wrapped.Unwrap() }
func (k Kill) cause()        {}

// Err is an unexpected failure: a user receiver panicked, a combining
// function panicked, or a producer reported an error.
type Err struct {
	Err error
}

func (e Err) Unwrap() error { return e.Err }
func (e Err) cause()        {}

// killCause wraps c in Kill, collapsing an existing Kill instead of
// nesting it. killCause(Kill{c}) == Kill{c}, never Kill{Kill{c}}.
func killCause(c Cause) Cause {
	if k, ok := c.(Kill); ok {
		return k
	}
	return Kill{Wrapped: c}
}

// recoveredCause converts a recovered panic value into a Cause.
func recoveredCause(v any) Cause {
	if err, ok := v.(error); ok {
		return Err{Err: err}
	}
	return Err{Err: errPanic{v: v}}
}

type errPanic struct{ v any }

func (e errPanic) Error() string { return fmt.Sprintf("wye: recovered panic: %v", e.v) }
