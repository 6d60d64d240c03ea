// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package drive

import (
	"context"

	"code.hybscloud.com/wye"
)

// Stream is a pull-based output handle over a running Driver: repeatedly
// request a batch via Get, emit its elements one at a time, repeat. On
// external cancellation, issue Terminate; the stream then ends with the
// cause Terminate was given, never with a partial batch followed by an
// error. This is the concrete consumer-facing type the wye specification
// describes only in terms of driver mechanics.
type Stream[O any] struct {
	d     interface {
		get(ctx context.Context) getResult[O]
		terminate(cause wye.Cause)
	}
	buf   []O
	ended bool
	cause wye.Cause
}

// NewStream wraps d in a pull-based Stream.
func NewStream[L, R, O any](d *Driver[L, R, O]) *Stream[O] {
	return &Stream[O]{d: d}
}

// Next returns the next output value, or reports the stream has ended
// with cause. Once ended, every subsequent call returns the same cause.
func (s *Stream[O]) Next(ctx context.Context) (value O, ok bool, cause wye.Cause) {
	for len(s.buf) == 0 {
		if s.ended {
			var zero O
			return zero, false, s.cause
		}
		r := s.d.get(ctx)
		if r.done {
			s.ended = true
			s.cause = r.cause
			continue
		}
		s.buf = r.batch
	}
	v := s.buf[0]
	s.buf = s.buf[1:]
	return v, true, nil
}

// Terminate cancels the underlying driver with cause; the stream then
// drains to that cause via subsequent Next calls.
func (s *Stream[O]) Terminate(cause wye.Cause) { s.d.terminate(cause) }
