// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wye

import "context"

// Producer is a single-shot, cancelable batch source. It is the external
// collaborator the wye driver binds to each side of a wye.
//
// Grounded on bradenaw/juniper's stream.Stream[T].Next() contract, adapted
// from a single-stream iterator to a "give me a batch or tell me you're
// done" call that also returns the continuation to call next, so a
// Producer value itself stays immutable.
type Producer[T any] interface {
	// Next blocks until a batch is ready, the source ends, or ctx is
	// canceled. It must be safe to call at most once on any given
	// Producer value; the driver never calls Next again on a value it
	// has already called Next on. done is true exactly when the
	// producer has nothing further to say, in which case cause explains
	// why (End for a graceful finish, Err/Kill otherwise) and next is
	// nil.
	Next(ctx context.Context) (batch []T, next Producer[T], cause Cause, done bool)
}

// SliceProducer adapts a finite, already-materialized slice into a
// Producer, useful for tests and for feeding bounded sources into a
// driver without hand-writing a state machine.
type SliceProducer[T any] struct {
	Values []T
	// ChunkSize caps how many values Next returns per call; 0 means
	// deliver every remaining value in one batch.
	ChunkSize int
}

func (p SliceProducer[T]) Next(_ context.Context) ([]T, Producer[T], Cause, bool) {
	if len(p.Values) == 0 {
		return nil, nil, End{}, true
	}
	n := len(p.Values)
	if p.ChunkSize > 0 && p.ChunkSize < n {
		n = p.ChunkSize
	}
	batch := p.Values[:n]
	rest := SliceProducer[T]{Values: p.Values[n:], ChunkSize: p.ChunkSize}
	return batch, rest, nil, false
}
