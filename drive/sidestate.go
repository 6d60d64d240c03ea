// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package drive

import "code.hybscloud.com/wye"

// sideKind is the closed set of states a driver side can be in, mirroring
// bgpfix/pipe.Direction's per-direction bookkeeping idiom but reduced to
// the three cases the wye driver's state model names.
type sideKind uint8

const (
	sideReady sideKind = iota
	sideRunning
	sideDone
)

// sideState tracks one side (left or right) of a running driver. It is
// only ever read or written from the actor goroutine, so it carries no
// synchronization of its own.
type sideState[T any] struct {
	kind     sideKind
	producer wye.Producer[T]
	cancel   func()
	cause    wye.Cause
}

func readySide[T any](p wye.Producer[T]) sideState[T] {
	return sideState[T]{kind: sideReady, producer: p}
}

func (s sideState[T]) String() string {
	switch s.kind {
	case sideReady:
		return "ready"
	case sideRunning:
		return "running"
	default:
		return "done"
	}
}
