// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wye

// ReceiveKind tags the payload carried by a [ReceiveY] value.
type ReceiveKind uint8

const (
	KindReceiveL ReceiveKind = iota
	KindReceiveR
	KindHaltL
	KindHaltR
	KindHaltOne
)

// ReceiveY is the tagged union delivered to an AwaitBoth receiver: a value
// from the left, a value from the right, or a halt signal from either side
// (HaltL/HaltR precise, HaltOne coarse).
type ReceiveY[L, R any] struct {
	Kind  ReceiveKind
	L     L
	R     R
	Cause Cause
}

// ReceiveLeft builds a ReceiveY carrying a left-side value.
func ReceiveLeft[L, R any](l L) ReceiveY[L, R] {
	return ReceiveY[L, R]{Kind: KindReceiveL, L: l}
}

// ReceiveRight builds a ReceiveY carrying a right-side value.
func ReceiveRight[L, R any](r R) ReceiveY[L, R] {
	return ReceiveY[L, R]{Kind: KindReceiveR, R: r}
}

// HaltLeft builds a ReceiveY signaling the left side ended with cause c.
func HaltLeft[L, R any](c Cause) ReceiveY[L, R] {
	return ReceiveY[L, R]{Kind: KindHaltL, Cause: c}
}

// HaltRight builds a ReceiveY signaling the right side ended with cause c.
func HaltRight[L, R any](c Cause) ReceiveY[L, R] {
	return ReceiveY[L, R]{Kind: KindHaltR, Cause: c}
}

// HaltEither builds a coarse ReceiveY signaling that one of the two sides
// ended with cause c, without saying which.
func HaltEither[L, R any](c Cause) ReceiveY[L, R] {
	return ReceiveY[L, R]{Kind: KindHaltOne, Cause: c}
}

// flipReceiveY swaps L and R in ry, used by Flip to reinterpret a receive
// from the flipped wye's point of view.
func flipReceiveY[L, R any](ry ReceiveY[R, L]) ReceiveY[L, R] {
	switch ry.Kind {
	case KindReceiveL:
		return ReceiveRight[L, R](ry.L)
	case KindReceiveR:
		return ReceiveLeft[L, R](ry.R)
	case KindHaltL:
		return HaltRight[L, R](ry.Cause)
	case KindHaltR:
		return HaltLeft[L, R](ry.Cause)
	default:
		return HaltEither[L, R](ry.Cause)
	}
}
