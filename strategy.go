// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wye

// Strategy executes a thunk, asynchronously with respect to its caller.
// Implementations must be stack-safe: f must never run synchronously
// nested arbitrarily deep inside another Strategy.Exec call.
type Strategy interface {
	Exec(f func())
}

// GoStrategy is the default Strategy: every Exec is a bare `go f()`.
type GoStrategy struct{}

func (GoStrategy) Exec(f func()) { go f() }
