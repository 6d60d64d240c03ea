// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package drive

import (
	"github.com/rs/zerolog"

	"code.hybscloud.com/wye"
)

// Option configures a Driver at construction time, following the
// functional-options convention bgpfix/pipe.Options uses for Pipe.
type Option[L, R, O any] func(*Driver[L, R, O])

// WithLogger attaches a logger; a nil logger is equivalent to not passing
// this option, in which case New installs zerolog.Nop().
func WithLogger[L, R, O any](logger *zerolog.Logger) Option[L, R, O] {
	return func(d *Driver[L, R, O]) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithStrategy overrides the default GoStrategy used to run producer
// reads.
func WithStrategy[L, R, O any](s wye.Strategy) Option[L, R, O] {
	return func(d *Driver[L, R, O]) {
		if s != nil {
			d.strategy = s
		}
	}
}

// WithBias sets which side is preferred the first time the wye awaits
// Both. After that, bias always favors whichever side did not just
// deliver, per the driver's alternation rule.
func WithBias[L, R, O any](leftFirst bool) Option[L, R, O] {
	return func(d *Driver[L, R, O]) { d.leftBias = leftFirst }
}
