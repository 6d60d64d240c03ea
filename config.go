// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wye

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
)

// TimedQueueConfig describes a [TimedQueue] as it would arrive from a
// configuration source (flags, env, a config file decoded into
// map[string]any) rather than as native Go types: Window is whatever
// spelling of a duration the source gives ("5s", 5000000000, a
// time.Duration already), and MaxSize is whatever spelling of an
// integer it gives.
type TimedQueueConfig struct {
	Window  any
	MaxSize any
}

// NewTimedQueueFromConfig coerces cfg into a [TimedQueue], the way a
// long-lived process wires its wye pipeline from parsed configuration
// rather than hardcoded literals. Coercion errors are reported rather
// than panicking, since bad configuration is an expected failure mode.
func NewTimedQueueFromConfig[I any](cfg TimedQueueConfig) (W[time.Duration, I, I], error) {
	d, err := cast.ToDurationE(cfg.Window)
	if err != nil {
		return W[time.Duration, I, I]{}, fmt.Errorf("wye: timed queue window: %w", err)
	}
	maxSize, err := cast.ToIntE(cfg.MaxSize)
	if err != nil {
		return W[time.Duration, I, I]{}, fmt.Errorf("wye: timed queue max size: %w", err)
	}
	return TimedQueue[I](d, maxSize), nil
}
