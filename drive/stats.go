// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package drive

// Stats is a point-in-time snapshot of a Driver's per-side counters.
type Stats struct {
	LeftReads  int64
	RightReads int64
}

// Stats reads the driver's counters map. Safe to call concurrently with
// the running actor: the map is lock-free for reads, and every counter is
// only ever written by the actor goroutine.
func (d *Driver[L, R, O]) Stats() Stats {
	left, _ := d.counters.Load("left.reads")
	right, _ := d.counters.Load("right.reads")
	return Stats{LeftReads: left, RightReads: right}
}
