// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wye

// Side tags one of the two inputs a wye can request from.
//
// Modeled as a two-bit flag set, the way bgpfix/dir.Dir tags BGP message
// direction: SideL and SideR are the individual bits, SideBoth is both set.
type Side uint8

const (
	SideL    Side = 0b01
	SideR    Side = 0b10
	SideBoth Side = SideL | SideR
)

// Flip swaps L and R, leaving Both unchanged.
func (s Side) Flip() Side {
	switch s {
	case SideL:
		return SideR
	case SideR:
		return SideL
	default:
		return s
	}
}

// String renders the side for diagnostics and log lines.
func (s Side) String() string {
	switch s {
	case SideL:
		return "L"
	case SideR:
		return "R"
	case SideBoth:
		return "Both"
	default:
		return "?"
	}
}

// Request is the three-valued tag dynamic constructors use to state which
// side they want queried next.
type Request uint8

const (
	ReqL Request = iota
	ReqR
	ReqBoth
)

// String renders the request for diagnostics.
func (r Request) String() string {
	switch r {
	case ReqL:
		return "L"
	case ReqR:
		return "R"
	case ReqBoth:
		return "Both"
	default:
		return "?"
	}
}
