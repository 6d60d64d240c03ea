// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package drive_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/wye"
	"code.hybscloud.com/wye/drive"
)

// infiniteProducer never ends on its own; it only reports done once its
// context is canceled, for exercising mergeHaltL / Terminate against a
// side that would otherwise run forever.
type infiniteProducer struct{ v int }

func (p infiniteProducer) Next(ctx context.Context) ([]int, wye.Producer[int], wye.Cause, bool) {
	select {
	case <-ctx.Done():
		return nil, nil, wye.Kill{Wrapped: wye.End{}}, true
	default:
		return []int{p.v}, p, nil, false
	}
}

func collect(t *testing.T, s *drive.Stream[int], max int) ([]int, wye.Cause) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	var out []int
	for len(out) < max {
		v, ok, cause := s.Next(ctx)
		if !ok {
			return out, cause
		}
		out = append(out, v)
	}
	return out, nil
}

// Property 10: for two finite sources and merge, the output multiset is
// the union of both, and the stream terminates exactly once both sources
// have terminated.
func TestDriverMergeDrainsBothFiniteSources(t *testing.T) {
	left := wye.SliceProducer[int]{Values: []int{1, 2, 3}}
	right := wye.SliceProducer[int]{Values: []int{10, 20}}

	d := drive.New[int, int, int](context.Background(), wye.Merge[int](), left, right)
	s := drive.NewStream[int, int, int](d)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var out []int
	var cause wye.Cause
	for {
		v, ok, c := s.Next(ctx)
		if !ok {
			cause = c
			break
		}
		out = append(out, v)
	}

	require.IsType(t, wye.End{}, cause)
	assert.ElementsMatch(t, []int{1, 2, 3, 10, 20}, out)
}

// Property 11: mergeHaltL ends within one additional delivery of the left
// source terminating, even against a right source that never ends on its
// own.
func TestDriverMergeHaltLEndsWhenLeftEnds(t *testing.T) {
	left := wye.SliceProducer[int]{Values: []int{1, 2}}
	right := infiniteProducer{v: 99}

	d := drive.New[int, int, int](context.Background(), wye.MergeHaltL[int](), left, right)
	s := drive.NewStream[int, int, int](d)

	out, cause := collect(t, s, 1000)

	require.IsType(t, wye.End{}, cause)
	for _, v := range out {
		assert.True(t, v == 1 || v == 2 || v == 99, "unexpected value %d", v)
	}
}

// Property 12: an external Terminate ends the stream with the supplied
// cause.
func TestDriverTerminatePropagatesCause(t *testing.T) {
	left := infiniteProducer{v: 1}
	right := infiniteProducer{v: 2}

	d := drive.New[int, int, int](context.Background(), wye.Merge[int](), left, right)
	s := drive.NewStream[int, int, int](d)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, ok, _ := s.Next(ctx)
	require.True(t, ok)

	terminateCause := wye.Kill{Wrapped: wye.End{}}
	s.Terminate(terminateCause)

	for {
		_, ok, cause := s.Next(ctx)
		if !ok {
			require.IsType(t, wye.Kill{}, cause)
			return
		}
	}
}

func TestDriverStatsCountsReads(t *testing.T) {
	left := wye.SliceProducer[int]{Values: []int{1, 2, 3}}
	right := wye.SliceProducer[int]{Values: []int{10}}

	d := drive.New[int, int, int](context.Background(), wye.Merge[int](), left, right)
	s := drive.NewStream[int, int, int](d)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	for {
		_, ok, _ := s.Next(ctx)
		if !ok {
			break
		}
	}

	stats := d.Stats()
	assert.GreaterOrEqual(t, stats.LeftReads, int64(1))
	assert.GreaterOrEqual(t, stats.RightReads, int64(1))
}
