// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wye_test

import (
	"testing"

	wye "code.hybscloud.com/wye"
)

func TestNewTimedQueueFromConfigCoercesStrings(t *testing.T) {
	w, err := wye.NewTimedQueueFromConfig[int](wye.TimedQueueConfig{Window: "5s", MaxSize: "3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sf := wye.Step(w)
	if sf.Tag != wye.StepAwaitBoth {
		t.Fatalf("expected an empty timed queue to await both, got %v", sf.Tag)
	}
}

func TestNewTimedQueueFromConfigRejectsBadWindow(t *testing.T) {
	_, err := wye.NewTimedQueueFromConfig[int](wye.TimedQueueConfig{Window: "not-a-duration", MaxSize: 3})
	if err == nil {
		t.Fatalf("expected an error for an unparsable window")
	}
}
