// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"testing"

	"github.com/nlev/deckmix/utils"
)

func TestSampleBuffer_Size(t *testing.T) {
	t.Parallel()

	if got := NewSampleBuffer(128).Size(); got != 128 {
		t.Errorf("Size() = %d, want 128", got)
	}
	if got := NewSampleBuffer(0).Size(); got != 0 {
		t.Errorf("Size() of empty buffer = %d, want 0", got)
	}
	if got := NewSampleBuffer(-5).Size(); got != 0 {
		t.Errorf("Size() of negative capacity buffer = %d, want 0", got)
	}
}

func TestSampleBuffer_SliceAliasesStorage(t *testing.T) {
	t.Parallel()

	buf := NewSampleBuffer(8)

	w := buf.Slice(utils.IndexRangeBetween(2, 6))
	if len(w) != 4 {
		t.Fatalf("Slice([2, 6)) length = %d, want 4", len(w))
	}
	for i := range w {
		w[i] = float32(i + 1)
	}

	r := buf.Slice(utils.IndexRangeBetween(2, 6))
	for i, want := range []float32{1, 2, 3, 4} {
		if r[i] != want {
			t.Errorf("readback[%d] = %v, want %v", i, r[i], want)
		}
	}

	// Neighboring slots are untouched
	outside := buf.Slice(utils.IndexRangeBetween(0, 2))
	if outside[0] != 0 || outside[1] != 0 {
		t.Errorf("slots outside written range = %v, want zeros", outside)
	}
}

func TestSampleBuffer_SliceClampsToBounds(t *testing.T) {
	t.Parallel()

	buf := NewSampleBuffer(4)

	tests := []struct {
		name    string
		r       utils.IndexRange
		wantLen int
	}{
		{"whole buffer", utils.IndexRangeBetween(0, 4), 4},
		{"past end", utils.IndexRangeBetween(2, 10), 2},
		{"fully out of bounds", utils.IndexRangeBetween(6, 10), 0},
		{"empty range", utils.EmptyIndexRange(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(buf.Slice(tt.r)); got != tt.wantLen {
				t.Errorf("len(Slice([%d, %d))) = %d, want %d",
					tt.r.Start(), tt.r.End(), got, tt.wantLen)
			}
		})
	}
}
