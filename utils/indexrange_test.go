// SPDX-License-Identifier: EPL-2.0

package utils

import "testing"

func TestIndexRangeBetween(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		start, end int
		wantStart  int
		wantEnd    int
	}{
		{"normal range", 2, 8, 2, 8},
		{"empty range", 5, 5, 5, 5},
		{"end before start clamps to empty", 7, 3, 7, 7},
		{"negative start clamps to zero", -4, 6, 0, 6},
		{"both negative", -4, -2, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := IndexRangeBetween(tt.start, tt.end)
			if r.Start() != tt.wantStart || r.End() != tt.wantEnd {
				t.Errorf("IndexRangeBetween(%d, %d) = [%d, %d), want [%d, %d)",
					tt.start, tt.end, r.Start(), r.End(), tt.wantStart, tt.wantEnd)
			}
			if r.Length() < 0 {
				t.Errorf("Length() = %d, must never be negative", r.Length())
			}
		})
	}
}

func TestForwardIndexRange(t *testing.T) {
	t.Parallel()

	r := ForwardIndexRange(3, 5)
	if r.Start() != 3 || r.End() != 8 {
		t.Errorf("ForwardIndexRange(3, 5) = [%d, %d), want [3, 8)", r.Start(), r.End())
	}

	// Negative length clamps to empty
	r = ForwardIndexRange(3, -2)
	if !r.Empty() || r.Start() != 3 {
		t.Errorf("ForwardIndexRange(3, -2) = [%d, %d), want empty at 3", r.Start(), r.End())
	}
}

func TestIndexRange_Empty(t *testing.T) {
	t.Parallel()

	if !EmptyIndexRange().Empty() {
		t.Error("EmptyIndexRange().Empty() = false, want true")
	}
	if IndexRangeBetween(1, 2).Empty() {
		t.Error("IndexRangeBetween(1, 2).Empty() = true, want false")
	}
}

func TestIndexRange_Contains(t *testing.T) {
	t.Parallel()

	r := IndexRangeBetween(2, 5)

	for _, i := range []int{2, 3, 4} {
		if !r.Contains(i) {
			t.Errorf("Contains(%d) = false, want true", i)
		}
	}
	// End is exclusive
	for _, i := range []int{1, 5, 6} {
		if r.Contains(i) {
			t.Errorf("Contains(%d) = true, want false", i)
		}
	}
}

func TestIndexRange_GrowBack(t *testing.T) {
	t.Parallel()

	r := IndexRangeBetween(2, 5).GrowBack(3)
	if r.Start() != 2 || r.End() != 8 {
		t.Errorf("GrowBack(3) = [%d, %d), want [2, 8)", r.Start(), r.End())
	}

	// Negative growth is ignored
	r = IndexRangeBetween(2, 5).GrowBack(-3)
	if r.Start() != 2 || r.End() != 5 {
		t.Errorf("GrowBack(-3) = [%d, %d), want [2, 5)", r.Start(), r.End())
	}
}

func TestIndexRange_ShrinkFront(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		n         int
		wantStart int
		wantEnd   int
	}{
		{"partial shrink", 2, 4, 7},
		{"full shrink", 5, 7, 7},
		{"over-shrink clamps to empty", 9, 7, 7},
		{"negative ignored", -1, 2, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := IndexRangeBetween(2, 7).ShrinkFront(tt.n)
			if r.Start() != tt.wantStart || r.End() != tt.wantEnd {
				t.Errorf("ShrinkFront(%d) = [%d, %d), want [%d, %d)",
					tt.n, r.Start(), r.End(), tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestIndexRange_ShrinkBack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		n         int
		wantStart int
		wantEnd   int
	}{
		{"partial shrink", 2, 2, 5},
		{"full shrink", 5, 2, 2},
		{"over-shrink clamps to empty", 9, 2, 2},
		{"negative ignored", -1, 2, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := IndexRangeBetween(2, 7).ShrinkBack(tt.n)
			if r.Start() != tt.wantStart || r.End() != tt.wantEnd {
				t.Errorf("ShrinkBack(%d) = [%d, %d), want [%d, %d)",
					tt.n, r.Start(), r.End(), tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestIndexRange_Shift(t *testing.T) {
	t.Parallel()

	r := IndexRangeBetween(2, 7).Shift(3)
	if r.Start() != 5 || r.End() != 10 {
		t.Errorf("Shift(3) = [%d, %d), want [5, 10)", r.Start(), r.End())
	}

	r = IndexRangeBetween(2, 7).Shift(-2)
	if r.Start() != 0 || r.End() != 5 {
		t.Errorf("Shift(-2) = [%d, %d), want [0, 5)", r.Start(), r.End())
	}

	// Shifting past zero clamps the start but keeps the length
	r = IndexRangeBetween(2, 7).Shift(-10)
	if r.Start() != 0 || r.End() != 5 {
		t.Errorf("Shift(-10) = [%d, %d), want [0, 5)", r.Start(), r.End())
	}
}

func TestIndexRange_SplitFront(t *testing.T) {
	t.Parallel()

	taken, remaining := IndexRangeBetween(2, 7).SplitFront(3)
	if taken.Start() != 2 || taken.End() != 5 {
		t.Errorf("SplitFront(3) taken = [%d, %d), want [2, 5)", taken.Start(), taken.End())
	}
	if remaining.Start() != 5 || remaining.End() != 7 {
		t.Errorf("SplitFront(3) remaining = [%d, %d), want [5, 7)", remaining.Start(), remaining.End())
	}

	// Taking more than available clamps to the whole range
	taken, remaining = IndexRangeBetween(2, 7).SplitFront(99)
	if taken.Length() != 5 || !remaining.Empty() {
		t.Errorf("SplitFront(99) = %d taken, %d remaining, want 5 taken, 0 remaining",
			taken.Length(), remaining.Length())
	}
}

func TestIndexRange_SplitBack(t *testing.T) {
	t.Parallel()

	taken, remaining := IndexRangeBetween(2, 7).SplitBack(2)
	if taken.Start() != 5 || taken.End() != 7 {
		t.Errorf("SplitBack(2) taken = [%d, %d), want [5, 7)", taken.Start(), taken.End())
	}
	if remaining.Start() != 2 || remaining.End() != 5 {
		t.Errorf("SplitBack(2) remaining = [%d, %d), want [2, 5)", remaining.Start(), remaining.End())
	}
}

func TestIndexRange_Clamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		r         IndexRange
		bounds    IndexRange
		wantStart int
		wantEnd   int
	}{
		{"inside bounds", IndexRangeBetween(3, 5), IndexRangeBetween(0, 10), 3, 5},
		{"overlapping front", IndexRangeBetween(0, 5), IndexRangeBetween(2, 10), 2, 5},
		{"overlapping back", IndexRangeBetween(5, 15), IndexRangeBetween(0, 10), 5, 10},
		{"disjoint", IndexRangeBetween(12, 15), IndexRangeBetween(0, 10), 12, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.r.Clamp(tt.bounds)
			if got.Start() != tt.wantStart || got.End() != tt.wantEnd {
				t.Errorf("Clamp() = [%d, %d), want [%d, %d)",
					got.Start(), got.End(), tt.wantStart, tt.wantEnd)
			}
		})
	}
}
