// SPDX-License-Identifier: EPL-2.0

package utils

// IndexRange is a half-open interval [Start, End) of non-negative
// sample indices. The zero value is the empty range [0, 0).
//
// IndexRange is an immutable value type: every operation returns a new
// range and clamps its arguments so that the invariant Start <= End
// (never a negative length) always holds.
type IndexRange struct {
	start int
	end   int
}

// EmptyIndexRange returns the empty range [0, 0).
func EmptyIndexRange() IndexRange {
	return IndexRange{}
}

// IndexRangeBetween returns the range [start, end). A negative start is
// clamped to 0 and an end below start is clamped to start.
func IndexRangeBetween(start, end int) IndexRange {
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}
	return IndexRange{start: start, end: end}
}

// ForwardIndexRange returns the range [start, start+length).
func ForwardIndexRange(start, length int) IndexRange {
	if length < 0 {
		length = 0
	}
	return IndexRangeBetween(start, start+length)
}

// Start returns the inclusive lower bound.
func (r IndexRange) Start() int { return r.start }

// End returns the exclusive upper bound.
func (r IndexRange) End() int { return r.end }

// Length returns the number of indices covered by the range.
func (r IndexRange) Length() int { return r.end - r.start }

// Empty reports whether the range covers no indices.
func (r IndexRange) Empty() bool { return r.start == r.end }

// Contains reports whether i falls within [Start, End).
func (r IndexRange) Contains(i int) bool {
	return i >= r.start && i < r.end
}

// GrowBack extends the upper bound by n.
func (r IndexRange) GrowBack(n int) IndexRange {
	if n < 0 {
		n = 0
	}
	return IndexRange{start: r.start, end: r.end + n}
}

// ShrinkFront advances the lower bound by up to n, clamped to Length.
func (r IndexRange) ShrinkFront(n int) IndexRange {
	if n < 0 {
		n = 0
	}
	if n > r.Length() {
		n = r.Length()
	}
	return IndexRange{start: r.start + n, end: r.end}
}

// ShrinkBack retracts the upper bound by up to n, clamped to Length.
func (r IndexRange) ShrinkBack(n int) IndexRange {
	if n < 0 {
		n = 0
	}
	if n > r.Length() {
		n = r.Length()
	}
	return IndexRange{start: r.start, end: r.end - n}
}

// Shift translates both bounds by n. The shifted start is clamped at 0,
// preserving the length where possible.
func (r IndexRange) Shift(n int) IndexRange {
	start := r.start + n
	if start < 0 {
		start = 0
	}
	return IndexRange{start: start, end: start + r.Length()}
}

// SplitFront removes up to n indices from the front of the range and
// returns the removed part followed by the remainder.
func (r IndexRange) SplitFront(n int) (taken, remaining IndexRange) {
	if n < 0 {
		n = 0
	}
	if n > r.Length() {
		n = r.Length()
	}
	taken = IndexRange{start: r.start, end: r.start + n}
	remaining = IndexRange{start: r.start + n, end: r.end}
	return taken, remaining
}

// SplitBack removes up to n indices from the back of the range and
// returns the removed part followed by the remainder.
func (r IndexRange) SplitBack(n int) (taken, remaining IndexRange) {
	if n < 0 {
		n = 0
	}
	if n > r.Length() {
		n = r.Length()
	}
	taken = IndexRange{start: r.end - n, end: r.end}
	remaining = IndexRange{start: r.start, end: r.end - n}
	return taken, remaining
}

// Clamp returns the intersection of r with bounds, i.e. the largest
// sub-range of r fully contained in bounds.
func (r IndexRange) Clamp(bounds IndexRange) IndexRange {
	start := r.start
	if start < bounds.start {
		start = bounds.start
	}
	end := r.end
	if end > bounds.end {
		end = bounds.end
	}
	if end < start {
		return IndexRange{start: start, end: start}
	}
	return IndexRange{start: start, end: end}
}
