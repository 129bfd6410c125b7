// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/nlev/deckmix/utils"

// SampleBuffer owns a fixed-capacity contiguous block of float32 sample
// storage. It has no read or write cursor of its own; it only hands out
// bounds-checked slice views by index range.
type SampleBuffer struct {
	data []float32
}

// NewSampleBuffer allocates storage for capacity samples. A capacity of
// 0 (or less) yields an unallocated buffer.
func NewSampleBuffer(capacity int) SampleBuffer {
	if capacity <= 0 {
		return SampleBuffer{}
	}
	return SampleBuffer{data: make([]float32, capacity)}
}

// Size returns the capacity of the buffer in samples.
func (b SampleBuffer) Size() int {
	return len(b.data)
}

// Slice returns the window of storage covered by r, clamped to the
// bounds of the buffer. The returned slice aliases the buffer's
// storage; writes through it are visible to later reads.
func (b SampleBuffer) Slice(r utils.IndexRange) []float32 {
	r = r.Clamp(utils.IndexRangeBetween(0, len(b.data)))
	return b.data[r.Start():r.End()]
}
