// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/nlev/deckmix/utils"

// ReadAheadSampleBuffer is a FIFO staging buffer with fixed capacity
// and range checking. Samples are written at the tail and read from the
// head. It is intended for the drain-before-refill pattern: consume all
// buffered samples before writing new ones. A full ring buffer is
// deliberately not implemented for this purpose, so head space freed by
// reading is only reclaimed by Clear or AdjustCapacity.
//
// The API is not designed for concurrent readers and writers. Samples
// reserved by WriteToTail are immediately readable, even before the
// producer has filled them, and no attempt is made to be thread-safe.
type ReadAheadSampleBuffer struct {
	buf      SampleBuffer
	readable utils.IndexRange
}

// NewReadAheadSampleBuffer creates a buffer holding up to capacity
// samples. A capacity of 0 creates an empty, unallocated buffer that
// can be sized later with AdjustCapacity.
func NewReadAheadSampleBuffer(capacity int) *ReadAheadSampleBuffer {
	return &ReadAheadSampleBuffer{
		buf:      NewSampleBuffer(capacity),
		readable: utils.EmptyIndexRange(),
	}
}

// Clone returns a new buffer with the same capacity whose readable
// contents are a copy of this buffer's, compacted to the front of the
// new storage.
func (b *ReadAheadSampleBuffer) Clone() *ReadAheadSampleBuffer {
	that := NewReadAheadSampleBuffer(b.Capacity())
	copy(that.buf.Slice(utils.IndexRangeBetween(0, b.ReadableLength())), b.buf.Slice(b.readable))
	that.readable = utils.IndexRangeBetween(0, b.ReadableLength())
	return that
}

// Capacity returns the maximum number of samples the buffer can hold.
func (b *ReadAheadSampleBuffer) Capacity() int {
	return b.buf.Size()
}

// Empty reports whether no readable samples are buffered.
func (b *ReadAheadSampleBuffer) Empty() bool {
	return b.readable.Empty()
}

// ReadableLength returns the number of buffered, unread samples.
func (b *ReadAheadSampleBuffer) ReadableLength() int {
	return b.readable.Length()
}

// WritableLength returns the number of samples that could be written
// instantly, without internal reorganization. Only the space between
// the end of the readable region and the end of the allocated storage
// counts: space freed at the head by reading is not reusable until the
// buffer is cleared or its capacity adjusted.
func (b *ReadAheadSampleBuffer) WritableLength() int {
	return b.Capacity() - b.readable.End()
}

// AdjustCapacity resizes the backing storage to hold capacity samples,
// taking the current contents into account: buffered samples are never
// discarded, so the resulting capacity may be higher than requested
// when shrinking. Readable contents are moved to the front of the new
// storage. Slices returned by earlier calls are invalidated.
func (b *ReadAheadSampleBuffer) AdjustCapacity(capacity int) {
	readableLength := b.ReadableLength()
	if capacity < readableLength {
		capacity = readableLength
	}
	if capacity == b.Capacity() {
		return
	}

	buf := NewSampleBuffer(capacity)
	compacted := utils.IndexRangeBetween(0, readableLength)
	copy(buf.Slice(compacted), b.buf.Slice(b.readable))
	b.buf = buf
	b.readable = compacted
}

// Clear discards all buffered samples. Storage is kept and may still
// contain stale data.
func (b *ReadAheadSampleBuffer) Clear() {
	b.readable = utils.EmptyIndexRange()
}

// WriteToTail reserves space for up to maxWriteLength samples at the
// tail and returns the writable region, limited by WritableLength. The
// reserved samples count as readable immediately; the caller must fill
// the returned slice before the next read. The slice is valid until the
// next WriteToTail or AdjustCapacity call.
func (b *ReadAheadSampleBuffer) WriteToTail(maxWriteLength int) []float32 {
	n := maxWriteLength
	if n < 0 {
		n = 0
	}
	if w := b.WritableLength(); n > w {
		n = w
	}
	reserved := utils.ForwardIndexRange(b.readable.End(), n)
	b.readable = b.readable.GrowBack(n)
	return b.buf.Slice(reserved)
}

// ReadFromHead consumes up to maxReadLength samples from the head and
// returns them, limited by ReadableLength. The slice is valid until the
// next WriteToTail or AdjustCapacity call.
func (b *ReadAheadSampleBuffer) ReadFromHead(maxReadLength int) []float32 {
	taken, remaining := b.readable.SplitFront(maxReadLength)
	b.readable = remaining
	return b.buf.Slice(taken)
}

// DropFromTail discards up to maxDropLength of the most recently
// written samples, limited by ReadableLength, and returns the number of
// samples actually dropped. This retracts read-ahead data that turned
// out to be unwanted, e.g. after a seek.
func (b *ReadAheadSampleBuffer) DropFromTail(maxDropLength int) int {
	dropped, remaining := b.readable.SplitBack(maxDropLength)
	b.readable = remaining
	return dropped.Length()
}
