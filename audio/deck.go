// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Deck stages decoded samples between a Source (typically a format
// decoder) and the render path. It owns a ReadAheadSampleBuffer that it
// fills ahead of consumption and fully drains before refilling, which
// is what reclaims the head space of the non-wrapping buffer.
//
// Deck itself implements Source, so it can be dropped into any pipeline
// position. Like the underlying buffer it is not safe for concurrent
// use.
type Deck struct {
	src Source
	buf *ReadAheadSampleBuffer
	eof bool
}

// NewDeck creates a deck reading ahead up to readAhead samples. If
// readAhead is not positive, the source's preferred buffer size is
// used.
func NewDeck(src Source, readAhead int) *Deck {
	if readAhead <= 0 {
		readAhead = src.BufSize()
	}
	return &Deck{
		src: src,
		buf: NewReadAheadSampleBuffer(readAhead),
	}
}

func (d *Deck) SampleRate() int { return d.src.SampleRate() }
func (d *Deck) Channels() int   { return d.src.Channels() }
func (d *Deck) BufSize() int    { return d.buf.Capacity() }

func (d *Deck) Close() error {
	if err := d.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// Buffered returns the number of staged samples not yet consumed.
func (d *Deck) Buffered() int {
	return d.buf.ReadableLength()
}

// DiscardReadAhead drops all staged samples and returns how many were
// dropped. Call it after repositioning the underlying source, when the
// read-ahead data no longer matches the play position. The deck will
// resume reading from the source afterwards, even if it had previously
// reached the end of the stream.
func (d *Deck) DiscardReadAhead() int {
	dropped := d.buf.DropFromTail(d.buf.ReadableLength())
	d.eof = false
	return dropped
}

// SetReadAhead adjusts the staging capacity. Already staged samples are
// always kept, so the effective capacity may be larger than requested.
func (d *Deck) SetReadAhead(readAhead int) {
	d.buf.AdjustCapacity(readAhead)
}

// fill tops the staging buffer up from the source. Space is reserved
// first and the part the source did not deliver is retracted again.
func (d *Deck) fill() error {
	for !d.eof && d.buf.WritableLength() > 0 {
		reserved := d.buf.WriteToTail(d.buf.WritableLength())
		n, err := d.src.ReadSamples(reserved)
		if n < len(reserved) {
			d.buf.DropFromTail(len(reserved) - n)
		}
		if err == io.EOF {
			d.eof = true
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w", err)
		}
		if n == 0 {
			return nil
		}
	}
	return nil
}

// ReadSamples drains staged samples into dst, refilling from the source
// whenever the staging buffer runs empty.
func (d *Deck) ReadSamples(dst []float32) (int, error) {
	total := 0
	for total < len(dst) {
		if d.buf.Empty() {
			if d.eof {
				break
			}
			// Drain-before-refill: the buffer is empty, so clearing it
			// costs nothing and reclaims the consumed head space.
			d.buf.Clear()
			if err := d.fill(); err != nil {
				return total, err
			}
			if d.buf.Empty() {
				// Either the stream ended or the source had nothing
				// to deliver right now.
				break
			}
		}
		s := d.buf.ReadFromHead(len(dst) - total)
		copy(dst[total:], s)
		total += len(s)
	}

	if total < len(dst) && d.eof && d.buf.Empty() {
		return total, io.EOF
	}
	return total, nil
}
