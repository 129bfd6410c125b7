// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level primitives of the deckmix
// render path.
//
// This package contains the core building blocks:
//   - Source interface for audio input
//   - ReadAheadSampleBuffer for staging decoded samples
//   - XfadeGains/PowerCalibration for crossfader gain curves
//   - Deck and XfadeMixer composing the two into a render pipeline
//   - Format registry for decoder registration
//
// # Source Interface
//
// The Source interface is the foundation of the pipeline:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Decoders, decks and mixers all implement it, so they can be chained
// freely.
//
// # Crossfader Gains
//
// XfadeGains turns a crossfader position in [-1, 1] into the gain pair
// applied to the two mixer inputs:
//
//	cal := audio.PowerCalibration(audio.TransformDefault)
//	gainA, gainB := audio.XfadeGains(pos, audio.TransformDefault, cal,
//	    audio.CurveConstantPower, false)
//
// The curve parameter blends between a linear additive fade and an
// equal-power fade; the transform parameter shapes how wide the
// full-gain plateau of each channel is. Both functions are pure
// arithmetic with no allocation, no locking and no error path, so they
// are safe to call from the render callback.
//
// # Sample Staging
//
// ReadAheadSampleBuffer is a straight-line FIFO, not a ring buffer:
// writes go to the tail, reads come from the head, and head space freed
// by reading is only reclaimed by Clear or AdjustCapacity. It is meant
// for the drain-before-refill pattern, which Deck implements:
//
//	deck := audio.NewDeck(decodedSource, 4096)
//	buf := make([]float32, 4096)
//	n, err := deck.ReadSamples(buf)
//
// The buffer performs no internal synchronization. It expects exactly
// one producer and one consumer, never concurrently.
//
// # Mixing
//
// XfadeMixer reads from two sources, applies the crossfader gain pair
// and sums the result:
//
//	mixer, err := audio.NewXfadeMixer(deckA, deckB)
//	mixer.SetPosition(-0.5)
//	n, err := mixer.ReadSamples(out)
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// Constant-power crossfader gains can exceed 1.0 (up to sqrt(2) at the
// sharpest transform), so a mix of two full-scale inputs may clip when
// converted back to integer PCM. utils.Float32ToInt16 clamps.
//
// # Error Handling
//
// Streaming functions return io.EOF when no more data is available.
// Buffer operations never fail: every length argument is clamped to
// what is actually available, and returning less than requested is the
// universal policy.
package audio
