// SPDX-License-Identifier: EPL-2.0

package deckmix

import (
	"fmt"
	"io"

	"github.com/nlev/deckmix/audio"
	"github.com/nlev/deckmix/formats/aiff"
	"github.com/nlev/deckmix/formats/mp3"
	"github.com/nlev/deckmix/formats/vorbis"
	"github.com/nlev/deckmix/formats/wav"
	"github.com/nlev/deckmix/utils"
)

// NewFormatRegistry returns a registry with all bundled format decoders
// registered under their usual file extensions.
func NewFormatRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	return r
}

// MixToPCM16 is a high-level convenience function that crossfades two
// sources into a single 16-bit PCM stream.
//
// This function creates a render pipeline:
//  1. Stages each source behind a read-ahead Deck of bufferSize samples
//  2. Mixes both decks with the crossfader gain pair for the given
//     position, transform and curve
//  3. Drains the mix and converts float32 samples to int16 PCM
//
// Parameters:
//   - a, b: The two inputs; they must share sample rate and channels
//   - position: Crossfader position in [-1, 1] (-1 = full a, +1 = full b)
//   - transform: Curve shape in [audio.TransformMin, audio.TransformMax]
//   - curve: Blend between audio.CurveAdditive and audio.CurveConstantPower
//   - reverse: Swap which input is hot at which end of the travel
//   - bufferSize: Render block size in samples; must be a multiple of
//     the channel count. Values below 1 select a 4096-sample default.
//
// Returns the collected PCM samples, the output sample rate and any
// error encountered during mixing.
//
// Note: This is a convenience function for offline mixdowns. For
// real-time rendering drive an audio.XfadeMixer block by block and
// adjust its position between blocks.
func MixToPCM16(a, b audio.Source, position, transform, curve float64, reverse bool, bufferSize int) ([]int16, int, error) {
	if bufferSize < 1 {
		bufferSize = 4096
	}

	mixer, err := audio.NewXfadeMixer(audio.NewDeck(a, bufferSize), audio.NewDeck(b, bufferSize))
	if err != nil {
		return nil, 0, err
	}
	mixer.SetTransform(transform)
	mixer.SetCurve(curve)
	mixer.SetReverse(reverse)
	mixer.SetPosition(position)

	rate := mixer.SampleRate()
	pcm := make([]int16, 0, bufferSize)
	buf := make([]float32, bufferSize)

	for {
		n, err := mixer.ReadSamples(buf)
		for i := 0; i < n; i++ {
			pcm = append(pcm, utils.Float32ToInt16(buf[i]))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, rate, fmt.Errorf("%w", err)
		}
	}

	return pcm, rate, nil
}
