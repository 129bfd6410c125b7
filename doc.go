// SPDX-License-Identifier: EPL-2.0

// Package deckmix provides the audio core of a two-deck DJ mixer:
// crossfader gain curves and read-ahead sample staging.
//
// # Quick Start
//
// The simplest way to crossfade two sources is MixToPCM16:
//
//	// Decode two audio files
//	decoder := wav.Decoder{}
//	fileA, _ := os.Open("deck_a.wav")
//	fileB, _ := os.Open("deck_b.wav")
//	srcA, _ := decoder.Decode(fileA)
//	srcB, _ := decoder.Decode(fileB)
//
//	// Render the mix slightly towards deck A
//	pcm, rate, _ := deckmix.MixToPCM16(srcA, srcB,
//	    -0.3, audio.TransformDefault, audio.CurveConstantPower, false, 4096)
//
// # Render Pipeline
//
// For more control, build the pipeline from the audio subpackage:
//
//	deckA := audio.NewDeck(srcA, 4096)
//	deckB := audio.NewDeck(srcB, 4096)
//	mixer, _ := audio.NewXfadeMixer(deckA, deckB)
//
//	buf := make([]float32, 4096)
//	for {
//	    mixer.SetPosition(currentFaderPosition())
//	    n, err := mixer.ReadSamples(buf)
//	    // play buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	}
//
// The crossfader math itself (audio.XfadeGains, audio.PowerCalibration)
// is pure arithmetic and can be used standalone.
//
// # Format Decoders
//
// Each format has its own decoder adapting a third-party library:
//
//	// WAV (go-audio/wav)
//	src, _ := wav.Decoder{}.Decode(reader)
//
//	// MP3 (hajimehoshi/go-mp3)
//	src, _ := mp3.Decoder{}.Decode(reader)
//
//	// Ogg Vorbis (jfreymuth/oggvorbis)
//	src, _ := vorbis.Decoder{}.Decode(reader)
//
//	// AIFF (go-audio/aiff)
//	src, _ := aiff.Decoder{}.Decode(reader)
//
// All decoders return an audio.Source delivering interleaved float32
// samples in [-1.0, 1.0]. NewFormatRegistry bundles them keyed by file
// extension.
//
// # Performance
//
// The render path is designed for the audio callback: gain computation
// is pure arithmetic, the staging buffer hands out views instead of
// copying, and steady-state rendering does not allocate.
//
// See the audio subpackage for detailed documentation of the
// primitives.
package deckmix
