// SPDX-License-Identifier: EPL-2.0

// Package wav adapts github.com/go-audio/wav to the deckmix Source
// interface.
//
// The package does not parse WAV itself: container handling is
// delegated entirely to go-audio, and this package only converts the
// decoded integer PCM into normalized float32 samples.
//
//	decoder := wav.Decoder{}
//	src, err := decoder.Decode(file)
//
// Supported PCM bit depths are 16, 24 and 32. WriteWAV16 writes 16-bit
// PCM files, which the tests use for roundtrips.
package wav
