// SPDX-License-Identifier: EPL-2.0

// Package mp3 adapts github.com/hajimehoshi/go-mp3 to the deckmix
// Source interface. go-mp3 always outputs 16-bit stereo PCM, so the
// source reports two channels regardless of the encoded layout.
package mp3
