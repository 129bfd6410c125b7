// SPDX-License-Identifier: EPL-2.0

// Package vorbis adapts github.com/jfreymuth/oggvorbis to the deckmix
// Source interface. The library already produces interleaved float32
// samples, so the adapter is a thin metadata wrapper.
package vorbis
