// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize     = errors.New("dst size must be multiple of channels")
	ErrSampleRateMismatch = errors.New("sources must share the same sample rate")
	ErrChannelMismatch    = errors.New("sources must share the same channel count")
)
