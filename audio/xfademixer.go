// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// XfadeMixer sums two Sources into one stream, applying the crossfader
// gain pair from XfadeGains to the two inputs. Gains are evaluated once
// per render block, so position changes take effect at block
// boundaries.
//
// A side that reaches the end of its stream contributes silence until
// the other side ends too; only then does the mixer report io.EOF.
type XfadeMixer struct {
	a, b Source

	position    float64
	transform   float64
	calibration float64
	curve       float64
	reverse     bool

	aDone, bDone bool
	tmpA, tmpB   []float32
}

// NewXfadeMixer creates a mixer over two sources with matching sample
// rate and channel count. The crossfader starts at the center position
// with the default transform and the constant-power curve.
func NewXfadeMixer(a, b Source) (*XfadeMixer, error) {
	if a.SampleRate() != b.SampleRate() {
		return nil, ErrSampleRateMismatch
	}
	if a.Channels() != b.Channels() {
		return nil, ErrChannelMismatch
	}

	return &XfadeMixer{
		a:           a,
		b:           b,
		transform:   TransformDefault,
		calibration: PowerCalibration(TransformDefault),
		curve:       CurveConstantPower,
	}, nil
}

func (m *XfadeMixer) SampleRate() int { return m.a.SampleRate() }
func (m *XfadeMixer) Channels() int   { return m.a.Channels() }

func (m *XfadeMixer) BufSize() int {
	if m.a.BufSize() > m.b.BufSize() {
		return m.a.BufSize()
	}
	return m.b.BufSize()
}

func (m *XfadeMixer) Close() error {
	errA := m.a.Close()
	errB := m.b.Close()
	if errA != nil {
		return fmt.Errorf("%w", errA)
	}
	if errB != nil {
		return fmt.Errorf("%w", errB)
	}
	return nil
}

// SetPosition moves the crossfader: -1 is full A, +1 full B.
// Out-of-range values are clamped.
func (m *XfadeMixer) SetPosition(position float64) {
	if position < -1 {
		position = -1
	} else if position > 1 {
		position = 1
	}
	m.position = position
}

func (m *XfadeMixer) Position() float64 { return m.position }

// SetTransform changes the curve shape and recomputes the power
// calibration, so the per-block gain computation stays cheap.
func (m *XfadeMixer) SetTransform(transform float64) {
	m.transform = clampTransform(transform)
	m.calibration = PowerCalibration(m.transform)
}

// SetCurve blends between CurveAdditive (0) and CurveConstantPower (1).
func (m *XfadeMixer) SetCurve(curve float64) {
	if curve < 0 {
		curve = 0
	} else if curve > 1 {
		curve = 1
	}
	m.curve = curve
}

// SetReverse swaps which input is hot at which end of the travel
// ("hamster style" in DJ terms).
func (m *XfadeMixer) SetReverse(reverse bool) {
	m.reverse = reverse
}

// Gains returns the gain pair currently applied to the two inputs.
func (m *XfadeMixer) Gains() (gainA, gainB float64) {
	return XfadeGains(m.position, m.transform, m.calibration, m.curve, m.reverse)
}

// ReadSamples renders one block of the mix into dst. dst length must be
// a multiple of the channel count.
func (m *XfadeMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%m.Channels() != 0 {
		return 0, ErrInvalidDstSize
	}
	if m.aDone && m.bDone {
		return 0, io.EOF
	}

	if cap(m.tmpA) < len(dst) {
		m.tmpA = make([]float32, len(dst))
		m.tmpB = make([]float32, len(dst))
	}
	tmpA := m.tmpA[:len(dst)]
	tmpB := m.tmpB[:len(dst)]

	nA, err := m.readSide(m.a, tmpA, &m.aDone)
	if err != nil {
		return 0, err
	}
	nB, err := m.readSide(m.b, tmpB, &m.bDone)
	if err != nil {
		return 0, err
	}

	n := nA
	if nB > n {
		n = nB
	}
	if n == 0 {
		return 0, io.EOF
	}

	// The side that delivered less contributes silence for the rest of
	// the block.
	for i := nA; i < n; i++ {
		tmpA[i] = 0
	}
	for i := nB; i < n; i++ {
		tmpB[i] = 0
	}

	gainA, gainB := m.Gains()
	gA := float32(gainA)
	gB := float32(gainB)
	for i := 0; i < n; i++ {
		dst[i] = gA*tmpA[i] + gB*tmpB[i]
	}

	return n, nil
}

// readSide fills dst from one input, tolerating short reads, until the
// block is full or the input ends.
func (m *XfadeMixer) readSide(src Source, dst []float32, done *bool) (int, error) {
	if *done {
		return 0, nil
	}

	total := 0
	for total < len(dst) {
		n, err := src.ReadSamples(dst[total:])
		total += n
		if err == io.EOF {
			*done = true
			break
		}
		if err != nil {
			return total, fmt.Errorf("%w", err)
		}
		if n == 0 {
			break
		}
	}
	return total, nil
}
