// SPDX-License-Identifier: EPL-2.0

package audio

import "math"

// Crossfader curve blend endpoints. The curve parameter of XfadeGains
// mixes linearly between these two curve families.
const (
	// CurveAdditive selects the purely additive (linear ramp) curve.
	CurveAdditive = 0.0
	// CurveConstantPower selects the equal-power curve that keeps
	// gainA^2+gainB^2 constant across the fade.
	CurveConstantPower = 1.0
)

// Crossfader transform bounds. The transform parameter shapes how wide
// the full-gain plateau of each channel is: at TransformMin the gain
// starts rolling off immediately, at TransformMax a channel stays near
// full gain until the very end of its travel.
const (
	TransformDefault = 1.0
	TransformMin     = 0.6
	TransformMax     = 1000.0
)

// XfaderConfigKey names the persisted configuration group for the
// crossfader transform preference. Persistence itself is up to the
// application.
const XfaderConfigKey = "[Mixer Profile]"

// PowerCalibration returns the gain scale applied to the constant-power
// curve for the given transform. It is chosen so that at the center
// position the calibrated constant-power gain equals the additive gain,
// keeping loudness continuous when blending between the two curves.
//
// The result grows monotonically from about 0.44 at TransformMin
// towards sqrt(2) at TransformMax.
func PowerCalibration(transform float64) float64 {
	transform = clampTransform(transform)
	return math.Sqrt2 * math.Pow(0.5, 1.0/transform)
}

// XfadeGains computes the gain pair applied to the two mixer inputs for
// the given crossfader position in [-1, 1], where -1 is full A, +1 is
// full B and 0 the center. Out-of-range position, transform and curve
// values are clamped, never rejected: the function is total and safe to
// call from the audio render path (no allocation, no branching on
// external state).
//
// calibration must be the value of PowerCalibration(transform); it is
// passed in explicitly so the power can be computed once per transform
// change instead of once per render block.
//
// curve in [0, 1] blends the additive pair into the constant-power pair
// (CurveAdditive and CurveConstantPower are the endpoints). reverse
// swaps which input is hot at which end of the travel.
//
// At the extremes the cold channel is exactly 0 for both curve
// families and every transform: the additive hot gain is exactly 1, the
// constant-power hot gain is exactly the calibration factor.
func XfadeGains(position, transform, calibration, curve float64, reverse bool) (gainA, gainB float64) {
	if position < -1 {
		position = -1
	} else if position > 1 {
		position = 1
	}
	if reverse {
		position = -position
	}
	if curve < 0 {
		curve = 0
	} else if curve > 1 {
		curve = 1
	}

	// Exact isolation at the endpoints, independent of curve shape.
	if position == -1 {
		return blend(1, 0, calibration, 0, curve)
	}
	if position == 1 {
		return blend(0, 1, 0, calibration, curve)
	}

	transform = clampTransform(transform)

	exp := 1.0 / transform
	u := (position + 1) / 2

	// Additive: symmetric power-of-position ramps. transform = 1 is the
	// plain linear crossfade; larger transforms widen the full-gain
	// plateau of each channel.
	addA := math.Pow(1-u, exp)
	addB := math.Pow(u, exp)

	// Constant power: quarter circle cos/sin pair over a warped
	// position. The warp is symmetric around the center, so
	// cpA^2+cpB^2 == calibration^2 holds for every position.
	warp := 0.5 * (1 + sym(position, exp))
	theta := warp * math.Pi / 2
	cpA := calibration * math.Cos(theta)
	cpB := calibration * math.Sin(theta)

	return blend(addA, addB, cpA, cpB, curve)
}

// sym computes sign(x)*|x|^exp, the odd extension of the power ramp.
func sym(x, exp float64) float64 {
	if x < 0 {
		return -math.Pow(-x, exp)
	}
	return math.Pow(x, exp)
}

func blend(addA, addB, cpA, cpB, curve float64) (float64, float64) {
	return addA*(1-curve) + cpA*curve, addB*(1-curve) + cpB*curve
}

func clampTransform(transform float64) float64 {
	if transform < TransformMin {
		return TransformMin
	}
	if transform > TransformMax {
		return TransformMax
	}
	return transform
}
