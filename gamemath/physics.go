package gamemath

import "math"

// wrapEpsilon absorbs float drift when a value lands one period away.
const wrapEpsilon = 1e-9

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// JumpVelocity adds the jump impulse to vy, never returning less than half
// the impulse.
func JumpVelocity(vy, jump float64) float64 {
	return math.Max(vy+jump, jump/2)
}

// RotateTowards moves current toward target by at most maxDelta.
func RotateTowards(current, target, maxDelta float64) float64 {
	if maxDelta <= 0 {
		return current
	}
	diff := target - current
	if math.Abs(diff) <= maxDelta {
		return target
	}
	return current + math.Copysign(maxDelta, diff)
}

// Wrap folds x into [origin, origin+period).
func Wrap(x, origin, period float64) float64 {
	if period <= 0 {
		return x
	}
	d := math.Mod(x-origin, period)
	if d < 0 {
		d += period
	}
	if period-d < wrapEpsilon {
		d = 0
	}
	return origin + d
}

// Oscillate returns origin + amplitude*sin(2π·t/period). A non-positive
// period holds the origin.
func Oscillate(origin, amplitude, period, t float64) float64 {
	if period <= 0 {
		return origin
	}
	return origin + amplitude*math.Sin(2*math.Pi*t/period)
}
