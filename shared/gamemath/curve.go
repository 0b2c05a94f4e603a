package gamemath

import "math"

// Lerp returns the linear blend of a and b at t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Finite returns v, or fallback when v is NaN or infinite.
func Finite(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

// WrapAngle maps any angle in degrees into [0, 360).
func WrapAngle(deg float64) float64 {
	return WrapDistance(deg, 360)
}

// WrapDistance maps d into [0, period). A non-positive period yields 0.
func WrapDistance(d, period float64) float64 {
	if period <= 0 {
		return 0
	}
	m := math.Mod(d, period)
	if m < 0 {
		m += period
	}
	// -tiny + period rounds up to period
	if m >= period {
		m = 0
	}
	return m
}

// ForwardDistance returns the distance travelled going from 'from' to 'to'
// along a loop of the given perimeter, never negative.
func ForwardDistance(from, to, perimeter float64) float64 {
	if to >= from {
		return to - from
	}
	return (perimeter - from) + to
}

// SuperellipseExponent maps roundness in [0,1] to the superellipse exponent.
// 0 gives an ellipse (exponent 2), 1 approaches a rectangle (exponent 20).
func SuperellipseExponent(roundness float64) float64 {
	return Lerp(2.0, 20.0, roundness)
}

// SuperellipseAxis returns sign(v)*|v|^power.
func SuperellipseAxis(v, power float64) float64 {
	if v == 0 {
		return 0
	}
	return math.Copysign(math.Pow(math.Abs(v), power), v)
}

// SuperellipsePoint returns the planar (x, z) point at angle theta (radians)
// for the given power (2/exponent) and radii.
func SuperellipsePoint(theta, power, radiusX, radiusZ float64) (x, z float64) {
	x = SuperellipseAxis(math.Cos(theta), power) * radiusX
	z = SuperellipseAxis(math.Sin(theta), power) * radiusZ
	return x, z
}

// CornerSpeed blends straight and corner speed by |sin(2*theta)|.
func CornerSpeed(theta, straightSpeed, cornerSpeed float64) float64 {
	return Lerp(straightSpeed, cornerSpeed, math.Abs(math.Sin(2*theta)))
}
