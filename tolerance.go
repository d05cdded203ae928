package pathgeom

import "math"

// Epsilon is the absolute tolerance used by the comparison helpers in this
// file.
const Epsilon = 1e-6

// IsVerySmall reports whether |v| < [Epsilon].
func IsVerySmall(v float64) bool {
	return math.Abs(v) < Epsilon
}

// AreClose reports whether a and b are equal or differ by less than [Epsilon].
func AreClose(a, b float64) bool {
	if a == b {
		return true
	}
	return IsVerySmall(a - b)
}

// GreaterThan reports whether a is greater than b and not close to it.
func GreaterThan(a, b float64) bool {
	return a > b && !AreClose(a, b)
}

// LessThan reports whether a is less than b and not close to it.
func LessThan(a, b float64) bool {
	return a < b && !AreClose(a, b)
}

func GreaterThanOrClose(a, b float64) bool {
	return a > b || AreClose(a, b)
}

func LessThanOrClose(a, b float64) bool {
	return a < b || AreClose(a, b)
}

// SafeDivide returns lhs/rhs, or fallback if rhs is very small.
func SafeDivide(lhs, rhs, fallback float64) float64 {
	if IsVerySmall(rhs) {
		return fallback
	}
	return lhs / rhs
}

// Lerp linearly interpolates between x and y.
func Lerp(x, y, alpha float64) float64 {
	return x*(1-alpha) + y*alpha
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}

// IsFinite reports whether v is neither infinite nor NaN.
func IsFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// ldexp computes mantissa·2^exp without going through a multiplication by a
// power of two that might overflow on its own.
func ldexp(mantissa float64, exp int) float64 {
	return math.Ldexp(mantissa, exp)
}
