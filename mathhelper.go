package vecmath

import (
	m "math"

	"golang.org/x/exp/constraints"
)

// Common constants, truncated to single precision.
const (
	E       float32 = m.E
	Log10E  float32 = m.Log10E
	Log2E   float32 = m.Log2E
	Pi      float32 = m.Pi
	PiOver2 float32 = m.Pi / 2
	PiOver4 float32 = m.Pi / 4
	TwoPi   float32 = 2 * m.Pi
)

// Epsilon is the tolerance used by EqualWithinEpsilon and the Equals
// methods. It is deliberately a package-level variable so callers can tune
// it to their FP-comparison needs; set it once at startup and treat it as
// immutable afterwards, since mutating it is not synchronized. Prefer the
// explicit-tolerance forms (EqualWithin, the Compare methods) where the
// hidden coupling matters.
var Epsilon float32 = 1e-6

// float32 wrappers so the formulas below don't have to spell out the
// float64 round-trips everywhere.
func sinf(x float32) float32  { return float32(m.Sin(float64(x))) }
func cosf(x float32) float32  { return float32(m.Cos(float64(x))) }
func tanf(x float32) float32  { return float32(m.Tan(float64(x))) }
func acosf(x float32) float32 { return float32(m.Acos(float64(x))) }
func sqrtf(x float32) float32 { return float32(m.Sqrt(float64(x))) }
func absf(x float32) float32  { return float32(m.Abs(float64(x))) }
func logf(x float32) float32  { return float32(m.Log(float64(x))) }
func expf(x float32) float32  { return float32(m.Exp(float64(x))) }
func modf(x, y float32) float32 {
	return float32(m.Mod(float64(x), float64(y)))
}

// Barycentric calculates a coordinate of a point defined by a triangle and
// two barycentric weights. p1, p2 and p3 are the coordinates of the triangle
// points on a given axis; b2 and b3 weight p2 and p3. The weights are
// clamped to [0, 1].
func Barycentric(p1, p2, p3, b2, b3 float32) float32 {
	b2 = Clamp(b2, 0, 1)
	b3 = Clamp(b3, 0, 1)
	return (1-b2-b3)*p1 + b2*p2 + b3*p3
}

// CatmullRom interpolates between p2 (t = 0) and p3 (t = 1) using the
// simplified four-point Catmull-Rom basis. t is not clamped.
func CatmullRom(p1, p2, p3, p4, t float32) float32 {
	threeHalves := 1.5 * t
	oneHalf := t / 2

	c1 := (-0.5 + t*(1-oneHalf)) * p1
	c2 := (1 + t*t*(-2.5+threeHalves)) * p2
	c3 := (0.5 + t*(2-threeHalves)) * p3
	c4 := (-0.5 + oneHalf) * t * p4

	return c2 + t*(c1+c3+c4)
}

// Clamp returns val limited to the range [min, max].
func Clamp[T constraints.Ordered](val, min, max T) T {
	return Max(min, Min(max, val))
}

// Distance returns the absolute difference between two values.
func Distance(val1, val2 float32) float32 {
	return absf(val1 - val2)
}

// EqualWithinEpsilon reports whether two values differ by less than the
// package-level Epsilon.
func EqualWithinEpsilon(val1, val2 float32) bool {
	return EqualWithin(val1, val2, Epsilon)
}

// EqualWithin reports whether two values differ by less than tolerance.
func EqualWithin(val1, val2, tolerance float32) bool {
	return absf(val1-val2) < tolerance
}

// Hermite interpolates between val1 (t = 0) and val2 (t = 1) on the cubic
// Hermite spline with tangents m1 and m2 at the respective endpoints.
func Hermite(val1, m1, val2, m2, t float32) float32 {
	c1 := (1 - t) * (1 - t) * ((1+2*t)*val1 + t*m1)
	c2 := t * t * ((3-2*t)*val2 + (t-1)*m2)
	return c1 + c2
}

// Lerp linearly interpolates between val1 and val2. t is not clamped;
// callers wanting a bounded result must clamp it themselves.
func Lerp(val1, val2, t float32) float32 {
	return val1 + (val2-val1)*t
}

// Max returns the larger of two values.
func Max[T constraints.Ordered](val1, val2 T) T {
	if val1 > val2 {
		return val1
	}
	return val2
}

// Min returns the smaller of two values.
func Min[T constraints.Ordered](val1, val2 T) T {
	if val1 < val2 {
		return val1
	}
	return val2
}

// SmoothStep interpolates between val1 and val2 with the cubic ease
// t*t*(3-2t). Unlike Lerp, t is clamped to [0, 1] first.
func SmoothStep(val1, val2, t float32) float32 {
	t = Clamp(t, 0, 1)
	return Lerp(val1, val2, t*t*(3-2*t))
}

// Sign returns -1 for negative values, 1 for positive values and 0 for 0.
func Sign(val float32) int {
	if val > 0 {
		return 1
	}
	if val == 0 {
		return 0
	}
	return -1
}

// ToDegrees converts radians to degrees.
func ToDegrees(val float32) float32 {
	return val * 180 / Pi
}

// ToRadians converts degrees to radians.
func ToRadians(val float32) float32 {
	return val * Pi / 180
}

// WrapAngle reduces an angle in radians to the interval (-Pi, Pi].
func WrapAngle(val float32) float32 {
	val = modf(val, TwoPi)
	if val <= -Pi {
		val += TwoPi
	} else if val > Pi {
		val -= TwoPi
	}
	return val
}
