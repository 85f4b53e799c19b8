package vecmath

// Quaternion represents a rotation as (axis * sin(angle/2), cos(angle/2)).
// It encodes a rotation only while its length is 1; the library never
// normalizes on the caller's behalf except where documented.
type Quaternion struct {
	X, Y, Z, W float32
}

// NewQuaternion returns the quaternion with the given precalculated
// components: (x, y, z) is the vector part, w the real part.
func NewQuaternion(x, y, z, w float32) Quaternion {
	return Quaternion{x, y, z, w}
}

// NewQuaternionFromVector3 returns the quaternion with vector part xyz and
// real part w.
func NewQuaternionFromVector3(xyz Vector3, w float32) Quaternion {
	return Quaternion{xyz.X, xyz.Y, xyz.Z, w}
}

// QuaternionIdentity returns the identity rotation (0, 0, 0, 1).
func QuaternionIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1}
}

// Conjugate returns q with the vector part negated. For unit quaternions
// this is the inverse rotation.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

// Inverse returns conjugate(q) / |q|^2, so that q.Mul(q.Inverse()) is the
// identity for any nonzero q.
func (q Quaternion) Inverse() Quaternion {
	return q.Conjugate().DivScalar(q.LengthSquared())
}

// Dot returns the four-component dot product of q and other.
func (q Quaternion) Dot(other Quaternion) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// LengthSquared returns the squared length of q.
func (q Quaternion) LengthSquared() float32 {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

// Length returns the length of q.
func (q Quaternion) Length() float32 {
	return sqrtf(q.LengthSquared())
}

// Normalize returns a copy of q with length 1. A zero-length input divides
// by zero and yields non-finite components; the result is not guarded.
func (q Quaternion) Normalize() Quaternion {
	return q.DivScalar(q.Length())
}

// Mul returns the Hamilton product q * other. The product is not
// commutative: q.Mul(other) rotates by other first, then by q.
func (q Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{
		q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// Div returns the quaternion quotient q / other, i.e. q * inverse(other).
func (q Quaternion) Div(other Quaternion) Quaternion {
	lenSq := other.LengthSquared()
	return Quaternion{
		(other.W*q.X - other.X*q.W - other.Y*q.Z + other.Z*q.Y) / lenSq,
		(other.W*q.Y + other.X*q.Z - other.Y*q.W - other.Z*q.X) / lenSq,
		(other.W*q.Z - other.X*q.Y + other.Y*q.X - other.Z*q.W) / lenSq,
		(q.W*other.W + q.X*other.X + q.Y*other.Y + q.Z*other.Z) / lenSq,
	}
}

// Add returns the component-wise sum of q and other.
func (q Quaternion) Add(other Quaternion) Quaternion {
	return Quaternion{q.X + other.X, q.Y + other.Y, q.Z + other.Z, q.W + other.W}
}

// Sub returns the component-wise difference of q and other.
func (q Quaternion) Sub(other Quaternion) Quaternion {
	return Quaternion{q.X - other.X, q.Y - other.Y, q.Z - other.Z, q.W - other.W}
}

// MulScalar returns q scaled by scalar.
func (q Quaternion) MulScalar(scalar float32) Quaternion {
	return Quaternion{q.X * scalar, q.Y * scalar, q.Z * scalar, q.W * scalar}
}

// DivScalar returns q divided by scalar.
func (q Quaternion) DivScalar(scalar float32) Quaternion {
	return Quaternion{q.X / scalar, q.Y / scalar, q.Z / scalar, q.W / scalar}
}

// Neg returns q with all four components negated. Note that for unit
// quaternions -q represents the same rotation as q.
func (q Quaternion) Neg() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, -q.W}
}

// Equals reports whether q and other match within the package-level Epsilon.
func (q Quaternion) Equals(other Quaternion) bool {
	return q.Compare(other, Epsilon)
}

// Compare reports whether every component of q is within tolerance of the
// corresponding component of other.
func (q Quaternion) Compare(other Quaternion, tolerance float32) bool {
	return absf(q.X-other.X) <= tolerance &&
		absf(q.Y-other.Y) <= tolerance &&
		absf(q.Z-other.Z) <= tolerance &&
		absf(q.W-other.W) <= tolerance
}

// QuaternionConcatenate combines two rotations so that first is applied
// before second; the result is second * first.
func QuaternionConcatenate(first, second Quaternion) Quaternion {
	return second.Mul(first)
}

// QuaternionCreateFromAxisAngle returns the rotation of angle radians about
// the given axis, which is assumed to be of unit length.
func QuaternionCreateFromAxisAngle(axis Vector3, angle float32) Quaternion {
	s := sinf(angle / 2)
	return NewQuaternionFromVector3(axis.MulScalar(s), cosf(angle/2))
}

// QuaternionCreateFromRotationMatrix converts the rotation block of mat into
// a quaternion. The extraction branches on the dominant diagonal term so it
// stays well-conditioned for rotations near 180 degrees.
func QuaternionCreateFromRotationMatrix(mat Matrix) Quaternion {
	trace := mat.M11 + mat.M22 + mat.M33

	switch {
	case trace > 0:
		s := sqrtf(trace+1) * 2
		return Quaternion{
			(mat.M23 - mat.M32) / s,
			(mat.M31 - mat.M13) / s,
			(mat.M12 - mat.M21) / s,
			s / 4,
		}
	case mat.M11 >= mat.M22 && mat.M11 >= mat.M33:
		s := sqrtf(1+mat.M11-mat.M22-mat.M33) * 2
		return Quaternion{
			s / 4,
			(mat.M12 + mat.M21) / s,
			(mat.M13 + mat.M31) / s,
			(mat.M23 - mat.M32) / s,
		}
	case mat.M22 >= mat.M33:
		s := sqrtf(1+mat.M22-mat.M11-mat.M33) * 2
		return Quaternion{
			(mat.M12 + mat.M21) / s,
			s / 4,
			(mat.M23 + mat.M32) / s,
			(mat.M31 - mat.M13) / s,
		}
	default:
		s := sqrtf(1+mat.M33-mat.M11-mat.M22) * 2
		return Quaternion{
			(mat.M13 + mat.M31) / s,
			(mat.M23 + mat.M32) / s,
			s / 4,
			(mat.M12 - mat.M21) / s,
		}
	}
}

// QuaternionCreateFromYawPitchRoll returns the rotation composed of yaw
// about Y, pitch about X and roll about Z, multiplied as yaw * pitch * roll.
func QuaternionCreateFromYawPitchRoll(yaw, pitch, roll float32) Quaternion {
	qPitch := QuaternionCreateFromAxisAngle(NewVector3Right(), pitch)
	qYaw := QuaternionCreateFromAxisAngle(NewVector3Up(), yaw)
	qRoll := QuaternionCreateFromAxisAngle(NewVector3Backward(), roll)

	return qYaw.Mul(qPitch).Mul(qRoll)
}

// QuaternionLerp linearly interpolates each component between from and to.
// t is not clamped and the result is not renormalized; callers needing a
// unit rotation must normalize it themselves.
func QuaternionLerp(from, to Quaternion, t float32) Quaternion {
	return Quaternion{
		Lerp(from.X, to.X, t),
		Lerp(from.Y, to.Y, t),
		Lerp(from.Z, to.Z, t),
		Lerp(from.W, to.W, t),
	}
}

// slerpLerpThreshold is the dot product above which Slerp falls back to the
// cheaper Lerp: nearly colinear inputs make the exp/ln path degenerate and
// the chord is indistinguishable from the arc.
const slerpLerpThreshold = 0.999

// qln returns the quaternion logarithm: the unit axis scaled by the half
// rotation angle in the vector part, log of the length in the real part.
// The caller guarantees a nonzero vector part.
func qln(q Quaternion) Quaternion {
	length := q.Length()
	theta := acosf(q.W / length)
	v := Vector3{q.X, q.Y, q.Z}
	axis := v.DivScalar(v.Length())
	return NewQuaternionFromVector3(axis.MulScalar(theta), logf(length))
}

// qexp inverts qln. A zero vector part maps to the real axis rather than
// dividing by zero, which makes qpow(q, 0) the identity.
func qexp(q Quaternion) Quaternion {
	v := Vector3{q.X, q.Y, q.Z}
	length := v.Length()
	if length == 0 {
		return Quaternion{0, 0, 0, expf(q.W)}
	}
	unit := NewQuaternionFromVector3(v.DivScalar(length).MulScalar(sinf(length)), cosf(length))
	return unit.MulScalar(expf(q.W))
}

func qpow(q Quaternion, p float32) Quaternion {
	return qexp(qln(q).MulScalar(p))
}

// QuaternionSlerp spherically interpolates between from and to. When the
// two inputs are nearly colinear (dot >= 0.999) it returns exactly
// QuaternionLerp(from, to, t); otherwise it evaluates
// exp(ln(to * inverse(from)) * t) * from.
func QuaternionSlerp(from, to Quaternion, t float32) Quaternion {
	if from.Dot(to) >= slerpLerpThreshold {
		return QuaternionLerp(from, to, t)
	}
	return qpow(to.Mul(from.Inverse()), t).Mul(from)
}
