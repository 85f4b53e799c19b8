package vecmath

// Vector4 is a 4-component single-precision vector.
type Vector4 struct {
	X, Y, Z, W float32
}

// NewVector4 returns the vector (x, y, z, w).
func NewVector4(x, y, z, w float32) Vector4 {
	return Vector4{x, y, z, w}
}

// NewVector4Uniform returns a vector with all components set to val.
func NewVector4Uniform(val float32) Vector4 {
	return Vector4{val, val, val, val}
}

// NewVector4FromVector2 returns (xy.X, xy.Y, z, w).
func NewVector4FromVector2(xy Vector2, z, w float32) Vector4 {
	return Vector4{xy.X, xy.Y, z, w}
}

// NewVector4FromVector3 returns (xyz.X, xyz.Y, xyz.Z, w).
func NewVector4FromVector3(xyz Vector3, w float32) Vector4 {
	return Vector4{xyz.X, xyz.Y, xyz.Z, w}
}

// NewVector4Zero returns the vector (0, 0, 0, 0).
func NewVector4Zero() Vector4 { return Vector4{} }

// NewVector4One returns the vector (1, 1, 1, 1).
func NewVector4One() Vector4 { return Vector4{1, 1, 1, 1} }

// NewVector4UnitX returns the vector (1, 0, 0, 0).
func NewVector4UnitX() Vector4 { return Vector4{1, 0, 0, 0} }

// NewVector4UnitY returns the vector (0, 1, 0, 0).
func NewVector4UnitY() Vector4 { return Vector4{0, 1, 0, 0} }

// NewVector4UnitZ returns the vector (0, 0, 1, 0).
func NewVector4UnitZ() Vector4 { return Vector4{0, 0, 1, 0} }

// NewVector4UnitW returns the vector (0, 0, 0, 1).
func NewVector4UnitW() Vector4 { return Vector4{0, 0, 0, 1} }

// XYZ returns the first three components as a Vector3, dropping W.
func (v Vector4) XYZ() Vector3 {
	return Vector3{v.X, v.Y, v.Z}
}

// Add returns the component-wise sum of v and other.
func (v Vector4) Add(other Vector4) Vector4 {
	return Vector4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Sub returns the component-wise difference of v and other.
func (v Vector4) Sub(other Vector4) Vector4 {
	return Vector4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Mul returns the component-wise product of v and other.
func (v Vector4) Mul(other Vector4) Vector4 {
	return Vector4{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.W * other.W}
}

// MulScalar returns v scaled by scalar.
func (v Vector4) MulScalar(scalar float32) Vector4 {
	return Vector4{v.X * scalar, v.Y * scalar, v.Z * scalar, v.W * scalar}
}

// Div returns the component-wise quotient of v and other.
func (v Vector4) Div(other Vector4) Vector4 {
	return Vector4{v.X / other.X, v.Y / other.Y, v.Z / other.Z, v.W / other.W}
}

// DivScalar returns v divided by scalar.
func (v Vector4) DivScalar(scalar float32) Vector4 {
	return Vector4{v.X / scalar, v.Y / scalar, v.Z / scalar, v.W / scalar}
}

// Neg returns v with all components negated.
func (v Vector4) Neg() Vector4 {
	return Vector4{-v.X, -v.Y, -v.Z, -v.W}
}

// LengthSquared returns the squared Euclidean length of v.
func (v Vector4) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Length returns the Euclidean length of v.
func (v Vector4) Length() float32 {
	return sqrtf(v.LengthSquared())
}

// Normalize returns a copy of v with length 1. A zero-length input divides
// by zero and yields non-finite components; the result is not guarded.
func (v Vector4) Normalize() Vector4 {
	return v.DivScalar(v.Length())
}

// Dot returns the dot product of v and other.
func (v Vector4) Dot(other Vector4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// Distance returns the distance between the points v and other.
func (v Vector4) Distance(other Vector4) float32 {
	return v.Sub(other).Length()
}

// DistanceSquared returns the squared distance between the points v and other.
func (v Vector4) DistanceSquared(other Vector4) float32 {
	return v.Sub(other).LengthSquared()
}

// Equals reports whether v and other match within the package-level Epsilon.
func (v Vector4) Equals(other Vector4) bool {
	return v.Compare(other, Epsilon)
}

// Compare reports whether every component of v is within tolerance of the
// corresponding component of other.
func (v Vector4) Compare(other Vector4, tolerance float32) bool {
	return absf(v.X-other.X) <= tolerance &&
		absf(v.Y-other.Y) <= tolerance &&
		absf(v.Z-other.Z) <= tolerance &&
		absf(v.W-other.W) <= tolerance
}

// Transform applies the matrix to v as a full row vector, using v's own W.
func (v Vector4) Transform(mat Matrix) Vector4 {
	return Vector4{
		v.X*mat.M11 + v.Y*mat.M21 + v.Z*mat.M31 + v.W*mat.M41,
		v.X*mat.M12 + v.Y*mat.M22 + v.Z*mat.M32 + v.W*mat.M42,
		v.X*mat.M13 + v.Y*mat.M23 + v.Z*mat.M33 + v.W*mat.M43,
		v.X*mat.M14 + v.Y*mat.M24 + v.Z*mat.M34 + v.W*mat.M44,
	}
}

// TransformNormal applies the matrix to v as a direction, omitting the
// translation row. The resulting W is always 0.
func (v Vector4) TransformNormal(mat Matrix) Vector4 {
	return Vector4{
		v.X*mat.M11 + v.Y*mat.M21 + v.Z*mat.M31,
		v.X*mat.M12 + v.Y*mat.M22 + v.Z*mat.M32,
		v.X*mat.M13 + v.Y*mat.M23 + v.Z*mat.M33,
		0,
	}
}

// TransformQuaternion treats v as a raw 4-tuple quaternion and computes
// q * v * inverse(q).
func (v Vector4) TransformQuaternion(q Quaternion) Vector4 {
	vq := Quaternion{v.X, v.Y, v.Z, v.W}
	res := q.Mul(vq).Mul(q.Inverse())
	return Vector4{res.X, res.Y, res.Z, res.W}
}

// Vector4Barycentric interpolates a point over the triangle (p1, p2, p3)
// with barycentric weights b2 and b3, per component.
func Vector4Barycentric(p1, p2, p3 Vector4, b2, b3 float32) Vector4 {
	return Vector4{
		Barycentric(p1.X, p2.X, p3.X, b2, b3),
		Barycentric(p1.Y, p2.Y, p3.Y, b2, b3),
		Barycentric(p1.Z, p2.Z, p3.Z, b2, b3),
		Barycentric(p1.W, p2.W, p3.W, b2, b3),
	}
}

// Vector4CatmullRom interpolates between p2 and p3 on the Catmull-Rom spline
// through the four points, per component.
func Vector4CatmullRom(p1, p2, p3, p4 Vector4, t float32) Vector4 {
	return Vector4{
		CatmullRom(p1.X, p2.X, p3.X, p4.X, t),
		CatmullRom(p1.Y, p2.Y, p3.Y, p4.Y, t),
		CatmullRom(p1.Z, p2.Z, p3.Z, p4.Z, t),
		CatmullRom(p1.W, p2.W, p3.W, p4.W, t),
	}
}

// Vector4Clamp limits each component of point to the range given by min and
// max.
func Vector4Clamp(point, min, max Vector4) Vector4 {
	return Vector4{
		Clamp(point.X, min.X, max.X),
		Clamp(point.Y, min.Y, max.Y),
		Clamp(point.Z, min.Z, max.Z),
		Clamp(point.W, min.W, max.W),
	}
}

// Vector4Hermite interpolates between p1 and p2 on the cubic Hermite spline
// with endpoint tangents t1 and t2, per component.
func Vector4Hermite(p1, t1, p2, t2 Vector4, w float32) Vector4 {
	return Vector4{
		Hermite(p1.X, t1.X, p2.X, t2.X, w),
		Hermite(p1.Y, t1.Y, p2.Y, t2.Y, w),
		Hermite(p1.Z, t1.Z, p2.Z, t2.Z, w),
		Hermite(p1.W, t1.W, p2.W, t2.W, w),
	}
}

// Vector4Lerp linearly interpolates between v1 and v2. t is not clamped.
func Vector4Lerp(v1, v2 Vector4, t float32) Vector4 {
	return Vector4{
		Lerp(v1.X, v2.X, t),
		Lerp(v1.Y, v2.Y, t),
		Lerp(v1.Z, v2.Z, t),
		Lerp(v1.W, v2.W, t),
	}
}

// Vector4Max returns the component-wise maximum of v1 and v2.
func Vector4Max(v1, v2 Vector4) Vector4 {
	return Vector4{
		Max(v1.X, v2.X),
		Max(v1.Y, v2.Y),
		Max(v1.Z, v2.Z),
		Max(v1.W, v2.W),
	}
}

// Vector4Min returns the component-wise minimum of v1 and v2.
func Vector4Min(v1, v2 Vector4) Vector4 {
	return Vector4{
		Min(v1.X, v2.X),
		Min(v1.Y, v2.Y),
		Min(v1.Z, v2.Z),
		Min(v1.W, v2.W),
	}
}

// Vector4SmoothStep interpolates between v1 and v2 with the cubic ease,
// clamping t to [0, 1], per component.
func Vector4SmoothStep(v1, v2 Vector4, t float32) Vector4 {
	return Vector4{
		SmoothStep(v1.X, v2.X, t),
		SmoothStep(v1.Y, v2.Y, t),
		SmoothStep(v1.Z, v2.Z, t),
		SmoothStep(v1.W, v2.W, t),
	}
}
