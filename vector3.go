package vecmath

// Vector3 is a 3-component single-precision vector.
type Vector3 struct {
	X, Y, Z float32
}

// NewVector3 returns the vector (x, y, z).
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{x, y, z}
}

// NewVector3Uniform returns a vector with all components set to val.
func NewVector3Uniform(val float32) Vector3 {
	return Vector3{val, val, val}
}

// NewVector3FromVector2 returns (xy.X, xy.Y, z).
func NewVector3FromVector2(xy Vector2, z float32) Vector3 {
	return Vector3{xy.X, xy.Y, z}
}

// NewVector3Zero returns the vector (0, 0, 0).
func NewVector3Zero() Vector3 { return Vector3{} }

// NewVector3One returns the vector (1, 1, 1).
func NewVector3One() Vector3 { return Vector3{1, 1, 1} }

// NewVector3UnitX returns the vector (1, 0, 0).
func NewVector3UnitX() Vector3 { return Vector3{1, 0, 0} }

// NewVector3UnitY returns the vector (0, 1, 0).
func NewVector3UnitY() Vector3 { return Vector3{0, 1, 0} }

// NewVector3UnitZ returns the vector (0, 0, 1).
func NewVector3UnitZ() Vector3 { return Vector3{0, 0, 1} }

// Directional constants. The basis looks down negative Z: backward is
// +UnitZ, forward is -UnitZ.

func NewVector3Backward() Vector3 { return Vector3{0, 0, 1} }
func NewVector3Down() Vector3     { return Vector3{0, -1, 0} }
func NewVector3Forward() Vector3  { return Vector3{0, 0, -1} }
func NewVector3Left() Vector3     { return Vector3{-1, 0, 0} }
func NewVector3Right() Vector3    { return Vector3{1, 0, 0} }
func NewVector3Up() Vector3       { return Vector3{0, 1, 0} }

// Add returns the component-wise sum of v and other.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns the component-wise difference of v and other.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Mul returns the component-wise product of v and other.
func (v Vector3) Mul(other Vector3) Vector3 {
	return Vector3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// MulScalar returns v scaled by scalar.
func (v Vector3) MulScalar(scalar float32) Vector3 {
	return Vector3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Div returns the component-wise quotient of v and other.
func (v Vector3) Div(other Vector3) Vector3 {
	return Vector3{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

// DivScalar returns v divided by scalar.
func (v Vector3) DivScalar(scalar float32) Vector3 {
	return Vector3{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// Neg returns v with all components negated.
func (v Vector3) Neg() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

// LengthSquared returns the squared Euclidean length of v.
func (v Vector3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the Euclidean length of v.
func (v Vector3) Length() float32 {
	return sqrtf(v.LengthSquared())
}

// Normalize returns a copy of v with length 1. A zero-length input divides
// by zero and yields non-finite components; the result is not guarded.
func (v Vector3) Normalize() Vector3 {
	return v.DivScalar(v.Length())
}

// Dot returns the dot product of v and other.
func (v Vector3) Dot(other Vector3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of v and other, orthogonal to both.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Distance returns the distance between the points v and other.
func (v Vector3) Distance(other Vector3) float32 {
	return v.Sub(other).Length()
}

// DistanceSquared returns the squared distance between the points v and other.
func (v Vector3) DistanceSquared(other Vector3) float32 {
	return v.Sub(other).LengthSquared()
}

// Equals reports whether v and other match within the package-level Epsilon.
func (v Vector3) Equals(other Vector3) bool {
	return v.Compare(other, Epsilon)
}

// Compare reports whether every component of v is within tolerance of the
// corresponding component of other.
func (v Vector3) Compare(other Vector3, tolerance float32) bool {
	return absf(v.X-other.X) <= tolerance &&
		absf(v.Y-other.Y) <= tolerance &&
		absf(v.Z-other.Z) <= tolerance
}

// Transform applies the matrix to v as a point: the vector is treated as a
// row vector (x, y, z, 1), so translation applies.
func (v Vector3) Transform(mat Matrix) Vector3 {
	return Vector3{
		v.X*mat.M11 + v.Y*mat.M21 + v.Z*mat.M31 + mat.M41,
		v.X*mat.M12 + v.Y*mat.M22 + v.Z*mat.M32 + mat.M42,
		v.X*mat.M13 + v.Y*mat.M23 + v.Z*mat.M33 + mat.M43,
	}
}

// TransformNormal applies the matrix to v as a direction, omitting the
// translation row.
func (v Vector3) TransformNormal(mat Matrix) Vector3 {
	return Vector3{
		v.X*mat.M11 + v.Y*mat.M21 + v.Z*mat.M31,
		v.X*mat.M12 + v.Y*mat.M22 + v.Z*mat.M32,
		v.X*mat.M13 + v.Y*mat.M23 + v.Z*mat.M33,
	}
}

// TransformQuaternion rotates v by q, computing q * (x, y, z, 0) * conj(q).
// q is assumed to be of unit length.
func (v Vector3) TransformQuaternion(q Quaternion) Vector3 {
	vq := Quaternion{v.X, v.Y, v.Z, 0}
	res := q.Mul(vq).Mul(q.Conjugate())
	return Vector3{res.X, res.Y, res.Z}
}

// Vector3Barycentric interpolates a point over the triangle (p1, p2, p3)
// with barycentric weights b2 and b3, per component.
func Vector3Barycentric(p1, p2, p3 Vector3, b2, b3 float32) Vector3 {
	return Vector3{
		Barycentric(p1.X, p2.X, p3.X, b2, b3),
		Barycentric(p1.Y, p2.Y, p3.Y, b2, b3),
		Barycentric(p1.Z, p2.Z, p3.Z, b2, b3),
	}
}

// Vector3CatmullRom interpolates between p2 and p3 on the Catmull-Rom spline
// through the four points, per component.
func Vector3CatmullRom(p1, p2, p3, p4 Vector3, t float32) Vector3 {
	return Vector3{
		CatmullRom(p1.X, p2.X, p3.X, p4.X, t),
		CatmullRom(p1.Y, p2.Y, p3.Y, p4.Y, t),
		CatmullRom(p1.Z, p2.Z, p3.Z, p4.Z, t),
	}
}

// Vector3Clamp limits each component of point to the range given by min and
// max.
func Vector3Clamp(point, min, max Vector3) Vector3 {
	return Vector3{
		Clamp(point.X, min.X, max.X),
		Clamp(point.Y, min.Y, max.Y),
		Clamp(point.Z, min.Z, max.Z),
	}
}

// Vector3Hermite interpolates between p1 and p2 on the cubic Hermite spline
// with endpoint tangents t1 and t2, per component.
func Vector3Hermite(p1, t1, p2, t2 Vector3, w float32) Vector3 {
	return Vector3{
		Hermite(p1.X, t1.X, p2.X, t2.X, w),
		Hermite(p1.Y, t1.Y, p2.Y, t2.Y, w),
		Hermite(p1.Z, t1.Z, p2.Z, t2.Z, w),
	}
}

// Vector3Lerp linearly interpolates between v1 and v2. t is not clamped.
func Vector3Lerp(v1, v2 Vector3, t float32) Vector3 {
	return Vector3{
		Lerp(v1.X, v2.X, t),
		Lerp(v1.Y, v2.Y, t),
		Lerp(v1.Z, v2.Z, t),
	}
}

// Vector3Max returns the component-wise maximum of v1 and v2.
func Vector3Max(v1, v2 Vector3) Vector3 {
	return Vector3{Max(v1.X, v2.X), Max(v1.Y, v2.Y), Max(v1.Z, v2.Z)}
}

// Vector3Min returns the component-wise minimum of v1 and v2.
func Vector3Min(v1, v2 Vector3) Vector3 {
	return Vector3{Min(v1.X, v2.X), Min(v1.Y, v2.Y), Min(v1.Z, v2.Z)}
}

// Vector3Reflect mirrors vec about the given normal, which is assumed to be
// of unit length.
func Vector3Reflect(vec, normal Vector3) Vector3 {
	projection := normal.MulScalar(vec.Dot(normal))
	perp := projection.Sub(vec)
	return vec.Add(perp.MulScalar(2))
}

// Vector3SmoothStep interpolates between v1 and v2 with the cubic ease,
// clamping t to [0, 1], per component.
func Vector3SmoothStep(v1, v2 Vector3, t float32) Vector3 {
	return Vector3{
		SmoothStep(v1.X, v2.X, t),
		SmoothStep(v1.Y, v2.Y, t),
		SmoothStep(v1.Z, v2.Z, t),
	}
}
