package vecmath

// Vector2 is a 2-component single-precision vector.
type Vector2 struct {
	X, Y float32
}

// NewVector2 returns the vector (x, y).
func NewVector2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// NewVector2Uniform returns a vector with both components set to val.
func NewVector2Uniform(val float32) Vector2 {
	return Vector2{val, val}
}

// NewVector2Zero returns the vector (0, 0).
func NewVector2Zero() Vector2 { return Vector2{} }

// NewVector2One returns the vector (1, 1).
func NewVector2One() Vector2 { return Vector2{1, 1} }

// NewVector2UnitX returns the vector (1, 0).
func NewVector2UnitX() Vector2 { return Vector2{1, 0} }

// NewVector2UnitY returns the vector (0, 1).
func NewVector2UnitY() Vector2 { return Vector2{0, 1} }

// Add returns the component-wise sum of v and other.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{v.X + other.X, v.Y + other.Y}
}

// Sub returns the component-wise difference of v and other.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{v.X - other.X, v.Y - other.Y}
}

// Mul returns the component-wise product of v and other.
func (v Vector2) Mul(other Vector2) Vector2 {
	return Vector2{v.X * other.X, v.Y * other.Y}
}

// MulScalar returns v scaled by scalar.
func (v Vector2) MulScalar(scalar float32) Vector2 {
	return Vector2{v.X * scalar, v.Y * scalar}
}

// Div returns the component-wise quotient of v and other.
func (v Vector2) Div(other Vector2) Vector2 {
	return Vector2{v.X / other.X, v.Y / other.Y}
}

// DivScalar returns v divided by scalar.
func (v Vector2) DivScalar(scalar float32) Vector2 {
	return Vector2{v.X / scalar, v.Y / scalar}
}

// Neg returns v with both components negated.
func (v Vector2) Neg() Vector2 {
	return Vector2{-v.X, -v.Y}
}

// LengthSquared returns the squared Euclidean length of v.
func (v Vector2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the Euclidean length of v.
func (v Vector2) Length() float32 {
	return sqrtf(v.LengthSquared())
}

// Normalize returns a copy of v with length 1. A zero-length input divides
// by zero and yields non-finite components; the result is not guarded.
func (v Vector2) Normalize() Vector2 {
	return v.DivScalar(v.Length())
}

// Dot returns the dot product of v and other.
func (v Vector2) Dot(other Vector2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Distance returns the distance between the points v and other.
func (v Vector2) Distance(other Vector2) float32 {
	return v.Sub(other).Length()
}

// DistanceSquared returns the squared distance between the points v and other.
func (v Vector2) DistanceSquared(other Vector2) float32 {
	return v.Sub(other).LengthSquared()
}

// Equals reports whether v and other match within the package-level Epsilon.
func (v Vector2) Equals(other Vector2) bool {
	return v.Compare(other, Epsilon)
}

// Compare reports whether every component of v is within tolerance of the
// corresponding component of other.
func (v Vector2) Compare(other Vector2, tolerance float32) bool {
	return absf(v.X-other.X) <= tolerance &&
		absf(v.Y-other.Y) <= tolerance
}

// Transform applies the matrix to v as a point: the vector is treated as a
// row vector (x, y, 0, 1), so translation applies.
func (v Vector2) Transform(mat Matrix) Vector2 {
	return Vector2{
		v.X*mat.M11 + v.Y*mat.M21 + mat.M41,
		v.X*mat.M12 + v.Y*mat.M22 + mat.M42,
	}
}

// TransformNormal applies the matrix to v as a direction, omitting the
// translation row.
func (v Vector2) TransformNormal(mat Matrix) Vector2 {
	return Vector2{
		v.X*mat.M11 + v.Y*mat.M21,
		v.X*mat.M12 + v.Y*mat.M22,
	}
}

// TransformQuaternion rotates v by q, computing q * (x, y, 0, 0) * conj(q).
// q is assumed to be of unit length.
func (v Vector2) TransformQuaternion(q Quaternion) Vector2 {
	vq := Quaternion{v.X, v.Y, 0, 0}
	res := q.Mul(vq).Mul(q.Conjugate())
	return Vector2{res.X, res.Y}
}

// Vector2Barycentric interpolates a point over the triangle (p1, p2, p3)
// with barycentric weights b2 and b3, per component.
func Vector2Barycentric(p1, p2, p3 Vector2, b2, b3 float32) Vector2 {
	return Vector2{
		Barycentric(p1.X, p2.X, p3.X, b2, b3),
		Barycentric(p1.Y, p2.Y, p3.Y, b2, b3),
	}
}

// Vector2CatmullRom interpolates between p2 and p3 on the Catmull-Rom spline
// through the four points, per component.
func Vector2CatmullRom(p1, p2, p3, p4 Vector2, t float32) Vector2 {
	return Vector2{
		CatmullRom(p1.X, p2.X, p3.X, p4.X, t),
		CatmullRom(p1.Y, p2.Y, p3.Y, p4.Y, t),
	}
}

// Vector2Clamp limits each component of point to the range given by min and
// max.
func Vector2Clamp(point, min, max Vector2) Vector2 {
	return Vector2{
		Clamp(point.X, min.X, max.X),
		Clamp(point.Y, min.Y, max.Y),
	}
}

// Vector2Hermite interpolates between p1 and p2 on the cubic Hermite spline
// with endpoint tangents t1 and t2, per component.
func Vector2Hermite(p1, t1, p2, t2 Vector2, w float32) Vector2 {
	return Vector2{
		Hermite(p1.X, t1.X, p2.X, t2.X, w),
		Hermite(p1.Y, t1.Y, p2.Y, t2.Y, w),
	}
}

// Vector2Lerp linearly interpolates between v1 and v2. t is not clamped.
func Vector2Lerp(v1, v2 Vector2, t float32) Vector2 {
	return Vector2{
		Lerp(v1.X, v2.X, t),
		Lerp(v1.Y, v2.Y, t),
	}
}

// Vector2Max returns the component-wise maximum of v1 and v2.
func Vector2Max(v1, v2 Vector2) Vector2 {
	return Vector2{Max(v1.X, v2.X), Max(v1.Y, v2.Y)}
}

// Vector2Min returns the component-wise minimum of v1 and v2.
func Vector2Min(v1, v2 Vector2) Vector2 {
	return Vector2{Min(v1.X, v2.X), Min(v1.Y, v2.Y)}
}

// Vector2Reflect mirrors vec about the given normal, which is assumed to be
// of unit length.
func Vector2Reflect(vec, normal Vector2) Vector2 {
	projection := normal.MulScalar(vec.Dot(normal))
	perp := projection.Sub(vec)
	return vec.Add(perp.MulScalar(2))
}

// Vector2SmoothStep interpolates between v1 and v2 with the cubic ease,
// clamping t to [0, 1], per component.
func Vector2SmoothStep(v1, v2 Vector2, t float32) Vector2 {
	return Vector2{
		SmoothStep(v1.X, v2.X, t),
		SmoothStep(v1.Y, v2.Y, t),
	}
}
