package vecmath

import "fmt"

// Matrix is a row-major 4x4 single-precision matrix. Vectors multiply on
// the left as row vectors, so rows 1-3 of the upper 3x3 block carry the
// basis/rotation+scale and row 4 (M41..M43) carries the translation.
type Matrix struct {
	M11, M12, M13, M14 float32
	M21, M22, M23, M24 float32
	M31, M32, M33, M34 float32
	M41, M42, M43, M44 float32
}

// NewMatrix returns the matrix with the sixteen elements given in row-major
// order.
func NewMatrix(
	m11, m12, m13, m14,
	m21, m22, m23, m24,
	m31, m32, m33, m34,
	m41, m42, m43, m44 float32,
) Matrix {
	return Matrix{
		m11, m12, m13, m14,
		m21, m22, m23, m24,
		m31, m32, m33, m34,
		m41, m42, m43, m44,
	}
}

// MatrixIdentity returns the identity matrix.
func MatrixIdentity() Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Backward returns the third basis row.
func (m Matrix) Backward() Vector3 {
	return Vector3{m.M31, m.M32, m.M33}
}

// SetBackward stores v into the third basis row.
func (m *Matrix) SetBackward(v Vector3) {
	m.M31, m.M32, m.M33 = v.X, v.Y, v.Z
}

// Forward returns the negated third basis row.
func (m Matrix) Forward() Vector3 {
	return m.Backward().Neg()
}

// SetForward stores -v into the third basis row, so Forward round-trips.
func (m *Matrix) SetForward(v Vector3) {
	m.SetBackward(v.Neg())
}

// Up returns the second basis row.
func (m Matrix) Up() Vector3 {
	return Vector3{m.M21, m.M22, m.M23}
}

// SetUp stores v into the second basis row.
func (m *Matrix) SetUp(v Vector3) {
	m.M21, m.M22, m.M23 = v.X, v.Y, v.Z
}

// Down returns the negated second basis row.
func (m Matrix) Down() Vector3 {
	return m.Up().Neg()
}

// SetDown stores -v into the second basis row, so Down round-trips.
func (m *Matrix) SetDown(v Vector3) {
	m.SetUp(v.Neg())
}

// Right returns the first basis row.
func (m Matrix) Right() Vector3 {
	return Vector3{m.M11, m.M12, m.M13}
}

// SetRight stores v into the first basis row.
func (m *Matrix) SetRight(v Vector3) {
	m.M11, m.M12, m.M13 = v.X, v.Y, v.Z
}

// Left returns the negated first basis row.
func (m Matrix) Left() Vector3 {
	return m.Right().Neg()
}

// SetLeft stores -v into the first basis row, so Left round-trips.
func (m *Matrix) SetLeft(v Vector3) {
	m.SetRight(v.Neg())
}

// Translation returns the translation row (M41, M42, M43).
func (m Matrix) Translation() Vector3 {
	return Vector3{m.M41, m.M42, m.M43}
}

// SetTranslation stores v into the translation row.
func (m *Matrix) SetTranslation(v Vector3) {
	m.M41, m.M42, m.M43 = v.X, v.Y, v.Z
}

// Add returns the component-wise sum of m and other.
func (m Matrix) Add(other Matrix) Matrix {
	return Matrix{
		m.M11 + other.M11, m.M12 + other.M12, m.M13 + other.M13, m.M14 + other.M14,
		m.M21 + other.M21, m.M22 + other.M22, m.M23 + other.M23, m.M24 + other.M24,
		m.M31 + other.M31, m.M32 + other.M32, m.M33 + other.M33, m.M34 + other.M34,
		m.M41 + other.M41, m.M42 + other.M42, m.M43 + other.M43, m.M44 + other.M44,
	}
}

// Sub returns the component-wise difference of m and other.
func (m Matrix) Sub(other Matrix) Matrix {
	return Matrix{
		m.M11 - other.M11, m.M12 - other.M12, m.M13 - other.M13, m.M14 - other.M14,
		m.M21 - other.M21, m.M22 - other.M22, m.M23 - other.M23, m.M24 - other.M24,
		m.M31 - other.M31, m.M32 - other.M32, m.M33 - other.M33, m.M34 - other.M34,
		m.M41 - other.M41, m.M42 - other.M42, m.M43 - other.M43, m.M44 - other.M44,
	}
}

// Mul returns the matrix product m * other. The product is not commutative.
func (m Matrix) Mul(other Matrix) Matrix {
	return Matrix{
		m.M11*other.M11 + m.M12*other.M21 + m.M13*other.M31 + m.M14*other.M41,
		m.M11*other.M12 + m.M12*other.M22 + m.M13*other.M32 + m.M14*other.M42,
		m.M11*other.M13 + m.M12*other.M23 + m.M13*other.M33 + m.M14*other.M43,
		m.M11*other.M14 + m.M12*other.M24 + m.M13*other.M34 + m.M14*other.M44,

		m.M21*other.M11 + m.M22*other.M21 + m.M23*other.M31 + m.M24*other.M41,
		m.M21*other.M12 + m.M22*other.M22 + m.M23*other.M32 + m.M24*other.M42,
		m.M21*other.M13 + m.M22*other.M23 + m.M23*other.M33 + m.M24*other.M43,
		m.M21*other.M14 + m.M22*other.M24 + m.M23*other.M34 + m.M24*other.M44,

		m.M31*other.M11 + m.M32*other.M21 + m.M33*other.M31 + m.M34*other.M41,
		m.M31*other.M12 + m.M32*other.M22 + m.M33*other.M32 + m.M34*other.M42,
		m.M31*other.M13 + m.M32*other.M23 + m.M33*other.M33 + m.M34*other.M43,
		m.M31*other.M14 + m.M32*other.M24 + m.M33*other.M34 + m.M34*other.M44,

		m.M41*other.M11 + m.M42*other.M21 + m.M43*other.M31 + m.M44*other.M41,
		m.M41*other.M12 + m.M42*other.M22 + m.M43*other.M32 + m.M44*other.M42,
		m.M41*other.M13 + m.M42*other.M23 + m.M43*other.M33 + m.M44*other.M43,
		m.M41*other.M14 + m.M42*other.M24 + m.M43*other.M34 + m.M44*other.M44,
	}
}

// MulScalar returns m with every element scaled by scalar.
func (m Matrix) MulScalar(scalar float32) Matrix {
	return Matrix{
		m.M11 * scalar, m.M12 * scalar, m.M13 * scalar, m.M14 * scalar,
		m.M21 * scalar, m.M22 * scalar, m.M23 * scalar, m.M24 * scalar,
		m.M31 * scalar, m.M32 * scalar, m.M33 * scalar, m.M34 * scalar,
		m.M41 * scalar, m.M42 * scalar, m.M43 * scalar, m.M44 * scalar,
	}
}

// Div returns the component-wise quotient of m and other.
func (m Matrix) Div(other Matrix) Matrix {
	return Matrix{
		m.M11 / other.M11, m.M12 / other.M12, m.M13 / other.M13, m.M14 / other.M14,
		m.M21 / other.M21, m.M22 / other.M22, m.M23 / other.M23, m.M24 / other.M24,
		m.M31 / other.M31, m.M32 / other.M32, m.M33 / other.M33, m.M34 / other.M34,
		m.M41 / other.M41, m.M42 / other.M42, m.M43 / other.M43, m.M44 / other.M44,
	}
}

// DivScalar returns m with every element divided by scalar.
func (m Matrix) DivScalar(scalar float32) Matrix {
	return m.MulScalar(1 / scalar)
}

// Neg returns m with every element negated.
func (m Matrix) Neg() Matrix {
	return m.MulScalar(-1)
}

// Equals reports exact element-wise equality.
func (m Matrix) Equals(other Matrix) bool {
	return m == other
}

// Compare reports whether every element of m is within tolerance of the
// corresponding element of other.
func (m Matrix) Compare(other Matrix, tolerance float32) bool {
	return absf(m.M11-other.M11) <= tolerance &&
		absf(m.M12-other.M12) <= tolerance &&
		absf(m.M13-other.M13) <= tolerance &&
		absf(m.M14-other.M14) <= tolerance &&
		absf(m.M21-other.M21) <= tolerance &&
		absf(m.M22-other.M22) <= tolerance &&
		absf(m.M23-other.M23) <= tolerance &&
		absf(m.M24-other.M24) <= tolerance &&
		absf(m.M31-other.M31) <= tolerance &&
		absf(m.M32-other.M32) <= tolerance &&
		absf(m.M33-other.M33) <= tolerance &&
		absf(m.M34-other.M34) <= tolerance &&
		absf(m.M41-other.M41) <= tolerance &&
		absf(m.M42-other.M42) <= tolerance &&
		absf(m.M43-other.M43) <= tolerance &&
		absf(m.M44-other.M44) <= tolerance
}

// Determinant returns the determinant of m, via six precomputed 2x2
// sub-determinants of the top and bottom halves.
func (m Matrix) Determinant() float32 {
	s0 := m.M11*m.M22 - m.M12*m.M21
	s1 := m.M11*m.M23 - m.M13*m.M21
	s2 := m.M11*m.M24 - m.M14*m.M21
	s3 := m.M12*m.M23 - m.M13*m.M22
	s4 := m.M12*m.M24 - m.M14*m.M22
	s5 := m.M13*m.M24 - m.M14*m.M23

	c0 := m.M31*m.M42 - m.M32*m.M41
	c1 := m.M31*m.M43 - m.M33*m.M41
	c2 := m.M31*m.M44 - m.M34*m.M41
	c3 := m.M32*m.M43 - m.M33*m.M42
	c4 := m.M32*m.M44 - m.M34*m.M42
	c5 := m.M33*m.M44 - m.M34*m.M43

	return s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
}

// Invert returns the inverse of m via the classical adjugate. A singular
// matrix divides by a zero determinant and yields non-finite elements; the
// result is not guarded.
func (m Matrix) Invert() Matrix {
	s0 := m.M11*m.M22 - m.M12*m.M21
	s1 := m.M11*m.M23 - m.M13*m.M21
	s2 := m.M11*m.M24 - m.M14*m.M21
	s3 := m.M12*m.M23 - m.M13*m.M22
	s4 := m.M12*m.M24 - m.M14*m.M22
	s5 := m.M13*m.M24 - m.M14*m.M23

	c0 := m.M31*m.M42 - m.M32*m.M41
	c1 := m.M31*m.M43 - m.M33*m.M41
	c2 := m.M31*m.M44 - m.M34*m.M41
	c3 := m.M32*m.M43 - m.M33*m.M42
	c4 := m.M32*m.M44 - m.M34*m.M42
	c5 := m.M33*m.M44 - m.M34*m.M43

	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0

	adj := Matrix{
		m.M22*c5 - m.M23*c4 + m.M24*c3, -m.M12*c5 + m.M13*c4 - m.M14*c3,
		m.M42*s5 - m.M43*s4 + m.M44*s3, -m.M32*s5 + m.M33*s4 - m.M34*s3,

		-m.M21*c5 + m.M23*c2 - m.M24*c1, m.M11*c5 - m.M13*c2 + m.M14*c1,
		-m.M41*s5 + m.M43*s2 - m.M44*s1, m.M31*s5 - m.M33*s2 + m.M34*s1,

		m.M21*c4 - m.M22*c2 + m.M24*c0, -m.M11*c4 + m.M12*c2 - m.M14*c0,
		m.M41*s4 - m.M42*s2 + m.M44*s0, -m.M31*s4 + m.M32*s2 - m.M34*s0,

		-m.M21*c3 + m.M22*c1 - m.M23*c0, m.M11*c3 - m.M12*c1 + m.M13*c0,
		-m.M41*s3 + m.M42*s1 - m.M43*s0, m.M31*s3 - m.M32*s1 + m.M33*s0,
	}

	return adj.MulScalar(1 / det)
}

// Transpose returns m with rows and columns swapped.
func (m Matrix) Transpose() Matrix {
	return Matrix{
		m.M11, m.M21, m.M31, m.M41,
		m.M12, m.M22, m.M32, m.M42,
		m.M13, m.M23, m.M33, m.M43,
		m.M14, m.M24, m.M34, m.M44,
	}
}

// Transform returns m with the given rotation applied on the right:
// m * MatrixCreateFromQuaternion(rotation).
func (m Matrix) Transform(rotation Quaternion) Matrix {
	return m.Mul(MatrixCreateFromQuaternion(rotation))
}

// Decompose splits m into a non-negative per-axis scale, a rotation and a
// translation. It fails (ok == false, rotation left as the identity) when
// any axis scale is exactly zero; negative or mirrored scale and shear are
// not handled.
func (m Matrix) Decompose() (scale Vector3, rotation Quaternion, translation Vector3, ok bool) {
	scaleX := sqrtf(m.M11*m.M11 + m.M12*m.M12 + m.M13*m.M13)
	scaleY := sqrtf(m.M21*m.M21 + m.M22*m.M22 + m.M23*m.M23)
	scaleZ := sqrtf(m.M31*m.M31 + m.M32*m.M32 + m.M33*m.M33)

	if scaleX == 0 || scaleY == 0 || scaleZ == 0 {
		return Vector3{}, QuaternionIdentity(), Vector3{}, false
	}

	rotation = QuaternionCreateFromRotationMatrix(Matrix{
		m.M11 / scaleX, m.M12 / scaleX, m.M13 / scaleX, 0,
		m.M21 / scaleY, m.M22 / scaleY, m.M23 / scaleY, 0,
		m.M31 / scaleZ, m.M32 / scaleZ, m.M33 / scaleZ, 0,
		0, 0, 0, 1,
	})

	return Vector3{scaleX, scaleY, scaleZ}, rotation, Vector3{m.M41, m.M42, m.M43}, true
}

// billboardMinDistanceSq is the squared camera-to-object distance below
// which the billboard constructors substitute a fallback facing direction.
const billboardMinDistanceSq = 0.0001 * 0.0001

// MatrixCreateBillboard returns a world matrix that rotates an object at
// objectPos to face the camera. When the camera is closer than the minimum
// distance, cameraForward (if non-nil) supplies the facing direction.
func MatrixCreateBillboard(objectPos, cameraPos, cameraUp Vector3, cameraForward *Vector3) Matrix {
	camToObj := objectPos.Sub(cameraPos)

	zBasis := camToObj
	if camToObj.LengthSquared() < billboardMinDistanceSq {
		if cameraForward != nil {
			zBasis = cameraForward.Neg()
		} else {
			zBasis = camToObj.Normalize()
		}
	}

	yBasis := cameraUp.Normalize()
	xBasis := yBasis.Cross(zBasis).Normalize()
	zBasis = zBasis.Normalize()

	return Matrix{
		xBasis.X, xBasis.Y, xBasis.Z, 0,
		yBasis.X, yBasis.Y, yBasis.Z, 0,
		zBasis.X, zBasis.Y, zBasis.Z, 0,
		objectPos.X, objectPos.Y, objectPos.Z, 1,
	}
}

// constrainedBillboardParallelThreshold is the |dot| above which the
// rotation axis and the facing direction are considered parallel and a
// fallback facing is substituted.
const constrainedBillboardParallelThreshold = 0.998

// MatrixCreateConstrainedBillboard returns a billboard matrix constrained
// to rotate about rotAxis only. cameraForward substitutes the facing when
// the camera sits on the object; objectForward substitutes it when rotAxis
// and the facing are near parallel. Either pointer may be nil.
func MatrixCreateConstrainedBillboard(objectPos, cameraPos, rotAxis Vector3, cameraForward, objectForward *Vector3) Matrix {
	camToObj := objectPos.Sub(cameraPos)
	if camToObj.LengthSquared() < billboardMinDistanceSq {
		if cameraForward != nil {
			camToObj = cameraForward.Neg()
		} else {
			camToObj = NewVector3Forward()
		}
	}

	yBasis := rotAxis.Normalize()
	zBasis := camToObj
	rotAxisDotZ := absf(rotAxis.Dot(zBasis))

	if rotAxisDotZ > constrainedBillboardParallelThreshold && objectForward != nil {
		zBasis = *objectForward
		rotAxisDotZ = absf(rotAxis.Dot(zBasis))
	}

	if rotAxisDotZ > constrainedBillboardParallelThreshold {
		if absf(rotAxis.Dot(NewVector3Forward())) > constrainedBillboardParallelThreshold {
			zBasis = NewVector3Right()
		} else {
			zBasis = NewVector3Forward()
		}
	}

	xBasis := yBasis.Cross(zBasis).Normalize()
	zBasis = xBasis.Cross(yBasis).Normalize()

	return Matrix{
		xBasis.X, xBasis.Y, xBasis.Z, 0,
		rotAxis.X, rotAxis.Y, rotAxis.Z, 0,
		zBasis.X, zBasis.Y, zBasis.Z, 0,
		objectPos.X, objectPos.Y, objectPos.Z, 1,
	}
}

// MatrixCreateFromAxisAngle returns the rotation of angle radians about the
// given axis, which is assumed to be of unit length.
func MatrixCreateFromAxisAngle(axis Vector3, angle float32) Matrix {
	c := cosf(angle)
	s := sinf(angle)
	inv := 1 - c

	return Matrix{
		axis.X*axis.X*inv + c, axis.X*axis.Y*inv + axis.Z*s, axis.X*axis.Z*inv - axis.Y*s, 0,
		axis.X*axis.Y*inv - axis.Z*s, axis.Y*axis.Y*inv + c, axis.Y*axis.Z*inv + axis.X*s, 0,
		axis.X*axis.Z*inv + axis.Y*s, axis.Y*axis.Z*inv - axis.X*s, axis.Z*axis.Z*inv + c, 0,
		0, 0, 0, 1,
	}
}

// MatrixCreateFromQuaternion returns the rotation matrix equivalent to q,
// which is assumed to be of unit length.
func MatrixCreateFromQuaternion(q Quaternion) Matrix {
	x, y, z, w := q.X, q.Y, q.Z, q.W

	return Matrix{
		1 - 2*y*y - 2*z*z, 2*x*y + 2*z*w, 2*x*z - 2*y*w, 0,
		2*x*y - 2*z*w, 1 - 2*x*x - 2*z*z, 2*y*z + 2*x*w, 0,
		2*x*z + 2*y*w, 2*y*z - 2*x*w, 1 - 2*x*x - 2*y*y, 0,
		0, 0, 0, 1,
	}
}

// MatrixCreateFromYawPitchRoll returns the rotation matrix for yaw about Y,
// pitch about X and roll about Z, composed as yaw * pitch * roll.
func MatrixCreateFromYawPitchRoll(yaw, pitch, roll float32) Matrix {
	return MatrixCreateFromQuaternion(QuaternionCreateFromYawPitchRoll(yaw, pitch, roll))
}

// MatrixCreateLookAt returns a view matrix for a camera at cameraPos looking
// at cameraTarget with the given up vector.
func MatrixCreateLookAt(cameraPos, cameraTarget, cameraUp Vector3) Matrix {
	zBasis := cameraTarget.Sub(cameraPos).Normalize()
	xBasis := cameraUp.Cross(zBasis).Normalize()
	yBasis := zBasis.Cross(xBasis).Normalize()

	tx := -cameraPos.Dot(xBasis)
	ty := -cameraPos.Dot(yBasis)
	tz := -cameraPos.Dot(zBasis)

	return Matrix{
		xBasis.X, xBasis.Y, xBasis.Z, 0,
		yBasis.X, yBasis.Y, yBasis.Z, 0,
		zBasis.X, zBasis.Y, zBasis.Z, 0,
		tx, ty, tz, 1,
	}
}

// MatrixCreateOrthographic returns an orthographic projection matrix for a
// centered view volume of the given width and height. Zero extents divide
// by zero and yield non-finite elements; no validation is performed.
func MatrixCreateOrthographic(width, height, zNear, zFar float32) Matrix {
	return Matrix{
		2 / width, 0, 0, 0,
		0, 2 / height, 0, 0,
		0, 0, 1 / (zNear - zFar), 0,
		0, 0, zNear / (zNear - zFar), 1,
	}
}

// MatrixCreateOrthographicOffCenter returns an orthographic projection
// matrix for an arbitrary view volume.
func MatrixCreateOrthographicOffCenter(left, right, bottom, top, zNear, zFar float32) Matrix {
	return Matrix{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, 1 / (zNear - zFar), 0,
		(left + right) / (left - right), (top + bottom) / (bottom - top), zNear / (zNear - zFar), 1,
	}
}

func validateClipPlanes(zNear, zFar float32) error {
	if zNear > zFar {
		return fmt.Errorf("zNear (%v) must be less than or equal to zFar (%v)", zNear, zFar)
	}
	if zNear < 0 || zFar < 0 {
		return fmt.Errorf("zNear (%v) and zFar (%v) must be non-negative", zNear, zFar)
	}
	return nil
}

// MatrixCreatePerspective returns a perspective projection matrix for a
// near-plane view volume of the given width and height. It returns an error
// when zNear > zFar or either plane is negative.
func MatrixCreatePerspective(width, height, zNear, zFar float32) (Matrix, error) {
	if err := validateClipPlanes(zNear, zFar); err != nil {
		return Matrix{}, err
	}

	return Matrix{
		2 * zNear / width, 0, 0, 0,
		0, 2 * zNear / height, 0, 0,
		0, 0, zFar / (zNear - zFar), -1,
		0, 0, zNear * zFar / (zNear - zFar), 0,
	}, nil
}

// MatrixCreatePerspectiveFieldOfView returns a perspective projection matrix
// from a vertical field of view and an aspect ratio. fieldOfView must lie
// strictly inside (0, Pi); the clip planes follow the same rules as
// MatrixCreatePerspective.
func MatrixCreatePerspectiveFieldOfView(fieldOfView, aspectRatio, zNear, zFar float32) (Matrix, error) {
	if !(fieldOfView > 0 && fieldOfView < Pi) {
		return Matrix{}, fmt.Errorf("fieldOfView (%v) must be strictly between 0 and Pi radians", fieldOfView)
	}
	if err := validateClipPlanes(zNear, zFar); err != nil {
		return Matrix{}, err
	}

	yScale := cosf(fieldOfView/2) / sinf(fieldOfView/2)
	xScale := yScale / aspectRatio

	return Matrix{
		xScale, 0, 0, 0,
		0, yScale, 0, 0,
		0, 0, zFar / (zNear - zFar), -1,
		0, 0, zNear * zFar / (zNear - zFar), 0,
	}, nil
}

// MatrixCreatePerspectiveOffCenter returns a perspective projection matrix
// for an arbitrary near-plane view volume, validating the clip planes the
// same way as MatrixCreatePerspective.
func MatrixCreatePerspectiveOffCenter(left, right, bottom, top, zNear, zFar float32) (Matrix, error) {
	if err := validateClipPlanes(zNear, zFar); err != nil {
		return Matrix{}, err
	}

	return Matrix{
		2 * zNear / (right - left), 0, 0, 0,
		0, 2 * zNear / (top - bottom), 0, 0,
		(left + right) / (right - left), (top + bottom) / (top - bottom), zFar / (zNear - zFar), -1,
		0, 0, zNear * zFar / (zNear - zFar), 0,
	}, nil
}

// MatrixCreateReflection returns the matrix that mirrors points across the
// given plane, whose normal is assumed to be of unit length.
func MatrixCreateReflection(plane Plane) Matrix {
	a, b, c, d := plane.Normal.X, plane.Normal.Y, plane.Normal.Z, plane.D

	ab := -2 * a * b
	ac := -2 * a * c
	ad := -2 * a * d
	bc := -2 * b * c
	bd := -2 * b * d
	cd := -2 * c * d

	return Matrix{
		-2*a*a + 1, ab, ac, 0,
		ab, -2*b*b + 1, bc, 0,
		ac, bc, -2*c*c + 1, 0,
		ad, bd, cd, 1,
	}
}

// MatrixCreateRotationX returns the rotation of angle radians about the X
// axis.
func MatrixCreateRotationX(angle float32) Matrix {
	return MatrixCreateFromAxisAngle(NewVector3Right(), angle)
}

// MatrixCreateRotationY returns the rotation of angle radians about the Y
// axis.
func MatrixCreateRotationY(angle float32) Matrix {
	return MatrixCreateFromAxisAngle(NewVector3Up(), angle)
}

// MatrixCreateRotationZ returns the rotation of angle radians about the Z
// axis.
func MatrixCreateRotationZ(angle float32) Matrix {
	return MatrixCreateFromAxisAngle(NewVector3Backward(), angle)
}

// MatrixCreateScale returns a uniform scale matrix.
func MatrixCreateScale(scale float32) Matrix {
	return MatrixCreateScaleXYZ(scale, scale, scale)
}

// MatrixCreateScaleXYZ returns a per-axis scale matrix.
func MatrixCreateScaleXYZ(scaleX, scaleY, scaleZ float32) Matrix {
	return Matrix{
		scaleX, 0, 0, 0,
		0, scaleY, 0, 0,
		0, 0, scaleZ, 0,
		0, 0, 0, 1,
	}
}

// MatrixCreateScaleVector returns the per-axis scale matrix for scale.
func MatrixCreateScaleVector(scale Vector3) Matrix {
	return MatrixCreateScaleXYZ(scale.X, scale.Y, scale.Z)
}

// MatrixCreateShadow returns the matrix that flattens geometry onto the
// given plane, as lit from the direction lightDir.
func MatrixCreateShadow(lightDir Vector3, plane Plane) Matrix {
	l := lightDir.Neg()
	n := plane.Normal
	d := plane.D
	s := -l.Dot(n)

	return Matrix{
		n.X*l.X + s, n.X * l.Y, n.X * l.Z, 0,
		n.Y * l.X, n.Y*l.Y + s, n.Y * l.Z, 0,
		n.Z * l.X, n.Z * l.Y, n.Z*l.Z + s, 0,
		d * l.X, d * l.Y, d * l.Z, s,
	}
}

// MatrixCreateTranslation returns a translation matrix.
func MatrixCreateTranslation(x, y, z float32) Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// MatrixCreateTranslationVector returns the translation matrix for v.
func MatrixCreateTranslationVector(v Vector3) Matrix {
	return MatrixCreateTranslation(v.X, v.Y, v.Z)
}

// MatrixCreateWorld returns a world matrix positioned at pos and oriented
// along the given forward and up directions.
func MatrixCreateWorld(pos, forward, up Vector3) Matrix {
	fwd := forward.Normalize()
	u := up.Normalize()
	right := fwd.Cross(u).Normalize()

	return Matrix{
		right.X, right.Y, right.Z, 0,
		u.X, u.Y, u.Z, 0,
		-fwd.X, -fwd.Y, -fwd.Z, 0,
		pos.X, pos.Y, pos.Z, 1,
	}
}

// MatrixLerp linearly interpolates every element between from and to. t is
// not clamped.
func MatrixLerp(from, to Matrix, t float32) Matrix {
	return Matrix{
		Lerp(from.M11, to.M11, t), Lerp(from.M12, to.M12, t), Lerp(from.M13, to.M13, t), Lerp(from.M14, to.M14, t),
		Lerp(from.M21, to.M21, t), Lerp(from.M22, to.M22, t), Lerp(from.M23, to.M23, t), Lerp(from.M24, to.M24, t),
		Lerp(from.M31, to.M31, t), Lerp(from.M32, to.M32, t), Lerp(from.M33, to.M33, t), Lerp(from.M34, to.M34, t),
		Lerp(from.M41, to.M41, t), Lerp(from.M42, to.M42, t), Lerp(from.M43, to.M43, t), Lerp(from.M44, to.M44, t),
	}
}
