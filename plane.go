package vecmath

// Plane describes the set of points p with Dot(Normal, p) + D == 0. The
// reflection and shadow constructors assume Normal has unit length.
type Plane struct {
	Normal Vector3
	D      float32
}

// NewPlane returns the plane with the given normal and distance from the
// origin.
func NewPlane(normal Vector3, d float32) Plane {
	return Plane{Normal: normal, D: d}
}

// NewPlaneFromComponents returns the plane a*x + b*y + c*z + d = 0.
func NewPlaneFromComponents(a, b, c, d float32) Plane {
	return Plane{Normal: Vector3{a, b, c}, D: d}
}

// Normalize returns the plane scaled so its normal has unit length, keeping
// the same point set. A zero normal divides by zero and yields non-finite
// components; the result is not guarded.
func (p Plane) Normalize() Plane {
	invLen := 1 / p.Normal.Length()
	return Plane{Normal: p.Normal.MulScalar(invLen), D: p.D * invLen}
}

// DotCoordinate returns the signed distance from the point to the plane,
// assuming a unit normal.
func (p Plane) DotCoordinate(point Vector3) float32 {
	return p.Normal.Dot(point) + p.D
}

// DotNormal returns the dot product of the plane normal with the direction.
func (p Plane) DotNormal(dir Vector3) float32 {
	return p.Normal.Dot(dir)
}
