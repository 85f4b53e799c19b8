package vecmath

import "testing"

func TestQuaternionIdentity(t *testing.T) {
	id := QuaternionIdentity()
	q := QuaternionCreateFromAxisAngle(NewVector3(1, 2, 3).Normalize(), 0.9)

	if got := q.Mul(id); !got.Compare(q, 1e-7) {
		t.Fatalf("q*id: got=%v, want %v", got, q)
	}
	if got := id.Mul(q); !got.Compare(q, 1e-7) {
		t.Fatalf("id*q: got=%v, want %v", got, q)
	}
}

func TestQuaternionMulInverse(t *testing.T) {
	q := QuaternionCreateFromAxisAngle(NewVector3(2, -1, 0.5).Normalize(), 1.3)
	got := q.Mul(q.Inverse())
	if !got.Compare(QuaternionIdentity(), 1e-6) {
		t.Fatalf("got=%v, want identity", got)
	}
}

func TestQuaternionConjugateInvertsRotation(t *testing.T) {
	q := QuaternionCreateFromAxisAngle(NewVector3UnitY(), 0.8)
	v := NewVector3(1, 2, 3)

	roundTrip := v.TransformQuaternion(q).TransformQuaternion(q.Conjugate())
	if !roundTrip.Compare(v, 1e-5) {
		t.Fatalf("got=%v, want %v", roundTrip, v)
	}
}

func TestQuaternionNormalize(t *testing.T) {
	q := NewQuaternion(1, 2, 3, 4).Normalize()
	if !EqualWithin(q.Length(), 1, 1e-6) {
		t.Fatalf("length: got=%v, want 1", q.Length())
	}
}

func TestQuaternionDivIsMulByInverse(t *testing.T) {
	a := QuaternionCreateFromAxisAngle(NewVector3UnitX(), 0.4)
	b := QuaternionCreateFromAxisAngle(NewVector3UnitY(), 1.1)

	got := a.Div(b)
	want := a.Mul(b.Inverse())
	if !got.Compare(want, 1e-6) {
		t.Fatalf("got=%v, want %v", got, want)
	}
}

func TestQuaternionAxisAngleRotation(t *testing.T) {
	// Quarter turn about +Y carries +X onto -Z.
	q := QuaternionCreateFromAxisAngle(NewVector3UnitY(), PiOver2)
	got := NewVector3UnitX().TransformQuaternion(q)
	if !got.Compare(Vector3{0, 0, -1}, 1e-6) {
		t.Fatalf("got=%v, want {0 0 -1}", got)
	}
}

func TestQuaternionConcatenateOrder(t *testing.T) {
	first := QuaternionCreateFromAxisAngle(NewVector3UnitY(), PiOver2)
	second := QuaternionCreateFromAxisAngle(NewVector3UnitX(), PiOver2)
	combined := QuaternionConcatenate(first, second)

	v := NewVector3UnitX()
	want := v.TransformQuaternion(first).TransformQuaternion(second)
	got := v.TransformQuaternion(combined)
	if !got.Compare(want, 1e-5) {
		t.Fatalf("got=%v, want %v", got, want)
	}
}

func TestQuaternionYawPitchRoll(t *testing.T) {
	// Yaw alone is a rotation about +Y.
	got := QuaternionCreateFromYawPitchRoll(0.6, 0, 0)
	want := QuaternionCreateFromAxisAngle(NewVector3UnitY(), 0.6)
	if !got.Compare(want, 1e-6) {
		t.Fatalf("yaw: got=%v, want %v", got, want)
	}

	// Composite order is yaw * pitch * roll.
	yaw := QuaternionCreateFromAxisAngle(NewVector3Up(), 0.3)
	pitch := QuaternionCreateFromAxisAngle(NewVector3Right(), -0.5)
	roll := QuaternionCreateFromAxisAngle(NewVector3Backward(), 1.2)
	got = QuaternionCreateFromYawPitchRoll(0.3, -0.5, 1.2)
	want = yaw.Mul(pitch).Mul(roll)
	if !got.Compare(want, 1e-6) {
		t.Fatalf("composite: got=%v, want %v", got, want)
	}
}

func TestQuaternionFromRotationMatrixRoundTrip(t *testing.T) {
	cases := []struct {
		axis  Vector3
		angle float32
	}{
		{NewVector3UnitX(), 0.5},
		{NewVector3UnitY(), 2.0},
		{NewVector3UnitZ(), -1.1},
		{NewVector3(1, 2, 3).Normalize(), 0.9},
		// Near 180 degrees the trace goes to -1; the dominant-diagonal
		// branches must stay well-conditioned here.
		{NewVector3UnitX(), Pi - 1e-3},
		{NewVector3(1, 1, 0).Normalize(), Pi - 1e-3},
		{NewVector3(0, 1, 1).Normalize(), Pi - 1e-3},
	}

	for _, c := range cases {
		q := QuaternionCreateFromAxisAngle(c.axis, c.angle)
		got := QuaternionCreateFromRotationMatrix(MatrixCreateFromQuaternion(q))
		// q and -q are the same rotation, so accept either sign.
		if !got.Compare(q, 1e-4) && !got.Neg().Compare(q, 1e-4) {
			t.Fatalf("axis=%v angle=%v: got=%v, want %v", c.axis, c.angle, got, q)
		}
	}
}

func TestQuaternionLerpEndpoints(t *testing.T) {
	from := QuaternionCreateFromAxisAngle(NewVector3UnitY(), 0.2)
	to := QuaternionCreateFromAxisAngle(NewVector3UnitY(), 0.4)

	if got := QuaternionLerp(from, to, 0); got != from {
		t.Fatalf("t=0: got=%v, want %v", got, from)
	}
	if got := QuaternionLerp(from, to, 1); !got.Compare(to, 1e-7) {
		t.Fatalf("t=1: got=%v, want %v", got, to)
	}
}

func TestQuaternionSlerpFallsBackToLerp(t *testing.T) {
	from := QuaternionIdentity()
	to := QuaternionCreateFromAxisAngle(NewVector3UnitY(), 0.01)
	if from.Dot(to) < slerpLerpThreshold {
		t.Fatalf("test inputs must be near colinear")
	}

	got := QuaternionSlerp(from, to, 0.3)
	want := QuaternionLerp(from, to, 0.3)
	if got != want {
		t.Fatalf("got=%v, want exactly %v", got, want)
	}
}

func TestQuaternionSlerpEndpoints(t *testing.T) {
	from := QuaternionCreateFromAxisAngle(NewVector3UnitY(), 0.3)
	to := QuaternionCreateFromAxisAngle(NewVector3UnitY(), 2.3)
	if from.Dot(to) >= slerpLerpThreshold {
		t.Fatalf("test inputs must take the exp/ln path")
	}

	if got := QuaternionSlerp(from, to, 0); got != from {
		t.Fatalf("t=0: got=%v, want exactly %v", got, from)
	}
	if got := QuaternionSlerp(from, to, 1); !got.Compare(to, 1e-5) {
		t.Fatalf("t=1: got=%v, want %v", got, to)
	}
}

func TestQuaternionSlerpMidpoint(t *testing.T) {
	from := QuaternionIdentity()
	to := QuaternionCreateFromAxisAngle(NewVector3UnitY(), 2.0)
	if from.Dot(to) >= slerpLerpThreshold {
		t.Fatalf("test inputs must take the exp/ln path")
	}

	got := QuaternionSlerp(from, to, 0.5)
	want := QuaternionCreateFromAxisAngle(NewVector3UnitY(), 1.0)
	if !got.Compare(want, 1e-5) {
		t.Fatalf("got=%v, want %v", got, want)
	}
	if !EqualWithin(got.Length(), 1, 1e-5) {
		t.Fatalf("length: got=%v, want 1", got.Length())
	}
}
