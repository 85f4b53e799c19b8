package vecmath

import "testing"

func TestVector2Arithmetic(t *testing.T) {
	a := NewVector2(1, 2)
	b := NewVector2(3, -4)

	if got := a.Add(b); got != (Vector2{4, -2}) {
		t.Fatalf("Add: got=%v, want {4 -2}", got)
	}
	if got := a.Sub(b); got != (Vector2{-2, 6}) {
		t.Fatalf("Sub: got=%v, want {-2 6}", got)
	}
	if got := a.Mul(b); got != (Vector2{3, -8}) {
		t.Fatalf("Mul: got=%v, want {3 -8}", got)
	}
	if got := a.MulScalar(2); got != (Vector2{2, 4}) {
		t.Fatalf("MulScalar: got=%v, want {2 4}", got)
	}
	if got := b.DivScalar(2); got != (Vector2{1.5, -2}) {
		t.Fatalf("DivScalar: got=%v, want {1.5 -2}", got)
	}
	if got := a.Neg(); got != (Vector2{-1, -2}) {
		t.Fatalf("Neg: got=%v, want {-1 -2}", got)
	}
}

func TestVector2DotAndLength(t *testing.T) {
	if got := NewVector2(3, 4).Length(); got != 5 {
		t.Fatalf("Length: got=%v, want 5", got)
	}
	if got := NewVector2(3, 4).LengthSquared(); got != 25 {
		t.Fatalf("LengthSquared: got=%v, want 25", got)
	}
	if got := NewVector2(1, 2).Dot(NewVector2(3, 4)); got != 11 {
		t.Fatalf("Dot: got=%v, want 11", got)
	}
	if got := NewVector2(0, 3).Distance(NewVector2(4, 0)); got != 5 {
		t.Fatalf("Distance: got=%v, want 5", got)
	}
}

func TestVector2UnitConstantDots(t *testing.T) {
	if got := NewVector2UnitX().Dot(NewVector2UnitY()); got != 0 {
		t.Fatalf("UnitX.UnitY: got=%v, want 0", got)
	}
	if got := NewVector2UnitX().Dot(NewVector2UnitX()); got != 1 {
		t.Fatalf("UnitX.UnitX: got=%v, want 1", got)
	}
}

func TestVector2Normalize(t *testing.T) {
	got := NewVector2(10, 0).Normalize()
	if got != (Vector2{1, 0}) {
		t.Fatalf("got=%v, want {1 0}", got)
	}
	if !EqualWithin(NewVector2(3, -7).Normalize().Length(), 1, 1e-6) {
		t.Fatalf("normalized length is not 1")
	}
}

func TestVector2Transform(t *testing.T) {
	translate := MatrixCreateTranslation(5, 6, 7)
	if got := NewVector2(1, 2).Transform(translate); got != (Vector2{6, 8}) {
		t.Fatalf("Transform: got=%v, want {6 8}", got)
	}
	if got := NewVector2(1, 2).TransformNormal(translate); got != (Vector2{1, 2}) {
		t.Fatalf("TransformNormal must ignore translation: got=%v", got)
	}

	scale := MatrixCreateScaleXYZ(2, 3, 4)
	if got := NewVector2(1, 1).Transform(scale); got != (Vector2{2, 3}) {
		t.Fatalf("scale Transform: got=%v, want {2 3}", got)
	}
}

func TestVector2TransformQuaternion(t *testing.T) {
	// Quarter turn about +Z carries +X onto +Y.
	q := QuaternionCreateFromAxisAngle(NewVector3Backward(), PiOver2)
	got := NewVector2UnitX().TransformQuaternion(q)
	if !got.Compare(NewVector2UnitY(), 1e-6) {
		t.Fatalf("got=%v, want {0 1}", got)
	}
}

func TestVector2Reflect(t *testing.T) {
	got := Vector2Reflect(NewVector2(1, -1), NewVector2UnitY())
	if !got.Compare(NewVector2(-1, -1), 1e-6) {
		t.Fatalf("got=%v, want {-1 -1}", got)
	}
}

func TestVector2MinMaxClamp(t *testing.T) {
	a := NewVector2(1, 4)
	b := NewVector2(3, 2)

	if got := Vector2Min(a, b); got != (Vector2{1, 2}) {
		t.Fatalf("Min: got=%v, want {1 2}", got)
	}
	if got := Vector2Max(a, b); got != (Vector2{3, 4}) {
		t.Fatalf("Max: got=%v, want {3 4}", got)
	}
	if got := Vector2Clamp(NewVector2(-5, 9), NewVector2Zero(), NewVector2One()); got != (Vector2{0, 1}) {
		t.Fatalf("Clamp: got=%v, want {0 1}", got)
	}
}

func TestVector2Lerp(t *testing.T) {
	got := Vector2Lerp(NewVector2Zero(), NewVector2(10, 20), 0.5)
	if got != (Vector2{5, 10}) {
		t.Fatalf("got=%v, want {5 10}", got)
	}
}

func TestVector2Compare(t *testing.T) {
	a := NewVector2(1, 2)
	if !a.Compare(NewVector2(1.0005, 2), 0.001) {
		t.Fatalf("expected match within 0.001")
	}
	if a.Compare(NewVector2(1.01, 2), 0.001) {
		t.Fatalf("expected mismatch outside 0.001")
	}
	if !a.Equals(a) {
		t.Fatalf("vector must equal itself")
	}
}
