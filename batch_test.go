package vecmath

import "testing"

func TestVector3TransformRangeOffsets(t *testing.T) {
	mat := MatrixCreateTranslation(10, 0, 0)
	source := []Vector3{{1, 0, 0}, {2, 0, 0}, {3, 0, 0}, {4, 0, 0}}
	dest := make([]Vector3, 6)

	Vector3TransformRange(source, 1, mat, dest, 2, 2)

	if dest[2] != (Vector3{12, 0, 0}) || dest[3] != (Vector3{13, 0, 0}) {
		t.Fatalf("transformed elements wrong: %v", dest)
	}
	for _, i := range []int{0, 1, 4, 5} {
		if dest[i] != (Vector3{}) {
			t.Fatalf("element %d touched outside the requested range: %v", i, dest)
		}
	}
}

func TestVector3TransformSliceMatchesRange(t *testing.T) {
	mat := MatrixCreateRotationY(0.4).Mul(MatrixCreateTranslation(1, 2, 3))
	source := make([]Vector3, 100)
	for i := range source {
		source[i] = NewVector3(float32(i), float32(i)*0.5, -float32(i))
	}

	serial := make([]Vector3, len(source))
	Vector3TransformRange(source, 0, mat, serial, 0, len(source))

	concurrent := make([]Vector3, len(source))
	Vector3TransformSlice(source, mat, concurrent)

	for i := range serial {
		if serial[i] != concurrent[i] {
			t.Fatalf("element %d: serial=%v, concurrent=%v", i, serial[i], concurrent[i])
		}
	}
}

func TestVector3TransformQuaternionSlice(t *testing.T) {
	q := QuaternionCreateFromAxisAngle(NewVector3UnitY(), PiOver2)
	source := []Vector3{NewVector3UnitX(), NewVector3UnitZ()}
	dest := make([]Vector3, len(source))

	Vector3TransformQuaternionSlice(source, q, dest)

	if !dest[0].Compare(Vector3{0, 0, -1}, 1e-6) {
		t.Fatalf("dest[0]: got=%v, want {0 0 -1}", dest[0])
	}
	if !dest[1].Compare(Vector3{1, 0, 0}, 1e-6) {
		t.Fatalf("dest[1]: got=%v, want {1 0 0}", dest[1])
	}
}

func TestVector2TransformSliceMatchesElementwise(t *testing.T) {
	mat := MatrixCreateScaleXYZ(2, 3, 1)
	source := []Vector2{{1, 1}, {-2, 4}, {0.5, 0}}
	dest := make([]Vector2, len(source))

	Vector2TransformSlice(source, mat, dest)

	for i, v := range source {
		if want := v.Transform(mat); dest[i] != want {
			t.Fatalf("element %d: got=%v, want %v", i, dest[i], want)
		}
	}
}

func TestVector2TransformNormalRangeIgnoresTranslation(t *testing.T) {
	mat := MatrixCreateTranslation(5, 5, 5)
	source := []Vector2{{1, 2}, {3, 4}}
	dest := make([]Vector2, 2)

	Vector2TransformNormalRange(source, 0, mat, dest, 0, 2)

	if dest[0] != source[0] || dest[1] != source[1] {
		t.Fatalf("directions must not translate: %v", dest)
	}
}

func TestVector4TransformSliceMatchesElementwise(t *testing.T) {
	mat := MatrixCreateRotationZ(1.1).Mul(MatrixCreateTranslation(-1, 0, 2))
	source := []Vector4{{1, 2, 3, 1}, {0, 0, 0, 1}, {-5, 4, 1, 0}}
	dest := make([]Vector4, len(source))

	Vector4TransformSlice(source, mat, dest)

	for i, v := range source {
		if want := v.Transform(mat); dest[i] != want {
			t.Fatalf("element %d: got=%v, want %v", i, dest[i], want)
		}
	}
}

func TestVector4TransformQuaternionRange(t *testing.T) {
	q := QuaternionCreateFromAxisAngle(NewVector3UnitZ(), PiOver2)
	source := []Vector4{{1, 0, 0, 1}}
	dest := make([]Vector4, 1)

	Vector4TransformQuaternionRange(source, 0, q, dest, 0, 1)

	if !dest[0].Compare(Vector4{0, 1, 0, 1}, 1e-6) {
		t.Fatalf("got=%v, want {0 1 0 1}", dest[0])
	}
}
