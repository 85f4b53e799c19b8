package vecmath

import "testing"

func TestClamp(t *testing.T) {
	if got := Clamp(float32(5), 0, 1); got != 1 {
		t.Fatalf("got=%v, want 1", got)
	}
	if got := Clamp(float32(-5), 0, 1); got != 0 {
		t.Fatalf("got=%v, want 0", got)
	}
	if got := Clamp(float32(0.25), 0, 1); got != 0.25 {
		t.Fatalf("got=%v, want 0.25", got)
	}
	if got := Clamp(7, 1, 5); got != 5 {
		t.Fatalf("got=%v, want 5", got)
	}
}

func TestLerpIsUnclamped(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Fatalf("got=%v, want 5", got)
	}
	if got := Lerp(0, 10, 2); got != 20 {
		t.Fatalf("got=%v, want 20", got)
	}
	if got := Lerp(0, 10, -1); got != -10 {
		t.Fatalf("got=%v, want -10", got)
	}
}

func TestSmoothStepClampsT(t *testing.T) {
	if got := SmoothStep(0, 10, 2); got != 10 {
		t.Fatalf("got=%v, want 10", got)
	}
	if got := SmoothStep(0, 10, -1); got != 0 {
		t.Fatalf("got=%v, want 0", got)
	}
	if got := SmoothStep(0, 10, 0.5); got != 5 {
		t.Fatalf("got=%v, want 5", got)
	}
}

func TestBarycentricClampsWeights(t *testing.T) {
	if got := Barycentric(0, 10, 20, 2, 0); got != 10 {
		t.Fatalf("got=%v, want 10", got)
	}
	if got := Barycentric(0, 10, 20, 0, -1); got != 0 {
		t.Fatalf("got=%v, want 0", got)
	}
	if got := Barycentric(0, 10, 20, 0.5, 0.5); got != 15 {
		t.Fatalf("got=%v, want 15", got)
	}
}

func TestCatmullRomEndpoints(t *testing.T) {
	if got := CatmullRom(1, 2, 3, 4, 0); got != 2 {
		t.Fatalf("t=0: got=%v, want 2", got)
	}
	if got := CatmullRom(1, 2, 3, 4, 1); got != 3 {
		t.Fatalf("t=1: got=%v, want 3", got)
	}
}

func TestHermiteEndpoints(t *testing.T) {
	if got := Hermite(1, 5, 3, -5, 0); got != 1 {
		t.Fatalf("t=0: got=%v, want 1", got)
	}
	if got := Hermite(1, 5, 3, -5, 1); got != 3 {
		t.Fatalf("t=1: got=%v, want 3", got)
	}
}

func TestWrapAngle(t *testing.T) {
	cases := []struct {
		in, want float32
	}{
		{0.5, 0.5},
		{Pi + 0.1, 0.1 - Pi},
		{-Pi - 0.1, Pi - 0.1},
		{TwoPi + 0.25, 0.25},
		{-TwoPi - 0.25, -0.25},
	}
	for _, c := range cases {
		if got := WrapAngle(c.in); !EqualWithin(got, c.want, 1e-5) {
			t.Fatalf("WrapAngle(%v): got=%v, want %v", c.in, got, c.want)
		}
	}
}

func TestAngleConversions(t *testing.T) {
	if got := ToDegrees(Pi); !EqualWithin(got, 180, 1e-4) {
		t.Fatalf("got=%v, want 180", got)
	}
	if got := ToRadians(90); !EqualWithin(got, PiOver2, 1e-6) {
		t.Fatalf("got=%v, want %v", got, PiOver2)
	}
}

func TestSign(t *testing.T) {
	if got := Sign(-3.5); got != -1 {
		t.Fatalf("got=%v, want -1", got)
	}
	if got := Sign(0); got != 0 {
		t.Fatalf("got=%v, want 0", got)
	}
	if got := Sign(42); got != 1 {
		t.Fatalf("got=%v, want 1", got)
	}
}

func TestDistance(t *testing.T) {
	if got := Distance(3, -2); got != 5 {
		t.Fatalf("got=%v, want 5", got)
	}
}

func TestEqualWithin(t *testing.T) {
	if !EqualWithin(1, 1.0001, 0.001) {
		t.Fatalf("values within tolerance reported unequal")
	}
	if EqualWithin(1, 1.01, 0.001) {
		t.Fatalf("values outside tolerance reported equal")
	}
}
