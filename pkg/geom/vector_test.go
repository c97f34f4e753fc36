package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestNormalizeHasUnitLength(t *testing.T) {
	cases := []Vector{
		{3, 4},
		{-1, 0},
		{0, 0.001},
		{1e6, -2e6},
		{1, 1},
	}
	for _, v := range cases {
		n := v.Normalize()
		if got := n.Magnitude(); math.Abs(got-1) > eps {
			t.Errorf("Normalize(%v).Magnitude() = %f, want 1", v, got)
		}
	}
}

func TestNormalizeZeroIsZero(t *testing.T) {
	n := Vector{}.Normalize()
	if !n.IsZero() {
		t.Fatalf("Normalize(zero) = %v, want zero vector", n)
	}
	if math.IsNaN(n.X) || math.IsNaN(n.Y) {
		t.Fatalf("Normalize(zero) produced NaN: %v", n)
	}
}

func TestSubtractFormsAgree(t *testing.T) {
	a, b := Vec(7, -2), Vec(1.5, 3)
	if a.Sub(b) != Subtract(a, b) {
		t.Fatalf("a.Sub(b) = %v, Subtract(a, b) = %v", a.Sub(b), Subtract(a, b))
	}
	if got := Subtract(a, b); got != Vec(5.5, -5) {
		t.Fatalf("Subtract = %v, want (5.5,-5)", got)
	}
}

func TestArithmeticReturnsNewValues(t *testing.T) {
	v := Vec(1, 2)
	_ = v.Add(Vec(10, 10))
	_ = v.Scale(3)
	if v != Vec(1, 2) {
		t.Fatalf("receiver mutated: %v", v)
	}
	if got := v.Add(Vec(2, 3)); got != Vec(3, 5) {
		t.Errorf("Add = %v, want (3,5)", got)
	}
	if got := v.Scale(-2); got != Vec(-2, -4) {
		t.Errorf("Scale = %v, want (-2,-4)", got)
	}
}

func TestDistance(t *testing.T) {
	if got := Distance(Vec(0, 0), Vec(3, 4)); got != 5 {
		t.Fatalf("Distance = %f, want 5", got)
	}
	if Distance(Vec(1, 1), Vec(-2, 5)) != Distance(Vec(-2, 5), Vec(1, 1)) {
		t.Fatal("Distance is not symmetric")
	}
}
