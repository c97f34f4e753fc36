package geom

import "testing"

func TestRectContainsIsClosed(t *testing.T) {
	r := NewRect(500, 350, 300, 140)
	tests := []struct {
		p    Vector
		want bool
	}{
		{Vec(600, 400), true},
		{Vec(500, 350), true},
		{Vec(800, 490), true},
		{Vec(800, 350), true},
		{Vec(499.9, 400), false},
		{Vec(600, 490.1), false},
		{Vec(0, 0), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRectInsetGrowsWithNegativeMargin(t *testing.T) {
	r := NewRect(500, 350, 300, 140).Inset(-20)
	if r.X != 480 || r.Y != 330 || r.Right() != 820 || r.Bottom() != 510 {
		t.Fatalf("Inset(-20) = %+v", r)
	}
}

func TestRectClamp(t *testing.T) {
	r := NewRect(50, 50, 1100, 700)
	if got := r.Clamp(Vec(-10, 900)); got != Vec(50, 750) {
		t.Fatalf("Clamp = %v, want (50,750)", got)
	}
	if got := r.Clamp(Vec(100, 100)); got != Vec(100, 100) {
		t.Fatalf("Clamp of inner point = %v", got)
	}
}
