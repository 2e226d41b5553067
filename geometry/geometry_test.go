package geometry

import (
	"math"
	"testing"
)

func TestCircleRectDistanceSquared(t *testing.T) {
	r := Rect{Position: Vector2{X: 90, Y: 100}, Size: Vector2{X: 10, Y: 100}}

	tests := []struct {
		name   string
		center Vector2
		want   float64
	}{
		{"inside", Vector2{X: 95, Y: 150}, 0},
		{"right of face", Vector2{X: 105, Y: 150}, 25},
		{"above corner", Vector2{X: 103, Y: 96}, 9 + 16},
		{"on edge", Vector2{X: 100, Y: 200}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CircleRectDistanceSquared(tc.center, r); got != tc.want {
				t.Fatalf("distance² = %v, want %v", got, tc.want)
			}
		})
	}

	if !CircleIntersectsRect(Vector2{X: 105, Y: 150}, 5, r) {
		t.Fatal("circle touching the face should intersect")
	}
	if CircleIntersectsRect(Vector2{X: 105.1, Y: 150}, 5, r) {
		t.Fatal("circle just outside the face should not intersect")
	}
}

func TestCapSpeed(t *testing.T) {
	v := CapSpeed(Vector2{X: 30, Y: 40}, 15)
	if math.Abs(v.Length()-15) > 1e-9 {
		t.Fatalf("capped length = %v, want 15", v.Length())
	}
	if math.Abs(v.X/v.Y-0.75) > 1e-9 {
		t.Fatalf("direction changed: %+v", v)
	}

	slow := Vector2{X: 3, Y: 4}
	if CapSpeed(slow, 15) != slow {
		t.Fatal("vector under the cap must be untouched")
	}
}

func TestBounceVelocityY(t *testing.T) {
	p := Rect{Position: Vector2{X: 0, Y: 100}, Size: Vector2{X: 10, Y: 100}}

	cases := map[float64]float64{
		100: -7.5,
		150: 0,
		200: 7.5,
		125: -3.75,
		300: 7.5, // past the edge clamps
	}
	for y, want := range cases {
		if got := BounceVelocityY(y, p, 7.5); got != want {
			t.Errorf("BounceVelocityY(%v) = %v, want %v", y, got, want)
		}
	}
}

func TestFold(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{225, 225},
		{500, 400},
		{-50, 50},
		{900, 0},
		{1000, 100},
		{-500, 400},
	}
	for _, tc := range cases {
		if got := Fold(tc.in, 0, 450); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Fold(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFinite(t *testing.T) {
	if !Finite(1, -2, 0) {
		t.Fatal("ordinary values are finite")
	}
	if Finite(1, math.NaN()) || Finite(math.Inf(-1)) {
		t.Fatal("NaN and Inf must not be finite")
	}
	if (Vector2{X: math.Inf(1)}).Finite() {
		t.Fatal("vector with Inf must not be finite")
	}
}
