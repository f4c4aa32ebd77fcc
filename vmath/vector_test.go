package vmath

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestArithmetic(t *testing.T) {
	a := New(1, 2)
	b := New(3, -1)

	if got := a.Add(b); got != New(4, 1) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != New(-2, 3) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Mul(2); got != New(2, 4) {
		t.Errorf("Mul: got %v", got)
	}
	if got := a.Dot(b); got != 1 {
		t.Errorf("Dot: got %v", got)
	}
	// operations must not mutate the receiver
	if a != New(1, 2) {
		t.Errorf("receiver mutated: %v", a)
	}
}

func TestMagnitudeAndDistance(t *testing.T) {
	if got := New(3, 4).Magnitude(); !near(got, 5) {
		t.Errorf("Magnitude: got %v, want 5", got)
	}
	if got := New(1, 1).Distance(New(4, 5)); !near(got, 5) {
		t.Errorf("Distance: got %v, want 5", got)
	}
}

func TestScale(t *testing.T) {
	got := New(3, 4).Scale(10)
	if !near(got.X, 6) || !near(got.Y, 8) {
		t.Errorf("Scale: got %v, want (6,8)", got)
	}
	if got := Zero.Scale(5); got != Zero {
		t.Errorf("Scale of zero vector: got %v", got)
	}
	if got := New(0, -2).Normalize(); !near(got.Magnitude(), 1) || !near(got.Y, -1) {
		t.Errorf("Normalize: got %v", got)
	}
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name  string
		in    Vec
		angle float64
		want  Vec
	}{
		{"quarter turn", New(1, 0), math.Pi / 2, New(0, 1)},
		{"half turn", New(0, -1), math.Pi, New(0, 1)},
		{"facing up to right", New(0, -1), math.Pi / 2, New(1, 0)},
		{"no turn", New(0.66, 0), 0, New(0.66, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Rotate(tc.angle)
			if !near(got.X, tc.want.X) || !near(got.Y, tc.want.Y) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCellAndCenter(t *testing.T) {
	x, y := New(2.7, 3.0).Cell()
	if x != 2 || y != 3 {
		t.Errorf("Cell: got (%d,%d)", x, y)
	}
	if got := Center(2, 3); got != New(2.5, 3.5) {
		t.Errorf("Center: got %v", got)
	}
}

func TestAngleBetween(t *testing.T) {
	if got := AngleBetween(New(1, 0), New(0, 5)); !near(got, math.Pi/2) {
		t.Errorf("got %v, want π/2", got)
	}
	if got := AngleBetween(New(1, 0), Zero); got != 0 {
		t.Errorf("zero vector angle: got %v", got)
	}
}
