// Package vmath holds the 2D vector type shared by the map, simulation and renderer.
package vmath

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

// Vec is an immutable 2D vector. Every operation returns a new value.
type Vec struct {
	X, Y float64
}

// Zero is the zero vector.
var Zero = Vec{}

func New(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul multiplies both components by s.
func (v Vec) Mul(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec) Distance(o Vec) float64 {
	return o.Sub(v).Magnitude()
}

// Scale returns v rescaled to the given length. The zero vector is returned unchanged.
func (v Vec) Scale(length float64) Vec {
	m := v.Magnitude()
	if m == 0 {
		return v
	}
	return v.Mul(length / m)
}

// Normalize returns the unit vector pointing along v.
func (v Vec) Normalize() Vec {
	return v.Scale(1)
}

// Rotate rotates v counter-clockwise (in a y-up frame) by radians.
func (v Vec) Rotate(radians float64) Vec {
	sin, cos := math.Sincos(radians)
	return Vec{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// Angle is the heading of v in radians.
func (v Vec) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Cell returns the integer grid cell containing v.
func (v Vec) Cell() (int, int) {
	return int(math.Floor(v.X)), int(math.Floor(v.Y))
}

// Center returns the centre point of the cell (x, y).
func Center(x, y int) Vec {
	return Vec{X: float64(x) + 0.5, Y: float64(y) + 0.5}
}

// AngleBetween is the unsigned angle between a and b in radians, clamped to [0, π].
func AngleBetween(a, b Vec) float64 {
	ma, mb := a.Magnitude(), b.Magnitude()
	if ma == 0 || mb == 0 {
		return 0
	}
	return math.Acos(geom.Clamp(a.Dot(b)/(ma*mb), -1, 1))
}
