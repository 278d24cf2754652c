// Package math provides the small vector and matrix types used to build and place disc geometry.
package math

import "math"

// Vec2 is a point or direction in the disc plane.
type Vec2 struct {
	X, Y float32
}

// FromPolar returns the point at radius r and angle theta (radians) from the origin.
func FromPolar(r, theta float64) Vec2 {
	return Vec2{float32(r * math.Cos(theta)), float32(r * math.Sin(theta))}
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Angle returns the polar angle of v in (-pi, pi]. The zero vector yields 0.
func (v Vec2) Angle() float64 {
	return math.Atan2(float64(v.Y), float64(v.X))
}

// Rotate returns v rotated counter-clockwise by angle radians about the origin.
func (v Vec2) Rotate(angle float64) Vec2 {
	c, s := math.Cos(angle), math.Sin(angle)
	x, y := float64(v.X), float64(v.Y)
	return Vec2{float32(x*c - y*s), float32(x*s + y*c)}
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
