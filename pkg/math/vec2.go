// Package math provides the 2D vector and transform types used for toolpath geometry.
package math

import "math"

// Vec2 is a 2D point or vector in drawing units.
type Vec2 struct {
	X, Y float64
}

// FromPolar returns the vector of the given length at angle radians from the +X axis.
func FromPolar(length, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{cos * length, sin * length}
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
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// To returns the vector from v to other.
func (v Vec2) To(other Vec2) Vec2 {
	return other.Sub(v)
}

// Midpoint returns the point halfway between v and other.
func (v Vec2) Midpoint(other Vec2) Vec2 {
	return Vec2{(v.X + other.X) / 2, (v.Y + other.Y) / 2}
}

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Normal returns the right-hand perpendicular (v rotated a quarter turn clockwise).
func (v Vec2) Normal() Vec2 {
	return Vec2{v.Y, -v.X}
}

// Length returns the magnitude.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns a unit vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// WithLength returns v scaled to the given length, keeping its direction.
// A negative length flips the direction.
func (v Vec2) WithLength(length float64) Vec2 {
	return v.Normalize().Scale(length)
}

// Angle returns the angle of v from the +X axis in radians, in (-Pi, Pi].
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Distance returns the distance to another point.
func (v Vec2) Distance(other Vec2) float64 {
	return v.Sub(other).Length()
}

// IsFinite reports whether both components are finite numbers.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
