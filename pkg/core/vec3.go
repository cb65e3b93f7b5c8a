package core

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 represents a 3D direction vector
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) r3() r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

func fromR3(v r3.Vec) Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return fromR3(r3.Add(v.r3(), other.r3()))
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return fromR3(r3.Sub(v.r3(), other.r3()))
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return fromR3(r3.Scale(scalar, v.r3()))
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
	}
}

// AddScalar adds s to every component
func (v Vec3) AddScalar(s float64) Vec3 {
	return Vec3{v.X + s, v.Y + s, v.Z + s}
}

// SubtractScalar subtracts s from every component
func (v Vec3) SubtractScalar(s float64) Vec3 {
	return Vec3{v.X - s, v.Y - s, v.Z - s}
}

// Pow raises every component to the integer power n
func (v Vec3) Pow(n int) Vec3 {
	p := float64(n)
	return Vec3{
		X: math.Pow(v.X, p),
		Y: math.Pow(v.Y, p),
		Z: math.Pow(v.Z, p),
	}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return r3.Norm(v.r3())
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return r3.Norm2(v.r3())
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return r3.Dot(v.r3(), other.r3())
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return fromR3(r3.Cross(v.r3(), other.r3()))
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vec3) Normalize() Vec3 {
	if v.X == 0 && v.Y == 0 && v.Z == 0 {
		return Vec3{}
	}
	return fromR3(r3.Unit(v.r3()))
}

// IsNormalized reports whether the vector has unit length within tolerance
func (v Vec3) IsNormalized(tolerance float64) bool {
	return math.Abs(v.Length()-1) <= tolerance
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// IsZero reports whether every component is exactly zero
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// IsFinite reports whether no component is NaN or infinite
func (v Vec3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
