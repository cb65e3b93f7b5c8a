package core

import "gonum.org/v1/gonum/spatial/r3"

// Point3 is a location in scene space
type Point3 struct {
	X, Y, Z float64
}

// NewPoint3 creates a new Point3
func NewPoint3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

func (p Point3) r3() r3.Vec {
	return r3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

// Translate returns the point displaced by v
func (p Point3) Translate(v Vec3) Point3 {
	q := r3.Add(p.r3(), v.r3())
	return Point3{X: q.X, Y: q.Y, Z: q.Z}
}

// Sub returns the vector from other to p
func (p Point3) Sub(other Point3) Vec3 {
	return fromR3(r3.Sub(p.r3(), other.r3()))
}

// DirectionTo returns the vector from p to target, normalized if requested
func (p Point3) DirectionTo(target Point3, normalize bool) Vec3 {
	d := target.Sub(p)
	if normalize {
		return d.Normalize()
	}
	return d
}

// DistanceTo returns the Euclidean distance between p and target
func (p Point3) DistanceTo(target Point3) float64 {
	return r3.Norm(r3.Sub(target.r3(), p.r3()))
}

// Vec returns the point's coordinates as a vector from the origin
func (p Point3) Vec() Vec3 {
	return Vec3{X: p.X, Y: p.Y, Z: p.Z}
}

// IsFinite reports whether no coordinate is NaN or infinite
func (p Point3) IsFinite() bool {
	return p.Vec().IsFinite()
}
