package core

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Point3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin Point3, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at distance t along the ray. The direction is
// normalized before stepping, so t is a distance rather than a parameter.
func (r Ray) At(t float64) Point3 {
	return r.Origin.Translate(r.Direction.Normalize().Multiply(t))
}

// InverseDirection returns the direction pointing back toward the ray origin
func (r Ray) InverseDirection() Vec3 {
	return r.Direction.Negate()
}
