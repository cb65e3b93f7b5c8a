package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Point3
	Radius float64
	mat    material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Point3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
		mat:    mat,
	}
}

// Material returns the sphere's material
func (s *Sphere) Material() material.Material {
	return s.mat
}

// Hit tests if a ray intersects with the sphere using the geometric
// (projection) solution rather than the quadratic one.
func (s *Sphere) Hit(ray core.Ray) (Hit, bool) {
	// Vector from ray origin to sphere center
	toCenter := s.Center.Sub(ray.Origin)
	distanceSquared := toCenter.LengthSquared()

	// Distance along the ray to the point closest to the center
	tca := toCenter.Dot(ray.Direction)
	if tca < 0 {
		return Hit{}, false
	}

	// Distance from the center to that closest point
	dPerp := math.Sqrt(math.Abs(distanceSquared - tca*tca))
	if dPerp > s.Radius {
		return Hit{}, false
	}

	thc := math.Sqrt(s.Radius*s.Radius - dPerp*dPerp)
	t := tca - thc

	point := ray.At(t)
	return Hit{
		Point:  point,
		Normal: s.NormalAt(point),
		T:      t,
	}, true
}

// NormalAt returns the outward normal for a point on the sphere
func (s *Sphere) NormalAt(point core.Point3) core.Vec3 {
	return point.Sub(s.Center).Multiply(1.0 / s.Radius)
}

// Validate rejects spheres that would produce NaN intersections
func (s *Sphere) Validate() error {
	if !s.Center.IsFinite() {
		return fmt.Errorf("sphere center must be finite, got %v", s.Center)
	}
	if !(s.Radius > 0) || math.IsInf(s.Radius, 0) {
		return fmt.Errorf("sphere radius must be positive and finite, got %f", s.Radius)
	}
	if s.mat == nil {
		return fmt.Errorf("sphere at %v has no material", s.Center)
	}
	return nil
}
