package geometry

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/material"
)

// Hit contains information about a ray-surface intersection
type Hit struct {
	Point  core.Point3 // Point of intersection
	Normal core.Vec3   // Outward surface normal at the intersection
	T      float64     // Distance along the ray's normalized direction
}

// Surface interface for objects that can be hit by rays
type Surface interface {
	// Hit reports the first front-facing intersection of ray with the surface
	Hit(ray core.Ray) (Hit, bool)
	Material() material.Material
}
