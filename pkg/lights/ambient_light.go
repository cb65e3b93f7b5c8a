package lights

import "github.com/df07/go-raycaster/pkg/core"

// AmbientLight contributes uniformly to every lit point
type AmbientLight struct {
	color core.Color
}

// NewAmbientLight creates a new ambient light
func NewAmbientLight(color core.Color) *AmbientLight {
	return &AmbientLight{color: color}
}

func (al *AmbientLight) Type() LightType {
	return LightTypeAmbient
}

func (al *AmbientLight) Color() core.Color {
	return al.color
}

// DirectionToLight is undefined for ambient light and returns the zero vector
func (al *AmbientLight) DirectionToLight() core.Vec3 {
	return core.Vec3{}
}
