package lights

import (
	"fmt"

	"github.com/df07/go-raycaster/pkg/core"
)

// DirectionalLight is a light infinitely far away, shining along a fixed direction
type DirectionalLight struct {
	color              core.Color
	directionFromLight core.Vec3
}

// NewDirectionalLight creates a directional light. direction points FROM the
// light into the scene; it is normalized on construction.
func NewDirectionalLight(color core.Color, direction core.Vec3) *DirectionalLight {
	return &DirectionalLight{
		color:              color,
		directionFromLight: direction.Normalize(),
	}
}

func (dl *DirectionalLight) Type() LightType {
	return LightTypeDirectional
}

func (dl *DirectionalLight) Color() core.Color {
	return dl.color
}

// DirectionFromLight returns the direction light travels in
func (dl *DirectionalLight) DirectionFromLight() core.Vec3 {
	return dl.directionFromLight
}

// DirectionToLight returns the negated travel direction
func (dl *DirectionalLight) DirectionToLight() core.Vec3 {
	return dl.directionFromLight.Negate()
}

// Validate rejects a zero or non-finite direction
func (dl *DirectionalLight) Validate() error {
	if dl.directionFromLight.IsZero() || !dl.directionFromLight.IsFinite() {
		return fmt.Errorf("directional light needs a non-zero finite direction, got %v", dl.directionFromLight)
	}
	return nil
}
