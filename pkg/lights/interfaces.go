package lights

import "github.com/df07/go-raycaster/pkg/core"

type LightType string

const (
	LightTypeAmbient     LightType = "ambient"
	LightTypeDirectional LightType = "directional"
)

// Light interface for light sources used by local shading
type Light interface {
	Type() LightType

	// Color returns the light's color in the [0,255] domain
	Color() core.Color

	// DirectionToLight returns the unit direction FROM a shading point TO the light.
	// Lights without a direction return the zero vector.
	DirectionToLight() core.Vec3
}

// Directionals returns the indices of all directional lights, in list order
func Directionals(lights []Light) []int {
	var indices []int
	for i, light := range lights {
		if light.Type() == LightTypeDirectional {
			indices = append(indices, i)
		}
	}
	return indices
}

// AmbientSum returns the sum of the colors of all ambient lights
func AmbientSum(lights []Light) core.Color {
	sum := core.Color{}
	for _, light := range lights {
		if light.Type() == LightTypeAmbient {
			sum = sum.Add(light.Color())
		}
	}
	return sum
}
