package material

import (
	"github.com/df07/go-raycaster/pkg/core"
)

// MaterialType selects the lighting evaluation used for a surface
type MaterialType string

const (
	MaterialTypeConstant MaterialType = "constant"
	MaterialTypePhong    MaterialType = "phong"
)

// Material describes the color attributes of a surface.
// Reflective color and refraction index are carried for scene descriptions
// but are not traced.
type Material interface {
	Type() MaterialType

	DiffuseColor() core.Color
	SpecularHighlight() core.Color
	PhongExponent() int
	ReflectiveColor() core.Color
	RefractionIndex() float64

	// HasReflection reports a non-black reflective color
	HasReflection() bool
	// HasRefraction reports a non-zero refraction index
	HasRefraction() bool
}
