package material

import (
	"github.com/df07/go-raycaster/pkg/core"
)

// Constant shades a surface with a single flat color regardless of lighting
type Constant struct {
	Diffuse core.Color
}

// NewConstant creates a new constant material
func NewConstant(diffuse core.Color) *Constant {
	return &Constant{Diffuse: diffuse}
}

// Type implements the Material interface
func (c *Constant) Type() MaterialType { return MaterialTypeConstant }

// DiffuseColor returns the flat color
func (c *Constant) DiffuseColor() core.Color { return c.Diffuse }

// SpecularHighlight is always black for constant materials
func (c *Constant) SpecularHighlight() core.Color { return core.Color{} }

func (c *Constant) PhongExponent() int { return 0 }

func (c *Constant) ReflectiveColor() core.Color { return core.Color{} }

func (c *Constant) RefractionIndex() float64 { return 0 }

func (c *Constant) HasReflection() bool { return false }

func (c *Constant) HasRefraction() bool { return false }
