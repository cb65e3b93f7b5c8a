package material

import (
	"fmt"

	"github.com/df07/go-raycaster/pkg/core"
)

const (
	// DefaultPhongExponent is the specular exponent of a zero-configured Phong material
	DefaultPhongExponent = 2
	// DefaultRefractionIndex is roughly that of water
	DefaultRefractionIndex = 1.33
)

// Phong carries the full ambient/diffuse/specular attribute set
type Phong struct {
	Diffuse    core.Color
	Specular   core.Color
	Exponent   int
	Reflective core.Color // black means no reflection
	IOR        float64    // 0 means no refraction
}

// NewPhong creates a Phong material with the given diffuse color, specular
// highlight and exponent. Reflective color is black and the refraction index
// is DefaultRefractionIndex.
func NewPhong(diffuse, specular core.Color, exponent int) *Phong {
	return &Phong{
		Diffuse:  diffuse,
		Specular: specular,
		Exponent: exponent,
		IOR:      DefaultRefractionIndex,
	}
}

// NewDefaultPhong creates a black Phong material with default exponent and index
func NewDefaultPhong() *Phong {
	return NewPhong(core.Color{}, core.Color{}, DefaultPhongExponent)
}

// Type implements the Material interface
func (p *Phong) Type() MaterialType { return MaterialTypePhong }

func (p *Phong) DiffuseColor() core.Color { return p.Diffuse }

func (p *Phong) SpecularHighlight() core.Color { return p.Specular }

func (p *Phong) PhongExponent() int { return p.Exponent }

func (p *Phong) ReflectiveColor() core.Color { return p.Reflective }

func (p *Phong) RefractionIndex() float64 { return p.IOR }

func (p *Phong) HasReflection() bool { return !p.Reflective.IsBlack() }

func (p *Phong) HasRefraction() bool { return p.IOR != 0 }

// Validate rejects negative exponents and refraction indices
func (p *Phong) Validate() error {
	if p.Exponent < 0 {
		return fmt.Errorf("phong exponent must be non-negative, got %d", p.Exponent)
	}
	if p.IOR < 0 {
		return fmt.Errorf("refraction index must be non-negative, got %f", p.IOR)
	}
	return nil
}
