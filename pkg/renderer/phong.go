package renderer

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/material"
)

// PhongColor evaluates the Phong reflection model for one surface point.
//
// ambient is the summed color of the scene's ambient lights. directional holds
// the lights contributing diffuse and specular terms, and shadowed[i] zeroes
// both terms for directional[i]. The result is not overflow-corrected.
func PhongColor(mat material.Material, ray core.Ray, normal core.Vec3, ambient core.Color,
	directional []lights.Light, shadowed []bool) core.Color {

	diffuseColor := mat.DiffuseColor()
	result := diffuseColor.Multiply(ambient)

	toEye := ray.InverseDirection()
	for i, light := range directional {
		if i < len(shadowed) && shadowed[i] {
			continue
		}

		toLight := light.DirectionToLight()
		nDotL := math.Max(0, normal.Dot(toLight))
		reflection := normal.Multiply(2).Multiply(nDotL).Subtract(toLight)
		specularInput := math.Max(0, toEye.Dot(reflection))

		diffuse := light.Color().Multiply(diffuseColor.Scale(nDotL))
		specular := light.Color().Multiply(mat.SpecularHighlight().Scale(specularInput).Pow(mat.PhongExponent()))

		result = result.Add(diffuse).Add(specular)
	}

	return result
}
