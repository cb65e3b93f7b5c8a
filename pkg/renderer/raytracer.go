package renderer

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/material"
)

// ShadowEpsilon offsets shadow ray origins off the surface they start on.
// It is the float32 machine epsilon.
const ShadowEpsilon = 0x1p-23

// LightSelection chooses which directional lights take part in shading
type LightSelection string

const (
	// LightSelectionAll sums the contribution of every directional light
	LightSelectionAll LightSelection = "all"
	// LightSelectionPrimary uses only the light at index 1, and only when it is
	// directional
	LightSelectionPrimary LightSelection = "primary"
)

// primaryLightIndex is the light slot used by LightSelectionPrimary
const primaryLightIndex = 1

// RenderConfig contains rendering configuration
type RenderConfig struct {
	MaxDepth       int            // Reserved ray depth; rays at or past it return the background
	LightSelection LightSelection // Directional lights used for shading and shadows
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		MaxDepth:       3,
		LightSelection: LightSelectionAll,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *geometry.Camera
	GetSurfaces() []geometry.Surface
	GetLights() []lights.Light
	GetBackgroundColor() core.Color
}

// Intersection is the nearest surface hit along a ray
type Intersection struct {
	Surface  geometry.Surface
	Index    int         // Position of Surface in the scene's surface list
	Point    core.Point3 // Hit point
	Normal   core.Vec3   // Outward normal at Point
	Distance float64     // Distance from the ray origin to Point
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene  Scene
	config RenderConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards output.
func NewRaytracer(scene Scene, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = discardLogger{}
	}
	return &Raytracer{
		scene:  scene,
		config: DefaultRenderConfig(),
		logger: logger,
	}
}

// SetRenderConfig updates the rendering configuration. Unset fields keep
// their defaults.
func (rt *Raytracer) SetRenderConfig(config RenderConfig) {
	defaults := DefaultRenderConfig()
	if config.MaxDepth <= 0 {
		config.MaxDepth = defaults.MaxDepth
	}
	if config.LightSelection == "" {
		config.LightSelection = defaults.LightSelection
	}
	rt.config = config
}

// Config returns the active rendering configuration
func (rt *Raytracer) Config() RenderConfig {
	return rt.config
}

// NearestIntersection finds the surface whose hit point is closest to the ray
// origin. Surfaces are tested in list order and the first one wins ties.
func (rt *Raytracer) NearestIntersection(ray core.Ray) (Intersection, bool) {
	nearest := Intersection{Index: -1, Distance: math.Inf(1)}

	for i, surface := range rt.scene.GetSurfaces() {
		hit, isHit := surface.Hit(ray)
		if !isHit {
			continue
		}
		distance := ray.Origin.DistanceTo(hit.Point)
		if distance < nearest.Distance {
			nearest = Intersection{
				Surface:  surface,
				Index:    i,
				Point:    hit.Point,
				Normal:   hit.Normal,
				Distance: distance,
			}
		}
	}

	return nearest, nearest.Surface != nil
}

// InShadow reports whether any surface blocks the path from point toward a
// light in direction dirToLight. The test has no distance limit.
func (rt *Raytracer) InShadow(point core.Point3, dirToLight core.Vec3) bool {
	shadowRay := core.NewRay(point.Translate(dirToLight.Multiply(ShadowEpsilon)), dirToLight)

	for _, surface := range rt.scene.GetSurfaces() {
		if _, isHit := surface.Hit(shadowRay); isHit {
			return true
		}
	}
	return false
}

// ActiveLights returns the directional lights used for shading and shadows
func (rt *Raytracer) ActiveLights() []lights.Light {
	sceneLights := rt.scene.GetLights()

	if rt.config.LightSelection == LightSelectionPrimary {
		if len(sceneLights) > primaryLightIndex &&
			sceneLights[primaryLightIndex].Type() == lights.LightTypeDirectional {
			return []lights.Light{sceneLights[primaryLightIndex]}
		}
		return nil
	}

	var active []lights.Light
	for _, i := range lights.Directionals(sceneLights) {
		active = append(active, sceneLights[i])
	}
	return active
}

// Shade computes the overflow-corrected color for an intersection
func (rt *Raytracer) Shade(hit Intersection, ray core.Ray) core.Color {
	color, _ := rt.shade(hit, ray, nil)
	return color
}

func (rt *Raytracer) shade(hit Intersection, ray core.Ray, stats *RenderStats) (core.Color, bool) {
	mat := hit.Surface.Material()

	switch mat.Type() {
	case material.MaterialTypePhong:
		active := rt.ActiveLights()
		shadowed := make([]bool, len(active))
		anyShadowed := false
		for i, light := range active {
			shadowed[i] = rt.InShadow(hit.Point, light.DirectionToLight())
			anyShadowed = anyShadowed || shadowed[i]
		}
		if stats != nil {
			stats.ShadowRays += len(active)
		}

		ambient := lights.AmbientSum(rt.scene.GetLights())
		return PhongColor(mat, ray, hit.Normal, ambient, active, shadowed).CorrectOverflow(), anyShadowed
	default:
		return mat.DiffuseColor().CorrectOverflow(), false
	}
}

// Trace returns the color seen along ray. depth counts the rays already
// traced for this pixel; at or past MaxDepth the background is returned.
func (rt *Raytracer) Trace(ray core.Ray, depth int) core.Color {
	return rt.trace(ray, depth, nil)
}

func (rt *Raytracer) trace(ray core.Ray, depth int, stats *RenderStats) core.Color {
	if depth >= rt.config.MaxDepth {
		return rt.scene.GetBackgroundColor()
	}

	hit, isHit := rt.NearestIntersection(ray)
	if !isHit {
		if stats != nil {
			stats.BackgroundPixels++
		}
		return rt.scene.GetBackgroundColor()
	}

	color, shadowed := rt.shade(hit, ray, stats)
	if stats != nil {
		stats.HitPixels++
		if shadowed {
			stats.ShadowedPixels++
		}
	}
	return color
}

// Render traces one primary ray per pixel, top-to-bottom and left-to-right.
// The context is checked between scanlines; a cancelled render returns no frame.
func (rt *Raytracer) Render(ctx context.Context) (*Frame, RenderStats, error) {
	camera := rt.scene.GetCamera()
	if camera == nil {
		return nil, RenderStats{}, fmt.Errorf("scene has no camera")
	}

	width, height := camera.Width, camera.Height
	frame := NewFrame(width, height)
	stats := RenderStats{TotalPixels: width * height}

	rt.logger.Printf("Rendering %dx%d with %d surfaces and %d lights (lights: %s)\n",
		width, height, len(rt.scene.GetSurfaces()), len(rt.scene.GetLights()), rt.config.LightSelection)
	startTime := time.Now()

	for y := 0; y < height; y++ {
		if err := ctx.Err(); err != nil {
			return nil, RenderStats{}, fmt.Errorf("render cancelled at scanline %d: %w", y, err)
		}
		for x := 0; x < width; x++ {
			ray := camera.GetRay(x, y)
			color := rt.trace(ray, 0, &stats)
			frame.Set(x, y, color)
			stats.addLuminance(color)
		}
	}

	stats.Duration = time.Since(startTime)
	stats.finalize()
	rt.logger.Printf("Render completed in %v: %s\n", stats.Duration, stats)

	return frame, stats, nil
}
