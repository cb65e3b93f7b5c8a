package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/material"
)

// Scene contains all the elements needed for rendering. It is the sole owner
// of its camera, surfaces and lights; surfaces and lights are addressed by
// their index in the ordered lists.
type Scene struct {
	Camera     *geometry.Camera
	Surfaces   []geometry.Surface // Objects in the scene, in intersection order
	Lights     []lights.Light     // Lights in the scene
	Background core.Color         // Color returned when a ray hits nothing
}

// NewScene creates an empty scene with a camera built from cameraConfig
func NewScene(cameraConfig geometry.CameraConfig, background core.Color) *Scene {
	return &Scene{
		Camera:     geometry.NewCamera(cameraConfig),
		Surfaces:   make([]geometry.Surface, 0),
		Lights:     make([]lights.Light, 0),
		Background: background,
	}
}

func (s *Scene) GetCamera() *geometry.Camera     { return s.Camera }
func (s *Scene) GetSurfaces() []geometry.Surface { return s.Surfaces }
func (s *Scene) GetLights() []lights.Light       { return s.Lights }
func (s *Scene) GetBackgroundColor() core.Color  { return s.Background }

// SurfaceAt returns the surface at index i
func (s *Scene) SurfaceAt(i int) geometry.Surface { return s.Surfaces[i] }

// LightAt returns the light at index i
func (s *Scene) LightAt(i int) lights.Light { return s.Lights[i] }

// AddSurface appends a surface and returns its index
func (s *Scene) AddSurface(surface geometry.Surface) int {
	s.Surfaces = append(s.Surfaces, surface)
	return len(s.Surfaces) - 1
}

// AddLight appends a light and returns its index
func (s *Scene) AddLight(light lights.Light) int {
	s.Lights = append(s.Lights, light)
	return len(s.Lights) - 1
}

// AddSphere adds a sphere with the given material to the scene
func (s *Scene) AddSphere(center core.Point3, radius float64, mat material.Material) int {
	return s.AddSurface(geometry.NewSphere(center, radius, mat))
}

// AddAmbientLight adds an ambient light to the scene
func (s *Scene) AddAmbientLight(color core.Color) int {
	return s.AddLight(lights.NewAmbientLight(color))
}

// AddDirectionalLight adds a directional light shining along direction
func (s *Scene) AddDirectionalLight(color core.Color, direction core.Vec3) int {
	return s.AddLight(lights.NewDirectionalLight(color, direction))
}

// Validate checks the scene for parameters that would produce undefined
// results during rendering. All problems are reported together.
func (s *Scene) Validate() error {
	var errs []error

	if s.Camera == nil {
		errs = append(errs, errors.New("scene has no camera"))
	} else if err := s.Camera.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("camera: %w", err))
	}

	for i, surface := range s.Surfaces {
		if validator, ok := surface.(core.Validator); ok {
			if err := validator.Validate(); err != nil {
				errs = append(errs, fmt.Errorf("surface %d: %w", i, err))
			}
		}
		if surface.Material() == nil {
			continue
		}
		if validator, ok := surface.Material().(core.Validator); ok {
			if err := validator.Validate(); err != nil {
				errs = append(errs, fmt.Errorf("surface %d material: %w", i, err))
			}
		}
	}

	for i, light := range s.Lights {
		if validator, ok := light.(core.Validator); ok {
			if err := validator.Validate(); err != nil {
				errs = append(errs, fmt.Errorf("light %d: %w", i, err))
			}
		}
	}

	return errors.Join(errs...)
}
