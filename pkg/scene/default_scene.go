package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/material"
)

// NewDefaultScene creates the demo scene: a large green sphere, a small red
// sphere and a tiny flat-white sphere, lit by a grey ambient light and two
// white directional lights.
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Origin:      core.NewPoint3(0, 0, 1),
		Width:       512,
		Height:      512,
		FieldOfView: 28.0, // 56 degree angle of view
		ImagePlane:  1,
		NearClip:    0.1,
		FarClip:     10000,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := NewScene(cameraConfig, core.NewColor(51.2, 51.2, 51.2))

	white := core.NewColor(255, 255, 255)

	s.AddSphere(core.NewPoint3(-0.6, 0, 0), 0.3,
		material.NewPhong(core.NewColor(0, 255, 0), white, 32))
	s.AddSphere(core.NewPoint3(0.2, 0, -0.1), 0.075,
		material.NewPhong(core.NewColor(255, 0, 0), white, 32))
	s.AddSphere(core.NewPoint3(0.35, 0, -0.1), 0.05,
		material.NewConstant(white))

	s.AddAmbientLight(core.NewColor(25.5, 25.5, 25.5))
	s.AddDirectionalLight(white, core.NewVec3(-1, 0, 0))
	s.AddDirectionalLight(white, core.NewVec3(0, -1, 0))

	return s
}
