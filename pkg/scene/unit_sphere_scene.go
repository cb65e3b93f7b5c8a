package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/material"
)

// NewUnitSphereScene creates a minimal verification scene: one Phong unit
// sphere at the origin, a dim ambient light and one directional light along -x,
// viewed from (0,0,5) at 2x2 pixels.
func NewUnitSphereScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.MergeCameraConfig(geometry.DefaultCameraConfig(), geometry.CameraConfig{
		Origin: core.NewPoint3(0, 0, 5),
		Width:  2,
		Height: 2,
	})
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := NewScene(cameraConfig, core.NewColor(0, 0, 0))

	s.AddSphere(core.NewPoint3(0, 0, 0), 1,
		material.NewPhong(core.NewColor(200, 100, 50), core.NewColor(255, 255, 255), 16))

	s.AddAmbientLight(core.NewColor(10, 10, 10))
	s.AddDirectionalLight(core.NewColor(255, 255, 255), core.NewVec3(-1, 0, 0))

	return s
}
