package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/loaders"
	"github.com/df07/go-raycaster/pkg/material"
)

// NewFileScene creates a scene from a JSON scene description. Camera fields
// missing from the file take the camera defaults and a missing background is
// black. The returned scene has not been validated.
func NewFileScene(filename string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	sceneFile, err := loaders.LoadSceneFile(filename)
	if err != nil {
		return nil, err
	}
	return NewSceneFromFile(sceneFile, cameraOverrides...), nil
}

// NewSceneFromFile converts parsed scene data into a Scene
func NewSceneFromFile(sceneFile *loaders.SceneFile, cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.MergeCameraConfig(geometry.DefaultCameraConfig(), convertCamera(sceneFile.Camera))
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	background := core.NewColor(0, 0, 0)
	if sceneFile.Background != nil {
		background = toColor(*sceneFile.Background)
	}

	s := NewScene(cameraConfig, background)

	for _, light := range sceneFile.Lights {
		switch light.Type {
		case loaders.LightTypeAmbient:
			s.AddAmbientLight(toColor(light.Color))
		case loaders.LightTypeDirectional:
			s.AddDirectionalLight(toColor(light.Color), toVec3(*light.Direction))
		}
	}

	for _, sphere := range sceneFile.Spheres {
		center := core.NewPoint3(sphere.Center[0], sphere.Center[1], sphere.Center[2])
		s.AddSphere(center, sphere.Radius, convertMaterial(sphere.Material))
	}

	return s
}

func convertCamera(entry loaders.CameraEntry) geometry.CameraConfig {
	config := geometry.CameraConfig{
		Width:       entry.Width,
		Height:      entry.Height,
		FieldOfView: entry.FOV,
		Radians:     entry.Radians,
		ImagePlane:  entry.ImagePlane,
		NearClip:    entry.Near,
		FarClip:     entry.Far,
	}
	if entry.Origin != nil {
		config.Origin = core.NewPoint3(entry.Origin[0], entry.Origin[1], entry.Origin[2])
	}
	return config
}

func convertMaterial(entry loaders.MaterialEntry) material.Material {
	if entry.Type == loaders.MaterialTypeConstant {
		return material.NewConstant(toColor(entry.Diffuse))
	}

	phong := material.NewDefaultPhong()
	phong.Diffuse = toColor(entry.Diffuse)
	if entry.Specular != nil {
		phong.Specular = toColor(*entry.Specular)
	}
	if entry.Exponent != nil {
		phong.Exponent = *entry.Exponent
	}
	if entry.Reflective != nil {
		phong.Reflective = toColor(*entry.Reflective)
	}
	if entry.IOR != nil {
		phong.IOR = *entry.IOR
	}
	return phong
}

func toColor(t loaders.Triple) core.Color {
	return core.NewColor(t[0], t[1], t[2])
}

func toVec3(t loaders.Triple) core.Vec3 {
	return core.NewVec3(t[0], t[1], t[2])
}
