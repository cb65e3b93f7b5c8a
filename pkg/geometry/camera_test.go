package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
)

func TestNewCamera_FieldOfViewUnits(t *testing.T) {
	degrees := NewCamera(CameraConfig{Width: 4, Height: 4, FieldOfView: 45, ImagePlane: 1})
	if math.Abs(degrees.FieldOfView-math.Pi/4) > 1e-12 {
		t.Errorf("Expected pi/4 radians, got %f", degrees.FieldOfView)
	}

	radians := NewCamera(CameraConfig{Width: 4, Height: 4, FieldOfView: 0.5, Radians: true, ImagePlane: 1})
	if radians.FieldOfView != 0.5 {
		t.Errorf("Expected 0.5 radians, got %f", radians.FieldOfView)
	}
}

func TestCamera_AspectRatioTruncates(t *testing.T) {
	tests := []struct {
		width, height int
		expected      float64
	}{
		{512, 512, 1},
		{3, 2, 1},
		{400, 225, 1},
		{800, 200, 4},
		{2, 3, 0},
	}

	for _, tt := range tests {
		camera := NewCamera(CameraConfig{Width: tt.width, Height: tt.height, FieldOfView: 30, ImagePlane: 1})
		if got := camera.AspectRatio(); got != tt.expected {
			t.Errorf("%dx%d: expected aspect %f, got %f", tt.width, tt.height, tt.expected, got)
		}
	}
}

func TestCamera_GetRay(t *testing.T) {
	config := CameraConfig{
		Origin:      core.NewPoint3(0, 0, 1),
		Width:       2,
		Height:      2,
		FieldOfView: 45,
		ImagePlane:  1,
	}
	camera := NewCamera(config)

	// tan(45°) = 1, so pixel centers land at (±0.5, ±0.5, 0)
	tests := []struct {
		x, y   int
		target core.Point3
	}{
		{0, 0, core.NewPoint3(-0.5, 0.5, 0)},
		{1, 0, core.NewPoint3(0.5, 0.5, 0)},
		{0, 1, core.NewPoint3(-0.5, -0.5, 0)},
		{1, 1, core.NewPoint3(0.5, -0.5, 0)},
	}

	for _, tt := range tests {
		ray := camera.GetRay(tt.x, tt.y)

		if ray.Origin != config.Origin {
			t.Errorf("(%d,%d): expected origin %v, got %v", tt.x, tt.y, config.Origin, ray.Origin)
		}
		if !ray.Direction.IsNormalized(1e-12) {
			t.Errorf("(%d,%d): direction %v is not normalized", tt.x, tt.y, ray.Direction)
		}

		expected := config.Origin.DirectionTo(tt.target, true)
		if ray.Direction.Subtract(expected).Length() > 1e-12 {
			t.Errorf("(%d,%d): expected direction %v, got %v", tt.x, tt.y, expected, ray.Direction)
		}
	}
}

func TestCamera_GetRay_ImagePlaneScales(t *testing.T) {
	near := NewCamera(CameraConfig{Origin: core.NewPoint3(0, 0, 4), Width: 1, Height: 1, FieldOfView: 30, ImagePlane: 1})
	far := NewCamera(CameraConfig{Origin: core.NewPoint3(0, 0, 4), Width: 1, Height: 1, FieldOfView: 30, ImagePlane: 2})

	// The single pixel center maps to the screen origin regardless of scale
	for _, camera := range []*Camera{near, far} {
		dir := camera.GetRay(0, 0).Direction
		if dir.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-12 {
			t.Errorf("Expected straight-ahead ray, got %v", dir)
		}
	}

	wide := NewCamera(CameraConfig{Origin: core.NewPoint3(0, 0, 1), Width: 2, Height: 1, FieldOfView: 45, ImagePlane: 2})
	// aspect 2, x' = 0.75 -> screen 1.0, times tan(45°)*2
	expected := core.NewPoint3(0, 0, 1).DirectionTo(core.NewPoint3(2, 0, 0), true)
	if got := wide.GetRay(1, 0).Direction; got.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestCamera_Validate(t *testing.T) {
	tests := []struct {
		name      string
		config    CameraConfig
		expectErr bool
	}{
		{"default", DefaultCameraConfig(), false},
		{"negative width", MergeCameraConfig(DefaultCameraConfig(), CameraConfig{Width: -1}), true},
		{"obtuse fov", MergeCameraConfig(DefaultCameraConfig(), CameraConfig{FieldOfView: 95}), true},
		{"negative plane", MergeCameraConfig(DefaultCameraConfig(), CameraConfig{ImagePlane: -2}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewCamera(tt.config).Validate()
			if tt.expectErr && err == nil {
				t.Error("Expected error, got none")
			}
			if !tt.expectErr && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestMergeCameraConfig(t *testing.T) {
	merged := MergeCameraConfig(DefaultCameraConfig(), CameraConfig{
		Origin:      core.NewPoint3(0, 0, 5),
		Width:       2,
		Height:      2,
		FieldOfView: 0.3,
		Radians:     true,
	})

	if merged.Origin != core.NewPoint3(0, 0, 5) || merged.Width != 2 || merged.Height != 2 {
		t.Errorf("Override not applied: %+v", merged)
	}
	if merged.FieldOfView != 0.3 || !merged.Radians {
		t.Errorf("Field of view override not applied: %+v", merged)
	}
	if merged.ImagePlane != 1 || merged.FarClip != 10000 {
		t.Errorf("Defaults lost: %+v", merged)
	}
}
