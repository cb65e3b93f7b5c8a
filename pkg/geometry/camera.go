package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	Origin      core.Point3 // Camera position
	Width       int         // Image width in pixels
	Height      int         // Image height in pixels
	FieldOfView float64     // Half the angle of view
	Radians     bool        // FieldOfView is given in radians instead of degrees
	ImagePlane  float64     // Distance from the origin to the image plane
	NearClip    float64     // Declared for scene descriptions, not used by the renderer
	FarClip     float64     // Declared for scene descriptions, not used by the renderer
}

// DefaultCameraConfig returns the configuration of an unconfigured camera
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Origin:      core.NewPoint3(0, 0, 0),
		Width:       512,
		Height:      512,
		FieldOfView: 22.5,
		ImagePlane:  1,
		NearClip:    0.1,
		FarClip:     10000,
	}
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Origin != (core.Point3{}) {
		result.Origin = override.Origin
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.FieldOfView != 0 {
		result.FieldOfView = override.FieldOfView
		result.Radians = override.Radians
	}
	if override.ImagePlane != 0 {
		result.ImagePlane = override.ImagePlane
	}
	if override.NearClip != 0 {
		result.NearClip = override.NearClip
	}
	if override.FarClip != 0 {
		result.FarClip = override.FarClip
	}
	return result
}

// Camera projects pixels onto an image plane and generates primary rays
type Camera struct {
	Origin      core.Point3
	Width       int
	Height      int
	FieldOfView float64 // radians
	ImagePlane  float64
	NearClip    float64
	FarClip     float64
}

// NewCamera creates a camera from config. The field of view is stored in radians.
func NewCamera(config CameraConfig) *Camera {
	fov := config.FieldOfView
	if !config.Radians {
		fov = fov * math.Pi / 180
	}
	return &Camera{
		Origin:      config.Origin,
		Width:       config.Width,
		Height:      config.Height,
		FieldOfView: fov,
		ImagePlane:  config.ImagePlane,
		NearClip:    config.NearClip,
		FarClip:     config.FarClip,
	}
}

// AspectRatio returns width/height using integer division, so a 3x2 image
// has an aspect ratio of 1.
func (c *Camera) AspectRatio() float64 {
	return float64(c.Width / c.Height)
}

// GetRay generates the primary ray through the center of pixel (x, y),
// where (0, 0) is the top-left pixel.
func (c *Camera) GetRay(x, y int) core.Ray {
	// Normalized device coordinates of the pixel center
	ndcX := (float64(x) + 0.5) / float64(c.Width)
	ndcY := (float64(y) + 0.5) / float64(c.Height)

	// Screen space in [-1, 1], aspect applied to x only
	screenX := (2*ndcX - 1) * c.AspectRatio()
	screenY := 1 - 2*ndcY

	// Camera space
	scale := math.Tan(c.FieldOfView) * c.ImagePlane
	target := core.NewPoint3(screenX*scale, screenY*scale, 0)

	return core.NewRay(c.Origin, c.Origin.DirectionTo(target, true))
}

// Validate rejects camera parameters that cannot produce primary rays
func (c *Camera) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("camera resolution must be positive, got %dx%d", c.Width, c.Height)
	}
	if !(c.FieldOfView > 0 && c.FieldOfView < math.Pi/2) {
		return fmt.Errorf("camera field of view must be in (0, pi/2) radians, got %f", c.FieldOfView)
	}
	if !(c.ImagePlane > 0) {
		return fmt.Errorf("distance to image plane must be positive, got %f", c.ImagePlane)
	}
	if !c.Origin.IsFinite() {
		return fmt.Errorf("camera origin must be finite, got %v", c.Origin)
	}
	return nil
}
