package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-raycaster/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int           // Total number of pixels rendered
	HitPixels        int           // Pixels whose primary ray hit a surface
	BackgroundPixels int           // Pixels whose primary ray hit nothing
	ShadowedPixels   int           // Hit pixels occluded from at least one light
	ShadowRays       int           // Shadow rays cast
	AverageLuminance float64       // Mean luminance of the final pixel colors
	Duration         time.Duration // Wall time of the render loop

	luminanceAccum float64
}

func (rs *RenderStats) addLuminance(color core.Color) {
	rs.luminanceAccum += color.Luminance()
}

func (rs *RenderStats) finalize() {
	if rs.TotalPixels > 0 {
		rs.AverageLuminance = rs.luminanceAccum / float64(rs.TotalPixels)
	}
}

func (rs RenderStats) String() string {
	return fmt.Sprintf("%d pixels (%d hit, %d background, %d shadowed), %d shadow rays, avg luminance %.2f",
		rs.TotalPixels, rs.HitPixels, rs.BackgroundPixels, rs.ShadowedPixels, rs.ShadowRays, rs.AverageLuminance)
}
