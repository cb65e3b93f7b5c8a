package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// Frame holds rendered pixel colors as scanlines, top row first.
// Channels are in the [0,255] shading domain and may be fractional.
type Frame struct {
	Width     int
	Height    int
	Scanlines [][]core.Color
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	scanlines := make([][]core.Color, height)
	for y := range scanlines {
		scanlines[y] = make([]core.Color, width)
	}
	return &Frame{Width: width, Height: height, Scanlines: scanlines}
}

// Set stores the color of pixel (x, y)
func (f *Frame) Set(x, y int, c core.Color) {
	f.Scanlines[y][x] = c
}

// At returns the color of pixel (x, y)
func (f *Frame) At(x, y int) core.Color {
	return f.Scanlines[y][x]
}

// ToRGBA converts the frame to an 8-bit image, clamping channels to [0, 255]
func (f *Frame) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y, scanline := range f.Scanlines {
		for x, c := range scanline {
			img.SetRGBA(x, y, colorToRGBA(c))
		}
	}
	return img
}

// colorToRGBA rounds and clamps a shading-domain color to 8 bits
func colorToRGBA(c core.Color) color.RGBA {
	return color.RGBA{
		R: channelToByte(c.R),
		G: channelToByte(c.G),
		B: channelToByte(c.B),
		A: 255,
	}
}

func channelToByte(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	v = max(0, min(core.MaxChannel, v))
	return uint8(v + 0.5)
}
