package core

import "math"

// MaxChannel is the largest value a color channel holds after overflow correction
const MaxChannel = 255.0

// Color is an RGB color with channels conventionally in [0, 255].
// Channels are not clamped during arithmetic; multiplicative operations work in
// the normalized [0, 1] domain and rescale to 255.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Scale multiplies every channel by d
func (c Color) Scale(d float64) Color {
	return Color{
		R: ((c.R / MaxChannel) * d) * MaxChannel,
		G: ((c.G / MaxChannel) * d) * MaxChannel,
		B: ((c.B / MaxChannel) * d) * MaxChannel,
	}
}

// Multiply combines two colors channel by channel in normalized space
func (c Color) Multiply(other Color) Color {
	return Color{
		R: (c.R / MaxChannel) * (other.R / MaxChannel) * MaxChannel,
		G: (c.G / MaxChannel) * (other.G / MaxChannel) * MaxChannel,
		B: (c.B / MaxChannel) * (other.B / MaxChannel) * MaxChannel,
	}
}

// Pow raises every normalized channel to the power n
func (c Color) Pow(n int) Color {
	p := float64(n)
	return Color{
		R: math.Pow(c.R/MaxChannel, p) * MaxChannel,
		G: math.Pow(c.G/MaxChannel, p) * MaxChannel,
		B: math.Pow(c.B/MaxChannel, p) * MaxChannel,
	}
}

// CorrectOverflow clamps every channel to at most MaxChannel.
// Negative channels are left untouched.
func (c Color) CorrectOverflow() Color {
	return Color{
		R: min(c.R, MaxChannel),
		G: min(c.G, MaxChannel),
		B: min(c.B, MaxChannel),
	}
}

// IsBlack reports whether every channel is exactly zero
func (c Color) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// Luminance returns the perceptual luminance of the color
func (c Color) Luminance() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}
