package output

import (
	"image/jpeg"
	"image/png"
	"io"

	"github.com/df07/go-raycaster/pkg/renderer"
)

// WritePNG writes frame as an 8-bit PNG
func WritePNG(w io.Writer, frame *renderer.Frame) error {
	return png.Encode(w, frame.ToRGBA())
}

// WriteJPG writes frame as a JPEG
func WriteJPG(w io.Writer, frame *renderer.Frame) error {
	return jpeg.Encode(w, frame.ToRGBA(), &jpeg.Options{Quality: 95})
}
