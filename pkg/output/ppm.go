package output

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/renderer"
)

// ErrInvalidMaxColor is returned for PPM maximum color values outside (0, 65536)
var ErrInvalidMaxColor = errors.New("maximum color value must be more than zero and less than 65536")

// DefaultMaxColor is the PPM maximum color value matching 8-bit channels
const DefaultMaxColor = 255

// PPMWriter writes frames as ASCII (P3) portable pixmaps
type PPMWriter struct {
	w        io.Writer
	maxColor int
}

// NewPPMWriter creates a writer that scales channels to [0, maxColor]
func NewPPMWriter(w io.Writer, maxColor int) (*PPMWriter, error) {
	if maxColor <= 0 || maxColor >= 65536 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMaxColor, maxColor)
	}
	return &PPMWriter{w: w, maxColor: maxColor}, nil
}

// WriteFrame writes the P3 header followed by one line per scanline
func (p *PPMWriter) WriteFrame(frame *renderer.Frame) error {
	bw := bufio.NewWriter(p.w)

	fmt.Fprintf(bw, "P3\n%d %d\n%d\n", frame.Width, frame.Height, p.maxColor)

	line := make([]byte, 0, frame.Width*12)
	for _, scanline := range frame.Scanlines {
		line = line[:0]
		for x, c := range scanline {
			if x > 0 {
				line = append(line, ' ')
			}
			line = strconv.AppendInt(line, int64(p.channel(c.R)), 10)
			line = append(line, ' ')
			line = strconv.AppendInt(line, int64(p.channel(c.G)), 10)
			line = append(line, ' ')
			line = strconv.AppendInt(line, int64(p.channel(c.B)), 10)
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("write scanline: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write ppm: %w", err)
	}
	return nil
}

// channel rescales a [0,255] shading value to [0, maxColor]
func (p *PPMWriter) channel(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	scaled := math.Round(v * float64(p.maxColor) / core.MaxChannel)
	return int(max(0, min(float64(p.maxColor), scaled)))
}

// WritePPM writes frame as a P3 pixmap with DefaultMaxColor
func WritePPM(w io.Writer, frame *renderer.Frame) error {
	ppm, err := NewPPMWriter(w, DefaultMaxColor)
	if err != nil {
		return err
	}
	return ppm.WriteFrame(frame)
}
