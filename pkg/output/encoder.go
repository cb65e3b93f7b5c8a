package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-raycaster/pkg/renderer"
)

// ErrUnsupportedFormat is returned for output file extensions with no encoder
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Encoder writes a rendered frame in some image format
type Encoder func(w io.Writer, frame *renderer.Frame) error

// EncoderFor picks an encoder from the file extension of filename.
// maxColor applies to PPM output only.
func EncoderFor(filename string, maxColor int) (Encoder, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".ppm":
		if _, err := NewPPMWriter(io.Discard, maxColor); err != nil {
			return nil, err
		}
		return func(w io.Writer, frame *renderer.Frame) error {
			ppm, err := NewPPMWriter(w, maxColor)
			if err != nil {
				return err
			}
			return ppm.WriteFrame(frame)
		}, nil
	case ".png":
		return WritePNG, nil
	case ".jpg", ".jpeg":
		return WriteJPG, nil
	default:
		return nil, fmt.Errorf("%w %q (supported: ppm, png, jpg/jpeg)", ErrUnsupportedFormat, ext)
	}
}

// SaveFrame encodes frame into filename, creating parent directories as needed
func SaveFrame(filename string, frame *renderer.Frame, maxColor int) error {
	encode, err := EncoderFor(filename, maxColor)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create output file %s: %w", filename, err)
	}

	if err := encode(file, frame); err != nil {
		file.Close()
		return fmt.Errorf("encode %s: %w", filename, err)
	}
	return file.Close()
}
