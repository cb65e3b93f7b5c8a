package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/renderer"
)

func testFrame() *renderer.Frame {
	frame := renderer.NewFrame(2, 2)
	frame.Set(0, 0, core.NewColor(255, 0, 127.6))
	frame.Set(1, 0, core.NewColor(-5, 300, 51.2))
	frame.Set(0, 1, core.NewColor(136, 17, 0))
	frame.Set(1, 1, core.NewColor(0, 0, 0))
	return frame
}

func TestNewPPMWriter_MaxColorBounds(t *testing.T) {
	testCases := []struct {
		maxColor int
		valid    bool
	}{
		{-1, false},
		{0, false},
		{1, true},
		{255, true},
		{65535, true},
		{65536, false},
	}

	for _, tc := range testCases {
		_, err := NewPPMWriter(&bytes.Buffer{}, tc.maxColor)
		if tc.valid && err != nil {
			t.Errorf("maxColor %d: expected no error, got %v", tc.maxColor, err)
		}
		if !tc.valid && !errors.Is(err, ErrInvalidMaxColor) {
			t.Errorf("maxColor %d: expected ErrInvalidMaxColor, got %v", tc.maxColor, err)
		}
	}
}

func TestPPMWriter_WriteFrame(t *testing.T) {
	testCases := []struct {
		name     string
		maxColor int
		expected string
	}{
		{
			name:     "8-bit",
			maxColor: 255,
			expected: "P3\n2 2\n255\n255 0 128 0 255 51\n136 17 0 0 0 0\n",
		},
		{
			name:     "4-bit",
			maxColor: 15,
			expected: "P3\n2 2\n15\n15 0 8 0 15 3\n8 1 0 0 0 0\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			ppm, err := NewPPMWriter(&buf, tc.maxColor)
			if err != nil {
				t.Fatalf("NewPPMWriter failed: %v", err)
			}
			if err := ppm.WriteFrame(testFrame()); err != nil {
				t.Fatalf("WriteFrame failed: %v", err)
			}
			if buf.String() != tc.expected {
				t.Errorf("Expected:\n%q\ngot:\n%q", tc.expected, buf.String())
			}
		})
	}
}

func TestWritePPM(t *testing.T) {
	var buf bytes.Buffer
	frame := renderer.NewFrame(1, 1)
	frame.Set(0, 0, core.NewColor(51.2, 51.2, 51.2))

	if err := WritePPM(&buf, frame); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}
	if expected := "P3\n1 1\n255\n51 51 51\n"; buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestPPMWriter_WriteError(t *testing.T) {
	ppm, err := NewPPMWriter(failingWriter{}, 255)
	if err != nil {
		t.Fatalf("NewPPMWriter failed: %v", err)
	}
	if err := ppm.WriteFrame(testFrame()); err == nil {
		t.Error("Expected write error")
	}
}
