package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
)

func TestCreateScene(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "spheres.json")
	content := `{"spheres": [{"center": [0,0,-2], "radius": 1, "material": {"diffuse": [255,0,0]}}]}`
	if err := os.WriteFile(jsonPath, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write scene file: %v", err)
	}

	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		// Built-in scenes
		{"default scene", "default", false},
		{"unit sphere scene", "unit-sphere", false},

		// Scene files
		{"json scene by path", jsonPath, false},
		{"bundled json scene", "scenes/two-lights.json", false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"missing json file", filepath.Join(dir, "missing.json"), true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := createScene(tt.sceneType, geometry.CameraConfig{})

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if s != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s'", tt.sceneType)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if s == nil {
				t.Fatalf("Expected scene for valid scene type '%s', got nil", tt.sceneType)
			}
			if err := s.Validate(); err != nil {
				t.Errorf("Scene '%s' should validate, got %v", tt.sceneType, err)
			}
		})
	}
}

func TestCreateScene_UnknownIsSentinel(t *testing.T) {
	_, err := createScene("nonexistent", geometry.CameraConfig{})
	if !errors.Is(err, scene.ErrUnknownScene) {
		t.Errorf("Expected scene.ErrUnknownScene, got %v", err)
	}
}

func TestCreateScene_CameraOverride(t *testing.T) {
	s, err := createScene("default", geometry.CameraConfig{Width: 32, Height: 24})
	if err != nil {
		t.Fatalf("createScene failed: %v", err)
	}
	if cam := s.GetCamera(); cam.Width != 32 || cam.Height != 24 {
		t.Errorf("Expected 32x24, got %dx%d", cam.Width, cam.Height)
	}
}

func TestParseLightSelection(t *testing.T) {
	tests := []struct {
		mode        string
		expected    renderer.LightSelection
		expectError bool
	}{
		{"all", renderer.LightSelectionAll, false},
		{"primary", renderer.LightSelectionPrimary, false},
		{"PRIMARY", renderer.LightSelectionPrimary, false},
		{"first", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			selection, err := parseLightSelection(tt.mode)
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for mode '%s'", tt.mode)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if selection != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, selection)
			}
		})
	}
}

func TestSceneDirName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"default", "default"},
		{"unit-sphere", "unit-sphere"},
		{"scenes/two-lights.json", "two-lights"},
		{"scenes/subdir/my-scene.json", "my-scene"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sceneDirName(tt.name); got != tt.expected {
				t.Errorf("sceneDirName(%q) = %q, want %q", tt.name, got, tt.expected)
			}
		})
	}
}
