package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/loaders"
)

// ErrUnknownScene is returned by Create for names that match no built-in
// scene and no scene file
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier, accepted by Create
	Name        string `json:"name"`        // Scene name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "json"
	FilePath    string `json:"filePath"`    // Path to the scene file (json type only)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

const (
	builtInGroup   = "Built-in Scenes"
	jsonSceneGroup = "Scene Files"
)

type builtinScene struct {
	info   SceneInfo
	create func(cameraOverrides ...geometry.CameraConfig) *Scene
}

var builtinScenes = []builtinScene{
	{
		info: SceneInfo{
			ID:          "default",
			Name:        "Default Scene",
			Description: "Green, red and flat white spheres under ambient and two directional lights",
			Group:       builtInGroup,
			Type:        "builtin",
		},
		create: NewDefaultScene,
	},
	{
		info: SceneInfo{
			ID:          "unit-sphere",
			Name:        "Unit Sphere",
			Description: "Single Phong unit sphere rendered at 2x2 pixels",
			Group:       builtInGroup,
			Type:        "builtin",
		},
		create: NewUnitSphereScene,
	},
}

// ListScenes returns the built-in scenes in registration order
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtinScenes))
	for i, builtin := range builtinScenes {
		scenes[i] = builtin.info
	}
	return scenes
}

// Create returns the built-in scene with the given ID. Names ending in .json
// are loaded as scene files. Non-zero fields of the first camera override
// replace the scene's camera settings.
func Create(name string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	for _, builtin := range builtinScenes {
		if builtin.info.ID == name {
			return builtin.create(cameraOverrides...), nil
		}
	}

	if strings.EqualFold(filepath.Ext(name), ".json") {
		return NewFileScene(name, cameraOverrides...)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}

// ListJSONScenes scans scenesDir for .json scene files. A missing directory
// yields an empty list.
func ListJSONScenes(scenesDir string) ([]SceneInfo, error) {
	if _, err := os.Stat(scenesDir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(scenesDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		sceneInfo, err := ParseJSONMetadata(filePath)
		if err != nil {
			// Skip files that are not scene descriptions
			continue
		}
		scenes = append(scenes, sceneInfo)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})

	return scenes, nil
}

// ParseJSONMetadata reads the name, description and group of a scene file,
// falling back to values derived from the file name
func ParseJSONMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	sceneInfo := SceneInfo{
		ID:       filePath,
		Name:     titleCase(nameWithoutExt),
		Group:    jsonSceneGroup,
		Type:     "json",
		FilePath: filePath,
	}

	sceneFile, err := loaders.LoadSceneFile(filePath)
	if err != nil {
		return sceneInfo, err
	}

	if sceneFile.Name != "" {
		sceneInfo.Name = sceneFile.Name
	}
	sceneInfo.Description = sceneFile.Description
	if sceneFile.Group != "" {
		sceneInfo.Group = sceneFile.Group
	}

	return sceneInfo, nil
}

// ListAllScenes returns built-in scenes and the scene files in scenesDir,
// grouped by category with the built-in group first
func ListAllScenes(scenesDir string) ([]SceneGroup, error) {
	jsonScenes, err := ListJSONScenes(scenesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list scene files: %w", err)
	}

	allScenes := append(ListScenes(), jsonScenes...)

	groupMap := make(map[string][]SceneInfo)
	var groupNames []string
	for _, info := range allScenes {
		if _, exists := groupMap[info.Group]; !exists && info.Group != builtInGroup {
			groupNames = append(groupNames, info.Group)
		}
		groupMap[info.Group] = append(groupMap[info.Group], info)
	}
	sort.Strings(groupNames)

	groups := []SceneGroup{{Name: builtInGroup, Scenes: groupMap[builtInGroup]}}
	for _, groupName := range groupNames {
		groups = append(groups, SceneGroup{Name: groupName, Scenes: groupMap[groupName]})
	}

	return groups, nil
}

// titleCase converts a filename-style string to title case
// e.g., "two-spheres" -> "Two Spheres"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
