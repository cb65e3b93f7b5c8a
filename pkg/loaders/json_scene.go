package loaders

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Triple is a JSON array of three numbers: a color, point or direction
type Triple [3]float64

// SceneFile contains all parsed data of a JSON scene description
type SceneFile struct {
	// Optional metadata used by scene discovery
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Group       string `json:"group,omitempty"`

	Background *Triple       `json:"background,omitempty"`
	Camera     CameraEntry   `json:"camera"`
	Lights     []LightEntry  `json:"lights"`
	Spheres    []SphereEntry `json:"spheres"`
}

// CameraEntry describes the camera. Zero fields take the camera defaults.
type CameraEntry struct {
	Origin     *Triple `json:"origin,omitempty"`
	Width      int     `json:"width,omitempty"`
	Height     int     `json:"height,omitempty"`
	FOV        float64 `json:"fov,omitempty"`
	Radians    bool    `json:"radians,omitempty"`
	ImagePlane float64 `json:"imagePlane,omitempty"`
	Near       float64 `json:"near,omitempty"`
	Far        float64 `json:"far,omitempty"`
}

// LightEntry describes an ambient or directional light
type LightEntry struct {
	Type      string  `json:"type"`
	Color     Triple  `json:"color"`
	Direction *Triple `json:"direction,omitempty"` // directional lights only
}

// SphereEntry describes a sphere and its material
type SphereEntry struct {
	Center   Triple        `json:"center"`
	Radius   float64       `json:"radius"`
	Material MaterialEntry `json:"material"`
}

// MaterialEntry describes a constant or Phong material
type MaterialEntry struct {
	Type       string   `json:"type"`
	Diffuse    Triple   `json:"diffuse"`
	Specular   *Triple  `json:"specular,omitempty"`
	Exponent   *int     `json:"exponent,omitempty"`
	Reflective *Triple  `json:"reflective,omitempty"`
	IOR        *float64 `json:"ior,omitempty"`
}

// Recognized type names
const (
	LightTypeAmbient      = "ambient"
	LightTypeDirectional  = "directional"
	MaterialTypeConstant  = "constant"
	MaterialTypePhong     = "phong"
	defaultMaterialType   = MaterialTypePhong
	maxSceneFileSizeBytes = 16 << 20
)

// ParseSceneJSON decodes and checks a JSON scene description from an io.Reader.
// Unknown fields are rejected.
func ParseSceneJSON(reader io.Reader) (*SceneFile, error) {
	decoder := json.NewDecoder(io.LimitReader(reader, maxSceneFileSizeBytes))
	decoder.DisallowUnknownFields()

	var sceneFile SceneFile
	if err := decoder.Decode(&sceneFile); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}

	if err := sceneFile.check(); err != nil {
		return nil, err
	}
	return &sceneFile, nil
}

// LoadSceneFile loads and parses a JSON scene file
func LoadSceneFile(filename string) (*SceneFile, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open scene file %s: %w", filename, err)
	}
	defer file.Close()

	sceneFile, err := ParseSceneJSON(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return sceneFile, nil
}

// check normalizes type names and rejects entries the scene builder cannot map
func (sf *SceneFile) check() error {
	for i := range sf.Lights {
		light := &sf.Lights[i]
		light.Type = strings.ToLower(strings.TrimSpace(light.Type))
		switch light.Type {
		case LightTypeAmbient:
		case LightTypeDirectional:
			if light.Direction == nil {
				return fmt.Errorf("light %d: directional light requires a direction", i)
			}
		default:
			return fmt.Errorf("light %d: unknown light type %q", i, light.Type)
		}
	}

	for i := range sf.Spheres {
		mat := &sf.Spheres[i].Material
		mat.Type = strings.ToLower(strings.TrimSpace(mat.Type))
		if mat.Type == "" {
			mat.Type = defaultMaterialType
		}
		switch mat.Type {
		case MaterialTypeConstant, MaterialTypePhong:
		default:
			return fmt.Errorf("sphere %d: unknown material type %q", i, mat.Type)
		}
	}

	return nil
}
