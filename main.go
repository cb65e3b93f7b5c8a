package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/output"
	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Built-in scene name or path to a .json scene file")
	configPath := flag.String("config", "", "JSON scene file (takes precedence over -scene)")
	outputPath := flag.String("o", "", "Output file (.ppm, .png, .jpg); default output/<scene>/render_<timestamp>.ppm")
	maxColor := flag.Int("max-color", output.DefaultMaxColor, "Maximum color value for PPM output (1-65535)")
	lightMode := flag.String("lights", string(renderer.LightSelectionAll), "Directional lights used for shading: 'all' or 'primary'")
	width := flag.Int("width", 0, "Override image width in pixels")
	height := flag.Int("height", 0, "Override image height in pixels")
	scenesDir := flag.String("scenes-dir", "scenes", "Directory searched for .json scene files by -list")
	list := flag.Bool("list", false, "List available scenes and exit")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		showHelp()
		return
	}

	if *list {
		if err := listScenes(*scenesDir); err != nil {
			log.Fatalf("Error listing scenes: %v", err)
		}
		return
	}

	lightSelection, err := parseLightSelection(*lightMode)
	if err != nil {
		log.Fatal(err)
	}

	name := *sceneType
	if *configPath != "" {
		name = *configPath
	}

	fmt.Println("Starting Raycaster...")

	selectedScene, err := createScene(name, geometry.CameraConfig{Width: *width, Height: *height})
	if err != nil {
		log.Fatalf("Error creating scene: %v", err)
	}
	if err := selectedScene.Validate(); err != nil {
		log.Fatalf("Invalid scene %q: %v", name, err)
	}

	filename := *outputPath
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join("output", sceneDirName(name), fmt.Sprintf("render_%s.ppm", timestamp))
	}
	// Fail on a bad output format before spending time rendering
	if _, err := output.EncoderFor(filename, *maxColor); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	raytracer := renderer.NewRaytracer(selectedScene, renderer.NewDefaultLogger())
	raytracer.SetRenderConfig(renderer.RenderConfig{LightSelection: lightSelection})

	frame, _, err := raytracer.Render(ctx)
	if err != nil {
		log.Fatalf("Render failed: %v", err)
	}

	if err := output.SaveFrame(filename, frame, *maxColor); err != nil {
		log.Fatalf("Error saving render: %v", err)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

func showHelp() {
	fmt.Println("Raycaster")
	fmt.Println("Usage: raycaster [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-12s - %s\n", info.ID, info.Description)
	}
	fmt.Println("  <file>.json  - Scene loaded from a JSON description")
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.ppm unless -o is given")
}

func listScenes(scenesDir string) error {
	groups, err := scene.ListAllScenes(scenesDir)
	if err != nil {
		return err
	}
	for _, group := range groups {
		fmt.Printf("%s:\n", group.Name)
		for _, info := range group.Scenes {
			fmt.Printf("  %-24s %s\n", info.ID, info.Description)
		}
	}
	return nil
}

// createScene creates a built-in scene by name, or loads a .json scene file
func createScene(name string, cameraOverride geometry.CameraConfig) (*scene.Scene, error) {
	return scene.Create(name, cameraOverride)
}

func parseLightSelection(mode string) (renderer.LightSelection, error) {
	switch selection := renderer.LightSelection(strings.ToLower(mode)); selection {
	case renderer.LightSelectionAll, renderer.LightSelectionPrimary:
		return selection, nil
	default:
		return "", fmt.Errorf("unknown light selection %q: use 'all' or 'primary'", mode)
	}
}

// sceneDirName turns a scene name or file path into an output directory name
func sceneDirName(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
