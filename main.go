package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	// Parse command line flags; flags override the environment
	sceneType := flag.String("scene", "default", "Scene: a built-in id, json:<name>, a .json file path, or 'mesh'")
	meshFile := flag.String("mesh", "", "OBJ/STL/PLY file rendered by the 'mesh' scene")
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	maxDepth := flag.Int("depth", cfg.MaxDepth, "Maximum reflection/refraction depth (-1 = scene default)")
	workers := flag.Int("workers", cfg.Workers, "Number of parallel workers (0 = CPU count)")
	tileSize := flag.Int("tile", renderer.DefaultConfig().TileSize, "Tile size in pixels")
	outputDir := flag.String("output", cfg.OutputDir, "Output directory")
	thumbSize := flag.Int("thumb", cfg.ThumbnailSize, "Thumbnail size in pixels (0 = none)")
	upload := flag.Bool("upload", false, "Upload the render to the configured S3 bucket")
	list := flag.Bool("list", false, "List available scenes and exit")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Output will be saved to <output>/<scene>/render_<timestamp>.png")
		return
	}

	if *list {
		scenes, err := scene.List(cfg.ScenesDir)
		if err != nil {
			log.Fatalf("Error listing scenes: %v", err)
		}
		for _, info := range scenes {
			fmt.Printf("  %-20s %s\n", info.ID, info.Description)
		}
		return
	}

	fmt.Println("Starting Whitted Raytracer...")

	selectedScene, err := createScene(*sceneType, *meshFile, cfg.ScenesDir, scene.CameraConfig{Width: *width})
	if err != nil {
		log.Fatalf("Error creating scene: %v", err)
	}
	if *maxDepth >= 0 {
		selectedScene.MaxDepth = *maxDepth
	}
	fmt.Printf("Using %s scene (%d primitives, %d lights)\n",
		selectedScene.Name, selectedScene.GetPrimitiveCount(), len(selectedScene.Lights()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Create raytracer
	renderConfig := renderer.DefaultConfig()
	renderConfig.NumWorkers = *workers
	renderConfig.TileSize = *tileSize
	logger := log.New(os.Stdout, "", log.LstdFlags)
	raytracer := renderer.NewRaytracer(selectedScene, renderer.NewCamera(selectedScene.Camera), renderConfig, logger)

	img, stats, err := raytracer.Render(ctx)
	if err != nil {
		log.Fatalf("Render failed: %v", err)
	}
	fmt.Printf("Average luminance: %.3f, %d tiles on %d workers\n",
		renderer.CalculateAverageLuminance(img), stats.TilesRendered, stats.Workers)

	filename := outputFilename(*outputDir, selectedScene.Name, time.Now())
	if err := output.WriteImage(filename, img); err != nil {
		log.Fatalf("Error saving render: %v", err)
	}
	fmt.Printf("Render saved as %s\n", filename)

	var thumbName string
	if *thumbSize > 0 {
		thumbName = output.ThumbnailName(filename)
		if err := output.WriteImage(thumbName, output.Thumbnail(img, *thumbSize)); err != nil {
			log.Fatalf("Error saving thumbnail: %v", err)
		}
		fmt.Printf("Thumbnail saved as %s\n", thumbName)
	}

	if *upload {
		if !cfg.S3.Enabled() {
			log.Fatalf("Upload requested but S3_BUCKET, S3_ACCESS_KEY and S3_SECRET_KEY are not all set")
		}
		publisher, err := output.NewS3Publisher(cfg.S3, logger)
		if err != nil {
			log.Fatalf("Error creating S3 publisher: %v", err)
		}
		for _, name := range []string{filename, thumbName} {
			if name == "" {
				continue
			}
			url, err := uploadFile(ctx, publisher, *outputDir, name)
			if err != nil {
				log.Fatalf("Upload failed: %v", err)
			}
			fmt.Printf("Published %s\n", url)
		}
	}
}

// createScene resolves a scene argument: "mesh" with a mesh file, or anything
// loaders.CreateScene accepts
func createScene(sceneType, meshFile, scenesDir string, camera scene.CameraConfig) (*scene.Scene, error) {
	if sceneType == "mesh" {
		if meshFile == "" {
			return nil, fmt.Errorf("the mesh scene requires -mesh")
		}
		return loaders.NewMeshScene(meshFile, camera)
	}
	return loaders.CreateScene(sceneType, scenesDir, camera)
}

// outputFilename returns <dir>/<scene>/render_<timestamp>.png
func outputFilename(dir, sceneName string, now time.Time) string {
	if sceneName == "" {
		sceneName = "untitled"
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join(dir, sceneName, fmt.Sprintf("render_%s.png", timestamp))
}

// uploadFile publishes a written render under its path relative to dir
func uploadFile(ctx context.Context, publisher *output.Publisher, dir, filename string) (string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", filename, err)
	}
	key, err := filepath.Rel(dir, filename)
	if err != nil {
		key = filepath.Base(filename)
	}
	return publisher.Upload(ctx, filepath.ToSlash(key), data, "image/png")
}
