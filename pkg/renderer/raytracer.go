package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Config contains rendering configuration
type Config struct {
	TileSize   int     // Size of each square tile in pixels
	NumWorkers int     // Number of parallel workers (0 = use CPU count)
	MinT       float64 // Lower bound on hit distance for every ray
	Gamma      float64 // Display gamma applied when quantizing colors
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		TileSize:   32,
		NumWorkers: 0, // Auto-detect CPU count
		MinT:       0.001,
		Gamma:      2.2,
	}
}

// Raytracer renders a scene through a camera into an image, shading tiles in
// parallel
type Raytracer struct {
	scene  Scene
	camera *Camera
	config Config
	logger core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards output.
func NewRaytracer(scene Scene, camera *Camera, config Config, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		scene:  scene,
		camera: camera,
		config: config,
		logger: logger,
	}
}

// RenderPixel returns the linear color seen through pixel (i, j)
func (rt *Raytracer) RenderPixel(i, j int) core.Vec3 {
	color, _ := rt.scene.TraceRay(rt.camera.GetRay(i, j), rt.config.MinT)
	return color
}

// Render shades every pixel of the image. Cancelling ctx stops the render
// between tiles and returns ctx's error.
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	start := time.Now()
	width, height := rt.camera.Size()
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	tiles := NewTileGrid(width, height, rt.config.TileSize)
	tileRenderer := NewTileRenderer(rt.scene, rt.camera, rt.config.MinT, rt.config.Gamma)
	pool := NewWorkerPool(tileRenderer, len(tiles), rt.config.NumWorkers)

	rt.logger.Printf("Rendering %dx%d in %d tiles using %d workers...\n",
		width, height, len(tiles), pool.GetNumWorkers())

	pool.Start(ctx)
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i, Image: img})
	}

	stats := RenderStats{Workers: pool.GetNumWorkers()}
	var renderErr error

	// Collect every result so the pool can be stopped cleanly
	for range tiles {
		result, ok := pool.GetResult()
		if !ok {
			renderErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
			}
			continue
		}
		stats.Add(result.Stats)
	}
	pool.Stop()

	stats.Duration = time.Since(start)
	if renderErr != nil {
		rt.logger.Printf("Render aborted after %d of %d tiles: %v\n", stats.TilesRendered, len(tiles), renderErr)
		return nil, stats, renderErr
	}

	rt.logger.Printf("Render completed in %v (%.1f%% coverage)\n", stats.Duration, 100*stats.Coverage())
	return img, stats, nil
}
