package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Scene is the part of a scene the renderer needs: one color per primary ray
type Scene interface {
	TraceRay(ray core.Ray, minT float64) (core.Vec3, bool)
}

// TileRenderer shades the pixels of individual tiles. It holds no mutable
// state, so one instance is shared by all workers.
type TileRenderer struct {
	scene  Scene
	camera *Camera
	minT   float64
	gamma  float64
}

// NewTileRenderer creates a new tile renderer for the given scene and camera
func NewTileRenderer(scene Scene, camera *Camera, minT, gamma float64) *TileRenderer {
	return &TileRenderer{
		scene:  scene,
		camera: camera,
		minT:   minT,
		gamma:  gamma,
	}
}

// RenderTileBounds shades every pixel within bounds into img. Tiles never
// overlap, so concurrent calls on the same image are safe.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, img *image.RGBA) RenderStats {
	stats := RenderStats{
		TotalPixels:   bounds.Dx() * bounds.Dy(),
		TilesRendered: 1,
	}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			pixel, hit := tr.scene.TraceRay(tr.camera.GetRay(i, j), tr.minT)
			if !hit {
				stats.BackgroundPixels++
			}
			img.SetRGBA(i, j, Vec3ToColor(pixel, tr.gamma))
		}
	}

	return stats
}

// Vec3ToColor converts a linear color to RGBA with gamma correction and clamping
func Vec3ToColor(colorVec core.Vec3, gamma float64) color.RGBA {
	// Negative components would turn into NaN under the gamma curve
	colorVec = colorVec.Clamp(0.0, 1.0)

	if gamma > 0 && gamma != 1 {
		colorVec = colorVec.GammaCorrect(gamma)
	}

	return color.RGBA{
		R: uint8(255*colorVec.X + 0.5),
		G: uint8(255*colorVec.Y + 0.5),
		B: uint8(255*colorVec.Z + 0.5),
		A: 255,
	}
}
