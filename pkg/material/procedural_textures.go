package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Checker alternates two colors in a uv grid of Scale cells per unit
type Checker struct {
	Scale float64
	Even  core.Vec3
	Odd   core.Vec3
}

// NewChecker creates a uv-space checkerboard
func NewChecker(scale float64, even, odd core.Vec3) *Checker {
	return &Checker{Scale: scale, Even: even, Odd: odd}
}

// Evaluate returns Even or Odd depending on the cell containing uv
func (c *Checker) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	cell := int(math.Floor(uv.X*c.Scale)) + int(math.Floor(uv.Y*c.Scale))
	if cell%2 == 0 {
		return c.Even
	}
	return c.Odd
}

// NewGradientTexture creates a vertical gradient from color1 (top) to color2 (bottom)
func NewGradientTexture(width, height int, color1, color2 core.Vec3) *ImageTexture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		t := float64(y) / float64(max(1, height-1))
		color := color1.Multiply(1.0 - t).Add(color2.Multiply(t))

		for x := 0; x < width; x++ {
			pixels[y*width+x] = color
		}
	}

	return NewImageTexture(width, height, pixels)
}
