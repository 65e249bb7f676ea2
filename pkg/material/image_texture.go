package material

import (
	"image"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width    int
	Height   int
	Pixels   []core.Vec3 // Row-major: Pixels[y*Width + x], row 0 is the top of the image
	Bilinear bool        // Interpolate between neighboring texels
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// NewImageTextureFromImage converts a decoded image into a texture with
// components in [0, 1]
func NewImageTextureFromImage(img image.Image) *ImageTexture {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return NewImageTexture(width, height, pixels)
}

// Evaluate samples the texture at uv. UV wraps to [0, 1); v=0 is the bottom
// of the image.
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.Width == 0 || t.Height == 0 {
		return core.Vec3{}
	}

	u := uv.X - math.Floor(uv.X)
	v := 1.0 - (uv.Y - math.Floor(uv.Y))

	if !t.Bilinear {
		return t.texel(int(u*float64(t.Width)), int(v*float64(t.Height)))
	}

	// Texel centers sit at half-integer coordinates
	x := u*float64(t.Width) - 0.5
	y := v*float64(t.Height) - 0.5
	x0, y0 := math.Floor(x), math.Floor(y)
	fx, fy := x-x0, y-y0
	ix, iy := int(x0), int(y0)

	top := t.texel(ix, iy).Multiply(1 - fx).Add(t.texel(ix+1, iy).Multiply(fx))
	bottom := t.texel(ix, iy+1).Multiply(1 - fx).Add(t.texel(ix+1, iy+1).Multiply(fx))
	return top.Multiply(1 - fy).Add(bottom.Multiply(fy))
}

// texel returns the pixel at (x, y), wrapping horizontally and clamping vertically
func (t *ImageTexture) texel(x, y int) core.Vec3 {
	x %= t.Width
	if x < 0 {
		x += t.Width
	}
	y = max(0, min(t.Height-1, y))
	return t.Pixels[y*t.Width+x]
}
