package loaders

import (
	"fmt"

	"github.com/disintegration/imaging"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// ImageData contains loaded image data as Vec3 color array
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// LoadImage loads a PNG, JPEG, GIF, BMP or TIFF image and converts it to a
// Vec3 color array. EXIF orientation is applied.
func LoadImage(filename string) (*ImageData, error) {
	img, err := imaging.Open(filename, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}

	texture := material.NewImageTextureFromImage(img)
	return &ImageData{
		Width:  texture.Width,
		Height: texture.Height,
		Pixels: texture.Pixels,
	}, nil
}

// LoadTexture loads an image file as a texture for surface albedo or tints
func LoadTexture(filename string, bilinear bool) (*material.ImageTexture, error) {
	data, err := LoadImage(filename)
	if err != nil {
		return nil, err
	}
	texture := material.NewImageTexture(data.Width, data.Height, data.Pixels)
	texture.Bilinear = bilinear
	return texture, nil
}
