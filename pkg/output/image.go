package output

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// DefaultThumbnailSize is the longest edge of generated thumbnails
const DefaultThumbnailSize = 256

// EncodePNG encodes img as PNG bytes
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteImage saves img to filename, creating parent directories as needed.
// The format follows the file extension.
func WriteImage(filename string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := imaging.Save(img, filename); err != nil {
		return fmt.Errorf("failed to save %s: %w", filename, err)
	}
	return nil
}

// Thumbnail scales img down to fit within a size x size square, keeping its
// aspect ratio. Images already small enough are returned unchanged.
func Thumbnail(img image.Image, size int) image.Image {
	if size <= 0 {
		size = DefaultThumbnailSize
	}
	return resize.Thumbnail(uint(size), uint(size), img, resize.Bilinear)
}

// ThumbnailName returns the companion thumbnail path for an image file,
// e.g. render.png -> render_thumb.png
func ThumbnailName(filename string) string {
	ext := filepath.Ext(filename)
	return filename[:len(filename)-len(ext)] + "_thumb" + ext
}
