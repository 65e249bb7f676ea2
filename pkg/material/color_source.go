package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// White is the neutral tint
var White = NewSolidColor(core.NewVec3(1, 1, 1))

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// evaluateOr samples source, falling back to fallback when source is nil
func evaluateOr(source ColorSource, fallback core.Vec3, uv core.Vec2, point core.Vec3) core.Vec3 {
	if source == nil {
		return fallback
	}
	return source.Evaluate(uv, point)
}
