package material

import (
	"errors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrEnergy is returned when material coefficients would create or lose energy
var ErrEnergy = errors.New("invalid energy split")

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}
