package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// NewMetal creates a mirror-like surface. reflectance is the fraction of light
// reflected (1 for a perfect mirror), tint colors the reflection.
func NewMetal(tint core.Vec3, reflectance float64) Surface {
	return Surface{
		Albedo:         NewSolidColor(tint),
		Diffuse:        1.0,
		Specular:       0.5,
		Shininess:      64,
		Reflect:        reflectance,
		ReflectiveTint: NewSolidColor(tint),
	}
}
