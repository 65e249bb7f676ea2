package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// NewLambertian creates a purely diffuse surface with the given albedo
func NewLambertian(albedo core.Vec3) Surface {
	return NewTexturedLambertian(NewSolidColor(albedo))
}

// NewTexturedLambertian creates a purely diffuse surface colored by a texture
func NewTexturedLambertian(albedo ColorSource) Surface {
	return Surface{
		Albedo:  albedo,
		Diffuse: 1.0,
	}
}

// NewPhong creates a diffuse surface with a specular highlight
func NewPhong(albedo core.Vec3, specular, shininess float64) Surface {
	return Surface{
		Albedo:    NewSolidColor(albedo),
		Diffuse:   1.0,
		Specular:  specular,
		Shininess: shininess,
	}
}
