package material

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Surface describes how an object responds to light: Phong local shading plus
// the fractions of incoming light carried away by reflection and refraction.
//
// Color sources are treated as immutable and are shared between copies.
type Surface struct {
	Albedo    ColorSource // Diffuse color
	Diffuse   float64     // Diffuse weight (kd)
	Specular  float64     // Specular weight (ks)
	Shininess float64     // Phong exponent

	Reflect         float64     // Fraction of light transported by mirror reflection
	Refract         float64     // Fraction of light transported by refraction
	RefractiveIndex float64     // Index of refraction of the interior
	ReflectiveTint  ColorSource // Tint applied to reflected light, white when nil
	RefractiveTint  ColorSource // Tint applied to refracted light, white when nil
}

// Reflectance returns the reflected fraction of incoming light
func (s Surface) Reflectance() float64 {
	return s.Reflect
}

// Refractance returns the refracted fraction of incoming light
func (s Surface) Refractance() float64 {
	return s.Refract
}

// IndexOfRefraction returns the interior refractive index, 1 when unset
func (s Surface) IndexOfRefraction() float64 {
	if s.RefractiveIndex <= 0 {
		return 1.0
	}
	return s.RefractiveIndex
}

// SampleReflectiveColor returns the reflection tint at uv
func (s Surface) SampleReflectiveColor(uv core.Vec2) core.Vec3 {
	return evaluateOr(s.ReflectiveTint, White.Color, uv, core.Vec3{})
}

// SampleRefractiveColor returns the refraction tint at uv
func (s Surface) SampleRefractiveColor(uv core.Vec2) core.Vec3 {
	return evaluateOr(s.RefractiveTint, White.Color, uv, core.Vec3{})
}

// Shade evaluates the Phong model for a single light at hit
func (s Surface) Shade(light core.Light, hit *core.Intersection) core.Vec3 {
	normal := hit.FacingNormal()
	toLight := light.DirectionTo(hit.Position).Negate()

	cosTheta := normal.Dot(toLight)
	if cosTheta <= 0 {
		return core.Vec3{}
	}

	radiance := light.IncidentRadianceAt(hit.Position)
	if radiance.IsZero() {
		return core.Vec3{}
	}

	albedo := evaluateOr(s.Albedo, White.Color, hit.UV, hit.Position)
	color := albedo.Multiply(s.Diffuse * cosTheta)

	if s.Specular > 0 {
		toViewer := hit.Direction.Negate().Normalize()
		mirrored := core.Reflect(toLight.Negate(), normal)
		if cosAlpha := mirrored.Dot(toViewer); cosAlpha > 0 {
			spec := s.Specular * math.Pow(cosAlpha, s.Shininess)
			color = color.Add(core.NewVec3(spec, spec, spec))
		}
	}

	return color.MultiplyVec(radiance)
}

// Validate checks the energy split invariant: each coefficient in [0,1]
// and reflectance + refractance <= 1.
func (s Surface) Validate() error {
	const tolerance = 1e-9

	if s.Reflect < 0 || s.Reflect > 1 {
		return fmt.Errorf("%w: reflectance %g outside [0,1]", ErrEnergy, s.Reflect)
	}
	if s.Refract < 0 || s.Refract > 1 {
		return fmt.Errorf("%w: refractance %g outside [0,1]", ErrEnergy, s.Refract)
	}
	if s.Reflect+s.Refract > 1+tolerance {
		return fmt.Errorf("%w: reflectance %g + refractance %g exceeds 1", ErrEnergy, s.Reflect, s.Refract)
	}
	if s.RefractiveIndex < 0 {
		return fmt.Errorf("%w: negative refractive index %g", ErrEnergy, s.RefractiveIndex)
	}
	return nil
}
