package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ShadowBias is how far hit points are pushed off the surface before spawning
// shadow, reflection and refraction rays.
const ShadowBias = 1e-6

// ShadeClosestIntersection returns the color seen along ray: direct lighting
// at the closest hit beyond minT plus recursively traced reflection and
// refraction. Rays that hit nothing return the background color.
func (s *Scene) ShadeClosestIntersection(ray core.Ray, minT float64) core.Vec3 {
	color, _ := s.TraceRay(ray, minT)
	return color
}

// TraceRay is ShadeClosestIntersection that also reports whether the ray hit
// anything, using a single closest-intersection query
func (s *Scene) TraceRay(ray core.Ray, minT float64) (core.Vec3, bool) {
	hit, ok := s.ClosestIntersection(ray, minT)
	if !ok {
		return s.Background, false
	}
	return s.shadeHit(ray, hit, minT), true
}

// shadeHit shades a known intersection of ray
func (s *Scene) shadeHit(ray core.Ray, hit *core.Intersection, minT float64) core.Vec3 {
	renderable, ok := hit.Intersectable.(core.Renderable)
	if !ok {
		return s.Background
	}

	reflectance := renderable.Reflectance()
	refractance := renderable.Refractance()
	normal := hit.FacingNormal()
	above := hit.Position.Add(normal.Multiply(ShadowBias))

	color := core.Vec3{}

	// Only the fraction not carried away by reflection or refraction is shaded locally
	if absorbed := 1 - reflectance - refractance; absorbed > 0 {
		for _, light := range s.lights {
			if s.InShadow(light, above) {
				continue
			}
			color = color.Add(renderable.Shade(light, hit).Multiply(absorbed))
		}
	}

	if ray.Depth >= s.MaxDepth {
		return color
	}

	incoming := ray.Direction.Normalize()

	if reflectance > 0 {
		reflected := ray.Spawn(above, core.Reflect(incoming, normal))
		reflectedColor := s.ShadeClosestIntersection(reflected, minT)
		color = color.Add(reflectedColor.MultiplyVec(renderable.SampleReflectiveColor(hit.UV)).Multiply(reflectance))
	}

	if refractance > 0 {
		refracted := s.refractedRay(ray, hit, incoming, renderable.IndexOfRefraction())
		refractedColor := s.ShadeClosestIntersection(refracted, minT)
		color = color.Add(refractedColor.MultiplyVec(renderable.SampleRefractiveColor(hit.UV)).Multiply(refractance))
	}

	return color
}

// refractedRay bends the incoming direction through the surface at hit.
// Under total internal reflection the ray is mirrored instead.
func (s *Scene) refractedRay(ray core.Ray, hit *core.Intersection, incoming core.Vec3, ior float64) core.Ray {
	normal := hit.FacingNormal()

	eta := ior
	if hit.FrontFace() {
		eta = 1.0 / ior
	}

	if direction, ok := core.Refract(incoming, normal, eta); ok {
		below := hit.Position.Subtract(normal.Multiply(ShadowBias))
		return ray.Spawn(below, direction)
	}

	above := hit.Position.Add(normal.Multiply(ShadowBias))
	return ray.Spawn(above, core.Reflect(incoming, normal))
}
