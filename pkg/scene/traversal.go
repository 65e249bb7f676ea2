package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ClosestIntersection returns the hit with the smallest t > minT across all
// objects. When several objects report the same t the earliest inserted wins.
func (s *Scene) ClosestIntersection(ray core.Ray, minT float64) (*core.Intersection, bool) {
	var closest *core.Intersection

	for _, obj := range s.objects {
		hit, ok := obj.CheckIntersection(ray, minT)
		if !ok || hit.T <= minT {
			continue
		}
		if closest == nil || hit.T < closest.T {
			closest = hit
		}
	}

	return closest, closest != nil
}

// AnyIntersection reports whether any object is hit with minT < t < maxT.
// It stops at the first qualifying hit.
func (s *Scene) AnyIntersection(ray core.Ray, minT, maxT float64) bool {
	for _, obj := range s.objects {
		if hit, ok := obj.CheckIntersection(ray, minT); ok && minT < hit.T && hit.T < maxT {
			return true
		}
	}
	return false
}

// InShadow reports whether position is occluded from light. The shadow ray
// starts at position and points toward the light; blockers beyond a light at
// finite distance do not count.
func (s *Scene) InShadow(light core.Light, position core.Vec3) bool {
	direction := light.DirectionTo(position).Negate()

	// Directional lights report core.InfiniteDistance, leaving the shadow ray unbounded
	maxT := light.DistanceTo(position)

	return s.AnyIntersection(core.NewRay(position, direction), 0, maxT)
}
