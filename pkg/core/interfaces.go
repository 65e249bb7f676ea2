package core

import "math"

// InfiniteDistance is reported by lights that sit infinitely far away.
// Shadow rays toward such a light have no far cutoff.
var InfiniteDistance = math.Inf(1)

// IsInfiniteDistance reports whether d is the infinite-distance sentinel
func IsInfiniteDistance(d float64) bool {
	return math.IsInf(d, 1)
}

// Intersection describes where and how a ray met a surface.
// It is only produced by a successful intersection test.
type Intersection struct {
	T         float64 // Parameter t along the ray
	Position  Vec3    // World-space hit point, equal to ray.At(T)
	Normal    Vec3    // Outward unit surface normal
	UV        Vec2    // Surface parameterization for texture lookups
	Direction Vec3    // Direction of the incident ray

	// Intersectable is the object that produced the hit. It is a borrowed
	// reference; the scene owns the object.
	Intersectable Intersectable
}

// FrontFace reports whether the incident ray arrived from the outside
func (i *Intersection) FrontFace() bool {
	return i.Direction.Dot(i.Normal) < 0
}

// FacingNormal returns the surface normal oriented toward the incident ray
func (i *Intersection) FacingNormal() Vec3 {
	if i.FrontFace() {
		return i.Normal
	}
	return i.Normal.Negate()
}

// Intersectable is anything a ray can hit
type Intersectable interface {
	// CheckIntersection returns the nearest hit with t > minT, if any
	CheckIntersection(ray Ray, minT float64) (*Intersection, bool)
}

// Light is a light source illuminating surface points
type Light interface {
	// DirectionTo returns the unit direction light travels to reach p
	DirectionTo(p Vec3) Vec3
	// DistanceTo returns the distance from the light to p, or InfiniteDistance
	DistanceTo(p Vec3) float64
	// IncidentRadianceAt returns the light intensity arriving at p
	IncidentRadianceAt(p Vec3) Vec3
	// Clone returns an independent copy of the light
	Clone() Light
}

// Renderable is an intersectable object with material behavior
type Renderable interface {
	Intersectable

	Clone() Renderable
	Reflectance() float64
	Refractance() float64
	IndexOfRefraction() float64

	// Shade returns the local (direct) color contribution of light at hit
	Shade(light Light, hit *Intersection) Vec3
	SampleReflectiveColor(uv Vec2) Vec3
	SampleRefractiveColor(uv Vec2) Vec3
}

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// NopLogger discards all log output
type NopLogger struct{}

// Printf implements Logger
func (NopLogger) Printf(format string, args ...interface{}) {}
