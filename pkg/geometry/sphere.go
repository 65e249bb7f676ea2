package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
	material.Surface
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, surface material.Surface) *Sphere {
	return &Sphere{
		Center:  center,
		Radius:  radius,
		Surface: surface,
	}
}

// Kind implements Shape
func (s *Sphere) Kind() string { return "sphere" }

// CheckIntersection returns the nearest hit with t > minT
func (s *Sphere) CheckIntersection(ray core.Ray, minT float64) (*core.Intersection, bool) {
	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	if a < parallelEpsilon {
		// Degenerate ray direction
		return nil, false
	}

	oc := ray.Origin.Subtract(s.Center)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer root first
	root := (-halfB - sqrtD) / a
	if root <= minT {
		root = (-halfB + sqrtD) / a
		if root <= minT {
			return nil, false
		}
	}

	position := ray.At(root)
	outwardNormal := position.Subtract(s.Center).Multiply(1.0 / s.Radius)

	return &core.Intersection{
		T:             root,
		Position:      position,
		Normal:        outwardNormal,
		UV:            sphereUV(outwardNormal),
		Direction:     ray.Direction,
		Intersectable: s,
	}, true
}

// Clone implements core.Renderable
func (s *Sphere) Clone() core.Renderable {
	c := *s
	return &c
}

// sphereUV maps a point on the unit sphere to (u, v) in [0,1]²
// u: angle around the Y axis from X=-1, v: angle from Y=-1 to Y=+1
func sphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(max(-1.0, min(1.0, -p.Y)))
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}
