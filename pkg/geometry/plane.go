package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Unit normal
	material.Surface

	tangent   core.Vec3 // In-plane basis for uv coordinates
	bitangent core.Vec3
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, surface material.Surface) *Plane {
	n := normal.Normalize()

	// Any vector not parallel to the normal seeds the tangent basis
	seed := core.NewVec3(1, 0, 0)
	if math.Abs(n.X) > 0.9 {
		seed = core.NewVec3(0, 0, 1)
	}
	tangent := seed.Cross(n).Normalize()

	return &Plane{
		Point:     point,
		Normal:    n,
		Surface:   surface,
		tangent:   tangent,
		bitangent: n.Cross(tangent),
	}
}

// Kind implements Shape
func (p *Plane) Kind() string { return "plane" }

// CheckIntersection returns the hit with t > minT, if any
func (p *Plane) CheckIntersection(ray core.Ray, minT float64) (*core.Intersection, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray parallel to (or lying in) the plane
	if math.Abs(denominator) < parallelEpsilon {
		return nil, false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t <= minT {
		return nil, false
	}

	position := ray.At(t)
	local := position.Subtract(p.Point)

	return &core.Intersection{
		T:             t,
		Position:      position,
		Normal:        p.Normal,
		UV:            core.NewVec2(local.Dot(p.tangent), local.Dot(p.bitangent)),
		Direction:     ray.Direction,
		Intersectable: p,
	}, true
}

// Clone implements core.Renderable
func (p *Plane) Clone() core.Renderable {
	c := *p
	return &c
}
