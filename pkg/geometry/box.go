package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Box is an axis-aligned box spanning Min to Max
type Box struct {
	Min, Max core.Vec3
	material.Surface
}

// NewBox creates an axis-aligned box from two opposite corners
func NewBox(a, b core.Vec3, surface material.Surface) *Box {
	return &Box{
		Min:     core.NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)),
		Max:     core.NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)),
		Surface: surface,
	}
}

// Kind implements Shape
func (b *Box) Kind() string { return "box" }

// CheckIntersection intersects the ray with the box using the slab method
func (b *Box) CheckIntersection(ray core.Ray, minT float64) (*core.Intersection, bool) {
	origin := [3]float64{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	dir := [3]float64{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}
	lo := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	hi := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}

	tNear, tFar := math.Inf(-1), math.Inf(1)
	nearAxis, farAxis := -1, -1

	for axis := 0; axis < 3; axis++ {
		if math.Abs(dir[axis]) < parallelEpsilon {
			// Parallel to this slab: miss unless the origin lies between the planes
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return nil, false
			}
			continue
		}

		t0 := (lo[axis] - origin[axis]) / dir[axis]
		t1 := (hi[axis] - origin[axis]) / dir[axis]
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tNear {
			tNear, nearAxis = t0, axis
		}
		if t1 < tFar {
			tFar, farAxis = t1, axis
		}
		if tNear > tFar {
			return nil, false
		}
	}

	t, axis := tNear, nearAxis
	if t <= minT {
		t, axis = tFar, farAxis
		if t <= minT {
			return nil, false
		}
	}
	if axis < 0 {
		return nil, false
	}

	position := ray.At(t)
	normal, uv := b.faceAt(position, axis)

	return &core.Intersection{
		T:             t,
		Position:      position,
		Normal:        normal,
		UV:            uv,
		Direction:     ray.Direction,
		Intersectable: b,
	}, true
}

// faceAt returns the outward normal and face-local uv for a point on the face
// perpendicular to axis
func (b *Box) faceAt(p core.Vec3, axis int) (core.Vec3, core.Vec2) {
	size := b.Max.Subtract(b.Min)
	rel := p.Subtract(b.Min)
	center := b.Min.Add(b.Max).Multiply(0.5)

	switch axis {
	case 0:
		n := core.NewVec3(math.Copysign(1, p.X-center.X), 0, 0)
		return n, core.NewVec2(safeDiv(rel.Z, size.Z), safeDiv(rel.Y, size.Y))
	case 1:
		n := core.NewVec3(0, math.Copysign(1, p.Y-center.Y), 0)
		return n, core.NewVec2(safeDiv(rel.X, size.X), safeDiv(rel.Z, size.Z))
	default:
		n := core.NewVec3(0, 0, math.Copysign(1, p.Z-center.Z))
		return n, core.NewVec2(safeDiv(rel.X, size.X), safeDiv(rel.Y, size.Y))
	}
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// Clone implements core.Renderable
func (b *Box) Clone() core.Renderable {
	c := *b
	return &c
}
