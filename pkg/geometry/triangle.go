package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3 // The three vertices, counter-clockwise seen from the outside
	material.Surface

	// Optional per-vertex attributes
	N0, N1, N2    core.Vec3 // Vertex normals, used when smooth is set
	UV0, UV1, UV2 core.Vec2 // Texture coordinates

	normal core.Vec3 // Cached geometric normal
	smooth bool
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, surface material.Surface) *Triangle {
	t := &Triangle{
		V0:      v0,
		V1:      v1,
		V2:      v2,
		Surface: surface,
		UV0:     core.NewVec2(0, 0),
		UV1:     core.NewVec2(1, 0),
		UV2:     core.NewVec2(0, 1),
	}
	t.computeNormal()
	return t
}

// SetVertexNormals enables smooth shading with the given per-vertex normals
func (t *Triangle) SetVertexNormals(n0, n1, n2 core.Vec3) {
	t.N0, t.N1, t.N2 = n0.Normalize(), n1.Normalize(), n2.Normalize()
	t.smooth = true
}

// SetUVs sets the per-vertex texture coordinates
func (t *Triangle) SetUVs(uv0, uv1, uv2 core.Vec2) {
	t.UV0, t.UV1, t.UV2 = uv0, uv1, uv2
}

// computeNormal calculates and caches the triangle's normal vector
func (t *Triangle) computeNormal() {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)
	t.normal = edge1.Cross(edge2).Normalize()
}

// Kind implements Shape
func (t *Triangle) Kind() string { return "triangle" }

// GetNormal returns the triangle's geometric normal
func (t *Triangle) GetNormal() core.Vec3 {
	return t.normal
}

// CheckIntersection tests the ray against the triangle using the Möller-Trumbore algorithm
func (t *Triangle) CheckIntersection(ray core.Ray, minT float64) (*core.Intersection, bool) {
	hit, ok := t.intersect(ray, minT)
	if !ok {
		return nil, false
	}
	hit.Intersectable = t
	return hit, true
}

// intersect performs the geometric test without setting the back-reference
func (t *Triangle) intersect(ray core.Ray, minT float64) (*core.Intersection, bool) {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)

	// Ray lies in (or parallel to) the plane of the triangle
	if det > -parallelEpsilon && det < parallelEpsilon {
		return nil, false
	}

	f := 1.0 / det
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return nil, false
	}

	tHit := f * edge2.Dot(q)
	if tHit <= minT {
		return nil, false
	}

	w := 1.0 - u - v
	normal := t.normal
	if t.smooth {
		normal = t.N0.Multiply(w).Add(t.N1.Multiply(u)).Add(t.N2.Multiply(v)).Normalize()
	}

	uv := core.NewVec2(
		w*t.UV0.X+u*t.UV1.X+v*t.UV2.X,
		w*t.UV0.Y+u*t.UV1.Y+v*t.UV2.Y,
	)

	return &core.Intersection{
		T:         tHit,
		Position:  ray.At(tHit),
		Normal:    normal,
		UV:        uv,
		Direction: ray.Direction,
	}, true
}

// Clone implements core.Renderable
func (t *Triangle) Clone() core.Renderable {
	c := *t
	return &c
}
