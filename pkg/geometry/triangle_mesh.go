package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// TriangleMesh is a collection of triangles sharing one surface.
// Intersection is a linear scan over the triangles.
type TriangleMesh struct {
	triangles []Triangle
	material.Surface
}

// TriangleMeshOptions contains optional per-vertex attributes
type TriangleMeshOptions struct {
	Normals []core.Vec3 // Optional vertex normals, indexed like vertices
	UVs     []core.Vec2 // Optional texture coordinates, indexed like vertices
}

// NewTriangleMesh creates a new triangle mesh from vertices and face indices
// vertices: array of 3D points
// faces: array of triangle indices (each group of 3 indices forms a triangle)
// options: optional parameters (can be nil for basic mesh)
func NewTriangleMesh(vertices []core.Vec3, faces []int, surface material.Surface, options *TriangleMeshOptions) (*TriangleMesh, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("face indices must be a multiple of 3, got %d", len(faces))
	}
	if options != nil {
		if options.Normals != nil && len(options.Normals) != len(vertices) {
			return nil, fmt.Errorf("got %d normals for %d vertices", len(options.Normals), len(vertices))
		}
		if options.UVs != nil && len(options.UVs) != len(vertices) {
			return nil, fmt.Errorf("got %d uvs for %d vertices", len(options.UVs), len(vertices))
		}
	}

	mesh := &TriangleMesh{
		triangles: make([]Triangle, 0, len(faces)/3),
		Surface:   surface,
	}

	for i := 0; i < len(faces); i += 3 {
		i0, i1, i2 := faces[i], faces[i+1], faces[i+2]
		for _, idx := range []int{i0, i1, i2} {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("face %d references vertex %d out of %d", i/3, idx, len(vertices))
			}
		}

		tri := NewTriangle(vertices[i0], vertices[i1], vertices[i2], surface)
		if options != nil && options.Normals != nil {
			tri.SetVertexNormals(options.Normals[i0], options.Normals[i1], options.Normals[i2])
		}
		if options != nil && options.UVs != nil {
			tri.SetUVs(options.UVs[i0], options.UVs[i1], options.UVs[i2])
		}
		mesh.triangles = append(mesh.triangles, *tri)
	}

	return mesh, nil
}

// NewTriangleMeshFromTriangles builds a mesh from existing triangles
func NewTriangleMeshFromTriangles(triangles []*Triangle, surface material.Surface) *TriangleMesh {
	mesh := &TriangleMesh{
		triangles: make([]Triangle, len(triangles)),
		Surface:   surface,
	}
	for i, tri := range triangles {
		mesh.triangles[i] = *tri
		mesh.triangles[i].Surface = surface
	}
	return mesh
}

// Kind implements Shape
func (m *TriangleMesh) Kind() string { return "mesh" }

// GetTriangleCount returns the number of triangles in the mesh
func (m *TriangleMesh) GetTriangleCount() int {
	return len(m.triangles)
}

// Triangles returns independent copies of the mesh triangles, each carrying the mesh surface
func (m *TriangleMesh) Triangles() []core.Renderable {
	out := make([]core.Renderable, len(m.triangles))
	for i := range m.triangles {
		tri := m.triangles[i]
		tri.Surface = m.Surface
		out[i] = &tri
	}
	return out
}

// CheckIntersection returns the closest triangle hit with t > minT
func (m *TriangleMesh) CheckIntersection(ray core.Ray, minT float64) (*core.Intersection, bool) {
	var closest *core.Intersection

	for i := range m.triangles {
		if hit, ok := m.triangles[i].intersect(ray, minT); ok {
			if closest == nil || hit.T < closest.T {
				closest = hit
			}
		}
	}

	if closest == nil {
		return nil, false
	}
	closest.Intersectable = m
	return closest, true
}

// Clone implements core.Renderable
func (m *TriangleMesh) Clone() core.Renderable {
	c := *m
	c.triangles = make([]Triangle, len(m.triangles))
	copy(c.triangles, m.triangles)
	return &c
}
