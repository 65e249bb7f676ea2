package loaders

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fogleman/fauxgl"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// ErrUnsupportedMesh is returned for mesh files with an unknown extension
var ErrUnsupportedMesh = errors.New("unsupported mesh format")

// MeshOptions controls how a loaded mesh is placed in the scene
type MeshOptions struct {
	Normalize bool      // Fit the mesh into the [-1, 1] cube before scaling
	Smooth    bool      // Compute smooth vertex normals when the file has none
	Scale     float64   // Uniform scale, 1 when zero
	Offset    core.Vec3 // Translation applied after scaling
}

// LoadMesh loads an OBJ, STL or PLY file into a triangle mesh
func LoadMesh(filename string, surface material.Surface, options MeshOptions) (*geometry.TriangleMesh, error) {
	var mesh *fauxgl.Mesh
	var err error

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".obj":
		mesh, err = fauxgl.LoadOBJ(filename)
	case ".stl":
		mesh, err = fauxgl.LoadSTL(filename)
	case ".ply":
		mesh, err = fauxgl.LoadPLY(filename)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMesh, filename)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load mesh %s: %w", filename, err)
	}

	return ConvertMesh(mesh, surface, options)
}

// ConvertMesh turns a fauxgl mesh into a triangle mesh. Degenerate triangles
// are dropped.
func ConvertMesh(mesh *fauxgl.Mesh, surface material.Surface, options MeshOptions) (*geometry.TriangleMesh, error) {
	if mesh == nil || len(mesh.Triangles) == 0 {
		return nil, fmt.Errorf("mesh has no triangles")
	}

	if options.Normalize {
		mesh.BiUnitCube()
	}
	if options.Smooth && !hasVertexNormals(mesh) {
		mesh.SmoothNormals()
	}

	scale := options.Scale
	if scale == 0 {
		scale = 1
	}
	place := func(v fauxgl.Vector) core.Vec3 {
		return core.NewVec3(v.X, v.Y, v.Z).Multiply(scale).Add(options.Offset)
	}

	triangles := make([]*geometry.Triangle, 0, len(mesh.Triangles))
	for _, ft := range mesh.Triangles {
		tri := geometry.NewTriangle(place(ft.V1.Position), place(ft.V2.Position), place(ft.V3.Position), surface)
		if tri.GetNormal().IsZero() {
			continue
		}

		n1, n2, n3 := toVec3(ft.V1.Normal), toVec3(ft.V2.Normal), toVec3(ft.V3.Normal)
		if !n1.IsZero() && !n2.IsZero() && !n3.IsZero() {
			tri.SetVertexNormals(n1, n2, n3)
		}

		if hasTexture(ft) {
			tri.SetUVs(toVec2(ft.V1.Texture), toVec2(ft.V2.Texture), toVec2(ft.V3.Texture))
		}

		triangles = append(triangles, tri)
	}

	if len(triangles) == 0 {
		return nil, fmt.Errorf("mesh has only degenerate triangles")
	}

	return geometry.NewTriangleMeshFromTriangles(triangles, surface), nil
}

func hasVertexNormals(mesh *fauxgl.Mesh) bool {
	for _, t := range mesh.Triangles {
		if toVec3(t.V1.Normal).IsZero() || toVec3(t.V2.Normal).IsZero() || toVec3(t.V3.Normal).IsZero() {
			return false
		}
	}
	return true
}

func hasTexture(t *fauxgl.Triangle) bool {
	zero := fauxgl.Vector{}
	return t.V1.Texture != zero || t.V2.Texture != zero || t.V3.Texture != zero
}

func toVec3(v fauxgl.Vector) core.Vec3 {
	return core.NewVec3(v.X, v.Y, v.Z)
}

func toVec2(v fauxgl.Vector) core.Vec2 {
	return core.NewVec2(v.X, v.Y)
}
