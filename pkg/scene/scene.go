package scene

import (
	"fmt"
	"slices"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// DefaultMaxDepth is the default limit on nested reflection/refraction rays
const DefaultMaxDepth = 10

// Scene owns the renderable objects and lights of a world and evaluates rays
// against them.
//
// A scene is built by inserting objects and lights, then treated as read-only
// while rendering. Shading never mutates the scene, so any number of
// goroutines may shade rays concurrently once construction is done.
type Scene struct {
	Name       string
	Background core.Vec3    // Color returned for rays that hit nothing
	MaxDepth   int          // Maximum reflection/refraction depth
	Camera     CameraConfig // Suggested view for drivers

	objects []core.Renderable
	lights  []core.Light
}

// New creates an empty scene with a black background
func New() *Scene {
	return &Scene{
		MaxDepth: DefaultMaxDepth,
		Camera:   DefaultCameraConfig(),
	}
}

// validator is implemented by surfaces that can check their energy split
type validator interface {
	Validate() error
}

// Insert appends renderables to the scene. Objects whose material violates the
// energy split invariant are rejected and nothing is inserted.
func (s *Scene) Insert(objects ...core.Renderable) error {
	for i, obj := range objects {
		if obj == nil {
			return fmt.Errorf("object %d is nil", i)
		}
		if v, ok := obj.(validator); ok {
			if err := v.Validate(); err != nil {
				return fmt.Errorf("object %d: %w", i, err)
			}
		}
	}
	s.objects = append(s.objects, objects...)
	return nil
}

// InsertMesh inserts every triangle of a mesh as an individual object
func (s *Scene) InsertMesh(mesh *geometry.TriangleMesh) error {
	return s.Insert(mesh.Triangles()...)
}

// InsertLight appends a single light to the scene
func (s *Scene) InsertLight(light core.Light) {
	s.lights = append(s.lights, light)
}

// InsertLights appends a batch of lights to the scene
func (s *Scene) InsertLights(lights ...core.Light) {
	s.lights = append(s.lights, lights...)
}

// SetBackground sets the color returned for rays that escape the scene
func (s *Scene) SetBackground(color core.Vec3) {
	s.Background = color
}

// Objects returns a copy of the renderable list in insertion order
func (s *Scene) Objects() []core.Renderable {
	return slices.Clone(s.objects)
}

// Lights returns a copy of the light list in insertion order
func (s *Scene) Lights() []core.Light {
	return slices.Clone(s.lights)
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, obj := range s.objects {
		switch o := obj.(type) {
		case *geometry.TriangleMesh:
			count += o.GetTriangleCount()
		default:
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the scene. Objects and lights are cloned so
// that changes to the copy never affect the original.
func (s *Scene) Clone() *Scene {
	c := &Scene{
		Name:       s.Name,
		Background: s.Background,
		MaxDepth:   s.MaxDepth,
		Camera:     s.Camera,
		objects:    make([]core.Renderable, len(s.objects)),
		lights:     make([]core.Light, len(s.lights)),
	}
	for i, obj := range s.objects {
		c.objects[i] = obj.Clone()
	}
	for i, light := range s.lights {
		c.lights[i] = light.Clone()
	}
	return c
}
