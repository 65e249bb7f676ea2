package loaders

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// NewMeshScene places the mesh in filename on a reflective ground plane under
// a key light and a fill light. The mesh is normalized to the bi-unit cube and
// raised so it rests on the ground.
func NewMeshScene(filename string, cameraOverrides ...scene.CameraConfig) (*scene.Scene, error) {
	s := scene.New()
	s.Name = "mesh-" + strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	s.Background = core.NewVec3(0.6, 0.7, 0.9)
	s.Camera = scene.CameraConfig{
		Center:      core.NewVec3(0, 1.5, 4.5),
		LookAt:      core.NewVec3(0, 1, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        40.0,
	}
	if len(cameraOverrides) > 0 {
		s.Camera = scene.MergeCameraConfig(s.Camera, cameraOverrides[0])
	}

	surface := material.NewPhong(core.NewVec3(0.75, 0.6, 0.45), 0.3, 24)
	mesh, err := LoadMesh(filename, surface, MeshOptions{
		Normalize: true,
		Smooth:    true,
		Offset:    core.NewVec3(0, 1, 0),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load mesh scene: %w", err)
	}
	if err := s.InsertMesh(mesh); err != nil {
		return nil, err
	}

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	ground.Reflect = 0.2
	if err := s.Insert(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ground)); err != nil {
		return nil, err
	}

	s.InsertLights(
		lights.NewPoint(core.NewVec3(3, 5, 4), core.NewVec3(30, 30, 28)),
		lights.NewDirectional(core.NewVec3(1, -1, -1), core.NewVec3(0.3, 0.3, 0.35)),
	)

	return s, nil
}
