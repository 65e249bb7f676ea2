package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewMirrorsScene creates two parallel mirrors facing each other with a sphere
// between them. Every reflection bounces until the depth limit stops it.
func NewMirrorsScene(cameraOverrides ...CameraConfig) (*Scene, error) {
	s := New()
	s.Name = "mirrors"
	s.Background = core.NewVec3(0.05, 0.05, 0.08)
	s.Camera = CameraConfig{
		Center:      core.NewVec3(0.6, 0.6, 1.8),
		LookAt:      core.NewVec3(-0.4, 0.4, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        55.0,
	}
	if len(cameraOverrides) > 0 {
		s.Camera = MergeCameraConfig(s.Camera, cameraOverrides[0])
	}

	mirror := material.NewMetal(core.NewVec3(0.95, 0.95, 0.95), 0.9)
	floor := material.NewTexturedLambertian(material.NewChecker(2.0,
		core.NewVec3(0.8, 0.8, 0.8),
		core.NewVec3(0.1, 0.1, 0.1),
	))

	if err := s.Insert(
		geometry.NewPlane(core.NewVec3(0, 0, -2), core.NewVec3(0, 0, 1), mirror),
		geometry.NewPlane(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1), mirror),
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), floor),
		geometry.NewSphere(core.NewVec3(0, 0.4, -0.5), 0.4, material.NewPhong(core.NewVec3(0.2, 0.4, 0.8), 0.5, 64)),
	); err != nil {
		return nil, err
	}

	s.InsertLight(lights.NewPoint(core.NewVec3(0, 2.5, 0), core.NewVec3(10, 10, 10)))

	return s, nil
}
