package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates a default scene with spheres on a checkered ground
func NewDefaultScene(cameraOverrides ...CameraConfig) (*Scene, error) {
	s := New()
	s.Name = "default"
	s.Background = core.NewVec3(0.5, 0.7, 1.0)
	s.Camera = CameraConfig{
		Center:      core.NewVec3(0, 1.2, 3),
		LookAt:      core.NewVec3(0, 0.5, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        40.0,
	}
	if len(cameraOverrides) > 0 {
		s.Camera = MergeCameraConfig(s.Camera, cameraOverrides[0])
	}

	// Create materials
	ground := material.NewTexturedLambertian(material.NewChecker(1.0,
		core.NewVec3(0.85, 0.85, 0.85),
		core.NewVec3(0.2, 0.3, 0.1),
	))
	red := material.NewPhong(core.NewVec3(0.7, 0.15, 0.1), 0.4, 32)
	silver := material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.8)
	gold := material.NewMetal(core.NewVec3(0.9, 0.7, 0.3), 0.5)
	glass := material.NewDielectric(1.5, 0.85, 0.1)

	if err := s.Insert(
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ground),
		geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, red),
		geometry.NewSphere(core.NewVec3(-1.1, 0.5, -1.2), 0.5, silver),
		geometry.NewSphere(core.NewVec3(1.1, 0.5, -1.2), 0.5, gold),
		geometry.NewSphere(core.NewVec3(0.45, 0.25, -0.2), 0.25, glass),
	); err != nil {
		return nil, err
	}

	s.InsertLights(
		lights.NewPoint(core.NewVec3(2, 4, 2), core.NewVec3(18, 18, 16)),
		lights.NewDirectional(core.NewVec3(-1, -2, -1), core.NewVec3(0.35, 0.35, 0.4)),
		lights.NewSpotDegrees(core.NewVec3(-2, 3, 0), core.NewVec3(2, -3, -1), core.NewVec3(8, 6, 4), 20),
	)

	return s, nil
}
