package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewGlassScene creates refractive spheres and a tinted glass block in front
// of a striped backdrop, lit by sunlight
func NewGlassScene(cameraOverrides ...CameraConfig) (*Scene, error) {
	s := New()
	s.Name = "glass"
	s.Background = core.NewVec3(0.8, 0.85, 0.9)
	s.Camera = CameraConfig{
		Center:      core.NewVec3(0, 1, 4),
		LookAt:      core.NewVec3(0, 0.6, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        35.0,
	}
	if len(cameraOverrides) > 0 {
		s.Camera = MergeCameraConfig(s.Camera, cameraOverrides[0])
	}

	backdrop := material.NewTexturedLambertian(material.NewChecker(4.0,
		core.NewVec3(0.9, 0.9, 0.9),
		core.NewVec3(0.15, 0.2, 0.45),
	))
	floor := material.NewLambertian(core.NewVec3(0.6, 0.6, 0.55))

	clear := material.NewDielectric(1.5, 0.9, 0.08)
	water := material.NewDielectric(1.33, 0.85, 0.1)
	tinted := material.NewDielectric(1.6, 0.8, 0.1)
	tinted.RefractiveTint = material.NewSolidColor(core.NewVec3(1.0, 0.6, 0.5))

	if err := s.Insert(
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), floor),
		geometry.NewPlane(core.NewVec3(0, 0, -3), core.NewVec3(0, 0, 1), backdrop),
		geometry.NewSphere(core.NewVec3(-1.1, 0.6, 0), 0.6, clear),
		geometry.NewSphere(core.NewVec3(0.2, 0.45, 0.4), 0.45, water),
		geometry.NewBox(core.NewVec3(0.9, 0, -0.6), core.NewVec3(1.7, 1.2, 0.2), tinted),
	); err != nil {
		return nil, err
	}

	s.InsertLights(
		lights.NewDirectional(core.NewVec3(0.3, -1, -0.5), core.NewVec3(0.9, 0.9, 0.85)),
		lights.NewPoint(core.NewVec3(0, 3, 3), core.NewVec3(6, 6, 6)),
	)

	return s, nil
}
