package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewCornellScene creates a Cornell box lit by a spot light in the ceiling,
// holding a mirrored block and a glass sphere
func NewCornellScene(cameraOverrides ...CameraConfig) (*Scene, error) {
	s := New()
	s.Name = "cornell"
	s.Camera = CameraConfig{
		Center:      core.NewVec3(0, 1, 3.4), // Outside the open front of the box
		LookAt:      core.NewVec3(0, 1, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 1.0,
		VFov:        40.0,
	}
	if len(cameraOverrides) > 0 {
		s.Camera = MergeCameraConfig(s.Camera, cameraOverrides[0])
	}

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	mirror := material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.85)
	glass := material.NewDielectric(1.5, 0.9, 0.05)

	// The box spans x,z in [-1, 1] and y in [0, 2]; normals point inward
	if err := s.Insert(
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), white),   // floor
		geometry.NewPlane(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0), white),  // ceiling
		geometry.NewPlane(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1), white),  // back wall
		geometry.NewPlane(core.NewVec3(-1, 0, 0), core.NewVec3(1, 0, 0), red),    // left wall
		geometry.NewPlane(core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0), green),  // right wall
		geometry.NewBox(core.NewVec3(-0.7, 0, -0.7), core.NewVec3(-0.1, 1.2, -0.2), mirror),
		geometry.NewSphere(core.NewVec3(0.45, 0.35, 0.1), 0.35, glass),
	); err != nil {
		return nil, err
	}

	s.InsertLights(
		lights.NewSpotDegrees(core.NewVec3(0, 1.98, 0), core.NewVec3(0, -1, 0), core.NewVec3(6, 5.6, 5), 60),
		lights.NewPoint(core.NewVec3(0, 1.5, 1.5), core.NewVec3(0.8, 0.8, 0.8)),
	)

	return s, nil
}
