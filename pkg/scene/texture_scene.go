package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewTextureScene creates a row of textured primitives on a checkered ground
// to show uv mapping on every geometry type
func NewTextureScene(cameraOverrides ...CameraConfig) (*Scene, error) {
	s := New()
	s.Name = "textures"
	s.Background = core.NewVec3(0.3, 0.4, 0.6)
	s.Camera = CameraConfig{
		Center:      core.NewVec3(0, 2, 8),
		LookAt:      core.NewVec3(0, 1, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       600,
		AspectRatio: 16.0 / 9.0,
		VFov:        45.0,
	}
	if len(cameraOverrides) > 0 {
		s.Camera = MergeCameraConfig(s.Camera, cameraOverrides[0])
	}

	// Create procedural textures
	checkerboard := material.NewChecker(8,
		core.NewVec3(0.9, 0.9, 0.9), // White
		core.NewVec3(0.2, 0.2, 0.8), // Blue
	)
	redGreenGradient := material.NewGradientTexture(64, 64,
		core.NewVec3(1.0, 0.2, 0.2), // Red (top)
		core.NewVec3(0.2, 1.0, 0.2), // Green (bottom)
	)
	redGreenGradient.Bilinear = true
	brick := material.NewChecker(4,
		core.NewVec3(0.7, 0.3, 0.1),  // Orange
		core.NewVec3(0.5, 0.2, 0.05), // Dark brown
	)

	// Create textured materials
	checkerMat := material.NewTexturedLambertian(checkerboard)
	gradientMat := material.NewTexturedLambertian(redGreenGradient)
	brickMat := material.NewTexturedLambertian(brick)

	// Mirror whose reflections are tinted by the gradient
	tintedMirror := material.NewMetal(core.NewVec3(1, 1, 1), 0.7)
	tintedMirror.ReflectiveTint = redGreenGradient

	triangle := geometry.NewTriangle(
		core.NewVec3(2.6, 0, 0),
		core.NewVec3(4, 0, 0),
		core.NewVec3(3.3, 2, 0),
		gradientMat,
	)
	triangle.SetUVs(core.NewVec2(0, 0), core.NewVec2(1, 0), core.NewVec2(0.5, 1))

	// All shapes in a single row, left to right
	if err := s.Insert(
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), brickMat),
		geometry.NewSphere(core.NewVec3(-3.5, 1, 0), 1.0, checkerMat),
		geometry.NewSphere(core.NewVec3(-1.2, 0.8, 0), 0.8, gradientMat),
		geometry.NewBox(core.NewVec3(0.2, 0, -0.6), core.NewVec3(1.6, 1.4, 0.8), checkerMat),
		triangle,
		geometry.NewSphere(core.NewVec3(0, 0.5, 2), 0.5, tintedMirror),
	); err != nil {
		return nil, err
	}

	s.InsertLights(
		lights.NewPoint(core.NewVec3(0, 8, 5), core.NewVec3(60, 60, 60)),
		lights.NewDirectional(core.NewVec3(0.2, -1, -0.4), core.NewVec3(0.3, 0.3, 0.3)),
	)

	return s, nil
}
