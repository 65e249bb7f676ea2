package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestSphere_CheckIntersection_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testSurface)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.CheckIntersection(ray, 0.001)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_CheckIntersection_OutwardNormal(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testSurface)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "from outside",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "from inside",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.CheckIntersection(ray, 0.001)
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			checkHit(t, ray, 0.001, hit)

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace() != tt.expectedFront {
				t.Errorf("Expected front face %v, got %v", tt.expectedFront, hit.FrontFace())
			}
			// The normal stays outward regardless of which side was hit
			if !hit.Normal.Equals(tt.expectedNormal, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if hit.Intersectable != sphere {
				t.Error("Expected back-reference to the sphere")
			}
		})
	}
}

func TestSphere_CheckIntersection_MinT(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0, testSurface)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	tests := []struct {
		name      string
		minT      float64
		expectHit bool
		expectedT float64
	}{
		{"both roots ahead", 0.001, true, 4.0},
		{"near root skipped", 4.5, true, 6.0},
		{"exactly at near root", 4.0, true, 6.0},
		{"both roots behind", 6.0, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.CheckIntersection(ray, tt.minT)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, isHit)
			}
			if isHit && math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
		})
	}
}

func TestSphere_CheckIntersection_UnnormalizedDirection(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0, testSurface)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -2))

	hit, isHit := sphere.CheckIntersection(ray, 0.001)
	if !isHit {
		t.Fatal("Expected hit")
	}
	checkHit(t, ray, 0.001, hit)
	if math.Abs(hit.T-2.0) > 1e-9 {
		t.Errorf("Expected t=2 for a direction of length 2, got %f", hit.T)
	}
}

func TestSphere_CheckIntersection_ZeroDirection(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testSurface)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0))

	if _, isHit := sphere.CheckIntersection(ray, 0); isHit {
		t.Error("Expected a degenerate direction to report no intersection")
	}
}

func TestSphere_UV(t *testing.T) {
	tests := []struct {
		name string
		p    core.Vec3
		uv   core.Vec2
	}{
		{"bottom pole", core.NewVec3(0, -1, 0), core.NewVec2(0.5, 0)},
		{"top pole", core.NewVec3(0, 1, 0), core.NewVec2(0.5, 1)},
		{"-x equator", core.NewVec3(-1, 0, 0), core.NewVec2(0, 0.5)},
		{"+x equator", core.NewVec3(1, 0, 0), core.NewVec2(0.5, 0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uv := sphereUV(tt.p)
			if math.Abs(uv.Y-tt.uv.Y) > 1e-9 {
				t.Errorf("Expected v=%f, got %f", tt.uv.Y, uv.Y)
			}
			// u is undefined at the poles
			if math.Abs(tt.p.Y) < 1 && math.Abs(uv.X-tt.uv.X) > 1e-9 && math.Abs(uv.X-1-tt.uv.X) > 1e-9 {
				t.Errorf("Expected u=%f, got %f", tt.uv.X, uv.X)
			}
		})
	}
}

func TestSphere_Clone(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testSurface)
	clone := sphere.Clone().(*Sphere)

	clone.Center = core.NewVec3(5, 5, 5)
	clone.Reflect = 0.9

	if sphere.Center != core.NewVec3(0, 0, 0) || sphere.Reflectance() != 0 {
		t.Errorf("Mutating a clone changed the original: %+v", sphere)
	}
}
