package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPlane_CheckIntersection_Basic(t *testing.T) {
	// Horizontal plane at y=0
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), testSurface)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	hit, isHit := plane.CheckIntersection(ray, 0.001)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	checkHit(t, ray, 0.001, hit)

	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("Expected t=1, got t=%f", hit.T)
	}
	if !hit.Position.Equals(core.NewVec3(0, 0, 0), 1e-9) {
		t.Errorf("Expected hit point at origin, got %v", hit.Position)
	}
	if hit.Intersectable != plane {
		t.Error("Expected back-reference to the plane")
	}
}

func TestPlane_CheckIntersection_ParallelRay(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), testSurface)

	tests := []struct {
		name string
		ray  core.Ray
	}{
		{"above the plane", core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0))},
		{"inside the plane", core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))},
		{"almost parallel", core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, -1e-10, 0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := plane.CheckIntersection(tt.ray, 0)
			if isHit {
				t.Errorf("Expected miss for parallel ray, but got hit at t=%f", hit.T)
			}
		})
	}
}

func TestPlane_CheckIntersection_BehindRay(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), testSurface)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0))

	hit, isHit := plane.CheckIntersection(ray, 0.001)
	if isHit {
		t.Errorf("Expected miss for intersection behind ray, but got hit at t=%f", hit.T)
	}
}

func TestPlane_CheckIntersection_OutwardNormal(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 2, 0), testSurface)

	tests := []struct {
		name          string
		rayOrigin     core.Vec3
		rayDirection  core.Vec3
		expectedFront bool
	}{
		{"from above", core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), true},
		{"from below", core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := plane.CheckIntersection(ray, 0.001)
			if !isHit {
				t.Fatal("Expected hit")
			}
			if !hit.Normal.Equals(core.NewVec3(0, 1, 0), 1e-9) {
				t.Errorf("Expected normalized outward normal, got %v", hit.Normal)
			}
			if hit.FrontFace() != tt.expectedFront {
				t.Errorf("Expected front face %v, got %v", tt.expectedFront, hit.FrontFace())
			}
		})
	}
}

func TestPlane_UVFollowsPosition(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), testSurface)

	a, _ := plane.CheckIntersection(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), 0)
	b, _ := plane.CheckIntersection(core.NewRay(core.NewVec3(3, 1, 4), core.NewVec3(0, -1, 0)), 0)

	du, dv := b.UV.X-a.UV.X, b.UV.Y-a.UV.Y
	// In-plane basis is orthonormal, so uv distance equals world distance
	if math.Abs(math.Hypot(du, dv)-5) > 1e-9 {
		t.Errorf("Expected uv distance 5, got %f", math.Hypot(du, dv))
	}
}
