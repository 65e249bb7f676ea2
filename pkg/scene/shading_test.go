package scene

import (
	"fmt"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// countingRenderable records how often it is tested and the deepest ray seen
type countingRenderable struct {
	core.Renderable
	calls    *int
	maxDepth *int
}

func (c countingRenderable) CheckIntersection(ray core.Ray, minT float64) (*core.Intersection, bool) {
	*c.calls++
	if ray.Depth > *c.maxDepth {
		*c.maxDepth = ray.Depth
	}
	return c.Renderable.CheckIntersection(ray, minT)
}

func TestShade_ParallelMirrorsTerminateAtMaxDepth(t *testing.T) {
	for _, maxDepth := range []int{0, 1, 5, DefaultMaxDepth} {
		t.Run(fmt.Sprintf("max depth %d", maxDepth), func(t *testing.T) {
			mirror := material.Surface{Reflect: 1}
			calls, deepest := 0, 0

			s := New()
			s.MaxDepth = maxDepth
			mustInsert(t, s,
				countingRenderable{geometry.NewPlane(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1), mirror), &calls, &deepest},
				countingRenderable{geometry.NewPlane(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1), mirror), &calls, &deepest},
			)

			color := s.ShadeClosestIntersection(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0)
			if !color.IsZero() {
				t.Errorf("Expected black with no lights, got %v", color)
			}

			// One closest-intersection query per ray: the primary plus maxDepth nested rays
			if calls != 2*(maxDepth+1) {
				t.Errorf("Expected %d intersection tests, got %d", 2*(maxDepth+1), calls)
			}
			if deepest != maxDepth {
				t.Errorf("Expected nested recursion depth %d, got %d", maxDepth, deepest)
			}
		})
	}
}

// groundScene builds a white diffuse plane at y=0 seen from straight above
func groundScene(t *testing.T, surface material.Surface) (*Scene, core.Ray) {
	t.Helper()
	s := New()
	mustInsert(t, s, geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), surface))
	return s, core.NewRay(core.NewVec3(0.5, 5, 0), core.NewVec3(0, -1, 0))
}

func TestShade_PointLightFalloff(t *testing.T) {
	white := material.NewLambertian(core.NewVec3(1, 1, 1))

	shadeAt := func(height float64) core.Vec3 {
		s, ray := groundScene(t, white)
		s.InsertLight(lights.NewPoint(core.NewVec3(0.5, height, 0), core.NewVec3(1, 1, 1)))
		return s.ShadeClosestIntersection(ray, 0)
	}

	near := shadeAt(1)
	far := shadeAt(2)

	if !near.Equals(core.NewVec3(1, 1, 1), 1e-12) {
		t.Errorf("Expected unit radiance at distance 1, got %v", near)
	}
	if math.Abs(far.X/near.X-0.25) > 1e-12 {
		t.Errorf("Expected doubling the distance to quarter the contribution, got ratio %f", far.X/near.X)
	}
}

func TestShade_SpotLightCone(t *testing.T) {
	white := material.NewLambertian(core.NewVec3(1, 1, 1))

	tests := []struct {
		name      string
		direction core.Vec3
		expected  float64
	}{
		{"on axis", core.NewVec3(0, -1, 0), 1.0 / 4.0},
		{"outside cone", core.NewVec3(1, -0.2, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ray := groundScene(t, white)
			s.InsertLight(lights.NewSpotDegrees(core.NewVec3(0.5, 2, 0), tt.direction, core.NewVec3(1, 1, 1), 20))

			got := s.ShadeClosestIntersection(ray, 0)
			if math.Abs(got.X-tt.expected) > 1e-12 {
				t.Errorf("Expected %f, got %v", tt.expected, got)
			}
		})
	}
}

func TestShade_EnergySplit(t *testing.T) {
	surface := material.NewLambertian(core.NewVec3(1, 1, 1))
	surface.Reflect = 0.3
	surface.Refract = 0.2
	surface.RefractiveIndex = 1.5

	tests := []struct {
		name       string
		maxDepth   int
		background core.Vec3
		tint       material.ColorSource
	}{
		{"no recursion", 0, core.NewVec3(0.9, 0.1, 0.4), nil},
		{"recursion into black background", DefaultMaxDepth, core.Vec3{}, nil},
		{"recursion with black tints", DefaultMaxDepth, core.NewVec3(0.9, 0.1, 0.4), material.NewSolidColor(core.Vec3{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sf := surface
			sf.ReflectiveTint = tt.tint
			sf.RefractiveTint = tt.tint

			s, ray := groundScene(t, sf)
			s.MaxDepth = tt.maxDepth
			s.SetBackground(tt.background)
			s.InsertLight(lights.NewDirectional(core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1)))

			got := s.ShadeClosestIntersection(ray, 0)
			if !got.Equals(core.NewVec3(0.5, 0.5, 0.5), 1e-12) {
				t.Errorf("Expected direct term scaled by 0.5, got %v", got)
			}
		})
	}
}

func TestShade_ShadowedPointGetsNoDirectLight(t *testing.T) {
	s, ray := groundScene(t, material.NewLambertian(core.NewVec3(1, 1, 1)))
	s.InsertLight(lights.NewPoint(core.NewVec3(0.5, 2, 0), core.NewVec3(1, 1, 1)))

	// Blocker sits between the light and the hit point but off the camera ray
	blocker := geometry.NewBox(core.NewVec3(0.4, 1, -0.1), core.NewVec3(0.6, 1.2, 0.1), gray)
	mustInsert(t, s, blocker)

	// Look at the hit point from the side so the blocker is not in view
	side := core.NewRay(core.NewVec3(-4.5, 5, 0), core.NewVec3(1, -1, 0).Normalize())
	if got := s.ShadeClosestIntersection(side, 0); !got.IsZero() {
		t.Errorf("Expected shadowed point to be black, got %v", got)
	}

	// The same point is lit without the blocker
	lit, _ := groundScene(t, material.NewLambertian(core.NewVec3(1, 1, 1)))
	lit.InsertLight(lights.NewPoint(core.NewVec3(0.5, 2, 0), core.NewVec3(1, 1, 1)))
	if got := lit.ShadeClosestIntersection(ray, 0); got.IsZero() {
		t.Error("Expected unshadowed point to be lit")
	}
}

func TestShade_RefractionThroughSphereCenter(t *testing.T) {
	s := New()
	s.SetBackground(core.NewVec3(0.2, 0.4, 0.6))
	glass := material.NewDielectric(1.5, 1.0, 0)
	mustInsert(t, s, geometry.NewSphere(core.NewVec3(0, 0, -3), 1, glass))
	s.InsertLight(lights.NewPoint(core.NewVec3(0, 5, 0), core.NewVec3(10, 10, 10)))

	// A head-on ray passes straight through both faces and reaches the background
	got := s.ShadeClosestIntersection(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0)
	if !got.Equals(s.Background, 1e-9) {
		t.Errorf("Expected background %v through a fully refractive sphere, got %v", s.Background, got)
	}

	// With no depth budget the refracted ray is never traced
	s.MaxDepth = 0
	got = s.ShadeClosestIntersection(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0)
	if !got.IsZero() {
		t.Errorf("Expected black with depth budget 0, got %v", got)
	}
}

func TestShade_MirrorReflectsBackground(t *testing.T) {
	s := New()
	s.SetBackground(core.NewVec3(0.3, 0.6, 0.9))
	mirror := material.Surface{Reflect: 1, ReflectiveTint: material.NewSolidColor(core.NewVec3(1, 0.5, 0.25))}
	mustInsert(t, s, geometry.NewPlane(core.NewVec3(0, 0, -2), core.NewVec3(0, 0, 1), mirror))

	got := s.ShadeClosestIntersection(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0)
	expected := core.NewVec3(0.3, 0.3, 0.225)
	if !got.Equals(expected, 1e-12) {
		t.Errorf("Expected tinted background %v, got %v", expected, got)
	}
}

func TestRefractedRay(t *testing.T) {
	s := New()
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))

	t.Run("entering", func(t *testing.T) {
		hit := &core.Intersection{
			Position:  core.NewVec3(0, 0, -1),
			Normal:    core.NewVec3(0, 0, 1),
			Direction: core.NewVec3(0, 0, -1),
		}
		refracted := s.refractedRay(ray, hit, hit.Direction, 1.5)
		if !refracted.Direction.Equals(core.NewVec3(0, 0, -1), 1e-9) {
			t.Errorf("Expected straight-through direction, got %v", refracted.Direction)
		}
		if refracted.Origin.Z >= -1 {
			t.Errorf("Expected origin pushed inside the surface, got %v", refracted.Origin)
		}
		if refracted.Depth != ray.Depth+1 {
			t.Errorf("Expected depth %d, got %d", ray.Depth+1, refracted.Depth)
		}
	})

	t.Run("total internal reflection", func(t *testing.T) {
		incoming := core.NewVec3(1, 0.1, 0).Normalize()
		hit := &core.Intersection{
			Position:  core.Vec3{},
			Normal:    core.NewVec3(0, 1, 0), // Outward normal; the ray travels from inside
			Direction: incoming,
		}
		refracted := s.refractedRay(ray, hit, incoming, 1.5)
		expected := core.NewVec3(1, -0.1, 0).Normalize()
		if !refracted.Direction.Equals(expected, 1e-9) {
			t.Errorf("Expected mirrored direction %v, got %v", expected, refracted.Direction)
		}
		if refracted.Origin.Y >= 0 {
			t.Errorf("Expected origin to stay on the inside, got %v", refracted.Origin)
		}
	})
}

func TestTraceRay_SingleQueryReportsHit(t *testing.T) {
	calls, deepest := 0, 0
	s := New()
	s.SetBackground(core.NewVec3(0.1, 0.2, 0.3))
	mustInsert(t, s, countingRenderable{geometry.NewSphere(core.NewVec3(0, 0, -3), 1, gray), &calls, &deepest})

	tests := []struct {
		name      string
		direction core.Vec3
		expectHit bool
	}{
		{"hit", core.NewVec3(0, 0, -1), true},
		{"miss", core.NewVec3(0, 1, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls = 0
			ray := core.NewRay(core.Vec3{}, tt.direction)
			color, hit := s.TraceRay(ray, 0.001)

			if hit != tt.expectHit {
				t.Errorf("Expected hit=%v, got %v", tt.expectHit, hit)
			}
			if calls != 1 {
				t.Errorf("Expected a single intersection query, got %d", calls)
			}
			if expected := s.ShadeClosestIntersection(ray, 0.001); color != expected {
				t.Errorf("Expected TraceRay color %v to match ShadeClosestIntersection %v", color, expected)
			}
		})
	}
}
