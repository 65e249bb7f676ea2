package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

var testSurface = material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

// checkHit verifies the invariants every intersection must satisfy
func checkHit(t *testing.T, ray core.Ray, minT float64, hit *core.Intersection) {
	t.Helper()

	if hit.T <= minT {
		t.Errorf("Hit t=%f does not exceed minT=%f", hit.T, minT)
	}
	if !hit.Position.Equals(ray.At(hit.T), 1e-9) {
		t.Errorf("Position %v does not match ray.At(%f)=%v", hit.Position, hit.T, ray.At(hit.T))
	}
	if math.Abs(hit.Normal.Length()-1) > 1e-9 {
		t.Errorf("Normal %v is not unit length", hit.Normal)
	}
	if hit.Intersectable == nil {
		t.Error("Hit has no back-reference to its object")
	}
}
