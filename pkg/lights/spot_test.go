package lights

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestSpot_NewSpotNormalizesDirection(t *testing.T) {
	light := NewSpot(core.NewVec3(0, 5, 0), core.NewVec3(0, -10, 0), core.NewVec3(1, 1, 1), math.Pi/6)

	if !light.Direction().Equals(core.NewVec3(0, -1, 0), 1e-12) {
		t.Errorf("Expected normalized direction, got %v", light.Direction())
	}
}

func TestSpot_IncidentRadiance(t *testing.T) {
	// Light pointing down from (0,5,0) with a 30 degree half-angle
	intensity := core.NewVec3(100, 100, 100)
	light := NewSpotDegrees(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0), intensity, 30)

	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Vec3
	}{
		{
			name:     "on axis",
			point:    core.NewVec3(0, 0, 0),
			expected: intensity.Multiply(1.0 / 25.0),
		},
		{
			name:     "inside cone",
			point:    core.NewVec3(1, 3, 0), // ~26.6 degrees off axis
			expected: intensity.Multiply(1.0 / 5.0),
		},
		{
			name:     "outside cone",
			point:    core.NewVec3(2, 3, 0), // 45 degrees off axis
			expected: core.NewVec3(0, 0, 0),
		},
		{
			name:     "behind light",
			point:    core.NewVec3(0, 10, 0),
			expected: core.NewVec3(0, 0, 0),
		},
		{
			name:     "at light position",
			point:    core.NewVec3(0, 5, 0),
			expected: core.NewVec3(0, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := light.IncidentRadianceAt(tt.point)
			if !got.Equals(tt.expected, 1e-9) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSpot_OnAxisInverseSquare(t *testing.T) {
	intensity := core.NewVec3(3, 6, 9)
	light := NewSpot(core.NewVec3(1, 1, 1), core.NewVec3(1, 0, 0), intensity, 0.1)

	for _, d := range []float64{0.5, 1, 2, 7} {
		p := core.NewVec3(1+d, 1, 1)
		got := light.IncidentRadianceAt(p)
		expected := intensity.Multiply(1.0 / (d * d))
		if !got.Equals(expected, 1e-9) {
			t.Errorf("distance %f: expected %v, got %v", d, expected, got)
		}
	}
}

func TestSpot_FiniteDistance(t *testing.T) {
	light := NewSpotDegrees(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1), 45)
	p := core.NewVec3(0, 2, 0)

	if core.IsInfiniteDistance(light.DistanceTo(p)) {
		t.Fatal("Spot lights report a finite distance")
	}
	if math.Abs(light.DistanceTo(p)-3) > 1e-12 {
		t.Errorf("Expected distance 3, got %f", light.DistanceTo(p))
	}
}

func TestSpot_Clone(t *testing.T) {
	light := NewSpotDegrees(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1), 45)
	clone := light.Clone().(*Spot)
	clone.Position = core.NewVec3(0, 0, 0)

	if light.Position != core.NewVec3(0, 5, 0) {
		t.Errorf("Mutating a clone changed the original position to %v", light.Position)
	}
	if clone.HalfAngle() != light.HalfAngle() || clone.Direction() != light.Direction() {
		t.Error("Clone must carry the cone parameters")
	}
}
