package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Spot is a point light restricted to a cone around a principal direction.
// Points inside the cone receive intensity / distance², points outside receive nothing.
type Spot struct {
	Position  core.Vec3
	Intensity core.Vec3
	direction core.Vec3 // Normalized principal direction
	halfAngle float64   // Cone half-angle in radians
}

// NewSpot creates a new spot light with the cone half-angle given in radians
func NewSpot(position, direction, intensity core.Vec3, halfAngle float64) *Spot {
	return &Spot{
		Position:  position,
		Intensity: intensity,
		direction: direction.Normalize(),
		halfAngle: halfAngle,
	}
}

// NewSpotDegrees creates a new spot light with the cone half-angle given in degrees
func NewSpotDegrees(position, direction, intensity core.Vec3, halfAngleDegrees float64) *Spot {
	return NewSpot(position, direction, intensity, halfAngleDegrees*math.Pi/180.0)
}

// Type implements Light
func (l *Spot) Type() LightType { return LightTypeSpot }

// Direction returns the normalized principal direction
func (l *Spot) Direction() core.Vec3 {
	return l.direction
}

// HalfAngle returns the cone half-angle in radians
func (l *Spot) HalfAngle() float64 {
	return l.halfAngle
}

// DirectionTo returns the unit direction from the light toward p
func (l *Spot) DirectionTo(p core.Vec3) core.Vec3 {
	return p.Subtract(l.Position).Normalize()
}

// DistanceTo returns the distance between the light and p
func (l *Spot) DistanceTo(p core.Vec3) float64 {
	return p.Subtract(l.Position).Length()
}

// IncidentRadianceAt returns intensity / distance² inside the cone and zero outside
func (l *Spot) IncidentRadianceAt(p core.Vec3) core.Vec3 {
	toPoint := p.Subtract(l.Position)
	if toPoint.LengthSquared() == 0 {
		return core.Vec3{}
	}

	// Clamp guards acos against rounding just above 1
	cosAngle := max(-1.0, min(1.0, l.direction.Dot(toPoint.Normalize())))
	if math.Acos(cosAngle) > l.halfAngle {
		return core.Vec3{}
	}

	return inverseSquare(l.Intensity, toPoint)
}

// Clone implements core.Light
func (l *Spot) Clone() core.Light {
	c := *l
	return &c
}
