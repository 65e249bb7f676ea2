package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Point is an isotropic light at a position, falling off with the inverse square law
type Point struct {
	Position  core.Vec3 // Light position in world space
	Intensity core.Vec3 // Spectral (RGB) intensity
}

// NewPoint creates a new point light
func NewPoint(position, intensity core.Vec3) *Point {
	return &Point{Position: position, Intensity: intensity}
}

// Type implements Light
func (l *Point) Type() LightType { return LightTypePoint }

// DirectionTo returns the unit direction from the light toward p
func (l *Point) DirectionTo(p core.Vec3) core.Vec3 {
	return p.Subtract(l.Position).Normalize()
}

// DistanceTo returns the distance between the light and p
func (l *Point) DistanceTo(p core.Vec3) float64 {
	return p.Subtract(l.Position).Length()
}

// IncidentRadianceAt returns intensity / distance²
func (l *Point) IncidentRadianceAt(p core.Vec3) core.Vec3 {
	return inverseSquare(l.Intensity, p.Subtract(l.Position))
}

// Clone implements core.Light
func (l *Point) Clone() core.Light {
	c := *l
	return &c
}
