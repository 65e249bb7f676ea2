package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Directional is a light infinitely far away, shining along a fixed direction
// with no distance attenuation (e.g. the sun).
type Directional struct {
	direction core.Vec3 // Normalized direction light travels
	Intensity core.Vec3
}

// NewDirectional creates a new directional light. direction is the way light travels.
func NewDirectional(direction, intensity core.Vec3) *Directional {
	return &Directional{direction: direction.Normalize(), Intensity: intensity}
}

// Type implements Light
func (l *Directional) Type() LightType { return LightTypeDirectional }

// Direction returns the normalized direction light travels
func (l *Directional) Direction() core.Vec3 {
	return l.direction
}

// DirectionTo returns the fixed light direction regardless of p
func (l *Directional) DirectionTo(p core.Vec3) core.Vec3 {
	return l.direction
}

// DistanceTo always reports core.InfiniteDistance
func (l *Directional) DistanceTo(p core.Vec3) float64 {
	return core.InfiniteDistance
}

// IncidentRadianceAt returns the unattenuated intensity
func (l *Directional) IncidentRadianceAt(p core.Vec3) core.Vec3 {
	return l.Intensity
}

// Clone implements core.Light
func (l *Directional) Clone() core.Light {
	c := *l
	return &c
}
