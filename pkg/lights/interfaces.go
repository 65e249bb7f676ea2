package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

type LightType string

const (
	LightTypePoint       LightType = "point"
	LightTypeDirectional LightType = "directional"
	LightTypeSpot        LightType = "spot"
)

// Light is a core.Light that also reports its variant
type Light interface {
	core.Light
	Type() LightType
}

// inverseSquare scales intensity by 1/d² for the vector from a light to a point.
// A point coinciding with the light receives nothing.
func inverseSquare(intensity, toPoint core.Vec3) core.Vec3 {
	distanceSquared := toPoint.LengthSquared()
	if distanceSquared == 0 {
		return core.Vec3{}
	}
	return intensity.Multiply(1.0 / distanceSquared)
}
