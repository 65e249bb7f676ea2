package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// parallelEpsilon is the smallest |denominator| accepted by planar intersection
// tests. Rays closer to parallel than this report no intersection.
const parallelEpsilon = 1e-8

// Shape is a renderable primitive that reports its variant name
type Shape interface {
	core.Renderable
	Kind() string
}
