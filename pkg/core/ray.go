package core

// Ray represents a ray with an origin, a direction and the number of
// reflection/refraction events that spawned it.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Depth     int
}

// NewRay creates a new primary ray (depth 0)
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Spawn creates a secondary ray one reflection/refraction level deeper
func (r Ray) Spawn(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction, Depth: r.Depth + 1}
}
