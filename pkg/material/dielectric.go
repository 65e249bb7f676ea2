package material

// NewDielectric creates a transparent surface like glass. Most light is
// refracted through the interior; reflectance adds a mirror component.
func NewDielectric(refractiveIndex, refractance, reflectance float64) Surface {
	return Surface{
		Albedo:          White,
		Diffuse:         1.0,
		Specular:        0.8,
		Shininess:       128,
		Reflect:         reflectance,
		Refract:         refractance,
		RefractiveIndex: refractiveIndex,
	}
}
