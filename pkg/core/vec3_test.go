package core

import (
	"math"
	"testing"
)

func TestVec3_Cross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected Vec3
	}{
		{"x cross y", NewVec3(1, 0, 0), NewVec3(0, 1, 0), NewVec3(0, 0, 1)},
		{"y cross z", NewVec3(0, 1, 0), NewVec3(0, 0, 1), NewVec3(1, 0, 0)},
		{"parallel vectors", NewVec3(2, 0, 0), NewVec3(5, 0, 0), NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.a.Cross(tt.b)
			if !result.Equals(tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
			// Cross product is orthogonal to both inputs
			if math.Abs(result.Dot(tt.a)) > 1e-12 || math.Abs(result.Dot(tt.b)) > 1e-12 {
				t.Errorf("Cross product %v not orthogonal to inputs", result)
			}
		})
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(2, 3, 4).Normalize()
	if math.Abs(v.Length()-1.0) > 1e-12 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}

	zero := NewVec3(0, 0, 0).Normalize()
	if !zero.IsZero() {
		t.Errorf("Expected zero vector to normalize to zero, got %v", zero)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(2, 3, 4))
	got := ray.At(9.25)
	expected := NewVec3(19.5, 29.75, 40)
	if !got.Equals(expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestRay_Spawn(t *testing.T) {
	ray := NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, -1))
	if ray.Depth != 0 {
		t.Fatalf("Expected primary ray depth 0, got %d", ray.Depth)
	}

	child := ray.Spawn(NewVec3(0, 0, -1), NewVec3(0, 1, 0))
	grandchild := child.Spawn(NewVec3(0, 1, -1), NewVec3(1, 0, 0))

	if child.Depth != 1 || grandchild.Depth != 2 {
		t.Errorf("Expected depths 1 and 2, got %d and %d", child.Depth, grandchild.Depth)
	}
	if ray.Depth != 0 {
		t.Errorf("Spawning must not modify the parent ray, depth is %d", ray.Depth)
	}
}

func TestReflect(t *testing.T) {
	incoming := NewVec3(1, -1, 0)
	normal := NewVec3(0, 1, 0)

	reflected := Reflect(incoming, normal)
	expected := NewVec3(1, 1, 0)
	if !reflected.Equals(expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, reflected)
	}
}

func TestRefract(t *testing.T) {
	normal := NewVec3(0, 1, 0)

	t.Run("head-on passes straight through", func(t *testing.T) {
		dir, ok := Refract(NewVec3(0, -1, 0), normal, 1.0/1.5)
		if !ok {
			t.Fatal("Expected refraction, got total internal reflection")
		}
		if !dir.Equals(NewVec3(0, -1, 0), 1e-9) {
			t.Errorf("Expected straight-through direction, got %v", dir)
		}
	})

	t.Run("snell's law", func(t *testing.T) {
		incoming := NewVec3(1, -1, 0).Normalize()
		eta := 1.0 / 1.5
		dir, ok := Refract(incoming, normal, eta)
		if !ok {
			t.Fatal("Expected refraction")
		}
		sinIn := math.Sqrt(0.5)
		sinOut := math.Abs(dir.X) / dir.Length()
		if math.Abs(sinOut-sinIn*eta) > 1e-9 {
			t.Errorf("Expected sin(theta_t)=%f, got %f", sinIn*eta, sinOut)
		}
	})

	t.Run("total internal reflection", func(t *testing.T) {
		grazing := NewVec3(1, -0.1, 0).Normalize()
		if _, ok := Refract(grazing, normal, 1.5); ok {
			t.Error("Expected total internal reflection leaving a dense medium at a grazing angle")
		}
	})
}

func TestInfiniteDistance(t *testing.T) {
	if !IsInfiniteDistance(InfiniteDistance) {
		t.Error("Expected sentinel to be recognized as infinite")
	}
	if IsInfiniteDistance(math.MaxFloat64) {
		t.Error("MaxFloat64 is a finite distance")
	}
}

func TestIntersection_FacingNormal(t *testing.T) {
	outside := &Intersection{Normal: NewVec3(0, 1, 0), Direction: NewVec3(0, -1, 0)}
	if !outside.FrontFace() || outside.FacingNormal() != NewVec3(0, 1, 0) {
		t.Errorf("Expected front face with outward normal, got %v", outside.FacingNormal())
	}

	inside := &Intersection{Normal: NewVec3(0, 1, 0), Direction: NewVec3(0, 1, 0)}
	if inside.FrontFace() || inside.FacingNormal() != NewVec3(0, -1, 0) {
		t.Errorf("Expected back face with flipped normal, got %v", inside.FacingNormal())
	}
}
