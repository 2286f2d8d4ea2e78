package core

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"add", a.Add(b), NewVec3(5, -3, 9)},
		{"subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"multiply by zero", a.Multiply(0), NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got.X-tt.expected.X) > tolerance ||
				math.Abs(tt.got.Y-tt.expected.Y) > tolerance ||
				math.Abs(tt.got.Z-tt.expected.Z) > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestVec3_DotAndLength(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	if got := a.Dot(b); math.Abs(got-12) > tolerance {
		t.Errorf("Expected dot product 12, got %f", got)
	}

	v := NewVec3(3, 4, 0)
	if got := v.Length(); math.Abs(got-5) > tolerance {
		t.Errorf("Expected length 5, got %f", got)
	}
	if got := v.LengthSquared(); math.Abs(got-25) > tolerance {
		t.Errorf("Expected squared length 25, got %f", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(0, 3, 4).Normalize()

	if math.Abs(v.Length()-1.0) > tolerance {
		t.Errorf("Expected unit length, got %f", v.Length())
	}
	if math.Abs(v.Y-0.6) > tolerance || math.Abs(v.Z-0.8) > tolerance {
		t.Errorf("Expected (0, 0.6, 0.8), got %v", v)
	}
}

func TestVec3_Normalize_ZeroVector(t *testing.T) {
	// Zero-length input is a caller violation: the result must be NaN,
	// not a silent zero vector, so the damage stays visible until the
	// color clamp bounds it.
	v := NewVec3(0, 0, 0).Normalize()

	if !math.IsNaN(v.X) || !math.IsNaN(v.Y) || !math.IsNaN(v.Z) {
		t.Errorf("Expected NaN components for zero-vector normalize, got %v", v)
	}
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-0.5, 0.5, 1.5).Clamp(0, 0.999)

	expected := NewVec3(0, 0.5, 0.999)
	if math.Abs(v.X-expected.X) > tolerance ||
		math.Abs(v.Y-expected.Y) > tolerance ||
		math.Abs(v.Z-expected.Z) > tolerance {
		t.Errorf("Expected %v, got %v", expected, v)
	}
}

func TestVec3_GammaCorrect(t *testing.T) {
	v := NewVec3(0.25, 0.64, 1.0).GammaCorrect(2.0)

	expected := NewVec3(0.5, 0.8, 1.0)
	if math.Abs(v.X-expected.X) > tolerance ||
		math.Abs(v.Y-expected.Y) > tolerance ||
		math.Abs(v.Z-expected.Z) > tolerance {
		t.Errorf("Expected %v, got %v", expected, v)
	}
}
