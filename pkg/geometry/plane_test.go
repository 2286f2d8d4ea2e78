package geometry

import (
	"math"
	"testing"

	"github.com/mjh/go-mini-raytracer/pkg/core"
)

func TestPlane_Hit(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 1, 0))
	ray := core.NewRay(core.NewVec3(0, 0.5, 0), core.NewVec3(0, -1, 0))

	hit, isHit := plane.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	tolerance := 1e-9
	if math.Abs(hit.T-1.0) > tolerance {
		t.Errorf("Expected t=1, got t=%f", hit.T)
	}
	if math.Abs(hit.Point.Y-(-0.5)) > tolerance {
		t.Errorf("Expected hit at y=-0.5, got %v", hit.Point)
	}
	if math.Abs(hit.Normal.Y-1.0) > tolerance {
		t.Errorf("Expected normal (0,1,0), got %v", hit.Normal)
	}
}

func TestPlane_Hit_Parallel(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 1, 0))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))

	if hit, isHit := plane.Hit(ray, 0.001, math.Inf(1)); isHit {
		t.Errorf("Expected miss for parallel ray, got t=%f", hit.T)
	}
}

func TestPlane_Hit_Behind(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 1, 0))
	ray := core.NewRay(core.NewVec3(0, 0.5, 0), core.NewVec3(0, 1, 0))

	if hit, isHit := plane.Hit(ray, 0.001, math.Inf(1)); isHit {
		t.Errorf("Expected miss for plane behind the ray, got t=%f", hit.T)
	}
}

func TestPlane_NormalIsNormalized(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 3, 4))

	if math.Abs(plane.Normal.Length()-1.0) > 1e-9 {
		t.Errorf("Expected unit normal, got length %f", plane.Normal.Length())
	}
}

func TestPlane_Validate(t *testing.T) {
	if err := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)).Validate(); err != nil {
		t.Errorf("Unexpected error for valid plane: %v", err)
	}
	if err := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0)).Validate(); err == nil {
		t.Error("Expected error for zero normal")
	}
}
