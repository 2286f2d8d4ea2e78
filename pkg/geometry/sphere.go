package geometry

import (
	"fmt"
	"math"

	"github.com/mjh/go-mini-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

// Hit tests if a ray intersects with the sphere.
// Only the near intersection is considered: a ray starting inside the
// sphere reports no hit, since the near root lies behind the origin and
// the far root is never tried.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	root := (-halfB - math.Sqrt(discriminant)) / a
	if root <= tMin || root >= tMax {
		return nil, false
	}

	hitPoint := ray.At(root)
	return &core.HitRecord{
		T:     root,
		Point: hitPoint,
		// Outward normal, never flipped toward the ray
		Normal: hitPoint.Subtract(s.Center).Multiply(1.0 / s.Radius),
	}, true
}

// Validate checks the sphere for degenerate geometry
func (s *Sphere) Validate() error {
	if s.Radius <= 0 {
		return fmt.Errorf("sphere at %v has non-positive radius %g", s.Center, s.Radius)
	}
	return nil
}
