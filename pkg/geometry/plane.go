package geometry

import (
	"fmt"
	"math"

	"github.com/mjh/go-mini-raytracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Unit normal vector
}

// NewPlane creates a new plane. The normal is normalized on construction.
func NewPlane(point, normal core.Vec3) *Plane {
	return &Plane{Point: point, Normal: normal.Normalize()}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray is parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t <= tMin || t >= tMax {
		return nil, false
	}

	return &core.HitRecord{
		T:      t,
		Point:  ray.At(t),
		Normal: p.Normal,
	}, true
}

// Validate checks the plane for degenerate geometry
func (p *Plane) Validate() error {
	if l := p.Normal.Length(); math.IsNaN(l) || l == 0 {
		return fmt.Errorf("plane at %v has degenerate normal %v", p.Point, p.Normal)
	}
	return nil
}
