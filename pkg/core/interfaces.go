package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// HitRecord contains information about a ray-shape intersection.
// It is produced per intersection test and consumed immediately.
type HitRecord struct {
	T      float64 // Ray parameter at the intersection
	Point  Vec3    // Intersection point in world space
	Normal Vec3    // Outward unit normal at the intersection
}

// Shape is anything a ray can intersect. Hit reports the nearest
// intersection with tMin < t < tMax, or false if there is none.
type Shape interface {
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
}

// Validator is implemented by shapes that can check their own geometry
// for degenerate parameters before a render begins.
type Validator interface {
	Validate() error
}
