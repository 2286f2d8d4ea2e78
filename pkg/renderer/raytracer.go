package renderer

import (
	"math"

	"github.com/mjh/go-mini-raytracer/pkg/core"
)

// tMinEpsilon is the lower bound of the hit acceptance window for
// primary rays, rejecting self-intersections at the surface.
const tMinEpsilon = 0.001

var infinity = math.Inf(1)

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
	GetShapes() []core.Shape
}

// Raytracer resolves individual rays against a scene. It holds no
// mutable state and is safe for concurrent use.
type Raytracer struct {
	scene Scene
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene) *Raytracer {
	return &Raytracer{scene: scene}
}

// hitWorld finds the nearest hit across all shapes in the scene.
// Passing the running closest t as tMax keeps the comparison strict,
// so exact ties resolve to the first shape in insertion order.
func (rt *Raytracer) hitWorld(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for _, shape := range rt.scene.GetShapes() {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// backgroundGradient returns a gradient color based on ray direction
func (rt *Raytracer) backgroundGradient(r core.Ray) core.Vec3 {
	topColor, bottomColor := rt.scene.GetBackgroundColors()

	unitDirection := r.Direction.Normalize()

	// Map the y-component from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}

// RayColor returns the linear color for a given ray: surface normals
// remapped to [0,1] on a hit, the background gradient on a miss.
func (rt *Raytracer) RayColor(r core.Ray) core.Vec3 {
	if hit, isHit := rt.hitWorld(r, tMinEpsilon, infinity); isHit {
		return hit.Normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
	}
	return rt.backgroundGradient(r)
}
