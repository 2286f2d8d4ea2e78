package scene

import (
	"github.com/mjh/go-mini-raytracer/pkg/core"
	"github.com/mjh/go-mini-raytracer/pkg/geometry"
	"github.com/mjh/go-mini-raytracer/pkg/renderer"
)

// Background gradient: white below fading to sky blue above
var (
	skyTop    = core.NewVec3(0.5, 0.7, 1.0)
	skyBottom = core.NewVec3(1.0, 1.0, 1.0)
)

// NewDefaultScene creates the two-sphere scene: a unit-half sphere in
// front of the camera resting on a very large ground sphere
func NewDefaultScene(aspectRatio float64) (*Scene, error) {
	return NewScene(
		renderer.DefaultCameraConfig(aspectRatio),
		skyTop, skyBottom,
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100),
	)
}

// NewSingleSphereScene creates the minimal scene: one sphere centered
// on the camera's forward axis
func NewSingleSphereScene(aspectRatio float64) (*Scene, error) {
	return NewScene(
		renderer.DefaultCameraConfig(aspectRatio),
		skyTop, skyBottom,
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5),
	)
}

// NewPlaneScene creates a sphere floating over an infinite ground plane
func NewPlaneScene(aspectRatio float64) (*Scene, error) {
	return NewScene(
		renderer.DefaultCameraConfig(aspectRatio),
		skyTop, skyBottom,
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5),
		geometry.NewPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 1, 0)),
	)
}
