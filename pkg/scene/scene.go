// Package scene assembles cameras, shapes and background colors into
// renderable scenes.
package scene

import (
	"fmt"

	"github.com/mjh/go-mini-raytracer/pkg/core"
	"github.com/mjh/go-mini-raytracer/pkg/renderer"
)

// Scene contains the complete description of what to render.
// Immutable for the duration of a render; shape order is insertion
// order and only matters as the tie-break for equal hit distances.
type Scene struct {
	CameraConfig renderer.CameraConfig
	TopColor     core.Vec3
	BottomColor  core.Vec3

	shapes []core.Shape
	camera *renderer.Camera
}

// NewScene creates a scene, validating the camera configuration and
// every shape before the renderer can touch them
func NewScene(cameraConfig renderer.CameraConfig, topColor, bottomColor core.Vec3, shapes ...core.Shape) (*Scene, error) {
	if err := cameraConfig.Validate(); err != nil {
		return nil, err
	}
	for i, shape := range shapes {
		if v, ok := shape.(core.Validator); ok {
			if err := v.Validate(); err != nil {
				return nil, fmt.Errorf("%w: shape %d: %v", renderer.ErrInvalidConfig, i, err)
			}
		}
	}

	return &Scene{
		CameraConfig: cameraConfig,
		TopColor:     topColor,
		BottomColor:  bottomColor,
		shapes:       shapes,
		camera:       renderer.NewCamera(cameraConfig),
	}, nil
}

// GetCamera returns the scene's camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.camera
}

// GetShapes returns the scene's shapes in insertion order
func (s *Scene) GetShapes() []core.Shape {
	return s.shapes
}

// GetBackgroundColors returns the background gradient colors
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}
