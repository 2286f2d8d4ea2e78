package renderer

import (
	"fmt"

	"github.com/mjh/go-mini-raytracer/pkg/core"
)

// CameraConfig contains camera configuration, fixed at construction
type CameraConfig struct {
	AspectRatio    float64   // Width / height of the viewport
	ViewportHeight float64   // Height of the viewport in world units
	FocalLength    float64   // Distance from the eye to the image plane
	Origin         core.Vec3 // Eye point
}

// DefaultCameraConfig returns the standard camera: eye at the origin
// looking down -Z through a viewport of height 2 at focal length 1
func DefaultCameraConfig(aspectRatio float64) CameraConfig {
	return CameraConfig{
		AspectRatio:    aspectRatio,
		ViewportHeight: 2.0,
		FocalLength:    1.0,
		Origin:         core.NewVec3(0, 0, 0),
	}
}

// Validate checks the camera configuration for degenerate values
func (c CameraConfig) Validate() error {
	if c.AspectRatio <= 0 {
		return fmt.Errorf("%w: aspect ratio must be positive, got %g", ErrInvalidConfig, c.AspectRatio)
	}
	if c.ViewportHeight <= 0 {
		return fmt.Errorf("%w: viewport height must be positive, got %g", ErrInvalidConfig, c.ViewportHeight)
	}
	if c.FocalLength <= 0 {
		return fmt.Errorf("%w: focal length must be positive, got %g", ErrInvalidConfig, c.FocalLength)
	}
	return nil
}

// Camera generates rays for rendering
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a camera from a validated configuration
func NewCamera(config CameraConfig) *Camera {
	viewportWidth := config.AspectRatio * config.ViewportHeight

	horizontal := core.NewVec3(viewportWidth, 0, 0)
	vertical := core.NewVec3(0, config.ViewportHeight, 0)
	lowerLeftCorner := config.Origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(core.NewVec3(0, 0, config.FocalLength))

	return &Camera{
		origin:          config.Origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
	}
}

// GetRay generates a ray for image-plane coordinates (u, v), where
// (0,0) is the lower-left corner and (1,1) the upper-right. Values
// outside [0,1] are accepted and produce off-viewport rays.
func (c *Camera) GetRay(u, v float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}
