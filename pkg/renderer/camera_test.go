package renderer

import (
	"math"
	"testing"

	"github.com/mjh/go-mini-raytracer/pkg/core"
)

func TestCamera_GetRay(t *testing.T) {
	// Aspect 2 with viewport height 2 gives a 4x2 viewport and a
	// lower-left corner at (-2,-1,-1)
	camera := NewCamera(DefaultCameraConfig(2.0))

	tests := []struct {
		name        string
		u, v        float64
		expectedDir core.Vec3
	}{
		{"lower-left corner", 0, 0, core.NewVec3(-2, -1, -1)},
		{"upper-right corner", 1, 1, core.NewVec3(2, 1, -1)},
		{"viewport center", 0.5, 0.5, core.NewVec3(0, 0, -1)},
		{"off-viewport coordinates accepted", 2, 0.5, core.NewVec3(6, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.u, tt.v)

			if ray.Origin != (core.Vec3{}) {
				t.Errorf("Expected ray origin at the eye point, got %v", ray.Origin)
			}

			tolerance := 1e-9
			if math.Abs(ray.Direction.X-tt.expectedDir.X) > tolerance ||
				math.Abs(ray.Direction.Y-tt.expectedDir.Y) > tolerance ||
				math.Abs(ray.Direction.Z-tt.expectedDir.Z) > tolerance {
				t.Errorf("Expected direction %v, got %v", tt.expectedDir, ray.Direction)
			}
		})
	}
}

func TestCamera_OffsetOrigin(t *testing.T) {
	config := DefaultCameraConfig(1.0)
	config.Origin = core.NewVec3(1, 2, 3)
	camera := NewCamera(config)

	ray := camera.GetRay(0.5, 0.5)
	if ray.Origin != config.Origin {
		t.Errorf("Expected ray origin %v, got %v", config.Origin, ray.Origin)
	}

	// The center ray still points straight down the viewing axis
	tolerance := 1e-9
	if math.Abs(ray.Direction.X) > tolerance ||
		math.Abs(ray.Direction.Y) > tolerance ||
		math.Abs(ray.Direction.Z-(-1)) > tolerance {
		t.Errorf("Expected direction (0,0,-1), got %v", ray.Direction)
	}
}

func TestCameraConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*CameraConfig)
		expectError bool
	}{
		{"default config is valid", func(c *CameraConfig) {}, false},
		{"zero aspect ratio", func(c *CameraConfig) { c.AspectRatio = 0 }, true},
		{"negative viewport height", func(c *CameraConfig) { c.ViewportHeight = -2 }, true},
		{"zero focal length", func(c *CameraConfig) { c.FocalLength = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultCameraConfig(16.0 / 9.0)
			tt.mutate(&config)

			err := config.Validate()
			if tt.expectError && err == nil {
				t.Error("Expected validation error, got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
		})
	}
}
