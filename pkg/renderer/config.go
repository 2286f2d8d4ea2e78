package renderer

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by all configuration validation failures
var ErrInvalidConfig = errors.New("invalid render configuration")

// Config contains rendering configuration
type Config struct {
	Width           int   // Output image width in pixels
	Height          int   // Output image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	Workers         int   // Parallel row workers; 0 means one per CPU
	Seed            int64 // Base seed for the per-row random streams
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 20,
		Workers:         1,
		Seed:            42,
	}
}

// Validate rejects degenerate configurations before any pixel is
// computed. Width and height below 2 would divide by zero in the
// pixel-to-viewport mapping.
func (c Config) Validate() error {
	if c.Width < 2 {
		return fmt.Errorf("%w: width must be at least 2, got %d", ErrInvalidConfig, c.Width)
	}
	if c.Height < 2 {
		return fmt.Errorf("%w: height must be at least 2, got %d", ErrInvalidConfig, c.Height)
	}
	if c.SamplesPerPixel < 1 {
		return fmt.Errorf("%w: samples per pixel must be at least 1, got %d", ErrInvalidConfig, c.SamplesPerPixel)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be non-negative, got %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}
