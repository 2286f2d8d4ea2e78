// Package ppm encodes rendered frames as plain-text P3 raster images.
package ppm

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/mjh/go-mini-raytracer/pkg/core"
	"github.com/mjh/go-mini-raytracer/pkg/renderer"
)

// Encoding selects how linear color is mapped to output channels
type Encoding int

const (
	// Linear truncates clamped linear color straight to [0,255]
	Linear Encoding = iota
	// Gamma2 applies square-root gamma correction before quantizing
	Gamma2
)

// maxChannel is the clamp ceiling; it keeps the scaled value strictly
// below 256 so truncation lands in [0,255].
const maxChannel = 0.999

// channels maps one linear color to three output integers
func channels(color core.Vec3, encoding Encoding) (int, int, int) {
	c := color.Clamp(0, maxChannel)
	if encoding == Gamma2 {
		c = c.GammaCorrect(2.0)
	}
	return quantize(c.X), quantize(c.Y), quantize(c.Z)
}

// quantize truncates a clamped channel to an integer in [0,255].
// NaN survives the clamp, so it is pinned to 0 here.
func quantize(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(255.999 * v)
}

// Write encodes the frame to w in the P3 format: a three-line header,
// then one "R G B" line per pixel, rows top-to-bottom.
func Write(w io.Writer, frame *renderer.Frame, encoding Encoding) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", frame.Width, frame.Height); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, row := range frame.Pixels {
		for _, color := range row {
			ir, ig, ib := channels(color, encoding)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", ir, ig, ib); err != nil {
				return fmt.Errorf("writing pixel: %w", err)
			}
		}
	}

	return bw.Flush()
}
