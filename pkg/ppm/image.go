package ppm

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/nfnt/resize"

	"github.com/mjh/go-mini-raytracer/pkg/renderer"
)

// ToImage converts a frame to a standard image using the given encoding
func ToImage(frame *renderer.Frame, encoding Encoding) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, frame.Width, frame.Height))
	for y, row := range frame.Pixels {
		for x, pixel := range row {
			r, g, b := channels(pixel, encoding)
			img.Set(x, y, color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255})
		}
	}
	return img
}

// WritePreview writes a PNG thumbnail of the frame, downscaled to
// previewWidth pixels wide with aspect ratio preserved.
func WritePreview(w io.Writer, frame *renderer.Frame, encoding Encoding, previewWidth uint) error {
	img := ToImage(frame, encoding)
	thumb := resize.Resize(previewWidth, 0, img, resize.Lanczos3)
	if err := png.Encode(w, thumb); err != nil {
		return fmt.Errorf("encoding preview: %w", err)
	}
	return nil
}
