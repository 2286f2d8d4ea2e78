package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/mjh/go-mini-raytracer/pkg/ppm"
	"github.com/mjh/go-mini-raytracer/pkg/renderer"
	"github.com/mjh/go-mini-raytracer/pkg/scene"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	sceneType := flag.String("scene", "default", "Scene type: 'default', 'single' or 'plane'")
	width := flag.Int("width", 400, "Output image width in pixels")
	aspect := flag.Float64("aspect", 16.0/9.0, "Aspect ratio (height is derived)")
	samples := flag.Int("samples", 20, "Samples per pixel (1 disables jitter)")
	gamma := flag.Bool("gamma", false, "Apply gamma-2 correction to the output")
	workers := flag.Int("workers", 1, "Parallel row workers (0 = one per CPU)")
	seed := flag.Int64("seed", 42, "Base seed for the sampling random streams")
	output := flag.String("output", "image.ppm", "Output PPM file path")
	preview := flag.String("preview", "", "Optional PNG thumbnail path")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Mini Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Sphere resting on a large ground sphere")
		fmt.Println("  single  - One sphere centered on the camera axis")
		fmt.Println("  plane   - Sphere floating over an infinite ground plane")
		return nil
	}

	selectedScene, err := createScene(*sceneType, *aspect)
	if err != nil {
		return err
	}

	config := renderer.Config{
		Width:           *width,
		Height:          deriveHeight(*width, *aspect),
		SamplesPerPixel: *samples,
		Workers:         *workers,
		Seed:            *seed,
	}

	r, err := renderer.NewRenderer(selectedScene, config, nil)
	if err != nil {
		return err
	}

	// Ctrl-C aborts the render between rows
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	frame, stats, err := r.Render(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Render completed in %v (%d samples)\n", stats.Elapsed, stats.TotalSamples)

	encoding := ppm.Linear
	if *gamma {
		encoding = ppm.Gamma2
	}

	if err := writeImage(*output, frame, encoding); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", *output)

	if *preview != "" {
		if err := writePreview(*preview, frame, encoding); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", *preview)
	}

	return nil
}

// createScene builds the scene selected on the command line
func createScene(sceneType string, aspectRatio float64) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(aspectRatio)
	case "single":
		return scene.NewSingleSphereScene(aspectRatio)
	case "plane":
		return scene.NewPlaneScene(aspectRatio)
	default:
		return nil, fmt.Errorf("unknown scene type: %q", sceneType)
	}
}

// deriveHeight computes the image height from width and aspect ratio,
// truncating toward zero. Non-positive ratios yield a height the
// renderer configuration rejects.
func deriveHeight(width int, aspectRatio float64) int {
	if aspectRatio <= 0 {
		return 0
	}
	return int(float64(width) / aspectRatio)
}

func writeImage(path string, frame *renderer.Frame, encoding ppm.Encoding) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := ppm.Write(file, frame, encoding); err != nil {
		file.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

func writePreview(path string, frame *renderer.Frame, encoding ppm.Encoding) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := ppm.WritePreview(file, frame, encoding, uint(frame.Width/4)); err != nil {
		file.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
