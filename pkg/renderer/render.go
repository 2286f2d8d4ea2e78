package renderer

import (
	"context"
	"math/rand"
	"runtime"
	"time"

	"github.com/mjh/go-mini-raytracer/pkg/core"
)

// Frame is a rendered image: linear RGB values per pixel.
// Pixels[row][col], where row 0 is the top scanline.
type Frame struct {
	Width  int
	Height int
	Pixels [][]core.Vec3
}

// Renderer drives the camera, raytracer and sampling loop to produce
// a complete frame
type Renderer struct {
	scene     Scene
	config    Config
	logger    core.Logger
	raytracer *Raytracer
}

// NewRenderer creates a renderer, rejecting degenerate configurations
// before any pixel is computed. A nil logger writes to stdout.
func NewRenderer(scene Scene, config Config, logger core.Logger) (*Renderer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &Renderer{
		scene:     scene,
		config:    config,
		logger:    logger,
		raytracer: NewRaytracer(scene),
	}, nil
}

// Render computes every pixel of the frame. Rows are rendered from the
// top scanline down; with more than one worker rows are computed in
// parallel but assembled by row index, so the output is identical to a
// serial render with the same seed.
func (r *Renderer) Render(ctx context.Context) (*Frame, RenderStats, error) {
	start := time.Now()

	workers := r.config.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	r.logger.Printf("Rendering %dx%d at %d samples/pixel with %d worker(s)\n",
		r.config.Width, r.config.Height, r.config.SamplesPerPixel, workers)

	frame := &Frame{
		Width:  r.config.Width,
		Height: r.config.Height,
		Pixels: make([][]core.Vec3, r.config.Height),
	}

	var err error
	if workers == 1 {
		err = r.renderSerial(ctx, frame)
	} else {
		err = r.renderParallel(ctx, frame, workers)
	}
	if err != nil {
		return nil, RenderStats{}, err
	}

	totalPixels := r.config.Width * r.config.Height
	stats := RenderStats{
		TotalPixels:    totalPixels,
		TotalSamples:   totalPixels * r.config.SamplesPerPixel,
		AverageSamples: float64(r.config.SamplesPerPixel),
		Elapsed:        time.Since(start),
	}
	return frame, stats, nil
}

func (r *Renderer) renderSerial(ctx context.Context, frame *Frame) error {
	for row := 0; row < r.config.Height; row++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		result := r.renderRow(r.rowTask(row))
		frame.Pixels[result.Row] = result.Pixels
	}
	return nil
}

func (r *Renderer) renderParallel(ctx context.Context, frame *Frame, workers int) error {
	pool := NewWorkerPool(workers, r.config.Height, r.renderRow)
	pool.Start()

	go func() {
		defer pool.Stop()
		for row := 0; row < r.config.Height; row++ {
			select {
			case <-ctx.Done():
				return
			default:
			}
			pool.SubmitTask(r.rowTask(row))
		}
	}()

	for result := range pool.Results() {
		frame.Pixels[result.Row] = result.Pixels
	}

	return ctx.Err()
}

// rowTask derives the task for one output row. The seed depends only
// on the row index, which keeps serial and parallel renders identical.
func (r *Renderer) rowTask(row int) RowTask {
	return RowTask{Row: row, Seed: r.config.Seed + int64(row)}
}

// renderRow renders one output scanline. Output row 0 is the top of the
// image, which in viewport coordinates is the highest v value.
func (r *Renderer) renderRow(task RowTask) RowResult {
	random := rand.New(rand.NewSource(task.Seed))
	camera := r.scene.GetCamera()

	width := r.config.Width
	height := r.config.Height
	samples := r.config.SamplesPerPixel
	j := height - 1 - task.Row

	pixels := make([]core.Vec3, width)
	for i := 0; i < width; i++ {
		var ps PixelStats
		for s := 0; s < samples; s++ {
			// Single-sample renders use the exact grid position;
			// jitter is only drawn when antialiasing.
			var du, dv float64
			if samples > 1 {
				du = random.Float64()
				dv = random.Float64()
			}
			u := (float64(i) + du) / float64(width-1)
			v := (float64(j) + dv) / float64(height-1)
			ps.AddSample(r.raytracer.RayColor(camera.GetRay(u, v)))
		}
		pixels[i] = ps.Color()
	}

	return RowResult{Row: task.Row, Pixels: pixels}
}
