package renderer

import (
	"runtime"
	"sync"

	"github.com/mjh/go-mini-raytracer/pkg/core"
)

// RowTask represents one output scanline to render
type RowTask struct {
	Row  int   // Output row index, 0 is the top scanline
	Seed int64 // Seed for this row's random stream
}

// RowResult contains the rendered pixels for one scanline
type RowResult struct {
	Row    int
	Pixels []core.Vec3
}

// WorkerPool renders rows in parallel. Each task carries its own seed,
// so results are identical regardless of which worker picks it up.
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	numWorkers  int
	renderRow   func(RowTask) RowResult
	wg          sync.WaitGroup
}

// NewWorkerPool creates a worker pool with the specified number of
// workers; numWorkers <= 0 uses one worker per CPU. queueDepth should
// be the number of rows so submission never blocks.
func NewWorkerPool(numWorkers, queueDepth int, renderRow func(RowTask) RowResult) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		taskQueue:   make(chan RowTask, queueDepth),
		resultQueue: make(chan RowResult, queueDepth),
		numWorkers:  numWorkers,
		renderRow:   renderRow,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Stop signals that no more tasks will arrive and waits for the
// workers to drain the queue
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// Results exposes the completed rows; closed after Stop
func (wp *WorkerPool) Results() <-chan RowResult {
	return wp.resultQueue
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		wp.resultQueue <- wp.renderRow(task)
	}
}
