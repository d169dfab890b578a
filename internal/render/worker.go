package render

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/weatherrecap/weatherrecap/internal/logger"
)

var ErrWorkerStopped = errors.New("render worker is stopped")

// Task is one unit of render work. It receives a context bounded by the
// worker's timeout and cancelled on shutdown.
type Task func(ctx context.Context) error

// Worker runs render tasks in the background, at most MaxConcurrent at a time.
// Tasks outlive the request that submitted them.
type Worker struct { //nolint:govet // field ordering prioritizes readability over memory alignment
	Logger        *logger.Logger
	MaxConcurrent int
	Timeout       time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	sem    chan struct{}
	wg     sync.WaitGroup

	mu      sync.RWMutex
	stopped bool
}

func NewWorker(maxConcurrent int, timeout time.Duration, log *logger.Logger) *Worker {
	ctx, cancel := context.WithCancel(context.Background())

	if log == nil {
		log = logger.Default()
	}
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	return &Worker{
		MaxConcurrent: maxConcurrent,
		Timeout:       timeout,
		Logger:        log.WithComponent("render_worker"),
		sem:           make(chan struct{}, maxConcurrent),
		ctx:           ctx,
		cancel:        cancel,
	}
}

func (w *Worker) Start() {
	w.Logger.Info("Starting render worker", "max_concurrent", w.MaxConcurrent, "timeout", w.Timeout)
}

// Stop cancels running tasks and waits for them to return.
func (w *Worker) Stop() {
	w.Logger.Info("Stopping render worker")

	w.mu.Lock()
	w.stopped = true
	w.mu.Unlock()

	w.cancel()
	w.wg.Wait()
}

// Submit schedules task and returns a channel that receives its result
// exactly once. The channel is buffered so nobody has to read it.
func (w *Worker) Submit(jobID, wizardID int64, task Task) (<-chan error, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.stopped {
		return nil, ErrWorkerStopped
	}

	done := make(chan error, 1)
	runID := uuid.NewString()
	log := w.Logger.WithRenderJob(jobID, wizardID).With("run_id", runID)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		done <- w.run(log, task)
	}()

	return done, nil
}

func (w *Worker) run(log *logger.Logger, task Task) (err error) {
	select {
	case w.sem <- struct{}{}:
	case <-w.ctx.Done():
		log.Warn("Render task dropped before start")
		return ErrWorkerStopped
	}
	defer func() { <-w.sem }()

	defer func() {
		if r := recover(); r != nil {
			log.Error("Panic in render task", "panic", r)
			err = fmt.Errorf("render task panicked: %v", r)
		}
	}()

	ctx := logger.IntoContext(w.ctx, log)
	if w.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.Timeout)
		defer cancel()
	}

	start := time.Now()
	log.Info("Render task started")
	err = task(ctx)
	if err != nil {
		log.Error("Render task failed", "duration", time.Since(start), "error", err)
		return err
	}
	log.Info("Render task finished", "duration", time.Since(start))
	return nil
}
