package pipeline

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// BatchProcessor runs a pipeline for each of several jobs concurrently.
// It uses errgroup to manage goroutines and respect concurrency limits.
//
// Design decision: We use a separate BatchProcessor rather than adding batch
// functionality to Pipeline because:
// 1. It keeps the Pipeline focused on a single document
// 2. It provides cleaner separation of concerns
type BatchProcessor struct {
	// pipelineFactory creates a new pipeline for each job.
	pipelineFactory func() *Pipeline

	// concurrency is the maximum number of concurrent jobs.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent jobs.
// Default is 10 if not specified.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a new BatchProcessor.
//
// The pipelineFactory function is called for each job to create a fresh
// pipeline instance, so pipeline state doesn't leak between jobs.
func NewBatchProcessor(pipelineFactory func() *Pipeline, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		pipelineFactory: pipelineFactory,
		concurrency:     10,
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessBatch runs every job through its own pipeline.
// It respects the configured concurrency limit and context cancellation.
//
// A failed job does not stop the others: its error is recorded on the
// job. The returned error is non-nil only when the context was
// cancelled. Jobs that never started keep the context error in Err.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, jobs []*Job) ([]*Job, error) {
	err := bp.ProcessBatchWithCallback(ctx, jobs, nil)
	return jobs, err
}

// ProcessBatchWithCallback runs every job and calls callback as each one
// finishes. The callback is called from the goroutine that ran the job,
// so it must be safe for concurrent use. A nil callback is allowed.
func (bp *BatchProcessor) ProcessBatchWithCallback(
	ctx context.Context,
	jobs []*Job,
	callback func(job *Job, index int),
) error {
	bp.logger.Debug("starting batch processing",
		"total_jobs", len(jobs),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, job := range jobs {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				job.Err = gctx.Err()
				return gctx.Err()
			default:
			}

			pipeline := bp.pipelineFactory()
			if err := pipeline.Execute(gctx, job); err != nil {
				bp.logger.Warn("document failed",
					"kind", job.Kind.String(),
					"error", err,
				)
			}

			if callback != nil {
				callback(job, i)
			}

			// Failures stay on the job so the other documents still run.
			return nil
		})
	}

	err := g.Wait()

	bp.logger.Debug("batch processing complete",
		"total_jobs", len(jobs),
		"elapsed", time.Since(startTime),
	)

	if err == nil {
		err = ctx.Err()
	}
	return err
}
