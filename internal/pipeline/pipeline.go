package pipeline

import (
	"context"
	"log/slog"
	"time"
)

// Step defines the interface that all pipeline steps must implement.
// Steps are executed in sequence, with each step receiving the job
// as left by the previous steps.
//
// Design decision: We use an interface rather than function types because:
// 1. It allows steps to carry configuration state (writers, inspector)
// 2. It provides a Name() method for logging and for Job.Steps
type Step interface {
	// Do executes the pipeline step.
	// It receives the context for cancellation, and the job to modify.
	Do(ctx context.Context, job *Job) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline orchestrates the execution of multiple steps.
// It maintains a list of steps and executes them in order.
type Pipeline struct {
	// steps contains the ordered list of steps to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger

	// continueOnError determines whether to continue executing steps
	// after one fails. If false, the pipeline stops on first error.
	continueOnError bool
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, slog.Default is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithContinueOnError configures the pipeline to continue execution
// even when a step fails. The last error is kept on the job.
//
// The default is to stop on error: a document that failed to render
// has nothing to write, and a PDF that failed to write has nothing to
// verify.
func WithContinueOnError(continueOnError bool) Option {
	return func(p *Pipeline) {
		p.continueOnError = continueOnError
	}
}

// New creates a new Pipeline with the given options.
// Steps should be added using AddStep after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddStep appends a step to the pipeline.
// Steps are executed in the order they are added.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs the steps in order against job and records the name of
// every step that succeeds in job.Steps.
//
// The context is checked before each step rather than during, because
// steps are short and should not leave half-written files behind.
//
// A failing step sets job.Err. Execution stops there and the error is
// returned unless the pipeline was built WithContinueOnError, in which
// case the remaining steps still run and Execute returns nil.
func (p *Pipeline) Execute(ctx context.Context, job *Job) error {
	logger := p.logger.With("kind", job.Kind.String())

	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			logger.Warn("pipeline cancelled", "step", step.Name(), "reason", err)
			job.Err = err
			return err
		}

		start := time.Now()
		err := step.Do(ctx, job)
		if err == nil {
			logger.Debug("step done", "step", step.Name(), "elapsed", time.Since(start))
			job.Steps = append(job.Steps, step.Name())
			continue
		}

		logger.Debug("step failed", "step", step.Name(), "error", err)
		job.Err = err
		if !p.continueOnError {
			return err
		}
	}

	return nil
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
