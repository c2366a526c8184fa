package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bbs-uottawa/bbsdocs/internal/config"
	"github.com/bbs-uottawa/bbsdocs/internal/inspect"
	"github.com/bbs-uottawa/bbsdocs/internal/model"
	"github.com/bbs-uottawa/bbsdocs/internal/report"
)

// ErrDuplicateOutput is returned when two documents would be written to
// the same file.
var ErrDuplicateOutput = errors.New("two documents share an output file")

// Generator renders documents into the configured output directory.
type Generator struct {
	cfg       *config.Config
	version   string
	logger    *slog.Logger
	inspector *inspect.Inspector
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithGeneratorLogger sets a custom logger for the generator and the
// pipelines it runs.
func WithGeneratorLogger(logger *slog.Logger) GeneratorOption {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithVersion sets the bbsdocs version recorded in PDF and JSON metadata.
func WithVersion(version string) GeneratorOption {
	return func(g *Generator) {
		g.version = version
	}
}

// WithInspector sets the inspector used to verify written files.
func WithInspector(inspector *inspect.Inspector) GeneratorOption {
	return func(g *Generator) {
		g.inspector = inspector
	}
}

// NewGenerator creates a Generator for a validated configuration.
func NewGenerator(cfg *config.Config, opts ...GeneratorOption) *Generator {
	g := &Generator{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	if g.inspector == nil {
		g.inspector = inspect.New()
	}
	return g
}

// Run generates every document named in the configuration.
func (g *Generator) Run(ctx context.Context) ([]*Job, error) {
	kinds, err := g.cfg.Kinds()
	if err != nil {
		return nil, err
	}
	return g.GenerateAll(ctx, kinds)
}

// Generate renders a single document.
func (g *Generator) Generate(ctx context.Context, kind model.Kind) (*Job, error) {
	jobs, err := g.GenerateAll(ctx, []model.Kind{kind})
	if len(jobs) == 0 {
		return nil, err
	}
	return jobs[0], err
}

// GenerateAll renders the given documents concurrently while holding the
// output directory lock. The returned jobs are in the order of kinds,
// whether or not they succeeded. The error joins the errors of every
// failed job.
func (g *Generator) GenerateAll(ctx context.Context, kinds []model.Kind) ([]*Job, error) {
	dir, err := g.cfg.ResolveOutputDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	jobs := make([]*Job, 0, len(kinds))
	seen := make(map[string]model.Kind, len(kinds))
	for _, kind := range kinds {
		name := g.cfg.FileName(kind)
		if other, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w: %s and %s both write %s", ErrDuplicateOutput, other, kind, name)
		}
		seen[name] = kind
		jobs = append(jobs, NewJob(kind, filepath.Join(dir, name)))
	}

	lock, err := LockDir(ctx, dir, g.cfg.LockTimeout)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			g.logger.Warn("failed to release output directory lock", "error", err)
		}
	}()
	g.logger.Debug("locked output directory", "dir", dir, "lock", lock.Path())

	bp := NewBatchProcessor(g.newPipeline,
		WithConcurrency(g.cfg.Concurrency),
		WithBatchLogger(g.logger),
	)
	if _, err := bp.ProcessBatch(ctx, jobs); err != nil {
		return jobs, err
	}

	var errs []error
	for _, job := range jobs {
		if job.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", job.Kind, job.Err))
			continue
		}
		g.logger.Info("generated document",
			"kind", job.Kind.String(),
			"path", job.Path,
			"pages", job.Pages,
		)
	}
	return jobs, errors.Join(errs...)
}

// newPipeline builds the step list for one document.
func (g *Generator) newPipeline() *Pipeline {
	renderOpts := []report.PDFWriterOption{report.WithProducerVersion(g.version)}
	if g.cfg.Author != "" {
		renderOpts = append(renderOpts, report.WithAuthor(g.cfg.Author))
	}

	companion := NewCompanionStep(
		WithMarkdown(g.cfg.Markdown),
		WithJSON(g.cfg.JSON),
		WithCompanionVersion(g.version),
	)

	var verify *VerifyStep
	if g.cfg.Verify {
		verify = NewVerifyStep(g.inspector, WithVerifyLogger(g.logger))
	}

	p := New(WithLogger(g.logger))
	p.AddSteps(DefaultSteps(renderOpts, companion, verify)...)
	return p
}
