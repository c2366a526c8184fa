package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bbs-uottawa/bbsdocs/internal/dataset"
	"github.com/bbs-uottawa/bbsdocs/internal/inspect"
	"github.com/bbs-uottawa/bbsdocs/internal/report"
)

var (
	// ErrNothingRendered is returned when a step needs the rendered PDF
	// but no render step ran before it.
	ErrNothingRendered = errors.New("no rendered PDF in job")

	// ErrNoDocument is returned when a step needs the loaded document
	// but no load step ran before it.
	ErrNoDocument = errors.New("no document loaded in job")

	// ErrVerifyFailed is returned when the written PDF does not match
	// what was rendered.
	ErrVerifyFailed = errors.New("written PDF does not match rendered document")
)

// filePerm is the permission of generated files.
const filePerm = 0o644

// LoadStep loads the embedded dataset of the job's kind.
type LoadStep struct{}

// NewLoadStep creates a new load step.
func NewLoadStep() *LoadStep {
	return &LoadStep{}
}

// Name returns the step name.
func (s *LoadStep) Name() string {
	return "load"
}

// Do executes the load step.
func (s *LoadStep) Do(_ context.Context, job *Job) error {
	doc, err := dataset.Load(job.Kind)
	if err != nil {
		return fmt.Errorf("failed to load %s dataset: %w", job.Kind, err)
	}
	job.Document = doc
	job.Title = documentTitle(doc)
	return nil
}

// RenderStep renders the loaded document into an in-memory PDF.
type RenderStep struct {
	opts []report.PDFWriterOption
}

// NewRenderStep creates a render step. The options are passed to every
// PDFWriter the step creates.
func NewRenderStep(opts ...report.PDFWriterOption) *RenderStep {
	return &RenderStep{opts: opts}
}

// Name returns the step name.
func (s *RenderStep) Name() string {
	return "render"
}

// Do executes the render step.
func (s *RenderStep) Do(_ context.Context, job *Job) error {
	if job.Document == nil {
		return ErrNoDocument
	}

	var buf bytes.Buffer
	w := report.NewPDFWriter(&buf, s.opts...)
	if _, err := report.Write(w, job.Document); err != nil {
		return err
	}
	job.PDF = buf.Bytes()
	job.Pages = w.Pages()
	return nil
}

// WriteStep writes the rendered PDF to the job's path.
type WriteStep struct{}

// NewWriteStep creates a new write step.
func NewWriteStep() *WriteStep {
	return &WriteStep{}
}

// Name returns the step name.
func (s *WriteStep) Name() string {
	return "write"
}

// Do executes the write step.
func (s *WriteStep) Do(_ context.Context, job *Job) error {
	if len(job.PDF) == 0 {
		return ErrNothingRendered
	}
	if err := writeFileAtomic(job.Path, job.PDF); err != nil {
		return err
	}
	job.Outputs = append(job.Outputs, job.Path)
	return nil
}

// CompanionStep writes the Markdown and JSON versions of the document
// next to the PDF, sharing its base name.
type CompanionStep struct {
	markdown bool
	json     bool
	version  string
}

// CompanionOption configures a CompanionStep.
type CompanionOption func(*CompanionStep)

// WithMarkdown enables the .md companion.
func WithMarkdown(enabled bool) CompanionOption {
	return func(s *CompanionStep) {
		s.markdown = enabled
	}
}

// WithJSON enables the .json companion.
func WithJSON(enabled bool) CompanionOption {
	return func(s *CompanionStep) {
		s.json = enabled
	}
}

// WithCompanionVersion sets the version recorded in the JSON companion.
func WithCompanionVersion(version string) CompanionOption {
	return func(s *CompanionStep) {
		s.version = version
	}
}

// NewCompanionStep creates a companion step. With no options it writes
// nothing.
func NewCompanionStep(opts ...CompanionOption) *CompanionStep {
	s := &CompanionStep{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *CompanionStep) Name() string {
	return "companions"
}

// Enabled reports whether the step writes any file.
func (s *CompanionStep) Enabled() bool {
	return s.markdown || s.json
}

// Do executes the companion step.
func (s *CompanionStep) Do(_ context.Context, job *Job) error {
	if job.Document == nil {
		return ErrNoDocument
	}

	if s.markdown {
		var buf bytes.Buffer
		if _, err := report.Write(report.NewMarkdownWriter(&buf), job.Document); err != nil {
			return fmt.Errorf("failed to render markdown: %w", err)
		}
		if err := s.write(job, ".md", buf.Bytes()); err != nil {
			return err
		}
	}

	if s.json {
		var buf bytes.Buffer
		w := report.NewJSONWriter(&buf, report.WithPrettyPrint(), report.WithVersion(s.version))
		if _, err := report.Write(w, job.Document); err != nil {
			return fmt.Errorf("failed to render JSON: %w", err)
		}
		if err := s.write(job, ".json", buf.Bytes()); err != nil {
			return err
		}
	}

	return nil
}

func (s *CompanionStep) write(job *Job, ext string, data []byte) error {
	path := job.companionPath(ext)
	if err := writeFileAtomic(path, data); err != nil {
		return err
	}
	job.Outputs = append(job.Outputs, path)
	return nil
}

// VerifyStep reads the written PDF back and checks it against the
// rendered document.
type VerifyStep struct {
	inspector *inspect.Inspector
	logger    *slog.Logger
}

// VerifyStepOption configures a VerifyStep.
type VerifyStepOption func(*VerifyStep)

// WithVerifyLogger sets a custom logger for the verify step.
func WithVerifyLogger(logger *slog.Logger) VerifyStepOption {
	return func(s *VerifyStep) {
		s.logger = logger
	}
}

// NewVerifyStep creates a verify step using the given inspector.
func NewVerifyStep(inspector *inspect.Inspector, opts ...VerifyStepOption) *VerifyStep {
	s := &VerifyStep{
		inspector: inspector,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.inspector == nil {
		s.inspector = inspect.New()
	}
	return s
}

// Name returns the step name.
func (s *VerifyStep) Name() string {
	return "verify"
}

// Do executes the verify step.
func (s *VerifyStep) Do(ctx context.Context, job *Job) error {
	rep, err := s.inspector.File(ctx, job.Path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrVerifyFailed, err)
	}
	job.Inspection = rep

	if rep.Pages != job.Pages {
		return fmt.Errorf("%w: %d pages written, %d rendered", ErrVerifyFailed, rep.Pages, job.Pages)
	}
	if job.Title != "" && rep.Title != job.Title {
		return fmt.Errorf("%w: title %q, want %q", ErrVerifyFailed, rep.Title, job.Title)
	}

	s.logger.Debug("verified PDF",
		"path", job.Path,
		"pages", rep.Pages,
		"links", rep.Links,
		"version", rep.Version,
	)
	return nil
}

// DefaultSteps returns the steps every document goes through.
func DefaultSteps(renderOpts []report.PDFWriterOption, companion *CompanionStep, verify *VerifyStep) []Step {
	steps := []Step{NewLoadStep(), NewRenderStep(renderOpts...), NewWriteStep()}
	if companion != nil && companion.Enabled() {
		steps = append(steps, companion)
	}
	if verify != nil {
		steps = append(steps, verify)
	}
	return steps
}

// writeFileAtomic writes data to a temporary file in the destination
// directory and renames it into place, so readers never see a partial
// file.
func writeFileAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file for %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err = os.Chmod(tmp.Name(), filePerm); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
