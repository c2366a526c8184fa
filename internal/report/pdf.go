package report

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/bbs-uottawa/bbsdocs/internal/layout"
	"github.com/bbs-uottawa/bbsdocs/internal/model"
)

// DefaultAuthor is the author recorded in PDF metadata.
const DefaultAuthor = "Nathan Amankwah, Finance Pillar"

// DefaultCreated is the date recorded in PDF metadata. Every run uses
// the same date so that generated files are reproducible.
var DefaultCreated = time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC)

// producer identifies this generator in the PDF metadata.
const producer = "bbsdocs"

// PDFWriter renders documents as US Letter PDF files.
//
// The whole file is laid out and serialized into memory before anything is
// written to the output, so a layout failure never leaves a partial file
// behind in the destination.
type PDFWriter struct {
	baseWriter

	author  string
	created time.Time
	version string

	// pages is the page count of the last rendered document.
	pages int
}

// PDFWriterOption configures a PDFWriter.
type PDFWriterOption func(*PDFWriter)

// WithAuthor sets the author recorded in the PDF metadata.
func WithAuthor(author string) PDFWriterOption {
	return func(w *PDFWriter) {
		w.author = author
	}
}

// WithCreated sets the creation date recorded in the PDF metadata.
func WithCreated(t time.Time) PDFWriterOption {
	return func(w *PDFWriter) {
		w.created = t
	}
}

// WithProducerVersion appends a version to the producer metadata field.
func WithProducerVersion(version string) PDFWriterOption {
	return func(w *PDFWriter) {
		w.version = version
	}
}

// NewPDFWriter creates a PDFWriter that outputs to the given writer.
func NewPDFWriter(output io.Writer, opts ...PDFWriterOption) *PDFWriter {
	w := &PDFWriter{
		baseWriter: newBaseWriter(output),
		author:     DefaultAuthor,
		created:    DefaultCreated,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Pages returns the page count of the last document written.
func (w *PDFWriter) Pages() int {
	return w.pages
}

// WriteBanking outputs the bank account options report.
func (w *PDFWriter) WriteBanking(r *model.BankingReport) (int, error) {
	return w.render(model.KindBanking, r.Title, bankingFlowables(r))
}

// WriteSponsorTask outputs the sponsorship research task sheet.
func (w *PDFWriter) WriteSponsorTask(t *model.SponsorTask) (int, error) {
	return w.render(model.KindSponsorTask, t.Title, sponsorTaskFlowables(t))
}

// WriteLinkAudit outputs the verified sponsorship links report.
func (w *PDFWriter) WriteLinkAudit(a *model.LinkAudit) (int, error) {
	return w.render(model.KindLinkAudit, a.Title, linkAuditFlowables(a))
}

func (w *PDFWriter) render(kind model.Kind, title string, flowables []layout.Flowable) (int, error) {
	doc := layout.NewLetterDocument(pageMargins)
	doc.Add(flowables...)

	pages, err := doc.Layout()
	if err != nil {
		return 0, fmt.Errorf("failed to lay out %s: %w", kind, err)
	}

	prod := producer
	if w.version != "" {
		prod += " " + w.version
	}
	meta := layout.Metadata{
		Title:    title,
		Author:   w.author,
		Subject:  kind.Description(),
		Keywords: "BIPOC Business Society, " + kind.String(),
		Creator:  producer,
		Producer: prod,
		Created:  w.created,
	}

	var buf bytes.Buffer
	if err := layout.Render(&buf, pages, meta); err != nil {
		return 0, fmt.Errorf("failed to render %s: %w", kind, err)
	}
	w.pages = len(pages)
	return w.output.Write(buf.Bytes())
}
