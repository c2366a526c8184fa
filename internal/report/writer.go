package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/bbs-uottawa/bbsdocs/internal/model"
)

// ErrUnsupportedDocument is returned by Write for values that are not one
// of the model document types.
var ErrUnsupportedDocument = errors.New("unsupported document type")

// Writer defines the interface for document output.
// Implementations render each document type in one format.
//
// Design decision: We keep one method per document type instead of a
// single method taking an interface. Each document has its own layout,
// and a format that has nothing useful to say about one type still has to
// decide explicitly what to write for it.
type Writer interface {
	// WriteBanking outputs the bank account options report.
	// Returns the number of bytes written and any error encountered.
	WriteBanking(r *model.BankingReport) (int, error)

	// WriteSponsorTask outputs the sponsorship research task sheet.
	WriteSponsorTask(t *model.SponsorTask) (int, error)

	// WriteLinkAudit outputs the verified sponsorship links report.
	WriteLinkAudit(a *model.LinkAudit) (int, error)
}

// Write dispatches doc to the matching method of w.
func Write(w Writer, doc any) (int, error) {
	switch d := doc.(type) {
	case *model.BankingReport:
		return w.WriteBanking(d)
	case *model.SponsorTask:
		return w.WriteSponsorTask(d)
	case *model.LinkAudit:
		return w.WriteLinkAudit(d)
	default:
		return 0, fmt.Errorf("%T: %w", doc, ErrUnsupportedDocument)
	}
}

// MultiWriter writes to multiple Writers in sequence.
// This is useful for writing the text preview to both terminal and file.
//
// Design decision: We implement this as a separate type rather than
// using io.MultiWriter because the formats differ per writer; each one
// renders the document itself rather than copying bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// WriteBanking outputs the report to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) WriteBanking(r *model.BankingReport) (int, error) {
	return m.each(func(w Writer) (int, error) { return w.WriteBanking(r) })
}

// WriteSponsorTask outputs the task sheet to all configured Writers.
func (m *MultiWriter) WriteSponsorTask(t *model.SponsorTask) (int, error) {
	return m.each(func(w Writer) (int, error) { return w.WriteSponsorTask(t) })
}

// WriteLinkAudit outputs the link audit to all configured Writers.
func (m *MultiWriter) WriteLinkAudit(a *model.LinkAudit) (int, error) {
	return m.each(func(w Writer) (int, error) { return w.WriteLinkAudit(a) })
}

func (m *MultiWriter) each(fn func(Writer) (int, error)) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := fn(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for document writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
