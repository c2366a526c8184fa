package report

import (
	"encoding/json"
	"io"

	"github.com/bbs-uottawa/bbsdocs/internal/model"
)

// JSONWriter outputs documents in JSON format.
// This format is designed for tool integration and programmatic processing.
//
// Design decision: We use standard encoding/json rather than a third-party
// JSON library because:
// 1. It's part of the standard library (no extra dependencies)
// 2. It's sufficient for our needs
// 3. It provides consistent behavior across Go versions
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string

	// version is the generator version recorded in the envelope.
	version string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = ""
		w.indentString = "  "
	}
}

// WithVersion records the generator version in the output.
func WithVersion(version string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.version = version
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter:   newBaseWriter(output),
		indent:       false,
		indentPrefix: "",
		indentString: "",
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// JSONDocument wraps a document with the metadata needed to interpret it.
//
// Design decision: We wrap the document rather than adding fields to the
// model types because this allows us to add output-specific fields
// without polluting the core data structures.
type JSONDocument struct {
	// Kind is the document kind, e.g. "banking".
	Kind string `json:"kind"`

	// Version is the bbsdocs version that generated the output.
	Version string `json:"version,omitempty"`

	// Counts summarises the link statuses of a link audit.
	Counts map[string]int `json:"counts,omitempty"`

	// Document is the document itself.
	Document any `json:"document"`
}

// WriteBanking outputs the bank account options report in JSON format.
func (w *JSONWriter) WriteBanking(r *model.BankingReport) (int, error) {
	return w.writeJSON(w.wrap(model.KindBanking, r))
}

// WriteSponsorTask outputs the task sheet in JSON format.
func (w *JSONWriter) WriteSponsorTask(t *model.SponsorTask) (int, error) {
	return w.writeJSON(w.wrap(model.KindSponsorTask, t))
}

// WriteLinkAudit outputs the link audit in JSON format, including the
// number of links with each status.
func (w *JSONWriter) WriteLinkAudit(a *model.LinkAudit) (int, error) {
	doc := w.wrap(model.KindLinkAudit, a)
	doc.Counts = make(map[string]int)
	for status, n := range a.CountByStatus() {
		doc.Counts[status.String()] = n
	}
	return w.writeJSON(doc)
}

func (w *JSONWriter) wrap(kind model.Kind, doc any) *JSONDocument {
	return &JSONDocument{
		Kind:     kind.String(),
		Version:  w.version,
		Document: doc,
	}
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
