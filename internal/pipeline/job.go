package pipeline

import (
	"path/filepath"

	"github.com/bbs-uottawa/bbsdocs/internal/inspect"
	"github.com/bbs-uottawa/bbsdocs/internal/model"
)

// Job carries one document through the pipeline. Steps fill in the
// fields they produce; later steps rely on the earlier ones.
type Job struct {
	// Kind is the document being generated.
	Kind model.Kind

	// Path is the destination of the PDF file.
	Path string

	// Document is the loaded dataset, one of the model document types.
	Document any

	// Title is the document title, used to check the written metadata.
	Title string

	// PDF holds the rendered file until it is written.
	PDF []byte

	// Pages is the page count of the rendered PDF.
	Pages int

	// Outputs lists every file written for the job, the PDF first.
	Outputs []string

	// Inspection is the result of reading the written PDF back.
	Inspection *inspect.Report

	// Steps lists the names of the steps that completed.
	Steps []string

	// Err is the error of the step that failed, if any.
	Err error
}

// NewJob creates a job that writes the kind's PDF to path.
func NewJob(kind model.Kind, path string) *Job {
	return &Job{
		Kind:    kind,
		Path:    path,
		Outputs: make([]string, 0, 3),
		Steps:   make([]string, 0, 5),
	}
}

// Dir returns the directory the job writes into.
func (j *Job) Dir() string {
	return filepath.Dir(j.Path)
}

// Succeeded reports whether every step ran without error.
func (j *Job) Succeeded() bool {
	return j.Err == nil
}

// companionPath returns the job's path with the PDF extension replaced.
func (j *Job) companionPath(ext string) string {
	return j.Path[:len(j.Path)-len(filepath.Ext(j.Path))] + ext
}

// documentTitle returns the title of a model document.
func documentTitle(doc any) string {
	switch d := doc.(type) {
	case *model.BankingReport:
		return d.Title
	case *model.SponsorTask:
		return d.Title
	case *model.LinkAudit:
		return d.Title
	default:
		return ""
	}
}
