// Package report renders the documents in each output format.
//
// This package contains writers for different output formats:
//   - PDFWriter: the printable US Letter document, the primary output
//   - MarkdownWriter: a companion for wikis and email
//   - JSONWriter: structured output for tool integration
//   - SimpleWriter: a plain-text outline for terminal display
//
// Design decision: We separate rendering from the document data (which is
// in the model package). The PDF layout of each document lives in its own
// pdf_*.go file as a list of layout flowables, so the page design can be
// read top to bottom in document order.
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed for multi-format output.
package report
