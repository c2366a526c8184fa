// Package layout is a small page layout engine that produces PDF files.
//
// Content is described as a list of flowables (paragraphs, tables, rules,
// spacers and page breaks). Document.Layout measures them with the metrics
// of the standard Helvetica fonts from seehuhn.de/go/pdf/font/standard,
// wraps text, splits tall paragraphs and tables across pages and records
// drawing operations on Page values. Render replays the pages onto the
// content builders of a seehuhn.de/go/pdf/document and adds link
// annotations and an XMP packet.
//
// The engine only knows the two faces Helvetica and Helvetica-Bold, which
// every PDF viewer provides without embedding. Characters outside WinAnsi
// are shown as '?'. The empty checkbox ☐ is drawn as a square.
//
// Output is deterministic. Metadata dates are supplied by the caller and
// the file ID is derived from the metadata.
package layout
