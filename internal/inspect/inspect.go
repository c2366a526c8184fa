package inspect

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/metadata"
	"seehuhn.de/go/pdf/pagetree"
	"seehuhn.de/go/xmp"

	"github.com/bbs-uottawa/bbsdocs/internal/layout"
)

var (
	// ErrNotPDF is returned when a file does not start with a PDF header.
	ErrNotPDF = errors.New("missing %PDF- header")

	// ErrTruncated is returned when a file has no %%EOF trailer.
	ErrTruncated = errors.New("missing %%EOF trailer")

	// ErrTooLarge is returned when a file exceeds the inspector's size limit.
	ErrTooLarge = errors.New("file too large to inspect")

	// ErrPageMismatch is returned when the /Count of the page tree root
	// disagrees with the number of pages reachable from it.
	ErrPageMismatch = errors.New("page tree count does not match its pages")
)

// trailerWindow is how far from the end of the file the %%EOF marker may
// appear. Readers accept trailing garbage within the last kilobyte.
const trailerWindow = 1024

// Report describes a PDF file.
type Report struct {
	Path    string `json:"path,omitempty"`
	Size    int64  `json:"size"`
	Version string `json:"version"`
	Pages   int    `json:"pages"`

	// FileID is the hex form of the first trailer ID.
	FileID string `json:"fileId,omitempty"`

	Title    string `json:"title,omitempty"`
	Author   string `json:"author,omitempty"`
	Subject  string `json:"subject,omitempty"`
	Keywords string `json:"keywords,omitempty"`
	Creator  string `json:"creator,omitempty"`
	Producer string `json:"producer,omitempty"`

	// XMP holds fields read from the XMP metadata stream, if present.
	XMP map[string]string `json:"xmp,omitempty"`

	// Links is the number of URI link annotations.
	Links int `json:"links"`
}

// HasXMP reports whether the file carries an XMP metadata packet.
func (r *Report) HasXMP() bool {
	return r.XMP != nil
}

// Inspector reads generated PDF files back and reports their structure
// and metadata. It is used to verify output after generation.
type Inspector struct {
	// maxSize limits how many bytes are read from a file (default 10MB).
	maxSize int64
}

// Option configures an Inspector.
type Option func(*Inspector)

// WithMaxSize sets the largest file the inspector will read.
func WithMaxSize(n int64) Option {
	return func(i *Inspector) {
		i.maxSize = n
	}
}

// New creates an Inspector.
func New(opts ...Option) *Inspector {
	i := &Inspector{
		maxSize: 10 * 1024 * 1024,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// File inspects the PDF file at path.
func (i *Inspector) File(ctx context.Context, path string) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Read one byte past the limit so oversized files can be detected.
	data, err := io.ReadAll(io.LimitReader(f, i.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if int64(len(data)) > i.maxSize {
		return nil, fmt.Errorf("%s: %w", path, ErrTooLarge)
	}

	rep, err := i.Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	rep.Path = path
	return rep, nil
}

// Bytes inspects an in-memory PDF file.
func (i *Inspector) Bytes(data []byte) (*Report, error) {
	if int64(len(data)) > i.maxSize {
		return nil, ErrTooLarge
	}
	if err := CheckStructure(data); err != nil {
		return nil, err
	}

	r, err := pdf.NewReader(bytes.NewReader(data), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PDF: %w", err)
	}
	meta := r.GetMeta()

	pages, err := pagetree.NumPages(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read page tree: %w", err)
	}
	leaves, links, err := walkPages(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read page tree: %w", err)
	}
	if leaves != pages {
		return nil, fmt.Errorf("%w: /Count is %d, tree has %d pages", ErrPageMismatch, pages, leaves)
	}

	rep := &Report{
		Size:    int64(len(data)),
		Version: meta.Version.String(),
		Pages:   pages,
		Links:   links,
	}
	if len(meta.ID) > 0 {
		rep.FileID = hex.EncodeToString(meta.ID[0])
	}
	if info := meta.Info; info != nil {
		rep.Title = string(info.Title)
		rep.Author = string(info.Author)
		rep.Subject = string(info.Subject)
		rep.Keywords = string(info.Keywords)
		rep.Creator = string(info.Creator)
		rep.Producer = string(info.Producer)
	}

	if meta.Catalog != nil && meta.Catalog.Metadata != 0 {
		fields, err := readXMP(r, meta.Catalog.Metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to read XMP metadata: %w", err)
		}
		rep.XMP = fields
	}

	return rep, nil
}

// CheckStructure verifies the %PDF- header and the %%EOF trailer.
func CheckStructure(data []byte) error {
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return ErrNotPDF
	}
	tail := data
	if len(tail) > trailerWindow {
		tail = tail[len(tail)-trailerWindow:]
	}
	if !bytes.Contains(tail, []byte("%%EOF")) {
		return ErrTruncated
	}
	return nil
}

// walkPages visits every page of the document and counts the pages and
// their URI link annotations.
func walkPages(r pdf.Getter) (pages, links int, err error) {
	it := pagetree.NewIterator(r)
	for _, page := range it.All() {
		pages++
		n, err := countURILinks(r, page)
		if err != nil {
			return 0, 0, fmt.Errorf("page %d: %w", pages, err)
		}
		links += n
	}
	if it.Err != nil {
		return 0, 0, it.Err
	}
	return pages, links, nil
}

// countURILinks counts the link annotations of a page whose action opens
// a URI. Malformed annotations are skipped.
func countURILinks(r pdf.Getter, page pdf.Dict) (int, error) {
	annots, err := pdf.Optional(pdf.GetArray(r, page["Annots"]))
	if err != nil {
		return 0, err
	}

	n := 0
	for _, obj := range annots {
		annot, err := pdf.Optional(pdf.GetDict(r, obj))
		if err != nil {
			return 0, err
		}
		subtype, err := pdf.Optional(pdf.GetName(r, annot["Subtype"]))
		if err != nil {
			return 0, err
		}
		if subtype != "Link" {
			continue
		}
		act, err := pdf.Optional(pdf.GetDict(r, annot["A"]))
		if err != nil {
			return 0, err
		}
		kind, err := pdf.Optional(pdf.GetName(r, act["S"]))
		if err != nil {
			return 0, err
		}
		if kind == "URI" {
			n++
		}
	}
	return n, nil
}

// readXMP decodes the metadata stream and extracts the fields bbsdocs
// writes, keyed by their prefixed XMP property names.
func readXMP(r pdf.Getter, ref pdf.Reference) (map[string]string, error) {
	stm, err := metadata.Extract(r, ref)
	if err != nil {
		return nil, err
	}
	fields := make(map[string]string)
	if stm == nil || stm.Data == nil {
		return fields, nil
	}
	packet := stm.Data

	dc := &xmp.DublinCore{}
	packet.Get(dc)
	basic := &xmp.Basic{}
	packet.Get(basic)
	info := &layout.PDFNamespace{}
	packet.Get(info)

	creators := make([]string, 0, len(dc.Creator.V))
	for _, c := range dc.Creator.V {
		creators = append(creators, c.String())
	}

	set := func(key, val string) {
		if val = strings.TrimSpace(val); val != "" {
			fields[key] = val
		}
	}
	set("dc:title", localized(dc.Title))
	set("dc:description", localized(dc.Description))
	set("dc:creator", strings.Join(creators, ", "))
	set("pdf:Producer", info.Producer.String())
	set("pdf:Keywords", info.Keywords.String())
	set("xmp:CreateDate", date(basic.CreateDate))
	set("xmp:ModifyDate", date(basic.ModifyDate))
	return fields, nil
}

// localized returns the x-default text of a language alternative, or the
// first language in tag order when there is no default.
func localized(l xmp.Localized) string {
	if l.Default.V != "" {
		return l.Default.V
	}
	var (
		best string
		text string
	)
	for tag, t := range l.V {
		if s := tag.String(); best == "" || s < best {
			best, text = s, t.V
		}
	}
	return text
}

func date(d xmp.Date) string {
	if d.V.IsZero() {
		return ""
	}
	return d.V.Format(time.RFC3339)
}
