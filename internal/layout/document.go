package layout

import (
	"errors"
	"fmt"
)

// Page sizes and units in points.
const (
	Inch         = 72.0
	LetterWidth  = 8.5 * Inch
	LetterHeight = 11 * Inch
)

// ErrTooLarge is returned when a block that cannot be split does not fit
// on an empty page.
var ErrTooLarge = errors.New("content does not fit on a page")

// Document is a sequence of flowables set on pages of a fixed size.
type Document struct {
	PageWidth  float64
	PageHeight float64
	Margins    Insets

	Flowables []Flowable
}

// NewLetterDocument returns a US Letter document with the given margins.
func NewLetterDocument(margins Insets) *Document {
	return &Document{PageWidth: LetterWidth, PageHeight: LetterHeight, Margins: margins}
}

// Add appends flowables to the document.
func (d *Document) Add(f ...Flowable) {
	d.Flowables = append(d.Flowables, f...)
}

// FrameWidth returns the width available to content.
func (d *Document) FrameWidth() float64 {
	return d.PageWidth - d.Margins.Left - d.Margins.Right
}

// FrameHeight returns the height available to content on each page.
func (d *Document) FrameHeight() float64 {
	return d.PageHeight - d.Margins.Top - d.Margins.Bottom
}

// paginator tracks the frame being filled.
type paginator struct {
	d      *Document
	pages  []*Page
	page   *Page
	used   float64
	placed bool
}

func (p *paginator) newPage() {
	p.page = NewPage(p.d.PageWidth, p.d.PageHeight)
	p.pages = append(p.pages, p.page)
	p.used = 0
	p.placed = false
}

func (p *paginator) free() float64 {
	return p.d.FrameHeight() - p.used
}

func (p *paginator) place(b Block, before, after float64) {
	top := p.d.PageHeight - p.d.Margins.Top - p.used - before
	b.Draw(p.page, p.d.Margins.Left, top)
	p.used += before + b.Height() + after
	p.placed = true
}

// Layout sets the flowables on pages.
//
// Space before a block is dropped at the top of a page. Blocks that do not
// fit in the remaining space are split when they support it and moved to
// the next page otherwise.
func (d *Document) Layout() ([]*Page, error) {
	p := &paginator{d: d}
	p.newPage()
	width := d.FrameWidth()

	for i, f := range d.Flowables {
		if _, ok := f.(PageBreak); ok {
			if p.placed {
				p.newPage()
			}
			continue
		}

		b := f.Layout(width)
		for b != nil {
			before, after := b.Spacing()
			if !p.placed {
				before = 0
			}

			if before+b.Height() <= p.free() {
				p.place(b, before, after)
				break
			}

			if s, ok := b.(Splitter); ok {
				if first, rest, ok := s.Split(p.free() - before); ok {
					p.place(first, before, 0)
					p.newPage()
					b = rest
					continue
				}
			}

			if p.placed {
				p.newPage()
				continue
			}
			return nil, fmt.Errorf("flowable %d (%T, %.1fpt tall): %w", i, f, b.Height(), ErrTooLarge)
		}
	}
	return p.pages, nil
}
