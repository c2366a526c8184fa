package layout

// Canvas receives drawing operations in PDF user space: points, with the
// origin at the bottom-left corner of the page.
type Canvas interface {
	FillRect(x, y, w, h float64, c Color)
	StrokeRect(x, y, w, h, lineWidth float64, c Color)
	Line(x1, y1, x2, y2, lineWidth float64, c Color)
	Text(x, y float64, face Face, size float64, c Color, s string)
	Link(x, y, w, h float64, uri string)
}

type opKind int

const (
	opFill opKind = iota
	opStroke
	opLine
	opText
)

// op is a recorded drawing operation.
type op struct {
	kind opKind

	x, y, w, h float64 // rectangle, or line endpoints as (x, y)-(w, h)
	lineWidth  float64
	color      Color

	face Face
	size float64
	text string
}

// LinkArea is a clickable rectangle pointing at a URI.
type LinkArea struct {
	X, Y, W, H float64
	URI        string
}

// Page records the drawing operations of one page. It implements Canvas.
type Page struct {
	Width, Height float64

	ops   []op
	links []LinkArea
}

// NewPage returns an empty page of the given size.
func NewPage(width, height float64) *Page {
	return &Page{Width: width, Height: height}
}

// FillRect implements Canvas.
func (p *Page) FillRect(x, y, w, h float64, c Color) {
	p.ops = append(p.ops, op{kind: opFill, x: x, y: y, w: w, h: h, color: c})
}

// StrokeRect implements Canvas.
func (p *Page) StrokeRect(x, y, w, h, lineWidth float64, c Color) {
	p.ops = append(p.ops, op{kind: opStroke, x: x, y: y, w: w, h: h, lineWidth: lineWidth, color: c})
}

// Line implements Canvas.
func (p *Page) Line(x1, y1, x2, y2, lineWidth float64, c Color) {
	p.ops = append(p.ops, op{kind: opLine, x: x1, y: y1, w: x2, h: y2, lineWidth: lineWidth, color: c})
}

// Text implements Canvas.
func (p *Page) Text(x, y float64, face Face, size float64, c Color, s string) {
	if s == "" {
		return
	}
	p.ops = append(p.ops, op{kind: opText, x: x, y: y, face: face, size: size, color: c, text: s})
}

// Link implements Canvas.
func (p *Page) Link(x, y, w, h float64, uri string) {
	p.links = append(p.links, LinkArea{X: x, Y: y, W: w, H: h, URI: uri})
}

// Texts returns the text runs drawn on the page, in drawing order.
func (p *Page) Texts() []string {
	var out []string
	for _, o := range p.ops {
		if o.kind == opText {
			out = append(out, o.text)
		}
	}
	return out
}

// Links returns the link areas of the page.
func (p *Page) Links() []LinkArea {
	return p.links
}

// Empty reports whether nothing has been drawn on the page.
func (p *Page) Empty() bool {
	return len(p.ops) == 0 && len(p.links) == 0
}
