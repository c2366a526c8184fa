package layout

// Paragraph is a block of wrapped text with optional <b> markup.
type Paragraph struct {
	Text  string
	Style Style

	// Link, when set, makes the whole paragraph a clickable URI.
	Link string
}

// NewParagraph returns a paragraph of text set in st.
func NewParagraph(text string, st Style) *Paragraph {
	return &Paragraph{Text: text, Style: st}
}

// WithLink returns p with a URI link annotation over its area.
func (p *Paragraph) WithLink(uri string) *Paragraph {
	p.Link = uri
	return p
}

// Layout implements Flowable.
func (p *Paragraph) Layout(width float64) Block {
	st := p.Style
	pad := st.BorderPadding
	avail := width - st.LeftIndent - pad.Left - pad.Right
	if avail < st.Size {
		avail = st.Size
	}
	words := splitWords(ParseMarkup(p.Text, st.Face), st.Size)
	return &paragraphBlock{
		p:     p,
		lines: wrap(words, st.Size, avail),
		width: width,
		first: true,
		last:  true,
	}
}

type paragraphBlock struct {
	p     *Paragraph
	lines []line
	width float64

	// first and last record whether this part holds the first or last
	// line of a split paragraph, which decides where spacing applies.
	first, last bool
}

// Lines returns the text of each laid-out line.
func (b *paragraphBlock) Lines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = l.text()
	}
	return out
}

func (b *paragraphBlock) Height() float64 {
	st := b.p.Style
	return float64(len(b.lines))*st.leading() + st.BorderPadding.Top + st.BorderPadding.Bottom
}

func (b *paragraphBlock) Spacing() (float64, float64) {
	var before, after float64
	if b.first {
		before = b.p.Style.SpaceBefore
	}
	if b.last {
		after = b.p.Style.SpaceAfter
	}
	return before, after
}

func (b *paragraphBlock) Split(avail float64) (Block, Block, bool) {
	st := b.p.Style
	n := int((avail - st.BorderPadding.Top - st.BorderPadding.Bottom) / st.leading())
	if n < 1 || n >= len(b.lines) {
		return nil, nil, false
	}
	first := &paragraphBlock{p: b.p, lines: b.lines[:n], width: b.width, first: b.first}
	rest := &paragraphBlock{p: b.p, lines: b.lines[n:], width: b.width, last: b.last}
	return first, rest, true
}

func (b *paragraphBlock) Draw(c Canvas, x, top float64) {
	st := b.p.Style
	pad := st.BorderPadding
	h := b.Height()
	if st.Background != nil {
		c.FillRect(x, top-h, b.width, h, *st.Background)
	}

	lead := st.leading()
	left := x + st.LeftIndent + pad.Left
	right := x + b.width - pad.Right
	for i, l := range b.lines {
		lineTop := top - pad.Top - float64(i)*lead
		baseline := lineTop - (lead-Ascent(st.Size)-Descent(st.Size))/2 - Ascent(st.Size)

		lx := left
		switch st.Align {
		case AlignRight:
			lx = right - l.width
		case AlignCenter:
			lx = left + (right-left-l.width)/2
		}
		for _, r := range l.runs {
			c.Text(lx, baseline, r.face, st.Size, st.Color, r.text)
			lx += r.width
		}
	}

	if b.p.Link != "" {
		c.Link(x, top-h, b.width, h, b.p.Link)
	}
}
