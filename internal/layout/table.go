package layout

// Stroke is a line width and color used for table borders.
type Stroke struct {
	Width float64
	Color Color
}

// Table lays out rows of cells in fixed-width columns.
//
// Tables are centered in the frame when narrower than it. They split
// between rows, and the first RepeatRows rows are repeated at the top of
// every continuation.
type Table struct {
	ColWidths []float64
	Rows      [][]Flowable

	Padding Insets
	VAlign  VAlign

	// Grid draws every cell border; Box draws only the outline.
	Grid *Stroke
	Box  *Stroke

	// Background fills the whole table; RowBackgrounds override it per row.
	Background     *Color
	RowBackgrounds map[int]Color

	RepeatRows int
}

// NewTable returns a table with the given column widths and rows.
func NewTable(colWidths []float64, rows [][]Flowable) *Table {
	return &Table{ColWidths: colWidths, Rows: rows}
}

// SetRowBackground fills row i with c.
func (t *Table) SetRowBackground(i int, c Color) *Table {
	if t.RowBackgrounds == nil {
		t.RowBackgrounds = make(map[int]Color)
	}
	t.RowBackgrounds[i] = c
	return t
}

// Width returns the sum of the column widths.
func (t *Table) Width() float64 {
	var w float64
	for _, cw := range t.ColWidths {
		w += cw
	}
	return w
}

// Layout implements Flowable.
func (t *Table) Layout(width float64) Block {
	rows := make([]tableRow, len(t.Rows))
	for i, cells := range t.Rows {
		rows[i] = t.layoutRow(i, cells)
	}
	offset := 0.0
	if tw := t.Width(); tw < width {
		offset = (width - tw) / 2
	}
	return &tableBlock{t: t, rows: rows, offset: offset}
}

type tableRow struct {
	index  int
	cells  []Block
	height float64
}

func (t *Table) layoutRow(i int, cells []Flowable) tableRow {
	row := tableRow{index: i, cells: make([]Block, len(cells))}
	var content float64
	for j, cell := range cells {
		if cell == nil || j >= len(t.ColWidths) {
			continue
		}
		inner := t.ColWidths[j] - t.Padding.Left - t.Padding.Right
		b := cell.Layout(inner)
		row.cells[j] = b
		if h := b.Height(); h > content {
			content = h
		}
	}
	row.height = content + t.Padding.Top + t.Padding.Bottom
	return row
}

type tableBlock struct {
	t      *Table
	rows   []tableRow
	offset float64
}

// RowCount returns the number of rows in this part of the table.
func (b *tableBlock) RowCount() int { return len(b.rows) }

func (b *tableBlock) Height() float64 {
	var h float64
	for _, r := range b.rows {
		h += r.height
	}
	return h
}

func (b *tableBlock) Spacing() (float64, float64) { return 0, 0 }

func (b *tableBlock) Split(avail float64) (Block, Block, bool) {
	repeat := min(b.t.RepeatRows, len(b.rows))
	var used float64
	n := 0
	for n < len(b.rows) && used+b.rows[n].height <= avail {
		used += b.rows[n].height
		n++
	}
	if n <= repeat || n >= len(b.rows) {
		return nil, nil, false
	}

	first := &tableBlock{t: b.t, rows: b.rows[:n], offset: b.offset}
	restRows := make([]tableRow, 0, repeat+len(b.rows)-n)
	restRows = append(restRows, b.rows[:repeat]...)
	restRows = append(restRows, b.rows[n:]...)
	rest := &tableBlock{t: b.t, rows: restRows, offset: b.offset}
	return first, rest, true
}

func (b *tableBlock) Draw(c Canvas, x, top float64) {
	t := b.t
	x += b.offset
	width := t.Width()
	height := b.Height()

	if t.Background != nil {
		c.FillRect(x, top-height, width, height, *t.Background)
	}

	y := top
	for _, r := range b.rows {
		if bg, ok := t.RowBackgrounds[r.index]; ok {
			c.FillRect(x, y-r.height, width, r.height, bg)
		}
		cx := x
		for j, cell := range r.cells {
			cw := t.ColWidths[j]
			if cell != nil {
				ctop := y - t.Padding.Top
				if t.VAlign == VAlignMiddle {
					content := r.height - t.Padding.Top - t.Padding.Bottom
					ctop -= (content - cell.Height()) / 2
				}
				cell.Draw(c, cx+t.Padding.Left, ctop)
			}
			cx += cw
		}
		y -= r.height
	}

	if g := t.Grid; g != nil {
		y := top
		for _, r := range b.rows {
			c.Line(x, y, x+width, y, g.Width, g.Color)
			y -= r.height
		}
		c.Line(x, y, x+width, y, g.Width, g.Color)
		cx := x
		c.Line(cx, top, cx, top-height, g.Width, g.Color)
		for _, cw := range t.ColWidths {
			cx += cw
			c.Line(cx, top, cx, top-height, g.Width, g.Color)
		}
	}
	if s := t.Box; s != nil {
		c.StrokeRect(x, top-height, width, height, s.Width, s.Color)
	}
}
