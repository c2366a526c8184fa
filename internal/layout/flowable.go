package layout

// Flowable is a piece of document content that can be laid out at a given
// width. Paragraphs, tables, rules and spacers are flowables.
type Flowable interface {
	Layout(width float64) Block
}

// Block is a flowable after layout: its size is fixed and it can draw itself.
type Block interface {
	// Height is the height of the block excluding surrounding space.
	Height() float64

	// Spacing returns the vertical space wanted before and after the block.
	Spacing() (before, after float64)

	// Draw paints the block with its top-left corner at (x, top).
	Draw(c Canvas, x, top float64)
}

// Splitter is implemented by blocks that can be broken across pages.
type Splitter interface {
	// Split returns a first part no taller than avail and the remainder.
	// ok is false when no useful split exists.
	Split(avail float64) (first, rest Block, ok bool)
}

// Spacer is fixed vertical space.
type Spacer struct {
	Size float64
}

// Layout implements Flowable.
func (s Spacer) Layout(float64) Block { return spacerBlock(s) }

type spacerBlock Spacer

func (s spacerBlock) Height() float64             { return s.Size }
func (s spacerBlock) Spacing() (float64, float64) { return 0, 0 }
func (s spacerBlock) Draw(Canvas, float64, float64) {}

// Rule is a horizontal line across the full frame width.
type Rule struct {
	Thickness   float64
	Color       Color
	SpaceBefore float64
	SpaceAfter  float64
}

// HR returns a rule with the given thickness, color and space after it.
func HR(thickness float64, c Color, spaceAfter float64) Rule {
	return Rule{Thickness: thickness, Color: c, SpaceBefore: 1, SpaceAfter: spaceAfter}
}

// Layout implements Flowable.
func (r Rule) Layout(width float64) Block {
	return ruleBlock{Rule: r, width: width}
}

type ruleBlock struct {
	Rule
	width float64
}

func (r ruleBlock) Height() float64             { return r.Thickness }
func (r ruleBlock) Spacing() (float64, float64) { return r.SpaceBefore, r.SpaceAfter }

func (r ruleBlock) Draw(c Canvas, x, top float64) {
	y := top - r.Thickness/2
	c.Line(x, y, x+r.width, y, r.Thickness, r.Color)
}

// PageBreak forces the following content onto a new page.
type PageBreak struct{}

// Layout implements Flowable. The paginator handles page breaks itself,
// so the returned block is empty.
func (PageBreak) Layout(float64) Block { return spacerBlock{} }
