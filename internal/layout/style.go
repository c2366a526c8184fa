package layout

// Face selects one of the two built-in fonts.
type Face int

const (
	// Regular is Helvetica.
	Regular Face = iota
	// Bold is Helvetica-Bold.
	Bold
)

// String returns the PostScript name of the font.
func (f Face) String() string {
	return f.standardFont().PostScriptName()
}

// Align is the horizontal alignment of paragraph lines.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// VAlign is the vertical alignment of cell content within a table row.
type VAlign int

const (
	VAlignTop VAlign = iota
	VAlignMiddle
)

// Insets are distances from the four edges of a box, in points.
type Insets struct {
	Top, Right, Bottom, Left float64
}

// Uniform returns insets with the same value on every side.
func Uniform(v float64) Insets {
	return Insets{Top: v, Right: v, Bottom: v, Left: v}
}

// Pad returns insets in CSS order: top, right, bottom, left.
func Pad(top, right, bottom, left float64) Insets {
	return Insets{Top: top, Right: right, Bottom: bottom, Left: left}
}

// Style describes how a paragraph is set.
//
// Styles are plain values. The With* helpers return modified copies, so a
// base style can be shared and specialised without aliasing.
type Style struct {
	Face    Face
	Size    float64
	Leading float64
	Color   Color

	SpaceBefore float64
	SpaceAfter  float64
	LeftIndent  float64
	Align       Align

	// Background, when set, fills the paragraph box including BorderPadding.
	Background    *Color
	BorderPadding Insets
}

// WithColor returns a copy of s using color c.
func (s Style) WithColor(c Color) Style {
	s.Color = c
	return s
}

// WithFace returns a copy of s using face f.
func (s Style) WithFace(f Face) Style {
	s.Face = f
	return s
}

// WithSize returns a copy of s with the given font size and leading.
func (s Style) WithSize(size, leading float64) Style {
	s.Size = size
	s.Leading = leading
	return s
}

// WithAlign returns a copy of s using alignment a.
func (s Style) WithAlign(a Align) Style {
	s.Align = a
	return s
}

// WithSpacing returns a copy of s with the given space before and after.
func (s Style) WithSpacing(before, after float64) Style {
	s.SpaceBefore = before
	s.SpaceAfter = after
	return s
}

// WithBackground returns a copy of s filled with c and padded by pad.
func (s Style) WithBackground(c Color, pad Insets) Style {
	s.Background = c.Ptr()
	s.BorderPadding = pad
	return s
}

// leading returns the line height, falling back to 1.2 times the size.
func (s Style) leading() float64 {
	if s.Leading > 0 {
		return s.Leading
	}
	return s.Size * 1.2
}
