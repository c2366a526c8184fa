package layout

import (
	"strings"
	"sync"

	"golang.org/x/text/encoding/charmap"
	"seehuhn.de/go/pdf/font/standard"
	"seehuhn.de/go/pdf/font/type1"
)

// BoxGlyph is an empty checkbox. The standard fonts have no glyph for it,
// so it is drawn as a stroked square of the same advance width.
const BoxGlyph = '☐'

// boxWidth is the advance of BoxGlyph in text space units.
const boxWidth = 0.75

// measureFonts holds one instance per face for measuring text. Layout only
// reads glyph widths from them, so they are safe to share between
// goroutines. Rendering uses its own instances because encoding text
// records which glyphs a file uses.
var measureFonts = sync.OnceValue(func() [2]*type1.Instance {
	return [2]*type1.Instance{
		Regular: standard.Helvetica.New(),
		Bold:    standard.HelveticaBold.New(),
	}
})

// standardFont returns the standard 14 font for a face.
func (f Face) standardFont() standard.Font {
	if f == Bold {
		return standard.HelveticaBold
	}
	return standard.Helvetica
}

// sanitize replaces runes the face cannot show without embedding font
// data by '?'. Only WinAnsi characters with a glyph in the standard font
// are kept. BoxGlyph is left in place for the renderer to cut out.
func sanitize(inst *type1.Instance, s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == BoxGlyph {
			b.WriteRune(r)
			continue
		}
		if _, ok := charmap.Windows1252.EncodeRune(r); !ok || r < ' ' {
			b.WriteByte('?')
			continue
		}
		if seq := inst.Layout(nil, 1, string(r)); len(seq.Seq) != 1 || seq.Seq[0].GID == 0 {
			b.WriteByte('?')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// TextWidth returns the width of s in points when set in face at size.
func TextWidth(face Face, size float64, s string) float64 {
	inst := measureFonts()[face]
	var total float64
	for i, seg := range strings.Split(sanitize(inst, s), string(BoxGlyph)) {
		if i > 0 {
			total += boxWidth * size
		}
		if seg != "" {
			total += inst.Layout(nil, size, seg).TotalWidth()
		}
	}
	return total
}

// Ascent returns the distance from the baseline to the top of the tallest
// glyphs at the given size.
func Ascent(size float64) float64 {
	return measureFonts()[Regular].Geometry.Ascent * size
}

// Descent returns the distance from the baseline to the bottom of
// descenders at the given size, as a positive number.
func Descent(size float64) float64 {
	return -measureFonts()[Regular].Geometry.Descent * size
}
