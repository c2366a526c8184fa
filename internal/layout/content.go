package layout

import (
	"strings"

	"seehuhn.de/go/pdf/font/type1"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/pdf/graphics/content/builder"
)

func (c Color) deviceRGB() color.DeviceRGB {
	return color.DeviceRGB{c.R, c.G, c.B}
}

// draw replays the recorded operations of p onto b. fonts holds the
// instances the content stream refers to, indexed by Face.
func (p *Page) draw(b *builder.Builder, fonts [2]*type1.Instance) {
	for _, o := range p.ops {
		switch o.kind {
		case opFill:
			b.SetFillColor(o.color.deviceRGB())
			b.Rectangle(o.x, o.y, o.w, o.h)
			b.Fill()
		case opStroke:
			b.SetStrokeColor(o.color.deviceRGB())
			b.SetLineWidth(o.lineWidth)
			b.Rectangle(o.x, o.y, o.w, o.h)
			b.Stroke()
		case opLine:
			b.SetStrokeColor(o.color.deviceRGB())
			b.SetLineWidth(o.lineWidth)
			b.MoveTo(o.x, o.y)
			b.LineTo(o.w, o.h)
			b.Stroke()
		case opText:
			drawText(b, fonts[o.face], o)
		}
	}
}

// drawText shows a text run. Checkbox glyphs are cut out of the run and
// drawn as squares.
func drawText(b *builder.Builder, inst *type1.Instance, o op) {
	x := o.x
	segs := strings.Split(sanitize(inst, o.text), string(BoxGlyph))
	for i, seg := range segs {
		if seg != "" {
			b.SetFillColor(o.color.deviceRGB())
			b.TextBegin()
			b.TextSetFont(inst, o.size)
			b.TextFirstLine(x, o.y)
			x += b.TextShow(seg)
			b.TextEnd()
		}
		if i < len(segs)-1 {
			side := o.size * 0.6
			b.SetStrokeColor(o.color.deviceRGB())
			b.SetLineWidth(o.size / 16)
			b.Rectangle(x+o.size*0.075, o.y-o.size*0.05, side, side)
			b.Stroke()
			x += boxWidth * o.size
		}
	}
}
