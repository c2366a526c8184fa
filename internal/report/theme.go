package report

import (
	"github.com/bbs-uottawa/bbsdocs/internal/layout"
	"github.com/bbs-uottawa/bbsdocs/internal/model"
)

// Palette shared by all documents.
var (
	darkBG      = layout.Hex("#1a1a2e")
	accent      = layout.Hex("#e94560")
	headerBG    = layout.Hex("#16213e")
	rowAlt      = layout.Hex("#f7f7f7")
	linkColor   = layout.Hex("#0066cc")
	green       = layout.Hex("#2d6a4f")
	orange      = layout.Hex("#e76f51")
	red         = layout.Hex("#c1121f")
	gold        = layout.Hex("#b8860b")
	lightGreen  = layout.Hex("#d8f3dc")
	lightBlue   = layout.Hex("#e8f0fe")
	grey555     = layout.Hex("#555555")
	grey333     = layout.Hex("#333333")
	grey666     = layout.Hex("#666666")
	grey999     = layout.Hex("#999999")
	ruleGrey    = layout.Hex("#cccccc")
	borderGrey  = layout.Hex("#dddddd")
	faintGrey   = layout.Hex("#eeeeee")
	checkBG     = layout.Hex("#f8f8f8")
	findingsBG  = layout.Hex("#fffef5")
	instructBG  = layout.Hex("#f0f4ff")
	pageMargins = layout.Pad(0.5*layout.Inch, 0.6*layout.Inch, 0.5*layout.Inch, 0.6*layout.Inch)
)

// cellPadding is the horizontal padding of table cells.
const cellPadding = 6

// theme holds the paragraph styles of one document. The banking report
// sets headings slightly tighter than the sponsorship documents.
type theme struct {
	title       layout.Style
	subtitle    layout.Style
	small       layout.Style
	body        layout.Style
	bold        layout.Style
	link        layout.Style
	heading     layout.Style
	section     layout.Style
	callout     layout.Style
	rec         layout.Style
	num         layout.Style
	checklist   layout.Style
	instruction layout.Style

	// faintRuleAfter is the space after the thin rule closing each entry.
	faintRuleAfter float64
}

func newTheme(kind model.Kind) *theme {
	body := layout.Style{Face: layout.Regular, Size: 9.5, Leading: 13, Color: grey333, SpaceAfter: 6}
	small := layout.Style{Face: layout.Regular, Size: 8, Leading: 10, Color: grey666}

	t := &theme{
		title:    layout.Style{Face: layout.Bold, Size: 22, Leading: 26, Color: darkBG, SpaceAfter: 4},
		subtitle: layout.Style{Face: layout.Regular, Size: 12, Leading: 16, Color: grey555, SpaceAfter: 2},
		small:    small,
		body:     body,
		bold:     body.WithFace(layout.Bold),
		link:     layout.Style{Face: layout.Regular, Size: 8.5, Leading: 11, Color: linkColor},
		heading:  layout.Style{Face: layout.Bold, Size: 14, Leading: 18, Color: darkBG, SpaceBefore: 16, SpaceAfter: 8},
		section:  layout.Style{Face: layout.Bold, Size: 11, Leading: 14, Color: accent, SpaceBefore: 12, SpaceAfter: 4},
		callout: body.WithColor(darkBG).
			WithSpacing(0, 10).
			WithBackground(lightBlue, layout.Pad(8, 10, 8, 10)),
		rec: body.WithFace(layout.Bold).
			WithSize(10, 14).
			WithColor(green).
			WithBackground(lightGreen, layout.Pad(8, 10, 8, 10)),
		num: body.WithFace(layout.Bold).WithSize(18, 22).WithColor(accent),
		instruction: body.WithColor(darkBG).
			WithSpacing(0, 8).
			WithBackground(instructBG, layout.Pad(6, 8, 6, 8)),
		faintRuleAfter: 6,
	}
	t.checklist = body.WithSize(9, 12).WithSpacing(0, 3)
	t.checklist.LeftIndent = 15

	if kind == model.KindBanking {
		t.heading.SpaceBefore = 14
		t.section.SpaceBefore = 10
		t.faintRuleAfter = 8
	}
	return t
}

// verdictColor maps a verdict level to its text color.
func verdictColor(level model.VerdictLevel) layout.Color {
	switch level {
	case model.VerdictBest:
		return green
	case model.VerdictRunnerUp:
		return orange
	default:
		return gold
	}
}

// priorityColor maps a lead priority to its label color.
func priorityColor(p model.Priority) layout.Color {
	switch p {
	case model.PriorityUrgent:
		return red
	case model.PriorityHigh:
		return orange
	default:
		return green
	}
}

// para is shorthand for a paragraph flowable.
func para(text string, st layout.Style) *layout.Paragraph {
	return layout.NewParagraph(text, st)
}

// labeled formats a "<b>Label:</b> value" line.
func labeled(label, value string) string {
	return "<b>" + label + ":</b> " + value
}

// fixedTable builds a table whose cells are padded on the sides the way
// every table in the documents is.
func fixedTable(widthsInch []float64, rows [][]layout.Flowable, vpad float64) *layout.Table {
	widths := make([]float64, len(widthsInch))
	for i, w := range widthsInch {
		widths[i] = w * layout.Inch
	}
	t := layout.NewTable(widths, rows)
	t.Padding = layout.Pad(vpad, cellPadding, vpad, cellPadding)
	t.VAlign = layout.VAlignMiddle
	return t
}

// header writes the title block shared by every document.
func (t *theme) header(title, subtitle, byline string, ruleAfter float64) []layout.Flowable {
	return []layout.Flowable{
		para(title, t.title),
		para(subtitle, t.subtitle),
		para(byline, t.small),
		layout.Spacer{Size: 4},
		layout.HR(2, accent, ruleAfter),
	}
}

// labeledLines renders each value as a body paragraph with a bold label.
func (t *theme) labeledLines(values []model.LabeledValue) []layout.Flowable {
	out := make([]layout.Flowable, 0, len(values))
	for _, v := range values {
		out = append(out, para(labeled(v.Label, v.Value), t.body))
	}
	return out
}
