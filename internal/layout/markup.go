package layout

import (
	"strings"
	"unicode"
)

// Span is a run of text in a single face.
type Span struct {
	Text string
	Face Face
}

// ParseMarkup splits s into spans using the inline tags <b> and </b>.
// Text outside bold tags uses base. Unknown tags are kept as literal text,
// and an unclosed <b> runs to the end of the string.
func ParseMarkup(s string, base Face) []Span {
	var (
		spans []Span
		buf   strings.Builder
		face  = base
	)
	flush := func() {
		if buf.Len() > 0 {
			spans = append(spans, Span{Text: buf.String(), Face: face})
			buf.Reset()
		}
	}

	for len(s) > 0 {
		switch {
		case strings.HasPrefix(s, "<b>"):
			flush()
			face = Bold
			s = s[len("<b>"):]
		case strings.HasPrefix(s, "</b>"):
			flush()
			face = base
			s = s[len("</b>"):]
		default:
			i := strings.IndexByte(s[1:], '<')
			if i < 0 {
				buf.WriteString(s)
				s = ""
			} else {
				buf.WriteString(s[:i+1])
				s = s[i+1:]
			}
		}
	}
	flush()
	return spans
}

// StripMarkup removes inline tags from s.
func StripMarkup(s string) string {
	var b strings.Builder
	for _, sp := range ParseMarkup(s, Regular) {
		b.WriteString(sp.Text)
	}
	return b.String()
}

// run is a piece of a laid-out line.
type run struct {
	text  string
	face  Face
	width float64
}

// word is a sequence of runs with no whitespace between them.
type word struct {
	runs  []run
	space bool // preceded by whitespace
}

func (w word) width() float64 {
	var total float64
	for _, r := range w.runs {
		total += r.width
	}
	return total
}

// line is one output line of a paragraph.
type line struct {
	runs  []run
	width float64
}

func (l line) text() string {
	var b strings.Builder
	for _, r := range l.runs {
		b.WriteString(r.text)
	}
	return b.String()
}

// splitWords breaks spans into words, collapsing runs of whitespace.
func splitWords(spans []Span, size float64) []word {
	var (
		words   []word
		cur     word
		pending bool
		inWord  bool
	)
	endWord := func() {
		if inWord {
			words = append(words, cur)
		}
		cur = word{}
		inWord = false
	}

	for _, sp := range spans {
		var b strings.Builder
		emit := func() {
			if b.Len() > 0 {
				t := b.String()
				cur.runs = append(cur.runs, run{text: t, face: sp.Face, width: TextWidth(sp.Face, size, t)})
				b.Reset()
			}
		}
		for _, r := range sp.Text {
			if unicode.IsSpace(r) {
				emit()
				endWord()
				pending = true
				continue
			}
			if !inWord {
				cur.space = pending && len(words) > 0
				pending = false
				inWord = true
			}
			b.WriteRune(r)
		}
		emit()
	}
	endWord()
	return words
}

// wrap fills lines greedily up to maxWidth. A word wider than a whole line
// is broken between characters.
func wrap(words []word, size, maxWidth float64) []line {
	var (
		lines []line
		cur   line
	)
	for _, w := range words {
		ww := w.width()
		gap := 0.0
		var gapFace Face
		if w.space && len(cur.runs) > 0 {
			gapFace = w.runs[0].face
			gap = TextWidth(gapFace, size, " ")
		}

		if len(cur.runs) > 0 && cur.width+gap+ww > maxWidth {
			lines = append(lines, cur)
			cur = line{}
			gap = 0
		}

		if len(cur.runs) == 0 && ww > maxWidth {
			for _, piece := range breakWord(w, size, maxWidth) {
				if len(cur.runs) > 0 {
					lines = append(lines, cur)
					cur = line{}
				}
				cur = appendRuns(cur, piece.runs, 0, Regular, size)
			}
			continue
		}

		cur = appendRuns(cur, w.runs, gap, gapFace, size)
	}
	if len(cur.runs) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

// appendRuns adds runs to l, inserting a space of width gap before them and
// merging neighbours that share a face.
func appendRuns(l line, runs []run, gap float64, gapFace Face, size float64) line {
	if gap > 0 {
		l.runs = mergeRun(l.runs, run{text: " ", face: gapFace, width: gap})
		l.width += gap
	}
	for _, r := range runs {
		l.runs = mergeRun(l.runs, r)
		l.width += r.width
	}
	return l
}

func mergeRun(runs []run, r run) []run {
	if n := len(runs); n > 0 && runs[n-1].face == r.face {
		runs[n-1].text += r.text
		runs[n-1].width += r.width
		return runs
	}
	return append(runs, r)
}

// breakWord splits an over-long word into pieces no wider than maxWidth.
// Every piece holds at least one character.
func breakWord(w word, size, maxWidth float64) []word {
	var (
		pieces []word
		cur    word
		curW   float64
	)
	for _, r := range w.runs {
		for _, ch := range r.text {
			cw := TextWidth(r.face, size, string(ch))
			if curW+cw > maxWidth && curW > 0 {
				pieces = append(pieces, cur)
				cur = word{}
				curW = 0
			}
			runs := cur.runs
			cur.runs = mergeRun(runs, run{text: string(ch), face: r.face, width: cw})
			curW += cw
		}
	}
	if len(cur.runs) > 0 {
		pieces = append(pieces, cur)
	}
	return pieces
}
