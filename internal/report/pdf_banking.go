package report

import (
	"strconv"

	"github.com/bbs-uottawa/bbsdocs/internal/layout"
	"github.com/bbs-uottawa/bbsdocs/internal/model"
)

// bankingFlowables lays out the bank account options report.
func bankingFlowables(r *model.BankingReport) []layout.Flowable {
	t := newTheme(model.KindBanking)
	f := t.header(r.Title, r.Subtitle, r.Prepared, 12)

	// Situation
	f = append(f,
		para("SITUATION", t.heading),
		para(r.Situation, t.body),
		layout.Spacer{Size: 4},
		para(r.Script, t.callout),
		para("WHAT TO BRING TO THE BANK", t.section),
	)
	for _, item := range r.BringItems {
		f = append(f, para("•  "+item, t.body))
	}
	f = append(f,
		layout.Spacer{Size: 6},
		layout.HR(1, ruleGrey, 10),
	)

	// Top recommendation
	f = append(f,
		para("TOP RECOMMENDATION", t.heading),
		layout.HR(1.5, green, 8),
		para(r.TopPick.Name, t.bold.WithSize(14, 18).WithColor(green)),
		layout.Spacer{Size: 4},
	)
	f = append(f, t.labeledLines(r.TopPick.Details)...)
	f = append(f,
		layout.Spacer{Size: 6},
		para(r.TopPick.Verdict, t.rec),
		layout.Spacer{Size: 12},
		layout.HR(1, ruleGrey, 10),
	)

	// Ranked options
	f = append(f,
		para("ALL OPTIONS RANKED", t.heading),
		layout.HR(1.5, accent, 8),
	)
	for _, b := range r.Banks {
		f = append(f, t.bankEntry(b)...)
	}

	// Comparison
	f = append(f,
		layout.PageBreak{},
		para("SIDE-BY-SIDE COMPARISON", t.heading),
		layout.HR(2, accent, 10),
		comparisonTable(r.Comparison),
	)

	// Next steps
	f = append(f,
		layout.Spacer{Size: 20},
		para("NEXT STEPS FOR "+r.Audience, t.heading),
		layout.HR(1.5, accent, 8),
	)
	stepLabel := t.small.WithFace(layout.Bold).WithColor(accent)
	for _, s := range r.Steps {
		row := []layout.Flowable{para("<b>"+s.Label+"</b>", stepLabel), para(s.Text, t.body)}
		tbl := fixedTable([]float64{0.8, 6.2}, [][]layout.Flowable{row}, 2)
		tbl.VAlign = layout.VAlignTop
		f = append(f, tbl)
	}

	f = append(f,
		layout.Spacer{Size: 16},
		layout.HR(1, ruleGrey, 8),
	)
	f = append(f, t.labeledLines(r.Footer)...)
	f = append(f, para(labeled(r.ActionRequired.Label, r.ActionRequired.Value), t.bold.WithColor(red)))
	return f
}

// bankEntry renders one ranked bank.
func (t *theme) bankEntry(b model.BankOption) []layout.Flowable {
	rankName := fixedTable([]float64{0.4, 6.6}, [][]layout.Flowable{{
		para("<b>#"+strconv.Itoa(b.Rank)+"</b>", t.num),
		para("<b>"+b.Name+"</b>", t.bold.WithSize(12, 16).WithColor(darkBG)),
	}}, 0)
	rankName.Padding.Top = 4
	rankName.Padding.Bottom = 2

	verdict := t.small.WithFace(layout.Bold).WithColor(verdictColor(b.Level))
	verdict.Size = 9

	f := []layout.Flowable{
		rankName,
		para(b.URL, t.link).WithLink(b.URL),
		layout.Spacer{Size: 3},
		para("<b>Monthly Fee:</b>  "+b.Fee, t.small),
		para("<b>Transactions:</b>  "+b.Transactions, t.small),
		para("<b>E-Transfers:</b>  "+b.ETransfers, t.small),
		layout.Spacer{Size: 3},
		para(labeled("Pros", b.Pros), t.small.WithColor(green)),
		para(labeled("Cons", b.Cons), t.small.WithColor(red)),
		layout.Spacer{Size: 4},
		para("VERDICT: "+b.Verdict, verdict),
		layout.Spacer{Size: 8},
		layout.HR(0.5, faintGrey, t.faintRuleAfter),
	}
	return f
}

// comparisonTable builds the side-by-side table: a header row followed by
// one row per bank, with the first bank highlighted.
func comparisonTable(rows []model.ComparisonRow) *layout.Table {
	headerStyle := layout.Style{Face: layout.Bold, Size: 8, Leading: 9.6, Color: layout.White}
	cellStyle := layout.Style{Face: layout.Regular, Size: 8, Leading: 9.6, Color: layout.Black}

	data := make([][]layout.Flowable, 0, len(rows)+1)
	data = append(data, textCells(model.ComparisonHeader, headerStyle))
	for i, r := range rows {
		st := cellStyle
		if i == 0 {
			st = st.WithFace(layout.Bold)
		}
		data = append(data, textCells(r.Cells(), st))
	}

	tbl := fixedTable([]float64{1.2, 1.2, 1.0, 1.0, 1.6}, data, 5)
	tbl.Grid = &layout.Stroke{Width: 0.5, Color: ruleGrey}
	tbl.RepeatRows = 1
	tbl.SetRowBackground(0, headerBG)
	if len(rows) > 0 {
		tbl.SetRowBackground(1, lightGreen)
	}
	for i := 3; i < len(data); i += 2 {
		tbl.SetRowBackground(i, rowAlt)
	}
	return tbl
}

// textCells turns plain strings into paragraph cells.
func textCells(values []string, st layout.Style) []layout.Flowable {
	cells := make([]layout.Flowable, len(values))
	for i, v := range values {
		cells[i] = para(v, st)
	}
	return cells
}
