package report

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/bbs-uottawa/bbsdocs/internal/layout"
	"github.com/bbs-uottawa/bbsdocs/internal/model"
)

// findingsBlank is the fill-in line of the findings box under each lead.
var findingsBlank = strings.Repeat("_", 79)

// Summary name columns are truncated to these lengths.
const (
	taskSummaryNameLen  = 35
	auditSummaryNameLen = 40
)

// sponsorTaskFlowables lays out the sponsorship research task sheet.
func sponsorTaskFlowables(task *model.SponsorTask) []layout.Flowable {
	t := newTheme(model.KindSponsorTask)
	f := t.header(task.Title, task.Subtitle, task.Org, 10)

	f = append(f,
		para("YOUR TASK", t.heading),
		para(task.Intro, t.body),
		layout.Spacer{Size: 4},
		para(task.ConfirmIntro, t.section),
	)
	for _, item := range task.Checklist {
		f = append(f, para(string(layout.BoxGlyph)+"  "+item, t.checklist))
	}
	f = append(f,
		layout.Spacer{Size: 6},
		para(task.Deadline, t.instruction),
		layout.Spacer{Size: 6},
		layout.HR(1, ruleGrey, 10),
	)

	f = append(f, t.leadGroups(task.Leads, task.CardChecks, task.Assignee, false)...)

	f = append(f,
		layout.PageBreak{},
		para("SUMMARY CHECKLIST", t.heading),
		layout.HR(2, accent, 10),
		para(task.SummaryIntro, t.body),
		layout.Spacer{Size: 8},
		taskSummaryTable(task.Leads),
		layout.Spacer{Size: 20},
	)
	f = append(f, t.labeledLines(task.Totals)...)
	f = append(f,
		layout.Spacer{Size: 12},
		layout.HR(1, ruleGrey, 8),
	)
	f = append(f, t.labeledLines(task.Footer)...)
	return f
}

// tierHeading returns a tier label as printed above its leads. A Caser
// keeps state between calls, so one is made per heading.
func tierHeading(tier string) string {
	return cases.Upper(language.Und).String(tier)
}

// leadGroups renders leads under their tier headings. Leads listed before
// the first tier get no heading.
func (t *theme) leadGroups(leads []model.SponsorLead, checks []string, assignee string, verified bool) []layout.Flowable {
	var f []layout.Flowable
	for _, g := range model.GroupByTier(leads) {
		if g.Tier != "" {
			f = append(f,
				layout.Spacer{Size: 10},
				para(tierHeading(g.Tier), t.heading),
				layout.HR(1.5, accent, 8),
			)
		}
		for _, lead := range g.Leads {
			f = append(f, t.leadCard(lead, checks, assignee, verified)...)
		}
	}
	return f
}

// leadCard renders one sponsor lead with its checkboxes and findings box.
func (t *theme) leadCard(lead model.SponsorLead, checks []string, assignee string, verified bool) []layout.Flowable {
	priority := t.small.WithSize(8, 10).
		WithColor(priorityColor(lead.PriorityLevel())).
		WithAlign(layout.AlignRight)
	header := fixedTable([]float64{5.2, 1.8}, [][]layout.Flowable{{
		para("<b>#"+strconv.Itoa(lead.Num)+"</b>  <b>"+lead.Name+"</b>", t.bold.WithSize(10, 13)),
		para("<b>"+lead.Priority+"</b>", priority),
	}}, 2)

	f := []layout.Flowable{header}
	if verified {
		f = append(f, para("<b>STATUS: VERIFIED WORKING</b>", t.small.WithFace(layout.Bold).WithColor(green)))
	}

	details := fixedTable([]float64{3.5, 3.5}, [][]layout.Flowable{{
		para(labeled("Ask", lead.Amount), t.small),
		para(labeled("Likelihood", lead.Likelihood), t.small),
	}}, 1)

	boxes := make([]layout.Flowable, len(checks))
	widths := make([]float64, len(checks))
	for i, c := range checks {
		boxes[i] = para(string(layout.BoxGlyph)+" "+c, t.small)
		widths[i] = 7.0 / float64(len(checks))
	}
	checkTable := fixedTable(widths, [][]layout.Flowable{boxes}, 1)
	checkTable.Background = checkBG.Ptr()
	checkTable.Box = &layout.Stroke{Width: 0.5, Color: borderGrey}

	findings := fixedTable([]float64{7}, [][]layout.Flowable{{
		para("<b>"+assignee+"'s Findings:</b> "+findingsBlank, t.small),
	}}, 4)
	findings.VAlign = layout.VAlignTop
	findings.Background = findingsBG.Ptr()
	findings.Box = &layout.Stroke{Width: 0.5, Color: borderGrey}

	f = append(f,
		para(lead.URL, t.link).WithLink(lead.URL),
		details,
		para(labeled("Notes", lead.Notes), t.small),
		layout.Spacer{Size: 3},
	)
	if len(checks) > 0 {
		f = append(f, checkTable)
	}
	f = append(f,
		layout.Spacer{Size: 2},
		findings,
		layout.Spacer{Size: 10},
		layout.HR(0.5, faintGrey, t.faintRuleAfter),
	)
	return f
}

// taskSummaryHeader is the header row of the task sheet's summary table.
var taskSummaryHeader = []string{"#", "Sponsor", "Still Active?", "Deadline", "Max $", "Can We Apply?"}

// yesNoBoxes is the fill-in cell for yes/no columns.
var yesNoBoxes = string(layout.BoxGlyph) + " Y  " + string(layout.BoxGlyph) + " N"

// taskSummaryTable builds the fill-in summary with one row per lead.
func taskSummaryTable(leads []model.SponsorLead) *layout.Table {
	headerStyle := layout.Style{Face: layout.Bold, Size: 7, Leading: 8.4, Color: layout.White}
	cellStyle := layout.Style{Face: layout.Regular, Size: 6.5, Leading: 7.8, Color: layout.Black}

	data := make([][]layout.Flowable, 0, len(leads)+1)
	data = append(data, textCells(taskSummaryHeader, headerStyle))
	for _, l := range leads {
		data = append(data, textCells([]string{
			strconv.Itoa(l.Num),
			model.Truncate(l.Name, taskSummaryNameLen),
			yesNoBoxes,
			"",
			"",
			yesNoBoxes,
		}, cellStyle))
	}
	return summaryTable([]float64{0.35, 2.4, 0.9, 1.1, 0.85, 0.9}, data)
}

// summaryTable applies the shared summary styling: dark header, grid and
// alternating row shading starting with the second data row.
func summaryTable(widthsInch []float64, data [][]layout.Flowable) *layout.Table {
	tbl := fixedTable(widthsInch, data, 3)
	tbl.Grid = &layout.Stroke{Width: 0.5, Color: ruleGrey}
	tbl.RepeatRows = 1
	tbl.SetRowBackground(0, headerBG)
	for i := 2; i < len(data); i += 2 {
		tbl.SetRowBackground(i, rowAlt)
	}
	return tbl
}
