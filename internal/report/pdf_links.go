package report

import (
	"strconv"

	"github.com/bbs-uottawa/bbsdocs/internal/layout"
	"github.com/bbs-uottawa/bbsdocs/internal/model"
)

// linkAuditFlowables lays out the verified sponsorship links report.
func linkAuditFlowables(a *model.LinkAudit) []layout.Flowable {
	t := newTheme(model.KindLinkAudit)
	f := t.header(a.Title, a.Subtitle, a.Org, 10)

	f = append(f,
		para(a.Intro, t.body),
		layout.Spacer{Size: 6},
	)
	f = append(f, t.leadGroups(a.Working, a.CardChecks, a.Assignee, true)...)

	// Broken links
	f = append(f,
		layout.PageBreak{},
		para("BROKEN LINKS - NEED NEW URLs", t.heading),
		layout.HR(2, red, 10),
		para(a.BrokenIntro, t.body),
		layout.Spacer{Size: 8},
	)
	brokenName := t.bold.WithColor(red)
	deadURL := t.small.WithColor(grey999)
	for i, b := range a.Broken {
		f = append(f,
			para("<b>"+strconv.Itoa(i+1)+". "+b.Name+"</b>", brokenName),
			para("Dead URL: "+b.URL, deadURL),
			para(labeled("How to find", b.Suggestion), t.small),
			layout.Spacer{Size: 8},
		)
	}

	f = append(f,
		layout.Spacer{Size: 6},
		para("TIMED OUT (LIKELY WORKING)", t.section),
	)
	for _, c := range a.TimedOut {
		f = append(f,
			para("<b>"+c.Name+"</b> - "+c.URL, t.small).WithLink(c.URL),
			para(c.Suggestion, t.small),
			layout.Spacer{Size: 4},
		)
	}

	// Quick reference
	f = append(f,
		layout.PageBreak{},
		para("QUICK REFERENCE SUMMARY", t.heading),
		layout.HR(2, accent, 10),
		auditSummaryTable(a.Working),
		layout.Spacer{Size: 20},
	)
	f = append(f, t.labeledLines(a.Totals)...)
	f = append(f,
		layout.Spacer{Size: 12},
		layout.HR(1, ruleGrey, 8),
	)
	f = append(f, t.labeledLines(a.Footer)...)
	return f
}

// auditSummaryHeader is the header row of the quick reference table.
var auditSummaryHeader = []string{"#", "Sponsor", "Status", "Ask Amount", "Priority"}

// auditSummaryTable lists every working lead with its status and ask.
func auditSummaryTable(working []model.SponsorLead) *layout.Table {
	headerStyle := layout.Style{Face: layout.Bold, Size: 7.5, Leading: 9, Color: layout.White}
	cellStyle := layout.Style{Face: layout.Regular, Size: 7, Leading: 8.4, Color: layout.Black}
	statusStyle := cellStyle.WithFace(layout.Bold).WithColor(green)

	data := make([][]layout.Flowable, 0, len(working)+1)
	data = append(data, textCells(auditSummaryHeader, headerStyle))
	for _, l := range working {
		data = append(data, []layout.Flowable{
			para(strconv.Itoa(l.Num), cellStyle),
			para(model.Truncate(l.Name, auditSummaryNameLen), cellStyle),
			para(model.LinkWorking.String(), statusStyle),
			para(l.Amount, cellStyle),
			para(l.Priority, cellStyle),
		})
	}
	return summaryTable([]float64{0.35, 2.5, 0.7, 1.5, 1.1}, data)
}
