package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/bbs-uottawa/bbsdocs/internal/model"
)

// MarkdownWriter outputs documents in Markdown format.
// The Markdown companion is meant for pasting into a wiki or an email
// thread where a PDF attachment is inconvenient.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, checkboxes and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// tierTitle converts upper-case tier labels into headings, e.g.
// "TIER 1 - HIGHEST PRIORITY" becomes "Tier 1 - Highest Priority".
func tierTitle(tier string) string {
	return cases.Title(language.English).String(strings.ToLower(tier))
}

// inline converts the <b> markup used in the datasets to Markdown bold.
func inline(s string) string {
	return strings.NewReplacer("<b>", "**", "</b>", "**").Replace(s)
}

// cell escapes pipes so a value cannot split a table column.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

// cells escapes every value of a table row.
func cells(values ...string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = cell(v)
	}
	return out
}

// WriteBanking outputs the bank account options report in Markdown format.
func (w *MarkdownWriter) WriteBanking(r *model.BankingReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1(r.Title)
	md.PlainText(markdown.Italic(r.Subtitle))
	md.PlainText("")
	md.PlainText(r.Prepared)
	md.PlainText("")

	md.H2("Situation")
	md.PlainText(r.Situation)
	md.PlainText("")
	md.Blockquote(r.Script)
	md.PlainText("")

	md.H3("What to bring to the bank")
	md.BulletList(r.BringItems...)
	md.PlainText("")

	md.H2("Top recommendation: " + r.TopPick.Name)
	rows := make([][]string, len(r.TopPick.Details))
	for i, d := range r.TopPick.Details {
		rows[i] = cells(d.Label, d.Value)
	}
	md.Table(markdown.TableSet{Header: []string{"Detail", "Value"}, Rows: rows})
	md.PlainText("")
	md.Tip(r.TopPick.Verdict)
	md.PlainText("")

	md.H2("All options ranked")
	for _, b := range r.Banks {
		w.writeBank(md, b)
	}

	md.H2("Side-by-side comparison")
	comp := make([][]string, len(r.Comparison))
	for i, c := range r.Comparison {
		comp[i] = cells(c.Cells()...)
	}
	md.Table(markdown.TableSet{Header: model.ComparisonHeader, Rows: comp})
	md.PlainText("")

	md.H2("Next steps for " + r.Audience)
	steps := make([]string, len(r.Steps))
	for i, s := range r.Steps {
		steps[i] = s.Text
	}
	md.OrderedList(steps...)
	md.PlainText("")

	w.writeFooter(md, r.Footer)
	md.Caution(r.ActionRequired.Label + ": " + r.ActionRequired.Value)

	return len(md.String()), md.Build()
}

// writeBank writes one ranked bank with a verdict alert matching its level.
func (w *MarkdownWriter) writeBank(md *markdown.Markdown, b model.BankOption) {
	md.H3("#" + strconv.Itoa(b.Rank) + " " + b.Name)
	md.BulletList(
		markdown.Link(model.Domain(b.URL), b.URL),
		markdown.Bold("Monthly Fee:")+" "+b.Fee,
		markdown.Bold("Transactions:")+" "+b.Transactions,
		markdown.Bold("E-Transfers:")+" "+b.ETransfers,
		markdown.Bold("Pros:")+" "+b.Pros,
		markdown.Bold("Cons:")+" "+b.Cons,
	)
	md.PlainText("")

	verdict := "VERDICT: " + b.Verdict
	switch b.Level {
	case model.VerdictBest:
		md.Tip(verdict)
	case model.VerdictRunnerUp:
		md.Important(verdict)
	default:
		md.Note(verdict)
	}
	md.PlainText("")
}

// WriteSponsorTask outputs the task sheet in Markdown format.
func (w *MarkdownWriter) WriteSponsorTask(t *model.SponsorTask) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1(t.Title)
	md.PlainText(markdown.Italic(t.Subtitle))
	md.PlainText("")
	md.PlainText(t.Org)
	md.PlainText("")

	md.H2("Your task")
	md.PlainText(t.Intro)
	md.PlainText("")
	md.PlainText(markdown.Bold(t.ConfirmIntro))
	md.PlainText("")
	md.CheckBox(checkBoxes(t.Checklist))
	md.PlainText("")
	md.Important(inline(t.Deadline))
	md.PlainText("")

	w.writeLeads(md, t.Leads, t.CardChecks, false)

	md.H2("Summary checklist")
	md.PlainText(t.SummaryIntro)
	md.PlainText("")
	rows := make([][]string, len(t.Leads))
	for i, l := range t.Leads {
		rows[i] = cells(strconv.Itoa(l.Num), model.Truncate(l.Name, taskSummaryNameLen), "Y / N", "", "", "Y / N")
	}
	md.Table(markdown.TableSet{Header: taskSummaryHeader, Rows: rows})
	md.PlainText("")
	w.writeTotals(md, t.Totals)
	w.writeFooter(md, t.Footer)

	return len(md.String()), md.Build()
}

// WriteLinkAudit outputs the link audit in Markdown format.
func (w *MarkdownWriter) WriteLinkAudit(a *model.LinkAudit) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1(a.Title)
	md.PlainText(markdown.Italic(a.Subtitle))
	md.PlainText("")
	md.PlainText(a.Org)
	md.PlainText("")
	md.PlainText(a.Intro)
	md.PlainText("")
	w.writeStatusChart(md, a)

	w.writeLeads(md, a.Working, a.CardChecks, true)

	md.H2("Broken links - need new URLs")
	md.PlainText(a.BrokenIntro)
	md.PlainText("")
	if len(a.Broken) > 0 {
		md.Warningf("%d link(s) returned errors and need replacement URLs.", len(a.Broken))
		md.PlainText("")
	}
	broken := make([][]string, len(a.Broken))
	for i, b := range a.Broken {
		broken[i] = cells(strconv.Itoa(i+1), b.Name, markdown.Code(b.URL), b.Suggestion)
	}
	md.Table(markdown.TableSet{Header: []string{"#", "Program", "Dead URL", "How to find"}, Rows: broken})
	md.PlainText("")

	md.H3("Timed out (likely working)")
	timedOut := make([]string, len(a.TimedOut))
	for i, c := range a.TimedOut {
		timedOut[i] = markdown.Link(c.Name, c.URL) + " - " + c.Suggestion
	}
	md.BulletList(timedOut...)
	md.PlainText("")

	md.H2("Quick reference summary")
	rows := make([][]string, len(a.Working))
	for i, l := range a.Working {
		rows[i] = cells(strconv.Itoa(l.Num), model.Truncate(l.Name, auditSummaryNameLen), model.LinkWorking.String(), l.Amount, l.Priority)
	}
	md.Table(markdown.TableSet{Header: auditSummaryHeader, Rows: rows})
	md.PlainText("")
	w.writeTotals(md, a.Totals)
	w.writeFooter(md, a.Footer)

	return len(md.String()), md.Build()
}

// writeStatusChart writes a mermaid pie chart of link statuses.
func (w *MarkdownWriter) writeStatusChart(md *markdown.Markdown, a *model.LinkAudit) {
	counts := a.CountByStatus()
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Link Status"),
		piechart.WithShowData(true),
	)
	for _, s := range []model.LinkStatus{model.LinkWorking, model.LinkBroken, model.LinkTimedOut} {
		if counts[s] > 0 {
			chart.LabelAndIntValue(s.String(), uint64(counts[s]))
		}
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeLeads writes leads grouped under tier headings.
func (w *MarkdownWriter) writeLeads(md *markdown.Markdown, leads []model.SponsorLead, checks []string, verified bool) {
	for _, g := range model.GroupByTier(leads) {
		if g.Tier != "" {
			md.H2(tierTitle(g.Tier))
		}
		for _, l := range g.Leads {
			md.H3("#" + strconv.Itoa(l.Num) + " " + l.Name)
			items := []string{markdown.Link(model.Domain(l.URL), l.URL)}
			if verified {
				items = append(items, markdown.Bold("Status:")+" verified working")
			}
			items = append(items,
				markdown.Bold("Ask:")+" "+l.Amount,
				markdown.Bold("Likelihood:")+" "+l.Likelihood,
				markdown.Bold("Priority:")+" "+l.Priority,
				markdown.Bold("Notes:")+" "+l.Notes,
			)
			md.BulletList(items...)
			md.PlainText("")
			md.CheckBox(checkBoxes(checks))
			md.PlainText("")
		}
	}
}

func (w *MarkdownWriter) writeTotals(md *markdown.Markdown, totals []model.LabeledValue) {
	items := make([]string, len(totals))
	for i, v := range totals {
		items[i] = markdown.Bold(v.Label+":") + " " + v.Value
	}
	md.BulletList(items...)
	md.PlainText("")
}

// writeFooter writes the sign-off block.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown, footer []model.LabeledValue) {
	md.HorizontalRule()
	md.PlainText("")
	for _, v := range footer {
		md.PlainText(markdown.Bold(v.Label+":") + " " + v.Value + "  ")
	}
	md.PlainText("")
}

func checkBoxes(items []string) []markdown.CheckBoxSet {
	set := make([]markdown.CheckBoxSet, len(items))
	for i, item := range items {
		set[i] = markdown.CheckBoxSet{Text: item}
	}
	return set
}
