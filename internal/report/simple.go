package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/bbs-uottawa/bbsdocs/internal/layout"
	"github.com/bbs-uottawa/bbsdocs/internal/model"
)

// SimpleWriter outputs a plain-text outline of a document for terminal
// display. It backs `bbsdocs preview`, which shows what a PDF will contain
// without opening a viewer.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
type SimpleWriter struct {
	baseWriter

	// showEmpty controls whether sections with no entries are shown.
	showEmpty bool

	// verbose adds URLs and notes to each entry.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowEmpty configures the writer to show empty sections.
func WithShowEmpty(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showEmpty = show
	}
}

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		showEmpty:  false,
		verbose:    false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// WriteBanking outputs an outline of the bank account options report.
func (w *SimpleWriter) WriteBanking(r *model.BankingReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, r.Title, r.Subtitle)

	w.writeSection(&sb, "TOP RECOMMENDATION")
	fmt.Fprintf(&sb, "  %s\n", r.TopPick.Name)
	if w.verbose {
		for _, d := range r.TopPick.Details {
			fmt.Fprintf(&sb, "    %s: %s\n", d.Label, d.Value)
		}
	}
	sb.WriteString("\n")

	w.writeSection(&sb, "ALL OPTIONS RANKED")
	for _, b := range r.Banks {
		fmt.Fprintf(&sb, "  #%d %-40s %s\n", b.Rank, b.Name, b.Verdict)
		if w.verbose {
			fmt.Fprintf(&sb, "     Fee: %s\n", b.Fee)
			fmt.Fprintf(&sb, "     %s\n", b.URL)
		}
	}
	sb.WriteString("\n")

	w.writeSection(&sb, "NEXT STEPS")
	for _, s := range r.Steps {
		fmt.Fprintf(&sb, "  %-7s %s\n", s.Label, s.Text)
	}
	sb.WriteString("\n")

	w.writeFooter(&sb, model.KindBanking)
	return w.output.Write([]byte(sb.String()))
}

// WriteSponsorTask outputs an outline of the task sheet.
func (w *SimpleWriter) WriteSponsorTask(t *model.SponsorTask) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, t.Title, t.Subtitle)
	fmt.Fprintf(&sb, "Leads:    %d in %d tiers\n", len(t.Leads), t.TierCount())
	fmt.Fprintf(&sb, "Assignee: %s\n", t.Assignee)
	fmt.Fprintf(&sb, "%s\n\n", layout.StripMarkup(t.Deadline))

	w.writeLeads(&sb, t.Leads)
	w.writeFooter(&sb, model.KindSponsorTask)
	return w.output.Write([]byte(sb.String()))
}

// WriteLinkAudit outputs an outline of the link audit.
func (w *SimpleWriter) WriteLinkAudit(a *model.LinkAudit) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, a.Title, a.Subtitle)
	counts := a.CountByStatus()
	fmt.Fprintf(&sb, "  WORKING:   %d\n", counts[model.LinkWorking])
	fmt.Fprintf(&sb, "  BROKEN:    %d\n", counts[model.LinkBroken])
	fmt.Fprintf(&sb, "  TIMED OUT: %d\n\n", counts[model.LinkTimedOut])

	w.writeLeads(&sb, a.Working)
	w.writeChecks(&sb, "BROKEN LINKS", a.Broken)
	w.writeChecks(&sb, "TIMED OUT", a.TimedOut)

	w.writeFooter(&sb, model.KindLinkAudit)
	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the document title block.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, title, subtitle string) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	fmt.Fprintf(sb, "%s\n", center(title, 70))
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")
	fmt.Fprintf(sb, "%s\n\n", subtitle)
}

func (w *SimpleWriter) writeSection(sb *strings.Builder, name string) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString(name)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")
}

// writeLeads writes leads grouped by tier.
func (w *SimpleWriter) writeLeads(sb *strings.Builder, leads []model.SponsorLead) {
	for _, g := range model.GroupByTier(leads) {
		if g.Tier != "" {
			w.writeSection(sb, g.Tier)
		}
		for _, l := range g.Leads {
			fmt.Fprintf(sb, "  [%s] #%d %s\n", priorityIndicator(l.PriorityLevel()), l.Num, withDomain(l.Name, l.URL))
			if w.verbose {
				fmt.Fprintf(sb, "       %s\n", l.URL)
				fmt.Fprintf(sb, "       Ask: %s  Likelihood: %s\n", l.Amount, l.Likelihood)
			}
		}
		sb.WriteString("\n")
	}
}

// writeChecks writes a list of links needing follow-up.
func (w *SimpleWriter) writeChecks(sb *strings.Builder, name string, checks []model.LinkCheck) {
	if len(checks) == 0 && !w.showEmpty {
		return
	}

	w.writeSection(sb, name)
	if len(checks) == 0 {
		sb.WriteString("  None\n\n")
		return
	}
	for i, c := range checks {
		fmt.Fprintf(sb, "  %d. %s\n", i+1, withDomain(c.Name, c.URL))
		if w.verbose {
			fmt.Fprintf(sb, "     %s\n", c.URL)
			fmt.Fprintf(sb, "     %s\n", c.Suggestion)
		}
	}
	sb.WriteString("\n")
}

// priorityIndicator returns a visual indicator for a lead priority.
func priorityIndicator(p model.Priority) string {
	switch p {
	case model.PriorityUrgent:
		return "!!"
	case model.PriorityHigh:
		return "! "
	default:
		return "  "
	}
}

// writeFooter writes the output file name of the document.
func (w *SimpleWriter) writeFooter(sb *strings.Builder, kind model.Kind) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	fmt.Fprintf(sb, "PDF: %s\n", kind.FileName())
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}

// withDomain appends the registrable domain of url to name, so the
// outline shows where each link points without printing full URLs.
func withDomain(name, url string) string {
	if d := model.Domain(url); d != "" {
		return name + " (" + d + ")"
	}
	return name
}

func center(s string, width int) string {
	pad := (width - len(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
