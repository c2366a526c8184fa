package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bbs-uottawa/bbsdocs/internal/dataset"
	"github.com/bbs-uottawa/bbsdocs/internal/layout"
	"github.com/bbs-uottawa/bbsdocs/internal/model"
)

func mustBanking(t *testing.T) *model.BankingReport {
	t.Helper()
	r, err := dataset.Banking()
	if err != nil {
		t.Fatalf("dataset.Banking() error: %v", err)
	}
	return r
}

func mustSponsorTask(t *testing.T) *model.SponsorTask {
	t.Helper()
	task, err := dataset.SponsorTask()
	if err != nil {
		t.Fatalf("dataset.SponsorTask() error: %v", err)
	}
	return task
}

func mustLinkAudit(t *testing.T) *model.LinkAudit {
	t.Helper()
	a, err := dataset.LinkAudit()
	if err != nil {
		t.Fatalf("dataset.LinkAudit() error: %v", err)
	}
	return a
}

// cellText returns the text of a table cell built by this package.
func cellText(t *testing.T, f layout.Flowable) string {
	t.Helper()
	p, ok := f.(*layout.Paragraph)
	if !ok {
		t.Fatalf("cell is %T, want *layout.Paragraph", f)
	}
	return p.Text
}

// TestComparisonTable tests the banking side-by-side table.
func TestComparisonTable(t *testing.T) {
	t.Parallel()

	r := mustBanking(t)
	tbl := comparisonTable(r.Comparison)

	if len(tbl.Rows) != 7 {
		t.Fatalf("expected 7 rows (header + 6 banks), got %d", len(tbl.Rows))
	}

	var header []string
	for _, c := range tbl.Rows[0] {
		header = append(header, cellText(t, c))
	}
	if diff := cmp.Diff(model.ComparisonHeader, header); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}

	if got := cellText(t, tbl.Rows[1][0]); got != "TD NFP Plan" {
		t.Errorf("first data row = %q, want TD NFP Plan", got)
	}
	if got := tbl.Rows[1][0].(*layout.Paragraph).Style.Face; got != layout.Bold {
		t.Error("first data row should be bold")
	}

	if bg, ok := tbl.RowBackgrounds[1]; !ok || bg != lightGreen {
		t.Error("first data row should be highlighted green")
	}
	for _, i := range []int{3, 5} {
		if bg := tbl.RowBackgrounds[i]; bg != rowAlt {
			t.Errorf("row %d background = %v, want alternate shading", i, bg)
		}
	}
	if _, ok := tbl.RowBackgrounds[2]; ok {
		t.Error("row 2 should not be shaded")
	}
}

// TestTaskSummaryTable tests the fill-in summary of the task sheet.
func TestTaskSummaryTable(t *testing.T) {
	t.Parallel()

	task := mustSponsorTask(t)
	tbl := taskSummaryTable(task.Leads)

	if len(tbl.Rows) != 26 {
		t.Fatalf("expected 26 rows, got %d", len(tbl.Rows))
	}
	for i, row := range tbl.Rows[1:] {
		name := cellText(t, row[1])
		if len([]rune(name)) > taskSummaryNameLen+len(model.Ellipsis) {
			t.Errorf("row %d name not truncated: %q", i+1, name)
		}
		if got := cellText(t, row[2]); got != yesNoBoxes {
			t.Errorf("row %d active cell = %q", i+1, got)
		}
		if got := cellText(t, row[3]); got != "" {
			t.Errorf("row %d deadline cell should be blank, got %q", i+1, got)
		}
	}
	if _, ok := tbl.RowBackgrounds[2]; !ok {
		t.Error("row 2 should be shaded")
	}
}

// TestAuditSummaryTable tests the quick reference table of the link audit.
func TestAuditSummaryTable(t *testing.T) {
	t.Parallel()

	a := mustLinkAudit(t)
	tbl := auditSummaryTable(a.Working)

	if len(tbl.Rows) != 16 {
		t.Fatalf("expected 16 rows, got %d", len(tbl.Rows))
	}
	for _, row := range tbl.Rows[1:] {
		status := row[2].(*layout.Paragraph)
		if status.Text != "WORKING" || status.Style.Color != green || status.Style.Face != layout.Bold {
			t.Errorf("unexpected status cell %+v", status)
		}
	}
}

// TestFlowableOrder tests that sections appear in document order.
func TestFlowableOrder(t *testing.T) {
	t.Parallel()

	headings := func(fs []layout.Flowable, st layout.Style) []string {
		var out []string
		for _, f := range fs {
			if p, ok := f.(*layout.Paragraph); ok && p.Style == st {
				out = append(out, p.Text)
			}
		}
		return out
	}

	t.Run("banking", func(t *testing.T) {
		t.Parallel()
		got := headings(bankingFlowables(mustBanking(t)), newTheme(model.KindBanking).heading)
		want := []string{"SITUATION", "TOP RECOMMENDATION", "ALL OPTIONS RANKED", "SIDE-BY-SIDE COMPARISON", "NEXT STEPS FOR SHAAN"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("headings mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("sponsors", func(t *testing.T) {
		t.Parallel()
		got := headings(sponsorTaskFlowables(mustSponsorTask(t)), newTheme(model.KindSponsorTask).heading)
		if len(got) != 6 || got[0] != "YOUR TASK" || got[5] != "SUMMARY CHECKLIST" {
			t.Errorf("unexpected headings %q", got)
		}
	})

	t.Run("links", func(t *testing.T) {
		t.Parallel()
		got := headings(linkAuditFlowables(mustLinkAudit(t)), newTheme(model.KindLinkAudit).heading)
		if len(got) != 5 || got[3] != "BROKEN LINKS - NEED NEW URLs" || got[4] != "QUICK REFERENCE SUMMARY" {
			t.Errorf("unexpected headings %q", got)
		}
	})
}

// TestTierHeadings tests how tier labels are printed and that leads listed
// before the first tier get no heading.
func TestTierHeadings(t *testing.T) {
	t.Parallel()

	leads := []model.SponsorLead{
		{Num: 1, Name: "Untiered Fund", URL: "https://untiered.example.org/"},
		{Num: 2, Tier: "Tier 1 - Highest priority", Name: "First Fund", URL: "https://first.example.org/"},
		{Num: 3, Name: "Second Fund", URL: "https://second.example.org/"},
	}

	t.Run("pdf", func(t *testing.T) {
		t.Parallel()
		th := newTheme(model.KindSponsorTask)
		var got []string
		for _, f := range th.leadGroups(leads, []string{"Active?"}, "Shaan", false) {
			if p, ok := f.(*layout.Paragraph); ok && p.Style == th.heading {
				got = append(got, p.Text)
			}
		}
		if diff := cmp.Diff([]string{"TIER 1 - HIGHEST PRIORITY"}, got); diff != "" {
			t.Errorf("headings mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("markdown", func(t *testing.T) {
		t.Parallel()
		task := mustSponsorTask(t)
		task.Leads = leads
		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).WriteSponsorTask(task); err != nil {
			t.Fatal(err)
		}
		out := buf.String()
		if !strings.Contains(out, "## Tier 1 - Highest Priority") {
			t.Error("missing title-cased tier heading")
		}
		if strings.Contains(out, "\n## \n") {
			t.Error("empty tier produced an empty heading")
		}
	})

	t.Run("simple", func(t *testing.T) {
		t.Parallel()
		task := mustSponsorTask(t)
		task.Leads = leads
		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).WriteSponsorTask(task); err != nil {
			t.Fatal(err)
		}
		rule := strings.Repeat("-", 70)
		if strings.Contains(buf.String(), rule+"\n\n"+rule) {
			t.Error("empty tier produced an empty section")
		}
	})
}

// TestPDFWriter tests that each document renders as a reproducible PDF.
func TestPDFWriter(t *testing.T) {
	t.Parallel()

	docs := map[string]func(t *testing.T) any{
		"banking":  func(t *testing.T) any { return mustBanking(t) },
		"sponsors": func(t *testing.T) any { return mustSponsorTask(t) },
		"links":    func(t *testing.T) any { return mustLinkAudit(t) },
	}

	for name, load := range docs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			doc := load(t)
			var first, second bytes.Buffer
			w := NewPDFWriter(&first)
			n, err := Write(w, doc)
			if err != nil {
				t.Fatalf("Write() error: %v", err)
			}
			if n != first.Len() {
				t.Errorf("Write() returned %d, buffer holds %d bytes", n, first.Len())
			}
			if w.Pages() < 2 {
				t.Errorf("expected a multi-page document, got %d pages", w.Pages())
			}

			data := first.Bytes()
			if !bytes.HasPrefix(data, []byte("%PDF-")) {
				t.Error("missing %PDF- header")
			}
			if !bytes.HasSuffix(bytes.TrimRight(data, "\r\n"), []byte("%%EOF")) {
				t.Error("missing EOF trailer")
			}

			if _, err := Write(NewPDFWriter(&second), doc); err != nil {
				t.Fatalf("second Write() error: %v", err)
			}
			if !bytes.Equal(data, second.Bytes()) {
				t.Error("two renders of the same document differ")
			}
		})
	}
}

// TestPDFWriterContent tests that key text is laid out and that the file
// refers to the standard fonts without embedding them.
func TestPDFWriterContent(t *testing.T) {
	t.Parallel()

	r := mustBanking(t)
	doc := layout.NewLetterDocument(pageMargins)
	doc.Add(bankingFlowables(r)...)
	pages, err := doc.Layout()
	if err != nil {
		t.Fatal(err)
	}
	texts := map[string]bool{}
	for _, p := range pages {
		for _, s := range p.Texts() {
			texts[s] = true
		}
	}
	for _, want := range []string{"TD NFP Plan", "BBS BANKING OPTIONS"} {
		if !texts[want] {
			t.Errorf("no text run %q on any page", want)
		}
	}

	var buf bytes.Buffer
	if _, err := NewPDFWriter(&buf).WriteBanking(r); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"/Helvetica-Bold", "/URI"} {
		if !bytes.Contains(buf.Bytes(), []byte(want)) {
			t.Errorf("PDF does not contain %q", want)
		}
	}
	if bytes.Contains(buf.Bytes(), []byte("/FontFile")) {
		t.Error("PDF embeds font data")
	}
}

// TestWriteUnsupported tests dispatch of unknown values.
func TestWriteUnsupported(t *testing.T) {
	t.Parallel()

	_, err := Write(NewJSONWriter(&bytes.Buffer{}), "not a document")
	if !errors.Is(err, ErrUnsupportedDocument) {
		t.Errorf("expected ErrUnsupportedDocument, got %v", err)
	}
}

// TestMarkdownWriter tests the Markdown companion output.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("banking", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).WriteBanking(mustBanking(t)); err != nil {
			t.Fatal(err)
		}
		out := buf.String()
		for _, want := range []string{
			"# BBS BANKING OPTIONS",
			"## Side-by-side comparison",
			"| TD NFP Plan |",
			"### #1 TD Community / Not-For-Profit Plan",
			"[td.com](https://www.td.com/",
			"> [!TIP]",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q", want)
			}
		}
	})

	t.Run("sponsors", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).WriteSponsorTask(mustSponsorTask(t)); err != nil {
			t.Fatal(err)
		}
		out := buf.String()
		for _, want := range []string{
			"## Tier 1 - Highest Priority",
			"- [ ] Active?",
			"**DEADLINE TO COMPLETE:**",
			"### #25 Vancouver Foundation",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q", want)
			}
		}
		if strings.Contains(out, "<b>") {
			t.Error("markup leaked into Markdown output")
		}
	})

	t.Run("links", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).WriteLinkAudit(mustLinkAudit(t)); err != nil {
			t.Fatal(err)
		}
		out := buf.String()
		for _, want := range []string{"```mermaid", "pie", "\"WORKING\" : 15", "## Broken links - need new URLs", "### Timed out (likely working)"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q", want)
			}
		}
	})
}

// TestJSONWriter tests the JSON output format.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("wraps the document", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		w := NewJSONWriter(&buf, WithPrettyPrint(), WithVersion("v1.2.3"))
		if _, err := w.WriteBanking(mustBanking(t)); err != nil {
			t.Fatal(err)
		}

		var got struct {
			Kind     string              `json:"kind"`
			Version  string              `json:"version"`
			Document model.BankingReport `json:"document"`
		}
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if got.Kind != "banking" || got.Version != "v1.2.3" {
			t.Errorf("unexpected envelope %q %q", got.Kind, got.Version)
		}
		if len(got.Document.Banks) != 6 || got.Document.Banks[0].Level != model.VerdictBest {
			t.Errorf("document did not survive encoding: %+v", got.Document.Banks)
		}
		if !strings.Contains(buf.String(), "\n  ") {
			t.Error("expected indented output")
		}
	})

	t.Run("link audit counts", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).WriteLinkAudit(mustLinkAudit(t)); err != nil {
			t.Fatal(err)
		}
		var got JSONDocument
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatal(err)
		}
		want := map[string]int{"WORKING": 15, "BROKEN": 8, "TIMED OUT": 1}
		if diff := cmp.Diff(want, got.Counts); diff != "" {
			t.Errorf("counts mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("compact by default", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).WriteSponsorTask(mustSponsorTask(t)); err != nil {
			t.Fatal(err)
		}
		if strings.Count(buf.String(), "\n") != 1 {
			t.Error("expected a single line of JSON")
		}
	})
}

// TestSimpleWriter tests the plain-text outline.
func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("banking outline", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).WriteBanking(mustBanking(t)); err != nil {
			t.Fatal(err)
		}
		out := buf.String()
		if !strings.Contains(out, "#1 TD Community / Not-For-Profit Plan") {
			t.Error("expected ranked bank list")
		}
		if !strings.Contains(out, "PDF: BBS-BANKING-OPTIONS-SHAAN.pdf") {
			t.Error("expected output file name in footer")
		}
		if strings.Contains(out, "https://") {
			t.Error("URLs should only appear in verbose mode")
		}
	})

	t.Run("leads show their domain", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).WriteLinkAudit(mustLinkAudit(t)); err != nil {
			t.Fatal(err)
		}
		out := buf.String()
		if !strings.Contains(out, "#1 RBC - Community Sponsorship (Sponsorium) (rbc.com)") {
			t.Errorf("expected lead with domain:\n%s", out)
		}
		if strings.Contains(out, "https://") {
			t.Error("URLs should only appear in verbose mode")
		}
	})

	t.Run("verbose adds urls", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf, WithVerbose(true)).WriteLinkAudit(mustLinkAudit(t)); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "https://") {
			t.Error("expected URLs in verbose output")
		}
	})

	t.Run("show empty sections", func(t *testing.T) {
		t.Parallel()
		a := mustLinkAudit(t)
		a.TimedOut = nil

		var quiet, loud bytes.Buffer
		if _, err := NewSimpleWriter(&quiet).WriteLinkAudit(a); err != nil {
			t.Fatal(err)
		}
		if _, err := NewSimpleWriter(&loud, WithShowEmpty(true)).WriteLinkAudit(a); err != nil {
			t.Fatal(err)
		}
		if strings.Contains(quiet.String(), "  None") {
			t.Error("empty section shown without WithShowEmpty")
		}
		if !strings.Contains(loud.String(), "  None") {
			t.Error("empty section hidden with WithShowEmpty")
		}
	})
}

// TestMultiWriter tests writing to several formats at once.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	var md, js bytes.Buffer
	mw := NewMultiWriter(NewMarkdownWriter(&md), NewJSONWriter(&js))

	n, err := mw.WriteSponsorTask(mustSponsorTask(t))
	if err != nil {
		t.Fatal(err)
	}
	if md.Len() == 0 || js.Len() == 0 {
		t.Error("expected output from every writer")
	}
	if n != md.Len()+js.Len() {
		t.Errorf("total = %d, want %d", n, md.Len()+js.Len())
	}
}
