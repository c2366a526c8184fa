package model

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

// TestPriorityOf tests priority label classification.
func TestPriorityOf(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		label    string
		expected Priority
	}{
		{"URGENT", PriorityUrgent},
		{"URGENT - DEADLINE APRIL 9", PriorityUrgent},
		{"HIGH", PriorityHigh},
		{"HIGHLY SPECULATIVE", PriorityNormal},
		{"high", PriorityNormal},
		{"MEDIUM", PriorityNormal},
		{"LOW", PriorityNormal},
		{"REFERENCE ONLY", PriorityNormal},
		{"", PriorityNormal},
	}

	for _, tc := range testCases {
		t.Run(tc.label, func(t *testing.T) {
			t.Parallel()
			if got := PriorityOf(tc.label); got != tc.expected {
				t.Errorf("PriorityOf(%q) = %s, expected %s", tc.label, got, tc.expected)
			}
		})
	}
}

// TestPriorityString tests the String method of Priority.
func TestPriorityString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		priority Priority
		expected string
	}{
		{PriorityNormal, "NORMAL"},
		{PriorityHigh, "HIGH"},
		{PriorityUrgent, "URGENT"},
		{Priority(42), "UNKNOWN"},
	}
	for _, tc := range testCases {
		if got := tc.priority.String(); got != tc.expected {
			t.Errorf("got %q, expected %q", got, tc.expected)
		}
	}
}

// TestGroupByTier tests tier grouping of sponsor leads.
func TestGroupByTier(t *testing.T) {
	t.Parallel()

	t.Run("groups follow tier labels", func(t *testing.T) {
		t.Parallel()

		leads := []SponsorLead{
			{Num: 1, Tier: "TIER 1", Name: "a"},
			{Num: 2, Name: "b"},
			{Num: 3, Tier: "TIER 2", Name: "c"},
			{Num: 4, Name: "d"},
			{Num: 5, Name: "e"},
		}

		got := GroupByTier(leads)
		want := []TierGroup{
			{Tier: "TIER 1", Leads: leads[0:2]},
			{Tier: "TIER 2", Leads: leads[2:5]},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("GroupByTier() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("repeated label does not start a new group", func(t *testing.T) {
		t.Parallel()

		leads := []SponsorLead{
			{Num: 1, Tier: "TIER 1"},
			{Num: 2, Tier: "TIER 1"},
			{Num: 3},
		}
		got := GroupByTier(leads)
		if len(got) != 1 {
			t.Fatalf("expected 1 group, got %d", len(got))
		}
		if len(got[0].Leads) != 3 {
			t.Errorf("expected 3 leads, got %d", len(got[0].Leads))
		}
	})

	t.Run("leads before the first tier form an untitled group", func(t *testing.T) {
		t.Parallel()

		leads := []SponsorLead{
			{Num: 1},
			{Num: 2, Tier: "TIER 1"},
		}
		got := GroupByTier(leads)
		if len(got) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(got))
		}
		if got[0].Tier != "" {
			t.Errorf("expected untitled first group, got %q", got[0].Tier)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		if got := GroupByTier(nil); len(got) != 0 {
			t.Errorf("expected no groups, got %d", len(got))
		}
	})

	t.Run("every lead lands in exactly one group", func(t *testing.T) {
		t.Parallel()

		leads := []SponsorLead{
			{Num: 1, Tier: "A"}, {Num: 2}, {Num: 3, Tier: "B"},
			{Num: 4, Tier: "A"}, {Num: 5}, {Num: 6, Tier: "A"},
		}
		var nums []int
		for _, g := range GroupByTier(leads) {
			for _, l := range g.Leads {
				nums = append(nums, l.Num)
			}
		}
		if diff := cmp.Diff([]int{1, 2, 3, 4, 5, 6}, nums); diff != "" {
			t.Errorf("lead order mismatch (-want +got):\n%s", diff)
		}
	})
}

// TestTruncate tests name truncation for summary tables.
func TestTruncate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		n        int
		expected string
	}{
		{"short string unchanged", "BlackNorth Initiative", 35, "BlackNorth Initiative"},
		{"exact length unchanged", strings.Repeat("x", 35), 35, strings.Repeat("x", 35)},
		{"long string cut", "Ontario Trillium Foundation - Youth Opportunities Fund", 35, "Ontario Trillium Foundation - Youth..."},
		{"forty column cut", "Ontario Trillium Foundation - Youth Opportunities Fund", 40, "Ontario Trillium Foundation - Youth Oppo..."},
		{"multibyte rune kept whole", "héllo", 2, "hé..."},
		{"zero width", "abc", 0, "..."},
		{"negative width", "abc", -1, "..."},
		{"empty", "", 5, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Truncate(tc.input, tc.n); got != tc.expected {
				t.Errorf("Truncate(%q, %d) = %q, expected %q", tc.input, tc.n, got, tc.expected)
			}
		})
	}
}

// TestDomain tests registrable domain extraction.
func TestDomain(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		url      string
		expected string
	}{
		{"https://www.rbc.com/community-social-impact/apply-for-funding/index.html", "rbc.com"},
		{"https://letstalk.bell.ca/en/bell-lets-talk-community-fund", "bell.ca"},
		{"https://ontario.grantwatch.com/cat/53/bipoc-grants.html", "grantwatch.com"},
		{"https://otf.ca/our-grants/youth-opportunities-fund", "otf.ca"},
		{"https://WWW.TD.COM/ca/en", "td.com"},
		{"https://localhost/", "localhost"},
		{"not a url", ""},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.url, func(t *testing.T) {
			t.Parallel()
			if got := Domain(tc.url); got != tc.expected {
				t.Errorf("Domain(%q) = %q, expected %q", tc.url, got, tc.expected)
			}
		})
	}
}

// TestParseKind tests document kind parsing.
func TestParseKind(t *testing.T) {
	t.Parallel()

	t.Run("round trips every kind", func(t *testing.T) {
		t.Parallel()
		for _, k := range AllKinds() {
			got, err := ParseKind(k.String())
			if err != nil {
				t.Fatalf("ParseKind(%q) error: %v", k.String(), err)
			}
			if got != k {
				t.Errorf("ParseKind(%q) = %v, expected %v", k.String(), got, k)
			}
		}
	})

	t.Run("accepts aliases", func(t *testing.T) {
		t.Parallel()
		got, err := ParseKind("  Audit ")
		if err != nil || got != KindLinkAudit {
			t.Errorf("ParseKind(Audit) = %v, %v", got, err)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		t.Parallel()
		_, err := ParseKind("invoice")
		if !errors.Is(err, ErrUnknownKind) {
			t.Errorf("expected ErrUnknownKind, got %v", err)
		}
	})
}

// TestKindFileName tests the fixed output names.
func TestKindFileName(t *testing.T) {
	t.Parallel()

	want := map[Kind]string{
		KindBanking:     "BBS-BANKING-OPTIONS-SHAAN.pdf",
		KindSponsorTask: "LOLA-SPONSORSHIP-RESEARCH-TASK.pdf",
		KindLinkAudit:   "BBS-WORKING-SPONSORSHIP-LINKS.pdf",
	}
	for k, name := range want {
		if got := k.FileName(); got != name {
			t.Errorf("%s.FileName() = %q, expected %q", k, got, name)
		}
	}
	if Kind(9).FileName() != "" {
		t.Error("expected empty file name for unknown kind")
	}
}

// TestLevelText tests text encoding of verdict levels and link statuses.
func TestLevelText(t *testing.T) {
	t.Parallel()

	t.Run("verdict level from yaml", func(t *testing.T) {
		t.Parallel()

		var b BankOption
		if err := yaml.Unmarshal([]byte("rank: 1\nlevel: runner-up\n"), &b); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if b.Level != VerdictRunnerUp {
			t.Errorf("expected runner-up, got %s", b.Level)
		}
	})

	t.Run("unknown verdict level", func(t *testing.T) {
		t.Parallel()

		var b BankOption
		err := yaml.Unmarshal([]byte("level: maybe\n"), &b)
		if err == nil {
			t.Fatal("expected error for unknown level")
		}
	})

	t.Run("link status json", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(LinkCheck{Name: "x", Status: LinkTimedOut})
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if !strings.Contains(string(data), `"status":"TIMED OUT"`) {
			t.Errorf("unexpected json: %s", data)
		}

		var c LinkCheck
		if err := json.Unmarshal([]byte(`{"status":"broken"}`), &c); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if c.Status != LinkBroken {
			t.Errorf("expected broken, got %s", c.Status)
		}
	})

	t.Run("unknown link status", func(t *testing.T) {
		t.Parallel()

		var s LinkStatus
		if err := s.UnmarshalText([]byte("flaky")); !errors.Is(err, ErrUnknownLevel) {
			t.Errorf("expected ErrUnknownLevel, got %v", err)
		}
	})
}

// TestValidate tests the Validate methods of the document types.
func TestValidate(t *testing.T) {
	t.Parallel()

	validLeads := func() []SponsorLead {
		return []SponsorLead{
			{Num: 1, Tier: "TIER 1", Name: "a", URL: "https://a.example", Priority: "HIGH"},
			{Num: 2, Name: "b", URL: "https://b.example", Priority: "LOW"},
		}
	}

	t.Run("banking report", func(t *testing.T) {
		t.Parallel()

		r := &BankingReport{
			Title: "t", Subtitle: "s", Situation: "x",
			TopPick:    TopPick{Name: "TD"},
			Banks:      []BankOption{{Rank: 1, Name: "TD", URL: "https://td.com"}},
			Comparison: []ComparisonRow{{Bank: "TD"}},
		}
		if err := r.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		r.Banks[0].Rank = 2
		if err := r.Validate(); !errors.Is(err, ErrNumbering) {
			t.Errorf("expected ErrNumbering, got %v", err)
		}

		r.Title = ""
		if err := r.Validate(); !errors.Is(err, ErrEmptyField) {
			t.Errorf("expected ErrEmptyField, got %v", err)
		}
	})

	t.Run("sponsor task", func(t *testing.T) {
		t.Parallel()

		task := &SponsorTask{Title: "t", Subtitle: "s", Assignee: "Lola", Leads: validLeads()}
		if err := task.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task.TierCount() != 1 {
			t.Errorf("expected 1 tier, got %d", task.TierCount())
		}

		task.Leads[0].Tier = ""
		if err := task.Validate(); !errors.Is(err, ErrEmptyField) {
			t.Errorf("expected ErrEmptyField for missing first tier, got %v", err)
		}

		task.Leads = nil
		if err := task.Validate(); !errors.Is(err, ErrEmptyField) {
			t.Errorf("expected ErrEmptyField for no leads, got %v", err)
		}
	})

	t.Run("link audit", func(t *testing.T) {
		t.Parallel()

		audit := &LinkAudit{
			Title: "t", Subtitle: "s", Assignee: "Lola",
			Working:  validLeads(),
			Broken:   []LinkCheck{{Name: "x", Status: LinkBroken}},
			TimedOut: []LinkCheck{{Name: "y", Status: LinkTimedOut}},
		}
		if err := audit.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		counts := audit.CountByStatus()
		want := map[LinkStatus]int{LinkWorking: 2, LinkBroken: 1, LinkTimedOut: 1}
		if diff := cmp.Diff(want, counts); diff != "" {
			t.Errorf("CountByStatus mismatch (-want +got):\n%s", diff)
		}

		audit.Broken[0].Status = LinkTimedOut
		if err := audit.Validate(); !errors.Is(err, ErrUnknownLevel) {
			t.Errorf("expected ErrUnknownLevel, got %v", err)
		}
	})
}
