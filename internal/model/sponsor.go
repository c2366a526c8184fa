package model

import "fmt"

// SponsorLead is a potential sponsor or grant program.
type SponsorLead struct {
	// Num is the 1-based position of the lead in its document.
	Num int `yaml:"num" json:"num"`

	// Tier is set only on the first lead of a tier group.
	// Leads without a tier belong to the tier of the lead before them.
	Tier string `yaml:"tier,omitempty" json:"tier,omitempty"`

	Name       string `yaml:"name" json:"name"`
	URL        string `yaml:"url" json:"url"`
	Amount     string `yaml:"amount" json:"amount"`
	Likelihood string `yaml:"likelihood" json:"likelihood"`

	// Priority is the free-text priority label, e.g. "URGENT - DEADLINE APRIL 9".
	Priority string `yaml:"priority" json:"priority"`

	Notes string `yaml:"notes" json:"notes"`
}

// PriorityLevel classifies the lead's priority label.
func (s SponsorLead) PriorityLevel() Priority {
	return PriorityOf(s.Priority)
}

// TierGroup is a run of consecutive leads under one tier heading.
type TierGroup struct {
	// Tier is empty for leads that precede the first tier label.
	Tier  string
	Leads []SponsorLead
}

// GroupByTier splits leads into tier groups.
//
// A new group starts whenever a lead carries a tier label that differs from
// the current one. A repeated label on consecutive leads does not start a new
// group, and leads without a label stay in the current group. Order is
// preserved and every lead lands in exactly one group.
func GroupByTier(leads []SponsorLead) []TierGroup {
	groups := make([]TierGroup, 0)
	current := -1
	for _, lead := range leads {
		startNew := current < 0 || (lead.Tier != "" && lead.Tier != groups[current].Tier)
		if startNew {
			groups = append(groups, TierGroup{Tier: lead.Tier})
			current = len(groups) - 1
		}
		groups[current].Leads = append(groups[current].Leads, lead)
	}
	return groups
}

// SponsorTask is the delegated sponsorship research task sheet.
type SponsorTask struct {
	Title    string `yaml:"title" json:"title"`
	Subtitle string `yaml:"subtitle" json:"subtitle"`
	Org      string `yaml:"org" json:"org"`

	// Assignee is the person doing the research; used in the per-lead
	// findings box.
	Assignee string `yaml:"assignee" json:"assignee"`

	Intro        string   `yaml:"intro" json:"intro"`
	ConfirmIntro string   `yaml:"confirmIntro" json:"confirmIntro"`
	Checklist    []string `yaml:"checklist" json:"checklist"`

	// Deadline may contain <b> markup.
	Deadline string `yaml:"deadline" json:"deadline"`

	Leads []SponsorLead `yaml:"leads" json:"leads"`

	// CardChecks are the checkbox labels printed under each lead.
	CardChecks []string `yaml:"cardChecks" json:"cardChecks"`

	SummaryIntro string         `yaml:"summaryIntro" json:"summaryIntro"`
	Totals       []LabeledValue `yaml:"totals" json:"totals"`
	Footer       []LabeledValue `yaml:"footer" json:"footer"`
}

// Validate checks required fields and lead numbering.
func (t *SponsorTask) Validate() error {
	if err := requireFields(map[string]string{
		"title":    t.Title,
		"subtitle": t.Subtitle,
		"assignee": t.Assignee,
	}); err != nil {
		return err
	}
	return validateLeads(t.Leads)
}

// TierCount returns the number of tier groups among the leads.
func (t *SponsorTask) TierCount() int {
	return len(GroupByTier(t.Leads))
}

func validateLeads(leads []SponsorLead) error {
	if len(leads) == 0 {
		return fmt.Errorf("leads: %w", ErrEmptyField)
	}
	if leads[0].Tier == "" {
		return fmt.Errorf("lead #%d has no tier: %w", leads[0].Num, ErrEmptyField)
	}
	for i, l := range leads {
		if l.Num != i+1 {
			return fmt.Errorf("lead %q has number %d, want %d: %w", l.Name, l.Num, i+1, ErrNumbering)
		}
		if l.Name == "" || l.URL == "" || l.Priority == "" {
			return fmt.Errorf("lead #%d name/url/priority: %w", l.Num, ErrEmptyField)
		}
	}
	return nil
}
