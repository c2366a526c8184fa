package model

import "fmt"

// LinkCheck is a link that needs follow-up: a broken or timed-out URL and
// a suggestion for finding its replacement.
type LinkCheck struct {
	Name       string     `yaml:"name" json:"name"`
	URL        string     `yaml:"url" json:"url"`
	Suggestion string     `yaml:"suggestion" json:"suggestion"`
	Status     LinkStatus `yaml:"status" json:"status"`
}

// LinkAudit is the verified sponsorship links document.
type LinkAudit struct {
	Title    string `yaml:"title" json:"title"`
	Subtitle string `yaml:"subtitle" json:"subtitle"`
	Org      string `yaml:"org" json:"org"`
	Intro    string `yaml:"intro" json:"intro"`

	// Assignee is the person researching the working links.
	Assignee string `yaml:"assignee" json:"assignee"`

	// Working leads passed the check; their status is implied.
	Working    []SponsorLead `yaml:"working" json:"working"`
	CardChecks []string      `yaml:"cardChecks" json:"cardChecks"`

	BrokenIntro string      `yaml:"brokenIntro" json:"brokenIntro"`
	Broken      []LinkCheck `yaml:"broken" json:"broken"`
	TimedOut    []LinkCheck `yaml:"timedOut" json:"timedOut"`

	Totals []LabeledValue `yaml:"totals" json:"totals"`
	Footer []LabeledValue `yaml:"footer" json:"footer"`
}

// Validate checks required fields, lead numbering and that every follow-up
// link sits in the list matching its status.
func (a *LinkAudit) Validate() error {
	if err := requireFields(map[string]string{
		"title":    a.Title,
		"subtitle": a.Subtitle,
		"assignee": a.Assignee,
	}); err != nil {
		return err
	}
	if err := validateLeads(a.Working); err != nil {
		return err
	}
	for _, c := range a.Broken {
		if c.Status != LinkBroken {
			return fmt.Errorf("broken link %q has status %s: %w", c.Name, c.Status, ErrUnknownLevel)
		}
	}
	for _, c := range a.TimedOut {
		if c.Status != LinkTimedOut {
			return fmt.Errorf("timed-out link %q has status %s: %w", c.Name, c.Status, ErrUnknownLevel)
		}
	}
	return nil
}

// Checks returns every link in the audit with its status, working links
// first, then broken, then timed out.
func (a *LinkAudit) Checks() []LinkCheck {
	checks := make([]LinkCheck, 0, len(a.Working)+len(a.Broken)+len(a.TimedOut))
	for _, w := range a.Working {
		checks = append(checks, LinkCheck{Name: w.Name, URL: w.URL, Status: LinkWorking})
	}
	checks = append(checks, a.Broken...)
	checks = append(checks, a.TimedOut...)
	return checks
}

// CountByStatus returns how many links have each status.
func (a *LinkAudit) CountByStatus() map[LinkStatus]int {
	counts := map[LinkStatus]int{LinkWorking: 0, LinkBroken: 0, LinkTimedOut: 0}
	for _, c := range a.Checks() {
		counts[c.Status]++
	}
	return counts
}
