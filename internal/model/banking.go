package model

import (
	"fmt"
	"slices"
)

// LabeledValue is a "Label: value" line such as "Monthly Fee: $0".
type LabeledValue struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
}

// ActionStep is one entry of a numbered to-do list.
type ActionStep struct {
	Label string `yaml:"label" json:"label"`
	Text  string `yaml:"text" json:"text"`
}

// BankOption is one bank account candidate.
type BankOption struct {
	// Rank is the 1-based position in the ranked list.
	Rank int `yaml:"rank" json:"rank"`

	Name         string `yaml:"name" json:"name"`
	Fee          string `yaml:"fee" json:"fee"`
	Transactions string `yaml:"transactions" json:"transactions"`
	ETransfers   string `yaml:"etransfers" json:"etransfers"`
	Pros         string `yaml:"pros" json:"pros"`
	Cons         string `yaml:"cons" json:"cons"`
	URL          string `yaml:"url" json:"url"`

	// Verdict is the free-text verdict label, e.g. "STRONG RUNNER-UP".
	Verdict string `yaml:"verdict" json:"verdict"`

	// Level selects the verdict color.
	Level VerdictLevel `yaml:"level" json:"level"`
}

// ComparisonRow is one row of the side-by-side comparison table.
// The values are abbreviated forms of the matching BankOption fields.
type ComparisonRow struct {
	Bank         string `yaml:"bank" json:"bank"`
	MonthlyFee   string `yaml:"monthlyFee" json:"monthlyFee"`
	Transactions string `yaml:"transactions" json:"transactions"`
	ETransfers   string `yaml:"etransfers" json:"etransfers"`
	Verdict      string `yaml:"verdict" json:"verdict"`
}

// Cells returns the row as table cells in column order.
func (r ComparisonRow) Cells() []string {
	return []string{r.Bank, r.MonthlyFee, r.Transactions, r.ETransfers, r.Verdict}
}

// ComparisonHeader is the header row of the comparison table.
var ComparisonHeader = []string{"Bank", "Monthly Fee", "Transactions", "E-Transfers", "Verdict"}

// TopPick is the highlighted recommendation at the top of the report.
type TopPick struct {
	Name    string         `yaml:"name" json:"name"`
	Details []LabeledValue `yaml:"details" json:"details"`
	Verdict string         `yaml:"verdict" json:"verdict"`
}

// BankingReport is the bank account options document.
type BankingReport struct {
	Title    string `yaml:"title" json:"title"`
	Subtitle string `yaml:"subtitle" json:"subtitle"`
	Prepared string `yaml:"prepared" json:"prepared"`

	// Situation explains why a new account is needed.
	Situation string `yaml:"situation" json:"situation"`

	// Script is what to say at the branch; rendered as a callout box.
	Script string `yaml:"script" json:"script"`

	BringItems []string        `yaml:"bringItems" json:"bringItems"`
	TopPick    TopPick         `yaml:"topPick" json:"topPick"`
	Banks      []BankOption    `yaml:"banks" json:"banks"`
	Comparison []ComparisonRow `yaml:"comparison" json:"comparison"`
	Steps      []ActionStep    `yaml:"steps" json:"steps"`

	// Audience names who the next-steps section is for.
	Audience string `yaml:"audience" json:"audience"`

	Footer         []LabeledValue `yaml:"footer" json:"footer"`
	ActionRequired LabeledValue   `yaml:"actionRequired" json:"actionRequired"`
}

// Validate checks that every field rendered verbatim is present and that
// ranks run 1..n in dataset order.
func (r *BankingReport) Validate() error {
	if err := requireFields(map[string]string{
		"title":        r.Title,
		"subtitle":     r.Subtitle,
		"situation":    r.Situation,
		"topPick.name": r.TopPick.Name,
	}); err != nil {
		return err
	}
	if len(r.Banks) == 0 {
		return fmt.Errorf("banks: %w", ErrEmptyField)
	}
	if len(r.Comparison) == 0 {
		return fmt.Errorf("comparison: %w", ErrEmptyField)
	}
	for i, b := range r.Banks {
		if b.Rank != i+1 {
			return fmt.Errorf("bank %q has rank %d, want %d: %w", b.Name, b.Rank, i+1, ErrNumbering)
		}
		if b.Name == "" || b.URL == "" {
			return fmt.Errorf("bank #%d name/url: %w", b.Rank, ErrEmptyField)
		}
	}
	return nil
}

// requireFields returns ErrEmptyField naming the first empty field.
// Keys are checked in sorted order so the error is stable.
func requireFields(fields map[string]string) error {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if fields[k] == "" {
			return fmt.Errorf("%s: %w", k, ErrEmptyField)
		}
	}
	return nil
}
