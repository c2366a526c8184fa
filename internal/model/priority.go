package model

import "strings"

// Priority is the display classification of a sponsor lead's priority label.
// The label itself is free text ("URGENT - DEADLINE APRIL 9", "REFERENCE ONLY");
// Priority only decides which color the label is printed in.
type Priority int

const (
	// PriorityNormal covers every label that is neither urgent nor high,
	// including MEDIUM, LOW and reference-only entries.
	PriorityNormal Priority = iota

	// PriorityHigh is the exact label "HIGH".
	PriorityHigh

	// PriorityUrgent is any label containing "URGENT".
	PriorityUrgent
)

// String returns a human-readable representation of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityNormal:
		return "NORMAL"
	case PriorityHigh:
		return "HIGH"
	case PriorityUrgent:
		return "URGENT"
	default:
		return "UNKNOWN"
	}
}

// PriorityOf classifies a priority label.
//
// The check for URGENT is a substring match so that labels carrying a
// deadline still classify as urgent. HIGH must match exactly: a label such
// as "HIGHLY SPECULATIVE" is normal.
func PriorityOf(label string) Priority {
	switch {
	case strings.Contains(label, "URGENT"):
		return PriorityUrgent
	case label == "HIGH":
		return PriorityHigh
	default:
		return PriorityNormal
	}
}
