package model

import (
	"fmt"
	"strings"
)

// VerdictLevel is the color class of a bank option's verdict.
// It is display-only: ranking is taken from the dataset as written.
type VerdictLevel int

const (
	// VerdictBest marks the recommended option.
	VerdictBest VerdictLevel = iota

	// VerdictRunnerUp marks options that are a close second.
	VerdictRunnerUp

	// VerdictConditional marks options that only fit under a condition
	// (a sponsorship angle, a local preference, bilingual needs).
	VerdictConditional
)

// String returns the dataset spelling of the level.
func (v VerdictLevel) String() string {
	switch v {
	case VerdictBest:
		return "best"
	case VerdictRunnerUp:
		return "runner-up"
	case VerdictConditional:
		return "conditional"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (v VerdictLevel) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// yaml.v3 and encoding/json both honour it.
func (v *VerdictLevel) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "best":
		*v = VerdictBest
	case "runner-up":
		*v = VerdictRunnerUp
	case "conditional":
		*v = VerdictConditional
	default:
		return fmt.Errorf("verdict %q: %w", string(text), ErrUnknownLevel)
	}
	return nil
}

// LinkStatus is the outcome of a manual link check.
type LinkStatus int

const (
	// LinkWorking means the page loaded and is ready for research.
	LinkWorking LinkStatus = iota

	// LinkBroken means the page returned an error and needs a new URL.
	LinkBroken

	// LinkTimedOut means the page did not answer in time but is likely up.
	LinkTimedOut
)

// String returns the label printed in reports.
func (s LinkStatus) String() string {
	switch s {
	case LinkWorking:
		return "WORKING"
	case LinkBroken:
		return "BROKEN"
	case LinkTimedOut:
		return "TIMED OUT"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s LinkStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *LinkStatus) UnmarshalText(text []byte) error {
	switch strings.ToUpper(strings.TrimSpace(string(text))) {
	case "WORKING":
		*s = LinkWorking
	case "BROKEN":
		*s = LinkBroken
	case "TIMED OUT", "TIMED-OUT", "TIMEDOUT":
		*s = LinkTimedOut
	default:
		return fmt.Errorf("link status %q: %w", string(text), ErrUnknownLevel)
	}
	return nil
}
