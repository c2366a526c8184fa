package model

import (
	"fmt"
	"strings"
)

// Kind identifies one of the generated documents.
type Kind int

const (
	// KindBanking is the bank account options report.
	KindBanking Kind = iota

	// KindSponsorTask is the delegated sponsorship research task sheet.
	KindSponsorTask

	// KindLinkAudit is the verified sponsorship links report.
	KindLinkAudit
)

// AllKinds returns every document kind in generation order.
func AllKinds() []Kind {
	return []Kind{KindBanking, KindSponsorTask, KindLinkAudit}
}

// String returns the command-line name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBanking:
		return "banking"
	case KindSponsorTask:
		return "sponsors"
	case KindLinkAudit:
		return "links"
	default:
		return "unknown"
	}
}

// Description returns a one-line summary used by `bbsdocs list`.
func (k Kind) Description() string {
	switch k {
	case KindBanking:
		return "Bank account options for the club president"
	case KindSponsorTask:
		return "Sponsorship research task sheet (25 leads)"
	case KindLinkAudit:
		return "Verified sponsorship links (working, broken, timed out)"
	default:
		return ""
	}
}

// FileName returns the fixed PDF file name for the kind.
func (k Kind) FileName() string {
	switch k {
	case KindBanking:
		return "BBS-BANKING-OPTIONS-SHAAN.pdf"
	case KindSponsorTask:
		return "LOLA-SPONSORSHIP-RESEARCH-TASK.pdf"
	case KindLinkAudit:
		return "BBS-WORKING-SPONSORSHIP-LINKS.pdf"
	default:
		return ""
	}
}

// ParseKind resolves a command-line name. Matching is case-insensitive and
// accepts a few aliases.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "banking", "bank", "banks":
		return KindBanking, nil
	case "sponsors", "sponsor", "task":
		return KindSponsorTask, nil
	case "links", "link", "audit":
		return KindLinkAudit, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownKind)
	}
}
