// Package model defines the data structures behind the BBS finance documents.
//
// This package contains the following main types:
//   - BankingReport: Bank account options ranked for the club, with a
//     side-by-side comparison and next steps
//   - SponsorTask: A delegated research task sheet listing sponsor leads
//     grouped by tier
//   - LinkAudit: The result of a manual link check over the sponsor leads,
//     split into working, broken and timed-out links
//
// Supporting types classify display state without carrying business rules:
// Priority drives the color of a sponsor lead, VerdictLevel the color of a
// bank verdict and LinkStatus the section a link is listed in.
//
// Models are kept free of rendering concerns so that the PDF, Markdown and
// JSON writers in the report package can share them. All types carry yaml and
// json tags because the literal datasets are decoded from embedded YAML and
// the JSON writer dumps them unchanged.
package model
