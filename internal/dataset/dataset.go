// Package dataset provides the literal data behind each document.
//
// The datasets are YAML files compiled into the binary with go:embed, so the
// generator has no runtime inputs and every run renders the same content.
// Each loader decodes a fresh copy; callers may modify the result freely.
package dataset

import (
	"bytes"
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/bbs-uottawa/bbsdocs/internal/model"
)

//go:embed data/*.yaml
var files embed.FS

// File names inside the embedded data directory.
const (
	bankingFile  = "data/banking.yaml"
	sponsorsFile = "data/sponsors.yaml"
	linksFile    = "data/links.yaml"
)

// validator is implemented by every document type in the model package.
type validator interface {
	Validate() error
}

// Banking returns the bank account options report.
func Banking() (*model.BankingReport, error) {
	var r model.BankingReport
	if err := decode(bankingFile, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// SponsorTask returns the sponsorship research task sheet.
func SponsorTask() (*model.SponsorTask, error) {
	var t model.SponsorTask
	if err := decode(sponsorsFile, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// LinkAudit returns the verified sponsorship links report.
func LinkAudit() (*model.LinkAudit, error) {
	var a model.LinkAudit
	if err := decode(linksFile, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Load returns the document for a kind as one of the model document types.
func Load(kind model.Kind) (any, error) {
	switch kind {
	case model.KindBanking:
		return Banking()
	case model.KindSponsorTask:
		return SponsorTask()
	case model.KindLinkAudit:
		return LinkAudit()
	default:
		return nil, fmt.Errorf("dataset for kind %d: %w", int(kind), model.ErrUnknownKind)
	}
}

// Raw returns the embedded YAML source for a document kind.
// The JSON and Markdown writers do not need it; it backs `bbsdocs list --raw`.
func Raw(kind model.Kind) ([]byte, error) {
	name, err := fileFor(kind)
	if err != nil {
		return nil, err
	}
	return files.ReadFile(name)
}

func fileFor(kind model.Kind) (string, error) {
	switch kind {
	case model.KindBanking:
		return bankingFile, nil
	case model.KindSponsorTask:
		return sponsorsFile, nil
	case model.KindLinkAudit:
		return linksFile, nil
	default:
		return "", fmt.Errorf("dataset for kind %d: %w", int(kind), model.ErrUnknownKind)
	}
}

// decode reads an embedded file strictly (unknown keys are errors) and
// validates the result.
func decode(name string, out validator) error {
	data, err := files.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read dataset %s: %w", name, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("failed to decode dataset %s: %w", name, err)
	}

	if err := out.Validate(); err != nil {
		return fmt.Errorf("invalid dataset %s: %w", name, err)
	}
	return nil
}
