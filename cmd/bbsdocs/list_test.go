package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/bbs-uottawa/bbsdocs/internal/model"
)

// TestListCmd tests the list command.
func TestListCmd(t *testing.T) {
	t.Parallel()

	t.Run("lists every document", func(t *testing.T) {
		t.Parallel()

		out, _, err := execute(t, "list")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(out), "\n")
		if len(lines) != 4 {
			t.Fatalf("expected header and 3 documents, got %d lines:\n%s", len(lines), out)
		}
		for i, kind := range model.AllKinds() {
			line := lines[i+1]
			if !strings.HasPrefix(line, kind.String()) || !strings.Contains(line, kind.FileName()) {
				t.Errorf("unexpected line for %s: %q", kind, line)
			}
		}
	})

	t.Run("lists one document", func(t *testing.T) {
		t.Parallel()

		out, _, err := execute(t, "list", "audit")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Count(out, "\n") != 2 || !strings.Contains(out, "BBS-WORKING-SPONSORSHIP-LINKS.pdf") {
			t.Errorf("unexpected output %q", out)
		}
	})

	t.Run("prints raw data", func(t *testing.T) {
		t.Parallel()

		out, _, err := execute(t, "list", "--raw", "links")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, `title: "BBS VERIFIED SPONSORSHIP LINKS"`) {
			t.Errorf("expected YAML source, got %q", out[:min(len(out), 200)])
		}
	})

	t.Run("raw needs a document", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, "list", "--raw")
		if err == nil || !strings.Contains(err.Error(), "banking, sponsors, links") {
			t.Errorf("expected error naming the documents, got %v", err)
		}
	})

	t.Run("unknown document", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, "list", "payroll")
		if !errors.Is(err, model.ErrUnknownKind) {
			t.Errorf("expected ErrUnknownKind, got %v", err)
		}
	})
}
