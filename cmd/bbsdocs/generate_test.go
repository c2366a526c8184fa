package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/bbs-uottawa/bbsdocs/internal/config"
	"github.com/bbs-uottawa/bbsdocs/internal/pipeline"
)

// TestNewDocumentCmd tests the per-document commands.
func TestNewDocumentCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	for _, name := range []string{"banking", "sponsors", "links"} {
		sub, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		for _, flag := range []string{"output", "markdown", "json", "no-verify", "author", "lock-timeout", "config"} {
			if sub.Flags().Lookup(flag) == nil {
				t.Errorf("%s: expected %s flag", name, flag)
			}
		}
		if sub.Flags().Lookup("concurrency") != nil {
			t.Errorf("%s: unexpected concurrency flag", name)
		}
	}
}

// TestGenerateDocument tests generating a single document.
func TestGenerateDocument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		file string
	}{
		{name: "banking", file: "BBS-BANKING-OPTIONS-SHAAN.pdf"},
		{name: "sponsors", file: "LOLA-SPONSORSHIP-RESEARCH-TASK.pdf"},
		{name: "links", file: "BBS-WORKING-SPONSORSHIP-LINKS.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			cfgPath := writeConfig(t, "{}")

			out, _, err := execute(t, tt.name, "-o", dir, "-c", cfgPath)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			path := filepath.Join(dir, tt.file)
			if want := "PDF generated: " + path + "\n"; out != want {
				t.Errorf("unexpected output:\n got %q\nwant %q", out, want)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.HasPrefix(data, []byte("%PDF-")) || !bytes.HasSuffix(bytes.TrimSpace(data), []byte("%%EOF")) {
				t.Error("expected a complete PDF file")
			}
		})
	}
}

// TestGenerateAll tests generating several documents.
func TestGenerateAll(t *testing.T) {
	t.Parallel()

	t.Run("every document in order with companions", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		out, _, err := execute(t, "all", "-o", dir, "-c", writeConfig(t, "{}"), "--markdown", "--concurrency", "2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{
			"PDF generated: " + filepath.Join(dir, "BBS-BANKING-OPTIONS-SHAAN.pdf"),
			"  companion: " + filepath.Join(dir, "BBS-BANKING-OPTIONS-SHAAN.md"),
			"PDF generated: " + filepath.Join(dir, "LOLA-SPONSORSHIP-RESEARCH-TASK.pdf"),
			"  companion: " + filepath.Join(dir, "LOLA-SPONSORSHIP-RESEARCH-TASK.md"),
			"PDF generated: " + filepath.Join(dir, "BBS-WORKING-SPONSORSHIP-LINKS.pdf"),
			"  companion: " + filepath.Join(dir, "BBS-WORKING-SPONSORSHIP-LINKS.md"),
		}
		got := strings.Split(strings.TrimSpace(out), "\n")
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("output mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("named documents", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		out, _, err := execute(t, "all", "links", "bank", "-o", dir, "-c", writeConfig(t, "{}"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := "PDF generated: " + filepath.Join(dir, "BBS-WORKING-SPONSORSHIP-LINKS.pdf") + "\n" +
			"PDF generated: " + filepath.Join(dir, "BBS-BANKING-OPTIONS-SHAAN.pdf") + "\n"
		if out != want {
			t.Errorf("unexpected output:\n got %q\nwant %q", out, want)
		}
	})

	t.Run("documents from the config file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		cfgPath := writeConfig(t, "documents: [sponsors]\n")
		out, _, err := execute(t, "all", "-o", dir, "-c", cfgPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Count(out, "PDF generated:") != 1 || !strings.Contains(out, "LOLA-SPONSORSHIP-RESEARCH-TASK.pdf") {
			t.Errorf("unexpected output %q", out)
		}
	})

	t.Run("unknown document", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, "all", "payroll", "-o", t.TempDir(), "-c", writeConfig(t, "{}"))
		if !errors.Is(err, config.ErrUnknownDocument) {
			t.Errorf("expected ErrUnknownDocument, got %v", err)
		}
	})

	t.Run("invalid concurrency", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, "all", "--concurrency", "0", "-o", t.TempDir(), "-c", writeConfig(t, "{}"))
		if !errors.Is(err, config.ErrInvalidConcurrency) {
			t.Errorf("expected ErrInvalidConcurrency, got %v", err)
		}
	})
}

// TestGenerateConfigFile tests how the config file and flags combine.
func TestGenerateConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("file settings apply", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		cfgPath := writeConfig(t, "outputDir: "+dir+"\nmarkdown: true\nfileNames:\n  links: links.pdf\n")

		out, _, err := execute(t, "links", "-c", cfgPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "PDF generated: "+filepath.Join(dir, "links.pdf")) {
			t.Errorf("expected renamed PDF, got %q", out)
		}
		if _, err := os.Stat(filepath.Join(dir, "links.md")); err != nil {
			t.Errorf("expected markdown companion: %v", err)
		}
	})

	t.Run("flags override the file", func(t *testing.T) {
		t.Parallel()

		fileDir := t.TempDir()
		flagDir := t.TempDir()
		cfgPath := writeConfig(t, "outputDir: "+fileDir+"\nmarkdown: true\n")

		out, _, err := execute(t, "banking", "-c", cfgPath, "-o", flagDir, "--markdown=false")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(out, "companion") {
			t.Errorf("expected no companion, got %q", out)
		}
		entries, err := os.ReadDir(fileDir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 0 {
			t.Errorf("expected nothing in the file's directory, got %v", entries)
		}
	})

	t.Run("explicit missing file", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, "banking", "-c", filepath.Join(t.TempDir(), "missing.yaml"), "-o", t.TempDir())
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid file", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, "banking", "-c", writeConfig(t, "documents: [unclosed"), "-o", t.TempDir())
		if err == nil || !strings.Contains(err.Error(), "failed to load config file") {
			t.Errorf("expected load error, got %v", err)
		}
	})
}

// TestGenerateLocked tests that a locked output directory fails fast.
func TestGenerateLocked(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	lock, err := pipeline.LockDir(t.Context(), dir, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer lock.Unlock()

	out, _, err := execute(t, "banking", "-o", dir, "-c", writeConfig(t, "{}"), "--lock-timeout", (50 * time.Millisecond).String())
	if !errors.Is(err, pipeline.ErrLocked) {
		t.Errorf("expected ErrLocked, got %v", err)
	}
	if out != "" {
		t.Errorf("expected no output, got %q", out)
	}
}

// TestGenerateVerboseLogs tests that verbose logging goes to stderr.
func TestGenerateVerboseLogs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out, errOut, err := execute(t, "links", "-v", "-o", dir, "-c", writeConfig(t, "{}"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(errOut, "generated document") {
		t.Errorf("expected log output on stderr, got %q", errOut)
	}
	if strings.Contains(out, "level=") {
		t.Errorf("expected no logs on stdout, got %q", out)
	}
}
