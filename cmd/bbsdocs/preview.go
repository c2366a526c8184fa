package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bbs-uottawa/bbsdocs/internal/dataset"
	"github.com/bbs-uottawa/bbsdocs/internal/model"
	"github.com/bbs-uottawa/bbsdocs/internal/report"
)

// Preview output formats.
const (
	formatText     = "text"
	formatMarkdown = "markdown"
	formatJSON     = "json"
)

// NewPreviewCmd creates the preview command.
func NewPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <document>",
		Short: "Print the content of a document without writing a PDF",
		Long: `Preview prints the content of a document to the terminal.

The text format is an outline of the PDF. The markdown and json formats
print the same files that --markdown and --json write next to the PDF.

Examples:
  # Outline of the banking report
  bbsdocs preview banking

  # Include URLs and fees in the outline
  bbsdocs preview banking --details

  # Print the Markdown version and keep a copy
  bbsdocs preview links --format markdown --save links.md`,
		Args: cobra.ExactArgs(1),
		RunE: runPreviewCmd,
	}

	cmd.Flags().StringP("format", "f", formatText,
		"Output format: text, markdown or json")
	cmd.Flags().BoolP("details", "d", false,
		"Include URLs and details in the text outline")
	cmd.Flags().Bool("show-empty", false,
		"Show sections that have no entries in the text outline")
	cmd.Flags().StringP("save", "s", "",
		"Also write the preview to the given file")

	return cmd
}

// runPreviewCmd executes the preview command.
func runPreviewCmd(cmd *cobra.Command, args []string) error {
	kind, err := model.ParseKind(args[0])
	if err != nil {
		return err
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	details, err := cmd.Flags().GetBool("details")
	if err != nil {
		return err
	}
	showEmpty, err := cmd.Flags().GetBool("show-empty")
	if err != nil {
		return err
	}
	savePath, err := cmd.Flags().GetString("save")
	if err != nil {
		return err
	}

	doc, err := dataset.Load(kind)
	if err != nil {
		return err
	}

	newWriter := func(w io.Writer) (report.Writer, error) {
		switch format {
		case formatText:
			return report.NewSimpleWriter(w,
				report.WithVerbose(details),
				report.WithShowEmpty(showEmpty),
			), nil
		case formatMarkdown:
			return report.NewMarkdownWriter(w), nil
		case formatJSON:
			return report.NewJSONWriter(w, report.WithPrettyPrint(), report.WithVersion(getVersion())), nil
		default:
			return nil, fmt.Errorf("unknown format %q (use text, markdown or json)", format)
		}
	}

	stdout, err := newWriter(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	writers := []report.Writer{stdout}

	if savePath != "" {
		if dir := filepath.Dir(savePath); dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return fmt.Errorf("failed to create directory: %w", err)
			}
		}
		f, err := os.Create(savePath) //nolint:gosec // User-provided output path is intentional
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", savePath, err)
		}
		defer f.Close()

		saved, err := newWriter(f)
		if err != nil {
			return err
		}
		writers = append(writers, saved)
	}

	if _, err := report.Write(report.NewMultiWriter(writers...), doc); err != nil {
		return err
	}

	if savePath != "" {
		setupLogger(cmd).Info("preview saved", "path", savePath)
	}
	return nil
}
