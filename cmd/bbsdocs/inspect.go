package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/bbs-uottawa/bbsdocs/internal/inspect"
)

// NewInspectCmd creates the inspect command.
func NewInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file.pdf>...",
		Short: "Show the structure and metadata of PDF files",
		Long: `Inspect reads PDF files and prints their version, page count, link count
and metadata. It runs the same checks that generation performs after
writing each file.

Examples:
  bbsdocs inspect BBS-BANKING-OPTIONS-SHAAN.pdf
  bbsdocs inspect --json *.pdf`,
		Args: cobra.MinimumNArgs(1),
		RunE: runInspectCmd,
	}

	cmd.Flags().BoolP("json", "j", false, "Output JSON")
	cmd.Flags().Int64("max-size", 10*1024*1024, "Largest file to read, in bytes")

	return cmd
}

// runInspectCmd executes the inspect command.
func runInspectCmd(cmd *cobra.Command, args []string) error {
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	maxSize, err := cmd.Flags().GetInt64("max-size")
	if err != nil {
		return err
	}

	logger := setupLogger(cmd)
	ins := inspect.New(inspect.WithMaxSize(maxSize))
	ctx := commandContext(cmd)

	var (
		reports []*inspect.Report
		errs    []error
	)
	for _, path := range args {
		rep, err := ins.File(ctx, path)
		if err != nil {
			logger.Debug("inspection failed", "path", path, "error", err)
			errs = append(errs, err)
			continue
		}
		reports = append(reports, rep)
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return err
		}
	} else {
		for i, rep := range reports {
			if i > 0 {
				fmt.Fprintln(out)
			}
			printInspection(out, rep)
		}
	}

	return errors.Join(errs...)
}

// printInspection writes a human-readable inspection report.
func printInspection(w io.Writer, rep *inspect.Report) {
	fmt.Fprintf(w, "%s\n", rep.Path)
	fmt.Fprintf(w, "  Version:  PDF %s\n", rep.Version)
	fmt.Fprintf(w, "  Size:     %d bytes\n", rep.Size)
	fmt.Fprintf(w, "  Pages:    %d\n", rep.Pages)
	fmt.Fprintf(w, "  Links:    %d\n", rep.Links)

	fields := []struct{ label, value string }{
		{"File ID", rep.FileID},
		{"Title", rep.Title},
		{"Author", rep.Author},
		{"Subject", rep.Subject},
		{"Keywords", rep.Keywords},
		{"Creator", rep.Creator},
		{"Producer", rep.Producer},
	}
	for _, f := range fields {
		if f.value != "" {
			fmt.Fprintf(w, "  %-9s %s\n", f.label+":", f.value)
		}
	}

	if rep.HasXMP() {
		fmt.Fprintln(w, "  XMP:")
		for _, key := range slices.Sorted(maps.Keys(rep.XMP)) {
			fmt.Fprintf(w, "    %-15s %s\n", key, rep.XMP[key])
		}
	}
}
