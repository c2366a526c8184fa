package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bbs-uottawa/bbsdocs/internal/log"
	"github.com/bbs-uottawa/bbsdocs/internal/model"
)

// NewRootCmd creates the root command for bbsdocs.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bbsdocs",
		Short: "Generate the BIPOC Business Society planning PDFs",
		Long: `bbsdocs generates the BIPOC Business Society's planning documents as
US Letter PDF files.

Each document is built from data compiled into the binary, so every run
produces the same file. By default the PDF is written next to the bbsdocs
executable; use -o to choose another directory.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write logs to stderr as JSON")

	// One generator command per document
	for _, kind := range model.AllKinds() {
		cmd.AddCommand(NewDocumentCmd(kind))
	}
	cmd.AddCommand(NewAllCmd())
	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewPreviewCmd())
	cmd.AddCommand(NewInspectCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates the secure logger selected by the global flags.
// Logs always go to stderr so that stdout carries only command output.
func setupLogger(cmd *cobra.Command) *slog.Logger {
	verbose := getVerboseFlag(cmd)
	jsonLogs, err := cmd.Flags().GetBool("log-json")
	if err != nil {
		jsonLogs = false
	}
	return newLogger(cmd.ErrOrStderr(), verbose, jsonLogs)
}

func newLogger(w io.Writer, verbose, jsonLogs bool) *slog.Logger {
	if jsonLogs {
		return log.NewSecureJSONLogger(w, verbose)
	}
	return log.NewSecureLogger(w, verbose)
}
