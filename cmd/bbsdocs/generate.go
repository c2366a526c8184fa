package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bbs-uottawa/bbsdocs/internal/config"
	"github.com/bbs-uottawa/bbsdocs/internal/model"
	"github.com/bbs-uottawa/bbsdocs/internal/pipeline"
)

// NewDocumentCmd creates the command that generates a single document.
func NewDocumentCmd(kind model.Kind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   kind.String(),
		Short: kind.Description(),
		Long: fmt.Sprintf(`Generate %s.

The PDF is written as %s in the output directory.

Examples:
  # Write the PDF next to the bbsdocs executable
  bbsdocs %[3]s

  # Write the PDF and a Markdown copy to ./pdf
  bbsdocs %[3]s -o ./pdf --markdown`, kind.Description(), kind.FileName(), kind.String()),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, []string{kind.String()})
		},
	}
	addGenerateFlags(cmd)
	return cmd
}

// NewAllCmd creates the command that generates several documents at once.
func NewAllCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "all [document...]",
		Short: "Generate every document",
		Long: `Generate several documents concurrently.

Without arguments, all generates the documents listed under "documents" in
the configuration file, or every document when the file lists none.

Examples:
  # Generate all three PDFs
  bbsdocs all

  # Generate two of them, one at a time
  bbsdocs all banking links --concurrency 1`,
		Args: cobra.ArbitraryArgs,
		RunE: runGenerate,
	}
	addGenerateFlags(cmd)
	cmd.Flags().Int("concurrency", config.DefaultConcurrency,
		"Number of documents rendered at the same time")
	return cmd
}

// addGenerateFlags registers the flags shared by the generator commands.
func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "",
		"Output directory (default: the directory of the bbsdocs executable)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Also write a Markdown copy next to each PDF")
	cmd.Flags().BoolP("json", "j", false,
		"Also write a JSON copy next to each PDF")
	cmd.Flags().Bool("no-verify", false,
		"Skip reading each PDF back after writing it")
	cmd.Flags().String("author", "",
		"Author recorded in the PDF metadata")
	cmd.Flags().Duration("lock-timeout", config.DefaultLockTimeout,
		"How long to wait for another bbsdocs process writing to the same directory")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .bbsdocs.yaml in current or home directory)")
}

// runGenerate executes a generator command for the named documents.
// An empty list means "all" without arguments.
func runGenerate(cmd *cobra.Command, documents []string) error {
	cfg, err := buildConfig(cmd, documents)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd)

	// Set up context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g := pipeline.NewGenerator(cfg,
		pipeline.WithGeneratorLogger(logger),
		pipeline.WithVersion(getVersion()),
	)
	jobs, err := g.Run(ctx)
	printJobs(cmd.OutOrStdout(), jobs)
	return err
}

// commandContext returns the command's context, or a background context
// when the command was executed without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// printJobs prints the files written by each successful job, in the order
// the documents were requested.
func printJobs(w io.Writer, jobs []*pipeline.Job) {
	for _, job := range jobs {
		if !job.Succeeded() {
			continue
		}
		fmt.Fprintf(w, "PDF generated: %s\n", job.Path)
		for _, path := range job.Outputs {
			if path != job.Path {
				fmt.Fprintf(w, "  companion: %s\n", path)
			}
		}
	}
}

// buildConfig creates a Config from the configuration file and the
// command flags. Flags the user set override the file; the file overrides
// the defaults.
func buildConfig(cmd *cobra.Command, documents []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use the defaults if no file found.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.ApplyFile(file)
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	if len(documents) > 0 {
		cfg.Documents = documents
	} else if len(cfg.Documents) == 0 {
		for _, kind := range model.AllKinds() {
			cfg.Documents = append(cfg.Documents, kind.String())
		}
	}

	if err := applyFlags(cmd, cfg); err != nil {
		return nil, err
	}
	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// applyFlags copies the flags the user set onto cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	var errs []error

	if flags.Changed("output") {
		v, err := flags.GetString("output")
		cfg.OutputDir = v
		errs = append(errs, err)
	}
	if flags.Changed("markdown") {
		v, err := flags.GetBool("markdown")
		cfg.Markdown = v
		errs = append(errs, err)
	}
	if flags.Changed("json") {
		v, err := flags.GetBool("json")
		cfg.JSON = v
		errs = append(errs, err)
	}
	if flags.Changed("no-verify") {
		v, err := flags.GetBool("no-verify")
		cfg.Verify = !v
		errs = append(errs, err)
	}
	if flags.Changed("author") {
		v, err := flags.GetString("author")
		cfg.Author = v
		errs = append(errs, err)
	}
	if flags.Changed("lock-timeout") {
		v, err := flags.GetDuration("lock-timeout")
		cfg.LockTimeout = v
		errs = append(errs, err)
	}
	if flags.Changed("concurrency") {
		v, err := flags.GetInt("concurrency")
		cfg.Concurrency = v
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
