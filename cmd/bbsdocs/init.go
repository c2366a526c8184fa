package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bbs-uottawa/bbsdocs/internal/config"
)

//go:embed templates/bbsdocs.yaml
var configTemplate embed.FS

const (
	// configFileName is the default configuration file name.
	configFileName = config.DefaultConfigFile

	templatePath = "templates/bbsdocs.yaml"
)

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented bbsdocs configuration file",
		Long: `Init writes a commented configuration file listing every option with
its default value.

Without flags the file is .bbsdocs.yaml in the current directory, which
applies to runs started from that directory. --global writes the per-user
file instead (` + "`config.yaml`" + ` in the bbsdocs XDG config directory), which
applies everywhere a local file is missing.

Examples:
  # Create .bbsdocs.yaml in current directory
  bbsdocs init

  # Create the per-user configuration
  bbsdocs init --global

  # Create config file at a specific path
  bbsdocs init -o myconfig.yaml

  # Replace an existing file
  bbsdocs init -f`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", configFileName,
		"Output file path for the configuration")
	cmd.Flags().Bool("global", false,
		"Write the per-user configuration file")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")
	cmd.MarkFlagsMutuallyExclusive("output", "global")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	target, err := initTarget(cmd)
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}
	if !force {
		if _, err := os.Stat(target); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", target)
		}
	}

	content, err := configTemplate.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	if dir := filepath.Dir(target); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(target, content, 0o600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created configuration file: %s\n", target)
	fmt.Fprintln(out, "Documents, output directory, companion formats and file names")
	fmt.Fprintln(out, "can be changed there; command-line flags still take precedence.")

	return nil
}

// initTarget returns the path init writes to.
func initTarget(cmd *cobra.Command) (string, error) {
	global, err := cmd.Flags().GetBool("global")
	if err != nil {
		return "", err
	}
	if global {
		return config.XDGConfigFile(), nil
	}
	return cmd.Flags().GetString("output")
}
