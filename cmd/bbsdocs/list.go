package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bbs-uottawa/bbsdocs/internal/dataset"
	"github.com/bbs-uottawa/bbsdocs/internal/model"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [document]",
		Short: "List the documents bbsdocs can generate",
		Long: `List prints every document with its command name and output file name.

With --raw and a document name, list prints the data the document is built
from instead.

Examples:
  bbsdocs list
  bbsdocs list --raw links`,
		Args: cobra.MaximumNArgs(1),
		RunE: runListCmd,
	}

	cmd.Flags().Bool("raw", false, "Print the embedded data of a document")

	return cmd
}

// runListCmd executes the list command.
func runListCmd(cmd *cobra.Command, args []string) error {
	raw, err := cmd.Flags().GetBool("raw")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if raw {
		if len(args) == 0 {
			return fmt.Errorf("--raw needs a document name (one of %s)", kindNames())
		}
		kind, err := model.ParseKind(args[0])
		if err != nil {
			return err
		}
		data, err := dataset.Raw(kind)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	kinds := model.AllKinds()
	if len(args) == 1 {
		kind, err := model.ParseKind(args[0])
		if err != nil {
			return err
		}
		kinds = []model.Kind{kind}
	}

	fmt.Fprintf(out, "%-10s %-36s %s\n", "DOCUMENT", "FILE", "DESCRIPTION")
	for _, kind := range kinds {
		fmt.Fprintf(out, "%-10s %-36s %s\n", kind, kind.FileName(), kind.Description())
	}
	return nil
}

// kindNames returns the document names for help and error messages.
func kindNames() string {
	var names string
	for i, kind := range model.AllKinds() {
		if i > 0 {
			names += ", "
		}
		names += kind.String()
	}
	return names
}
