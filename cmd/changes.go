package cmd

import (
	"fmt"
	"io"

	"github.com/djcass44/debian-changes/pkg/changes"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
)

var changesCmd = &cobra.Command{
	Use:   "changes [file]",
	Short: "print the entry and files described by a .changes file",
	Args:  cobra.ExactArgs(1),
	RunE:  changesFile,
}

func init() {
	changesCmd.Flags().StringP(flagOutput, "o", outputText, "output format (text or json)")
}

func changesFile(cmd *cobra.Command, args []string) error {
	log := logr.FromContextOrDiscard(cmd.Context())

	output, _ := cmd.Flags().GetString(flagOutput)

	c, err := changes.Read(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("reading changes file: %w", err)
	}
	log.V(1).Info("read changes file", "name", c.Name(), "files", len(c.Files))

	return writeChanges(cmd.OutOrStdout(), c, output)
}

func writeChanges(w io.Writer, c *changes.ChangesFile, output string) error {
	if output == outputJSON {
		return writeJSON(w, c)
	}
	if output != outputText {
		return fmt.Errorf("unknown output format: %s", output)
	}
	if _, err := fmt.Fprintf(w, "%s\n\n%s", c.Name(), c.Entry.String()); err != nil {
		return err
	}
	for _, f := range c.Files {
		if _, err := fmt.Fprintln(w, f.String()); err != nil {
			return err
		}
	}
	return nil
}
