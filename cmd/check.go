package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"jt/internal/journey"
	"jt/internal/parser"
	"jt/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check <table>",
	Short: "Validate a journey table without writing anything",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunCheck(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func RunCheck(w, errW io.Writer, tablePath string) error {
	content, err := os.ReadFile(tablePath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", tablePath, err)
	}

	table, err := parser.Parse(content)
	if err != nil {
		return fmt.Errorf("%s: %w", tablePath, err)
	}

	rows, err := journey.ValidateRows(table.Rows)
	if err != nil {
		return fmt.Errorf("%s: %w", tablePath, err)
	}

	journeys, warnings := journey.Group(rows)
	for _, warn := range warnings {
		ui.WarnLine(errW, warn.String())
	}

	fmt.Fprintf(w, "ok: %d journeys, %d steps\n", len(journeys), len(rows))
	return nil
}
