package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"jt/internal/db"
	"jt/internal/journey"
	"jt/internal/parser"
	"jt/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show <journey-id>",
	Short: "Show a registered journey with its steps",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunShow(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func RunShow(w io.Writer, rawID string) error {
	id := strings.ToUpper(rawID)

	if _, err := os.Stat("journeys"); os.IsNotExist(err) {
		return fmt.Errorf("run `jt init` first")
	}

	sqlDB, err := db.Open("journeys/jt.db")
	if err != nil {
		return fmt.Errorf("opening registry: %w", err)
	}
	defer sqlDB.Close()

	var source string
	err = sqlDB.QueryRow(`SELECT source FROM journeys WHERE journey_id = ?`, id).Scan(&source)
	if err != nil {
		return fmt.Errorf("journey %s not found; run `jt compile` first", id)
	}

	// Re-parse the source table so the output reflects its current state.
	content, err := os.ReadFile(source)
	if err != nil {
		return fmt.Errorf("reading %s: %w", source, err)
	}
	table, err := parser.Parse(content)
	if err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}
	rows, err := journey.ValidateRows(table.Rows)
	if err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}
	journeys, _ := journey.Group(rows)

	var matched *journey.Journey
	for _, j := range journeys {
		if j.ID == id {
			matched = j
			break
		}
	}
	if matched == nil {
		return fmt.Errorf("journey %s not found in %s", id, source)
	}

	ui.ShowHeader(w, matched.ID, matched.Name)
	fmt.Fprintf(w, "owner: %s  criticality: %s  steps: %d\n", matched.Owner, criticalityLabel(matched.Critical), len(matched.Steps))
	fmt.Fprintf(w, "source: %s\n", source)

	fmt.Fprintln(w)
	for _, s := range matched.Steps {
		ui.StepLine(w, s.Number, s.UserDoes, s.SystemShows)
	}

	if len(matched.Notes) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "notes:")
		for _, n := range matched.Notes {
			fmt.Fprintf(w, "  - %s\n", n)
		}
	}

	return nil
}
