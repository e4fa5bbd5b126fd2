package cmd

import (
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"jt/internal/db"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show registry totals and the most recent compile run",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunStatus(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func RunStatus(w io.Writer) error {
	if _, err := os.Stat("journeys"); os.IsNotExist(err) {
		return fmt.Errorf("run `jt init` first")
	}

	sqlDB, err := db.Open("journeys/jt.db")
	if err != nil {
		return fmt.Errorf("opening registry: %w", err)
	}
	defer sqlDB.Close()

	var count int
	if err := sqlDB.QueryRow(`SELECT COUNT(*) FROM journeys`).Scan(&count); err != nil {
		return fmt.Errorf("counting journeys: %w", err)
	}

	fmt.Fprintf(w, "Journeys: %d\n", count)

	if count > 0 {
		rows, err := sqlDB.Query(`
			SELECT critical, COUNT(*) AS cnt
			FROM journeys
			GROUP BY critical
			ORDER BY critical DESC
		`)
		if err != nil {
			return fmt.Errorf("querying criticality counts: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var critical bool
			var cnt int
			if err := rows.Scan(&critical, &cnt); err != nil {
				return fmt.Errorf("scanning criticality row: %w", err)
			}
			fmt.Fprintf(w, "  %s: %d\n", criticalityLabel(critical), cnt)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("iterating criticality rows: %w", err)
		}
	}

	var runID, source string
	var journeyCount int
	err = sqlDB.QueryRow(`
		SELECT run_id, source, journey_count
		FROM runs
		ORDER BY id DESC
		LIMIT 1
	`).Scan(&runID, &source, &journeyCount)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("querying runs: %w", err)
	}

	fmt.Fprintf(w, "\nlast run: %s (%s, %d journeys)\n", runID, source, journeyCount)
	return nil
}
