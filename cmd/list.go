package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"jt/internal/db"
	"jt/internal/ui"
)

var (
	ownerFlag    string
	criticalFlag bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered journeys",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunList(cmd.OutOrStdout(), ownerFlag, criticalFlag)
	},
}

func init() {
	listCmd.Flags().StringVar(&ownerFlag, "owner", "", "Filter by owner")
	listCmd.Flags().BoolVar(&criticalFlag, "critical", false, "Show only release-blocking journeys")
	rootCmd.AddCommand(listCmd)
}

type listRow struct {
	journeyID string
	name      string
	owner     string
	critical  bool
	stepCount int
}

func RunList(w io.Writer, owner string, criticalOnly bool) error {
	if _, err := os.Stat("journeys"); os.IsNotExist(err) {
		return fmt.Errorf("run `jt init` first")
	}

	sqlDB, err := db.Open("journeys/jt.db")
	if err != nil {
		return fmt.Errorf("opening registry: %w", err)
	}
	defer sqlDB.Close()

	rows, err := sqlDB.Query(`
		SELECT journey_id, name, owner, critical, step_count
		FROM journeys
		ORDER BY journey_id
	`)
	if err != nil {
		return fmt.Errorf("querying journeys: %w", err)
	}
	defer rows.Close()

	var results []listRow
	for rows.Next() {
		var r listRow
		if err := rows.Scan(&r.journeyID, &r.name, &r.owner, &r.critical, &r.stepCount); err != nil {
			return fmt.Errorf("scanning row: %w", err)
		}

		if owner != "" && r.owner != owner {
			continue
		}
		if criticalOnly && !r.critical {
			continue
		}

		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating rows: %w", err)
	}

	if len(results) == 0 {
		return nil
	}

	// Compute column widths
	idWidth, nameWidth, ownerWidth := 0, 0, 0
	for _, r := range results {
		if len(r.journeyID) > idWidth {
			idWidth = len(r.journeyID)
		}
		if len(r.name) > nameWidth {
			nameWidth = len(r.name)
		}
		if len(r.owner) > ownerWidth {
			ownerWidth = len(r.owner)
		}
	}

	for _, r := range results {
		ui.ListRow(w, r.journeyID, r.name, r.owner, criticalityLabel(r.critical), r.stepCount, idWidth, nameWidth, ownerWidth)
	}

	return nil
}

func criticalityLabel(critical bool) string {
	if critical {
		return "release-blocking"
	}
	return "standard"
}
