package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"jt/internal/config"
	"jt/internal/db"
	"jt/internal/emit"
	"jt/internal/gen"
	"jt/internal/journey"
	"jt/internal/log"
	"jt/internal/parser"
	"jt/internal/ui"
)

var (
	rootFlag string
	dateFlag string
)

var compileCmd = &cobra.Command{
	Use:   "compile <table>",
	Short: "Compile a journey table into contracts and test stubs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunCompile(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], rootFlag, dateFlag)
	},
}

func init() {
	compileCmd.Flags().StringVar(&rootFlag, "root", ".", "Project root generated files are written under")
	compileCmd.Flags().StringVar(&dateFlag, "date", "", "Contract date stamp (YYYY-MM-DD, defaults to today)")
	rootCmd.AddCommand(compileCmd)
}

func RunCompile(w, errW io.Writer, tablePath, root, date string) error {
	logger := log.WithModule("compile")

	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid --date %q, want YYYY-MM-DD", date)
	}

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
	logger.Debug("table validated", "journeys", len(journeys), "steps", len(rows))

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}
	layout := cfg.Layout()

	source := filepath.Base(tablePath)
	var files []emit.File
	for _, j := range journeys {
		stubPath := layout.StubPath(j.ID)
		files = append(files,
			emit.File{Path: layout.ContractPath(j.ID), Content: gen.Contract(j, source, date, stubPath)},
			emit.File{Path: stubPath, Content: gen.Stub(j, source)},
		)
	}

	ui.SummaryLine(w, len(journeys))
	written, writeErr := emit.Write(root, files)
	for _, path := range written {
		ui.WroteLine(w, path)
	}
	if writeErr != nil {
		return writeErr
	}

	return recordRun(root, tablePath, journeys)
}

// recordRun upserts the compiled journeys and one run row into the
// registry. A project that never ran `jt init` has no registry; that is
// not an error, compile just skips recording.
func recordRun(root, tablePath string, journeys []*journey.Journey) error {
	logger := log.WithModule("registry")

	dbPath := filepath.Join(root, "journeys", "jt.db")
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		logger.Debug("no registry, skipping recording", "path", dbPath)
		return nil
	}

	sqlDB, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening registry: %w", err)
	}
	defer sqlDB.Close()

	for _, j := range journeys {
		_, err := sqlDB.Exec(`
			INSERT INTO journeys (journey_id, name, owner, critical, step_count, source)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(journey_id) DO UPDATE SET
				name = excluded.name,
				owner = excluded.owner,
				critical = excluded.critical,
				step_count = excluded.step_count,
				source = excluded.source,
				updated_at = datetime('now')
		`, j.ID, j.Name, j.Owner, j.Critical, len(j.Steps), tablePath)
		if err != nil {
			return fmt.Errorf("recording %s: %w", j.ID, err)
		}
	}

	runID := uuid.NewString()
	_, err = sqlDB.Exec(`INSERT INTO runs (run_id, source, journey_count) VALUES (?, ?, ?)`,
		runID, tablePath, len(journeys))
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}

	logger.Debug("recorded run", "run_id", runID, "journeys", len(journeys))
	return nil
}
