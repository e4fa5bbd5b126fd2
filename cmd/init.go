package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"jt/internal/db"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize jt in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunInit(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

const starterTable = `journey_id,journey_name,step,user_does,system_shows,critical,owner,notes
J-DEMO-FLOW,Demo flow,1,opens the landing page,hero section with a sign-up button,yes,growth,replace with a real journey
J-DEMO-FLOW,Demo flow,2,clicks sign-up,registration form,yes,growth,
`

const starterConfig = `# jt output layout. Paths are relative to the project root.
contracts-dir: contracts/journeys
tests-dir: tests/journeys
contract-ext: yaml
stub-ext: spec.js
`

func RunInit(w io.Writer) error {
	// journeys/ directory
	_, err := os.Stat("journeys")
	dirExists := err == nil
	if err := os.MkdirAll("journeys", 0o755); err != nil {
		return fmt.Errorf("creating journeys directory: %w", err)
	}
	if dirExists {
		fmt.Fprintln(w, "journeys/ already exists")
	} else {
		fmt.Fprintln(w, "journeys/ created")
	}

	// starter table
	if err := writeIfMissing(w, "journeys/journeys.csv", starterTable); err != nil {
		return err
	}

	// config
	if err := writeIfMissing(w, "journeys/jt.yaml", starterConfig); err != nil {
		return err
	}

	// registry
	_, err = os.Stat("journeys/jt.db")
	dbExists := err == nil
	sqlDB, err := db.Open("journeys/jt.db")
	if err != nil {
		return fmt.Errorf("opening registry: %w", err)
	}
	sqlDB.Close()
	if dbExists {
		fmt.Fprintln(w, "journeys/jt.db already exists")
	} else {
		fmt.Fprintln(w, "journeys/jt.db created")
	}

	// gitignore
	msgs, err := ensureGitignore()
	if err != nil {
		return fmt.Errorf("updating .gitignore: %w", err)
	}
	for _, msg := range msgs {
		fmt.Fprintln(w, msg)
	}

	return nil
}

func writeIfMissing(w io.Writer, path, content string) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(w, "%s already exists\n", path)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(w, "%s created\n", path)
	return nil
}

func ensureGitignore() ([]string, error) {
	const entry = "journeys/jt.db"

	data, err := os.ReadFile(".gitignore")
	if os.IsNotExist(err) {
		if err := os.WriteFile(".gitignore", []byte(entry+"\n"), 0o644); err != nil {
			return nil, err
		}
		return []string{".gitignore created", "journeys/jt.db added to .gitignore"}, nil
	}
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(data), "\n")
	for _, line := range lines {
		if strings.TrimSpace(line) == entry {
			return []string{"journeys/jt.db already in .gitignore"}, nil
		}
	}

	content := string(data)
	if len(content) > 0 && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += entry + "\n"

	if err := os.WriteFile(".gitignore", []byte(content), 0o644); err != nil {
		return nil, err
	}
	return []string{"journeys/jt.db added to .gitignore"}, nil
}
