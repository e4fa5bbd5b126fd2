package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"jt/internal/config"
)

var artifactsCmd = &cobra.Command{
	Use:   "artifacts <journey-id>",
	Short: "List generated files for a journey",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunArtifacts(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(artifactsCmd)
}

func RunArtifacts(w io.Writer, rawID string) error {
	id := strings.ToUpper(rawID)

	cfg, err := config.Load(".")
	if err != nil {
		return err
	}
	layout := cfg.Layout()

	var found bool
	for _, path := range []string{layout.ContractPath(id), layout.StubPath(id)} {
		if _, err := os.Stat(path); err == nil {
			fmt.Fprintf(w, "  %s\n", path)
			found = true
		}
	}

	if !found {
		fmt.Fprintf(w, "no generated artifacts for %s\n", id)
	}

	return nil
}
