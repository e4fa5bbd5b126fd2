package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"jt/internal/log"
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "jt",
	Short: "jt — journey table compiler",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Setup(verboseFlag)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")
}
