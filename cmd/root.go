package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ward",
	Short: "Tool invocation guard for AI coding assistants",
	Long: `ward is a pre-execution guard for AI coding assistant tool invocations.
It inspects proposed shell commands and file writes, blocks those matching
a denylist of dangerous patterns or protected paths, and records every
decision in an append-only audit log.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
