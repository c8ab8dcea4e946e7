package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Output the assistant hook configuration",
	Long: `Output the hooks section for the assistant's settings file
(.claude/settings.json) that runs "ward validate" before every Bash
command and file edit.`,
	Args: cobra.NoArgs,
	RunE: runHookSnippet,
}

func init() {
	rootCmd.AddCommand(hookCmd)
}

func runHookSnippet(cmd *cobra.Command, args []string) error {
	// Get absolute path to this executable
	exePath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to get executable path: %w", err)
	}

	fmt.Printf(hookSnippetTemplate, exePath)
	return nil
}

const hookSnippetTemplate = `{
  "hooks": {
    "PreToolUse": [
      {
        "matcher": "Bash|Write|Edit|MultiEdit",
        "hooks": [
          {
            "type": "command",
            "command": "%s validate"
          }
        ]
      }
    ]
  }
}
`
