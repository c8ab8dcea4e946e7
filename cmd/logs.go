package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hookward/ward/internal/audit"
	"github.com/hookward/ward/internal/config"
	"github.com/hookward/ward/internal/tui"
)

var (
	logsCount       int
	logsInteractive bool
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show recent validation decisions",
	Long: `Show recent entries from the audit log.

  ward logs                # last 20 decisions
  ward logs -n 100         # last 100 decisions
  ward logs --interactive  # browse decisions in a TUI`,
	RunE: runLogs,
}

func init() {
	logsCmd.Flags().IntVarP(&logsCount, "count", "n", 20, "number of entries to show")
	logsCmd.Flags().BoolVarP(&logsInteractive, "interactive", "i", false, "browse entries interactively")
	rootCmd.AddCommand(logsCmd)
}

func runLogs(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	entries, err := audit.ReadTail(cfg.LogPath, logsCount)
	if err != nil {
		return fmt.Errorf("failed to read audit log: %w", err)
	}

	if logsInteractive {
		p := tea.NewProgram(tui.NewModel(entries), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to run log browser: %w", err)
		}
		return nil
	}

	if len(entries) == 0 {
		fmt.Println("No validation decisions recorded yet.")
		return nil
	}

	for _, e := range entries {
		badge := tui.AllowStyle.Render("ALLOW")
		if !e.Result {
			badge = tui.BlockStyle.Render("BLOCK")
		}
		fmt.Printf("%s  %s  %-14s  %s\n", badge, tui.MutedStyle.Render(e.Timestamp), e.EventType, e.Data)
		if !e.Result {
			fmt.Printf("       %s\n", tui.MutedStyle.Render(e.Message))
		}
	}
	return nil
}
