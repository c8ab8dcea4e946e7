package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/hookward/ward/internal/ai"
	"github.com/hookward/ward/internal/config"
	"github.com/hookward/ward/internal/safety"
	"github.com/hookward/ward/internal/stdin"
)

var explainCmd = &cobra.Command{
	Use:   "explain [command]",
	Short: "Explain a command and how the guard judges it",
	Long: `Run the command validator locally, then ask Claude what the command does
and why it is or is not dangerous.

  ward explain "rm -rf /tmp/build"       # explain a command
  echo "dd if=/dev/zero" | ward explain  # explain a piped command

Requires an API key: set api_key in the config file or ANTHROPIC_API_KEY.`,
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	command := strings.Join(args, " ")
	if command == "" && stdin.IsPiped() {
		piped, err := stdin.Read()
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		command = strings.TrimSpace(piped)
	}
	if command == "" {
		return fmt.Errorf("no command given (pass it as an argument or pipe it in)")
	}

	// Local verdict first: it is printed even when the API call fails, and it
	// is handed to the model so the explanation addresses the actual decision.
	verdict := safety.CheckCommand(cfg.CommandRules(), command)
	printVerdict(verdict)

	apiKey := cfg.GetEffectiveAPIKey()
	if apiKey == "" {
		return fmt.Errorf("no API key configured: set api_key in the config file or export ANTHROPIC_API_KEY")
	}

	provider := ai.NewAnthropicProvider(apiKey, cfg.Model)
	explanation, err := provider.ExplainCommand(context.Background(), command, verdict.Message)
	if err != nil {
		return fmt.Errorf("failed to explain command: %w", err)
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fall back to plain text when the terminal renderer cannot start.
		fmt.Println(explanation)
		return nil
	}

	rendered, err := renderer.Render(explanation)
	if err != nil {
		fmt.Println(explanation)
		return nil
	}
	fmt.Print(rendered)
	return nil
}

func printVerdict(verdict safety.Result) {
	if verdict.OK {
		fmt.Println("Guard verdict: allowed")
	} else {
		fmt.Printf("Guard verdict: blocked (%s)\n", verdict.Message)
	}
	fmt.Println()
}
