package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hookward/ward/internal/audit"
	"github.com/hookward/ward/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize ward configuration",
	Long:  `Interactive setup wizard to configure ward and print the hook snippet.`,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("Welcome to ward setup!")
	fmt.Println()

	// Check if config already exists
	if config.ConfigExists() {
		fmt.Print("Configuration already exists. Overwrite? [y/N]: ")
		answer, _ := reader.ReadString('\n')
		answer = strings.TrimSpace(strings.ToLower(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Setup cancelled.")
			return nil
		}
		fmt.Println()
	}

	cfg := &config.Config{
		LogPath: audit.DefaultLogPath,
		Model:   config.DefaultModel,
	}

	// Optional API key for `ward explain`
	fmt.Println("Enter an Anthropic API key to enable \"ward explain\" (optional,")
	fmt.Println("press Enter to skip; ANTHROPIC_API_KEY works too):")
	fmt.Print("> ")
	apiKey, _ := reader.ReadString('\n')
	cfg.APIKey = strings.TrimSpace(apiKey)

	if cfg.APIKey != "" {
		fmt.Println()
		fmt.Println("Select model for explanations:")
		fmt.Println("1. claude-haiku-4-5-20251001 (recommended, fast)")
		fmt.Println("2. claude-sonnet-4-5-20250929 (more thorough)")
		fmt.Print("> ")
		modelChoice, _ := reader.ReadString('\n')
		if strings.TrimSpace(modelChoice) == "2" {
			cfg.Model = "claude-sonnet-4-5-20250929"
		}
	}

	// Save config
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	configPath, _ := config.DefaultConfigPath()
	fmt.Println()
	fmt.Printf("Configuration saved to %s\n", configPath)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Run: ward hook")
	fmt.Println("  2. Merge the output into your project's .claude/settings.json")
	fmt.Println("  3. Decisions will be logged to", cfg.LogPath)

	return nil
}
