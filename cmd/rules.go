package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hookward/ward/internal/config"
	"github.com/hookward/ward/internal/safety"
	"github.com/hookward/ward/internal/tui"
)

var rulesOutput string

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the active rule set",
	Long: `Print the effective rule set: the built-in denylists plus any rules added
in the config file. Built-in rules always run first and cannot be removed.

  ward rules                 # human-readable table
  ward rules --output yaml   # machine-readable, paste-able into config.yaml`,
	RunE: runRules,
}

func init() {
	rulesCmd.Flags().StringVarP(&rulesOutput, "output", "o", "table", "output format: table or yaml")
	rootCmd.AddCommand(rulesCmd)
}

// ruleSet is the yaml shape shared with the "rules" section of config.yaml.
type ruleSet struct {
	Commands []safety.Rule `yaml:"commands"`
	Paths    []safety.Rule `yaml:"paths"`
}

func runRules(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	set := ruleSet{
		Commands: cfg.CommandRules(),
		Paths:    cfg.PathRules(),
	}

	switch rulesOutput {
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(set)
	case "table":
		printRuleTable("Dangerous commands", set.Commands)
		fmt.Println()
		printRuleTable("Protected paths", set.Paths)
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s (supported: table, yaml)", rulesOutput)
	}
}

func printRuleTable(title string, rules []safety.Rule) {
	fmt.Println(tui.HeaderStyle.Render(title))
	for _, r := range rules {
		sev := tui.MutedStyle.Render(string(r.Severity))
		if r.Severity == safety.SeverityCritical {
			sev = tui.BlockStyle.Render(string(r.Severity))
		}
		fmt.Printf("  %-28s %s\n", r.Pattern, sev)
	}
}
