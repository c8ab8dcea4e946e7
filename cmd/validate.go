package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hookward/ward/internal/audit"
	"github.com/hookward/ward/internal/config"
	"github.com/hookward/ward/internal/guard"
	"github.com/hookward/ward/internal/hook"
	"github.com/hookward/ward/internal/stdin"
)

// Exit codes understood by the assistant runtime.
const (
	exitAllowed = 0
	exitError   = 1 // internal failure, distinct from a policy block
	exitBlocked = 2 // signals "block the operation" to the caller
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate one tool invocation from stdin",
	Long: `Read a single JSON tool invocation from stdin, validate it against the
active rule set, log the decision, and exit:

  0  allowed
  2  blocked by policy
  1  internal error (malformed input or fault)

Wire this as a PreToolUse hook; see "ward hook" for the settings snippet.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runValidate(os.Stdin, os.Stderr))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// runValidate drives one guard decision. It never panics outward: every fault
// is reported on errw and folded into the exit code.
func runValidate(in io.Reader, errw io.Writer) int {
	payload, err := stdin.ReadFrom(in)
	if err != nil {
		return reportError(errw, err)
	}

	req, err := hook.Parse([]byte(payload))
	if err != nil {
		return reportError(errw, err)
	}

	cfg, err := config.Load()
	if err != nil {
		return reportError(errw, err)
	}

	g := guard.New(audit.NewFileSink(cfg.LogPath))
	g.CommandRules = cfg.CommandRules()
	g.PathRules = cfg.PathRules()

	decision, err := g.Check(req)
	if err != nil {
		return reportError(errw, err)
	}

	if decision.Blocked() {
		fmt.Fprintf(errw, "❌ %s\n", decision.Result.Message)
		return exitBlocked
	}

	return exitAllowed
}

func reportError(errw io.Writer, err error) int {
	fmt.Fprintf(errw, "❌ validation error: %v\n", err)
	return exitError
}
