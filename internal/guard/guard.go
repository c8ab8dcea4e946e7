// Package guard routes hook requests to the matching validator and records
// every decision.
package guard

import (
	"fmt"

	"github.com/hookward/ward/internal/audit"
	"github.com/hookward/ward/internal/hook"
	"github.com/hookward/ward/internal/safety"
)

// Guard evaluates one tool invocation per process run.
type Guard struct {
	CommandRules []safety.Rule
	PathRules    []safety.Rule
	Sink         audit.Sink
}

// New returns a guard with the built-in rule sets and the given sink.
func New(sink audit.Sink) *Guard {
	return &Guard{
		CommandRules: safety.DefaultCommandRules(),
		PathRules:    safety.DefaultPathRules(),
		Sink:         sink,
	}
}

// Decision is the outcome of evaluating one request.
type Decision struct {
	// Evaluated is false when the tool is not subject to validation
	// (read-only tools pass through without a log entry).
	Evaluated bool
	Result    safety.Result
	Entry     audit.Entry
}

// Blocked reports whether the request must be denied.
func (d Decision) Blocked() bool {
	return d.Evaluated && !d.Result.OK
}

// Check validates the request and, when a validator ran, appends exactly one
// audit entry. A sink failure is returned as an error even when the verdict
// itself was reached.
func (g *Guard) Check(req *hook.Request) (Decision, error) {
	var d Decision

	switch {
	case req.ToolName == hook.ToolBash:
		d.Evaluated = true
		d.Result = safety.CheckCommand(g.CommandRules, req.ToolInput.Command)
		d.Entry = audit.NewEntry(audit.EventBashCommand, req.ToolInput.Command, d.Result.OK, d.Result.Message)

	case req.IsFileMutation():
		d.Evaluated = true
		d.Result = safety.CheckPath(g.PathRules, req.ToolInput.FilePath)
		d.Entry = audit.NewEntry(audit.EventFileOperation, req.ToolInput.FilePath, d.Result.OK, d.Result.Message)

	default:
		return d, nil
	}

	if err := g.Sink.Append(d.Entry); err != nil {
		return d, fmt.Errorf("failed to record validation: %w", err)
	}
	return d, nil
}
