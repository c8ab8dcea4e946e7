// Package safety provides the command and file-path validation rules used to
// guard AI assistant tool invocations before they execute.
package safety

// Severity classifies how destructive a matched rule is considered.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
)

// Rule is a single denylist entry. Pattern is matched by plain substring
// containment against the candidate command or path; there is no regex and no
// normalization. Evaluation order is list order and the first match wins.
type Rule struct {
	Pattern  string   `yaml:"pattern" mapstructure:"pattern"`
	Severity Severity `yaml:"severity" mapstructure:"severity"`
}

// Result is the outcome of a single validation.
type Result struct {
	OK      bool
	Message string
}

func allow() Result {
	return Result{OK: true, Message: "OK"}
}

// DefaultCommandRules returns the built-in dangerous command denylist.
func DefaultCommandRules() []Rule {
	return []Rule{
		{Pattern: "rm -rf /", Severity: SeverityCritical},
		{Pattern: "dd if=", Severity: SeverityCritical},
		{Pattern: "mkfs", Severity: SeverityCritical},
		{Pattern: ":(){:|:&};:", Severity: SeverityCritical}, // fork bomb
		{Pattern: "chmod -R 777 /", Severity: SeverityHigh},
		{Pattern: "chown -R", Severity: SeverityHigh},
		{Pattern: "kill -9 -1", Severity: SeverityHigh},
		{Pattern: "> /dev/sda", Severity: SeverityCritical},
		{Pattern: "wget | sh", Severity: SeverityHigh},
		{Pattern: "curl | bash", Severity: SeverityHigh},
	}
}

// DefaultPathRules returns the built-in protected path list.
func DefaultPathRules() []Rule {
	return []Rule{
		{Pattern: ".env", Severity: SeverityCritical},
		{Pattern: ".env.local", Severity: SeverityCritical},
		{Pattern: ".env.production", Severity: SeverityCritical},
		{Pattern: "node_modules/", Severity: SeverityMedium},
		{Pattern: ".git/", Severity: SeverityHigh},
		{Pattern: "dist/", Severity: SeverityMedium},
		{Pattern: "coverage/", Severity: SeverityMedium},
		{Pattern: ".claude/settings.json", Severity: SeverityCritical},
		{Pattern: "package-lock.json", Severity: SeverityMedium},
		{Pattern: "pnpm-lock.yaml", Severity: SeverityMedium},
		{Pattern: "/etc/", Severity: SeverityCritical},
		{Pattern: "/usr/", Severity: SeverityCritical},
		{Pattern: "/bin/", Severity: SeverityCritical},
		{Pattern: "/sbin/", Severity: SeverityCritical},
		{Pattern: "~/.ssh/", Severity: SeverityCritical},
		{Pattern: "~/.aws/", Severity: SeverityCritical},
	}
}
