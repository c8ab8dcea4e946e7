package safety

import (
	"fmt"
	"strings"
)

// CheckCommand validates a raw shell command against the given rules.
//
// Matching is deliberately plain substring containment: case-sensitive, no
// whitespace collapsing, no shell parsing. Formatting tricks evade it; that is
// a documented limitation of the format, not something to fix here, since
// downstream consumers depend on the exact (weak) semantics.
func CheckCommand(rules []Rule, command string) Result {
	for _, rule := range rules {
		if strings.Contains(command, rule.Pattern) {
			return Result{
				OK:      false,
				Message: fmt.Sprintf("dangerous command detected: %s", rule.Pattern),
			}
		}
	}
	return allow()
}
