package safety

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CheckPath validates a target file path against the given protected-path
// rules. A rule fires when its raw pattern appears in the raw path, or when
// its home-expanded pattern appears in the home-expanded path. Independently,
// a literal ".." anywhere in the raw path is rejected.
//
// The raw and expanded checks intentionally stay separate: some entries are
// absolute, some are tilde-relative, and unifying them would change which
// paths match.
func CheckPath(rules []Rule, path string) Result {
	expanded := ExpandUser(path)

	for _, rule := range rules {
		if strings.Contains(path, rule.Pattern) || strings.Contains(expanded, ExpandUser(rule.Pattern)) {
			return Result{
				OK:      false,
				Message: fmt.Sprintf("protected path access: %s", rule.Pattern),
			}
		}
	}

	if strings.Contains(path, "..") {
		return Result{OK: false, Message: "parent directory traversal not allowed"}
	}

	return allow()
}

// ExpandUser replaces a leading "~" or "~/" with the current user's home
// directory. Paths without the marker are returned unchanged, as are paths
// using the "~user" form.
func ExpandUser(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:]) + trailingSlash(path)
	}
	return path
}

// trailingSlash preserves a trailing separator that filepath.Join strips.
// Protected entries like "~/.ssh/" rely on the slash to match directories.
func trailingSlash(path string) string {
	if strings.HasSuffix(path, "/") {
		return "/"
	}
	return ""
}
