package cmd

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/hookward/ward/internal/audit"
)

// setupWorkdir isolates HOME (so no user config leaks in) and the working
// directory (where the relative default log path lands).
func setupWorkdir(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func readLog(t *testing.T) []audit.Entry {
	t.Helper()
	f, err := os.Open(audit.DefaultLogPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		t.Fatalf("failed to open log: %v", err)
	}
	defer f.Close()

	var entries []audit.Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e audit.Entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			t.Fatalf("log line is not valid JSON: %q", scanner.Text())
		}
		entries = append(entries, e)
	}
	return entries
}

func TestRunValidateDangerousCommand(t *testing.T) {
	setupWorkdir(t)

	var stderr bytes.Buffer
	in := strings.NewReader(`{"tool_name":"Bash","tool_input":{"command":"dd if=/dev/zero of=/dev/sda"}}`)

	if code := runValidate(in, &stderr); code != 2 {
		t.Fatalf("exit code = %d, want 2", code)
	}
	if !strings.Contains(stderr.String(), "dd if=") {
		t.Errorf("stderr = %q, want the matched pattern named", stderr.String())
	}
	if !strings.HasPrefix(stderr.String(), "❌") {
		t.Errorf("stderr = %q, want the block marker prefix", stderr.String())
	}

	entries := readLog(t)
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	if entries[0].Result || entries[0].EventType != audit.EventBashCommand {
		t.Errorf("unexpected log entry: %+v", entries[0])
	}
}

func TestRunValidateSafeCommand(t *testing.T) {
	setupWorkdir(t)

	var stderr bytes.Buffer
	in := strings.NewReader(`{"tool_name":"Bash","tool_input":{"command":"ls -la"}}`)

	if code := runValidate(in, &stderr); code != 0 {
		t.Fatalf("exit code = %d, want 0 (stderr: %s)", code, stderr.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("stderr = %q, want empty on allow", stderr.String())
	}

	entries := readLog(t)
	if len(entries) != 1 || !entries[0].Result {
		t.Errorf("want exactly one allowed log entry, got %+v", entries)
	}
}

func TestRunValidateTraversalWrite(t *testing.T) {
	setupWorkdir(t)

	var stderr bytes.Buffer
	in := strings.NewReader(`{"tool_name":"Write","tool_input":{"file_path":"../../etc/passwd"}}`)

	if code := runValidate(in, &stderr); code != 2 {
		t.Fatalf("exit code = %d, want 2", code)
	}

	entries := readLog(t)
	if len(entries) != 1 || entries[0].EventType != audit.EventFileOperation {
		t.Fatalf("want one file_operation entry, got %+v", entries)
	}
}

func TestRunValidateReadIsNotValidated(t *testing.T) {
	setupWorkdir(t)

	var stderr bytes.Buffer
	in := strings.NewReader(`{"tool_name":"Read","tool_input":{"file_path":"/etc/hosts"}}`)

	if code := runValidate(in, &stderr); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if entries := readLog(t); len(entries) != 0 {
		t.Errorf("got %d log entries for a read-only tool, want 0", len(entries))
	}
}

func TestRunValidateMalformedInput(t *testing.T) {
	setupWorkdir(t)

	var stderr bytes.Buffer
	if code := runValidate(strings.NewReader("not json"), &stderr); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "validation error") {
		t.Errorf("stderr = %q, want a validation error report", stderr.String())
	}
	if entries := readLog(t); len(entries) != 0 {
		t.Errorf("got %d log entries for malformed input, want 0", len(entries))
	}
}

func TestRunValidateCreatesLogDirectory(t *testing.T) {
	setupWorkdir(t)

	in := strings.NewReader(`{"tool_name":"Edit","tool_input":{"file_path":"src/main.go"}}`)
	if code := runValidate(in, &bytes.Buffer{}); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if _, err := os.Stat(".claude/logs"); err != nil {
		t.Errorf("log directory was not created: %v", err)
	}
}
