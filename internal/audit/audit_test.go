package audit

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewEntry(t *testing.T) {
	e := NewEntry(EventBashCommand, "ls -la", true, "OK")

	if e.ID == "" {
		t.Error("entry ID is empty")
	}
	if e.EventType != EventBashCommand {
		t.Errorf("EventType = %q, want %q", e.EventType, EventBashCommand)
	}
	if e.Data != "ls -la" || !e.Result || e.Message != "OK" {
		t.Errorf("unexpected entry fields: %+v", e)
	}
	if _, err := time.Parse(time.RFC3339, e.Timestamp); err != nil {
		t.Errorf("Timestamp %q is not RFC 3339: %v", e.Timestamp, err)
	}
}

func TestFileSinkAppend(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "logs", "validation.log")
	sink := NewFileSink(path)

	entries := []Entry{
		NewEntry(EventBashCommand, "rm -rf /", false, "dangerous command detected: rm -rf /"),
		NewEntry(EventFileOperation, "src/main.go", true, "OK"),
	}
	for _, e := range entries {
		if err := sink.Append(e); err != nil {
			t.Fatalf("Append() failed: %v", err)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	defer f.Close()

	var got []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e Entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			t.Fatalf("log line is not valid JSON: %v", err)
		}
		got = append(got, e)
	}

	if len(got) != len(entries) {
		t.Fatalf("got %d log lines, want %d", len(got), len(entries))
	}
	for i, e := range entries {
		if got[i].Data != e.Data || got[i].Result != e.Result || got[i].Message != e.Message {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], e)
		}
	}
}

func TestFileSinkJSONFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "validation.log")
	sink := NewFileSink(path)

	if err := sink.Append(NewEntry(EventFileOperation, ".env", false, "protected path access: .env")); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("line is not valid JSON: %v", err)
	}
	for _, field := range []string{"id", "timestamp", "event_type", "data", "result", "message"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("log line missing field %q", field)
		}
	}
	if raw["result"] != false {
		t.Errorf("result = %v, want false", raw["result"])
	}
}

func TestNewFileSinkDefaultPath(t *testing.T) {
	if got := NewFileSink("").Path; got != DefaultLogPath {
		t.Errorf("Path = %q, want %q", got, DefaultLogPath)
	}
}

func TestReadTail(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "validation.log")
	sink := NewFileSink(path)

	for i, cmd := range []string{"ls", "pwd", "git status", "go test ./..."} {
		e := NewEntry(EventBashCommand, cmd, true, "OK")
		if err := sink.Append(e); err != nil {
			t.Fatalf("Append(%d) failed: %v", i, err)
		}
	}

	got, err := ReadTail(path, 2)
	if err != nil {
		t.Fatalf("ReadTail() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if got[0].Data != "git status" || got[1].Data != "go test ./..." {
		t.Errorf("wrong tail entries: %q, %q", got[0].Data, got[1].Data)
	}
}

func TestReadTailMissingFile(t *testing.T) {
	got, err := ReadTail(filepath.Join(t.TempDir(), "absent.log"), 10)
	if err != nil {
		t.Fatalf("ReadTail() on missing file failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d entries from missing file, want 0", len(got))
	}
}

func TestReadTailSkipsForeignLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "validation.log")

	content := `{"id":"a","timestamp":"2026-01-01T00:00:00Z","event_type":"bash_command","data":"ls","result":true,"message":"OK"}
this line is not json
{"id":"b","timestamp":"2026-01-01T00:00:01Z","event_type":"file_operation","data":".env","result":false,"message":"protected path access: .env"}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadTail(path, 0)
	if err != nil {
		t.Fatalf("ReadTail() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
}

func TestMemorySink(t *testing.T) {
	var sink MemorySink
	if err := sink.Append(NewEntry(EventBashCommand, "ls", true, "OK")); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}
	if len(sink.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(sink.Entries))
	}
}
