// Package audit records validation decisions as newline-delimited JSON in an
// append-only log.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// DefaultLogPath is the audit log location relative to the working directory.
const DefaultLogPath = ".claude/logs/validation.log"

// EventType identifies which validator produced an entry.
type EventType string

const (
	EventBashCommand   EventType = "bash_command"
	EventFileOperation EventType = "file_operation"
)

// Entry is one validation decision. Entries are append-only and never mutated.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp string    `json:"timestamp"`
	EventType EventType `json:"event_type"`
	Data      string    `json:"data"`
	Result    bool      `json:"result"`
	Message   string    `json:"message"`
}

// NewEntry builds an entry stamped with the current time and a fresh ID.
func NewEntry(event EventType, data string, result bool, message string) Entry {
	return Entry{
		ID:        uuid.NewString(),
		Timestamp: time.Now().Format(time.RFC3339),
		EventType: event,
		Data:      data,
		Result:    result,
		Message:   message,
	}
}

// Sink receives validation entries. The file sink is the production
// implementation; tests substitute MemorySink.
type Sink interface {
	Append(entry Entry) error
}

// FileSink appends entries to a local log file, creating the parent directory
// on first use. Each entry is written as a single pre-serialized line, so
// concurrent invocations may interleave lines but never corrupt one.
type FileSink struct {
	Path string
}

// NewFileSink returns a sink writing to path, or to DefaultLogPath when path
// is empty.
func NewFileSink(path string) *FileSink {
	if path == "" {
		path = DefaultLogPath
	}
	return &FileSink{Path: path}
}

func (s *FileSink) Append(entry Entry) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode log entry: %w", err)
	}
	line = append(line, '\n')

	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(line); err != nil {
		return fmt.Errorf("failed to write log entry: %w", err)
	}
	return nil
}

// MemorySink collects entries in memory.
type MemorySink struct {
	Entries []Entry
}

func (s *MemorySink) Append(entry Entry) error {
	s.Entries = append(s.Entries, entry)
	return nil
}
