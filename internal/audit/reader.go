package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// ReadTail returns up to limit entries from the end of the log at path, oldest
// first. A missing log file yields no entries. Lines that do not parse as
// entries are skipped rather than failing the whole read, since other tools
// may have appended to the file.
func ReadTail(path string, limit int) ([]Entry, error) {
	if path == "" {
		path = DefaultLogPath
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var e Entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read log file: %w", err)
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries, nil
}
