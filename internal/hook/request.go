// Package hook defines the wire format exchanged with the assistant runtime's
// pre-tool-use hook: one JSON request per invocation on stdin.
package hook

import (
	"encoding/json"
	"fmt"
)

// Tool names the runtime sends for operations we validate.
const (
	ToolBash      = "Bash"
	ToolWrite     = "Write"
	ToolEdit      = "Edit"
	ToolMultiEdit = "MultiEdit"
)

// Request is a single proposed tool invocation.
type Request struct {
	ToolName  string    `json:"tool_name"`
	ToolInput ToolInput `json:"tool_input"`
}

// ToolInput carries the fields we inspect. The runtime sends more (old_string,
// content, edits, ...) depending on the tool; everything else is ignored.
type ToolInput struct {
	Command  string `json:"command"`
	FilePath string `json:"file_path"`
}

// Parse decodes a request from raw JSON.
func Parse(data []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse hook input: %w", err)
	}
	return &req, nil
}

// mutatingTools are the file-mutating operations subject to path validation.
// Read-only tools (Read, Glob, Grep, ...) pass through unvalidated.
var mutatingTools = map[string]bool{
	ToolWrite:     true,
	ToolEdit:      true,
	ToolMultiEdit: true,
}

// IsFileMutation reports whether the request targets a file-mutating tool.
func (r *Request) IsFileMutation() bool {
	return mutatingTools[r.ToolName]
}
