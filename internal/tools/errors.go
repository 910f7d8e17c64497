package tools

import (
	"fmt"
	"strings"
)

// ToolError reports an external tool invocation that could not complete:
// a missing executable, a non-zero exit, or a kill on context cancel.
// Stderr holds the captured output for diagnosis.
type ToolError struct {
	Tool   string
	Args   []string
	Stderr string
	Err    error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Tool, e.Err)
}

func (e *ToolError) Unwrap() error { return e.Err }

// StderrTail returns the last n lines of captured stderr for log output.
func (e *ToolError) StderrTail(n int) []string {
	s := strings.TrimSpace(e.Stderr)
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}
