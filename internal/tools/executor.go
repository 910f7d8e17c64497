package tools

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
)

// Execute runs bin with args and blocks until it exits. Stderr is captured
// for error reporting; when verbose it is also tee'd to os.Stderr in real
// time. Any failure comes back as a *ToolError.
func Execute(ctx context.Context, bin string, args []string, verbose bool) error {
	cmd := exec.CommandContext(ctx, bin, args...)

	var stderrBuf bytes.Buffer
	if verbose {
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	if err := cmd.Run(); err != nil {
		return &ToolError{
			Tool:   bin,
			Args:   args,
			Stderr: stderrBuf.String(),
			Err:    err,
		}
	}
	return nil
}
