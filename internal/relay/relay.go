// Package relay runs the delegate binary and passes its output and exit code
// through unchanged.
package relay

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// Streams holds the standard streams of the relaying process.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes path with args and waits for it to exit. The child's stdout
// and stderr are buffered in full and written to streams only after it
// terminates. The returned code is the child's exit code; a nonzero code is
// not an error. An error is returned only when the child could not be run or
// its output could not be relayed.
func Run(ctx context.Context, path string, args []string, streams Streams) (int, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = streams.Stdin
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	code := 0
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return 1, fmt.Errorf("run %s: %w", path, err)
		}
		code = exitCode(exitErr)
	}

	if err := relay(streams.Stdout, &stdout); err != nil {
		return code, fmt.Errorf("relay stdout: %w", err)
	}
	if err := relay(streams.Stderr, &stderr); err != nil {
		return code, fmt.Errorf("relay stderr: %w", err)
	}

	return code, nil
}

// exitCode maps a child's exit status to this process's exit code.
// Termination by signal reports -1, which is not a valid exit code.
func exitCode(err *exec.ExitError) int {
	if code := err.ExitCode(); code >= 0 {
		return code
	}
	return 1
}

func relay(w io.Writer, buf *bytes.Buffer) error {
	if w == nil || buf.Len() == 0 {
		return nil
	}
	_, err := buf.WriteTo(w)
	return err
}
