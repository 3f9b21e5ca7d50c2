package runtime

import (
	"context"
	"fmt"
)

// Runtime defines the interface for executing a resolved binary.
type Runtime interface {
	// Run executes the binary at path with args, in order, and blocks until it exits.
	Run(ctx context.Context, path string, args []string) (*Output, error)
}

// Output captures the result of a successful execution.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// ProcessError indicates the binary could not be spawned or exited nonzero.
// ExitCode is -1 when the process never started. A process ended by a signal
// reports 128 plus the signal number, as a POSIX shell does.
type ProcessError struct {
	Path     string
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

func (e *ProcessError) Error() string {
	if e.ExitCode < 0 {
		return fmt.Sprintf("starting %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s exited with code %d", e.Path, e.ExitCode)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// Started reports whether the process ran at all.
func (e *ProcessError) Started() bool {
	return e.ExitCode >= 0
}
