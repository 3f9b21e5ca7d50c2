package runtime

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"syscall"
)

// BinaryRuntime executes native analyzer binaries.
type BinaryRuntime struct {
	// Stderr receives the child's stderr as it is written; defaults to os.Stderr.
	// Stdout is never streamed, only captured.
	Stderr io.Writer
}

// Compile-time verification that BinaryRuntime implements Runtime.
var _ Runtime = (*BinaryRuntime)(nil)

// Run invokes the binary with args and returns its captured stdout. The
// child inherits the environment and working directory of this process.
func (b *BinaryRuntime) Run(ctx context.Context, path string, args []string) (*Output, error) {
	cmd := exec.CommandContext(ctx, path, args...)

	stderr := b.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	err := cmd.Run()
	if err == nil {
		return &Output{
			ExitCode: 0,
			Stdout:   stdoutBuf.String(),
			Stderr:   stderrBuf.String(),
		}, nil
	}

	procErr := &ProcessError{
		Path:     path,
		ExitCode: -1,
		Stdout:   stdoutBuf.String(),
		Stderr:   stderrBuf.String(),
		Err:      err,
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		procErr.ExitCode = exitErr.ExitCode()
		if procErr.ExitCode < 0 {
			procErr.ExitCode = signalExitCode(exitErr.ProcessState)
		}
	}

	return nil, procErr
}

// signalExitCode returns 128 plus the number of the signal that ended the
// process, or 128 when the platform does not report it.
func signalExitCode(state *os.ProcessState) int {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return 128
}
