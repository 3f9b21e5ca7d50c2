package platform

import (
	"fmt"
	"os"
)

// ExecutableMode is rwxr-xr-x.
const ExecutableMode os.FileMode = 0755

// PermissionFixError reports a failed attempt to mark a binary executable.
// It is advisory: spawning the binary still goes ahead.
type PermissionFixError struct {
	Path string
	Err  error
}

func (e *PermissionFixError) Error() string {
	return fmt.Sprintf("could not make %s executable: %v", e.Path, e.Err)
}

func (e *PermissionFixError) Unwrap() error {
	return e.Err
}

// FixResult is the best-effort outcome of EnsureExecutable.
type FixResult struct {
	Path string
	// Skipped is set on Windows, where no permission call is made.
	Skipped bool
	// Warning is non-nil when the chmod failed.
	Warning *PermissionFixError
}

// OK reports whether the binary is known to carry ExecutableMode, or the
// step did not apply.
func (r FixResult) OK() bool {
	return r.Warning == nil
}

// PermissionFixer sets the executable bit on resolved binaries.
type PermissionFixer struct {
	windows bool
	chmod   func(string, os.FileMode) error
}

// NewPermissionFixer returns a fixer for a Windows or POSIX target.
func NewPermissionFixer(windows bool) *PermissionFixer {
	return &PermissionFixer{windows: windows, chmod: os.Chmod}
}

// EnsureExecutable applies ExecutableMode to path. Failures are returned in
// the result, never as an error.
func (f *PermissionFixer) EnsureExecutable(path string) FixResult {
	if f.windows {
		return FixResult{Path: path, Skipped: true}
	}
	if err := f.chmod(path, ExecutableMode); err != nil {
		return FixResult{Path: path, Warning: &PermissionFixError{Path: path, Err: err}}
	}
	return FixResult{Path: path}
}

// IsExecutable reports whether any execute bit is set on path. On Windows
// it only checks that the file exists.
func IsExecutable(path string, windows bool) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	if info.IsDir() {
		return false, fmt.Errorf("%s is a directory", path)
	}
	if windows {
		return true, nil
	}
	return info.Mode().Perm()&0111 != 0, nil
}
