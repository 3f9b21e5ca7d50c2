package launcher

import (
	"github.com/fta-dev/fta-go/internal/platform"
	"github.com/fta-dev/fta-go/internal/runtime"
	"github.com/fta-dev/fta-go/internal/target"
)

// Re-export error types from internal packages.

// UnsupportedPlatformError indicates the host OS has no analyzer build.
type UnsupportedPlatformError = target.UnsupportedPlatformError

// UnsupportedArchitectureError indicates the host CPU has no analyzer build
// for its OS.
type UnsupportedArchitectureError = target.UnsupportedArchitectureError

// BinaryNotFoundError indicates the manifest has no entry for the target.
type BinaryNotFoundError = target.BinaryNotFoundError

// PermissionFixError is the advisory warning carried in Result.Warning.
type PermissionFixError = platform.PermissionFixError

// ProcessError indicates the analyzer failed to start or exited nonzero.
type ProcessError = runtime.ProcessError
