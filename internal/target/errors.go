package target

import "fmt"

// UnsupportedPlatformError indicates the platform is not windows, macos or linux.
type UnsupportedPlatformError struct {
	Platform Platform
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported platform: %s", e.Platform)
}

// UnsupportedArchitectureError indicates the platform is known but no binary
// is built for the architecture on it.
type UnsupportedArchitectureError struct {
	Platform Platform
	Arch     Arch
}

func (e *UnsupportedArchitectureError) Error() string {
	return fmt.Sprintf("unsupported architecture %s on %s", e.Arch, e.Platform)
}

// BinaryNotFoundError indicates a supported triple has no manifest entry.
type BinaryNotFoundError struct {
	Target Target
	Triple string
}

func (e *BinaryNotFoundError) Error() string {
	return fmt.Sprintf("binary not found for %s (no manifest entry for %s)", e.Target, e.Triple)
}
