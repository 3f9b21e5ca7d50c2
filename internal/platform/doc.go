// Package platform holds the OS-specific filesystem step that runs before an
// analyzer binary is spawned: restoring its executable bit on POSIX systems.
// Windows has no Unix permission bits, so the step is skipped there.
package platform
