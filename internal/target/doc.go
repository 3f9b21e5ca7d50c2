// Package target maps a (platform, architecture) pair to the analyzer binary
// shipped for it. Platform detection is kept apart from resolution: callers
// pass an explicit Target, and Host only reads runtime.GOOS/GOARCH.
package target
