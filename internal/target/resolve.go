package target

import (
	"fmt"
	"path/filepath"

	"github.com/fta-dev/fta-go/internal/manifest"
)

// Resolver turns a Target into the absolute path of its binary under a bin
// directory laid out as <root>/<manifest dir>/<binary>.
type Resolver struct {
	root     string
	manifest *manifest.BinaryManifest
}

// NewResolver creates a resolver rooted at binDir. A relative binDir is made
// absolute against the current working directory.
func NewResolver(binDir string, m *manifest.BinaryManifest) (*Resolver, error) {
	if m == nil {
		return nil, fmt.Errorf("resolver requires a manifest")
	}
	root, err := filepath.Abs(binDir)
	if err != nil {
		return nil, fmt.Errorf("resolving bin directory %s: %w", binDir, err)
	}
	return &Resolver{root: root, manifest: m}, nil
}

// Root returns the absolute bin directory.
func (r *Resolver) Root() string { return r.root }

// Resolve returns the absolute path of the binary for t. It does not touch
// the filesystem; a missing file surfaces when the binary is spawned.
func (r *Resolver) Resolve(t Target) (string, error) {
	triple, err := t.Triple()
	if err != nil {
		return "", err
	}

	entry, ok := r.manifest.Lookup(triple)
	if !ok {
		return "", &BinaryNotFoundError{Target: t, Triple: triple}
	}

	return filepath.Join(r.root, entry.Dir, ExecutableName(t.Platform, r.manifest.Binary())), nil
}
