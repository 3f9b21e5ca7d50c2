package manifest

import (
	"sort"

	"github.com/Masterminds/semver/v3"
)

// document is the on-disk shape of targets.yaml.
type document struct {
	Name    string                 `yaml:"name" json:"name"`
	Version string                 `yaml:"version" json:"version"`
	Binary  string                 `yaml:"binary" json:"binary"`
	Targets map[string]TargetEntry `yaml:"targets" json:"targets"`
}

// TargetEntry describes where the binary for one triple lives, relative to
// the bin directory.
type TargetEntry struct {
	Dir string `yaml:"dir" json:"dir"`
}

// BinaryManifest is the parsed, read-only binary manifest. The zero value is
// an empty manifest with no targets.
type BinaryManifest struct {
	name    string
	version *semver.Version
	binary  string
	targets map[string]TargetEntry
}

// Name returns the packaged tool name (e.g., "fta").
func (m *BinaryManifest) Name() string { return m.name }

// Binary returns the executable base name without any platform suffix.
func (m *BinaryManifest) Binary() string { return m.binary }

// Version returns the analyzer release the manifest describes.
func (m *BinaryManifest) Version() *semver.Version { return m.version }

// Lookup returns the entry for a triple.
func (m *BinaryManifest) Lookup(triple string) (TargetEntry, bool) {
	e, ok := m.targets[triple]
	return e, ok
}

// Triples returns every triple in the manifest, sorted.
func (m *BinaryManifest) Triples() []string {
	out := make([]string, 0, len(m.targets))
	for t := range m.targets {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of target entries.
func (m *BinaryManifest) Len() int { return len(m.targets) }
