package manifest

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

//go:embed targets.yaml
var embeddedManifest []byte

var (
	defaultOnce     sync.Once
	defaultManifest *BinaryManifest
	defaultErr      error
)

// Default returns the manifest embedded in the binary. It is parsed and
// validated on first use; later calls return the same value.
func Default() (*BinaryManifest, error) {
	defaultOnce.Do(func() {
		defaultManifest, defaultErr = Parse(embeddedManifest)
		if defaultErr != nil {
			defaultErr = fmt.Errorf("embedded manifest: %w", defaultErr)
		}
	})
	return defaultManifest, defaultErr
}

// Raw returns a copy of the embedded manifest source.
func Raw() []byte {
	out := make([]byte, len(embeddedManifest))
	copy(out, embeddedManifest)
	return out
}

// Parse validates YAML manifest data against the schema and returns the
// parsed manifest.
func Parse(data []byte) (*BinaryManifest, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, &InvalidError{Issues: result.Issues}
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	version, err := parseSemver(doc.Version)
	if err != nil {
		return nil, fmt.Errorf("manifest version %q: %w", doc.Version, err)
	}

	targets := make(map[string]TargetEntry, len(doc.Targets))
	for triple, entry := range doc.Targets {
		targets[triple] = entry
	}

	return &BinaryManifest{
		name:    doc.Name,
		version: version,
		binary:  doc.Binary,
		targets: targets,
	}, nil
}

// ParseFile reads a manifest file and parses it.
func ParseFile(path string) (*BinaryManifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// InvalidError reports schema violations in manifest data.
type InvalidError struct {
	Issues []ValidationIssue
}

func (e *InvalidError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Path != "" {
			parts = append(parts, issue.Path+": "+issue.Message)
		} else {
			parts = append(parts, issue.Message)
		}
	}
	return "invalid manifest: " + strings.Join(parts, "; ")
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
