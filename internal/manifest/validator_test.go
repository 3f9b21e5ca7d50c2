package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidate_Embedded(t *testing.T) {
	result, err := Validate(Raw())
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if !result.Valid {
		for _, issue := range result.Issues {
			t.Errorf("path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
		}
	}
}

func TestValidate_Issues(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		keyword string
		path    string
		message string
	}{
		{
			name: "missing version",
			data: `name: fta
binary: fta
targets:
  x86_64-apple-darwin:
    dir: mac
`,
			keyword: "required",
			path:    "",
			message: "version",
		},
		{
			name: "unknown top-level field",
			data: `name: fta
version: "1.0.0"
binary: fta
checksum: abc
targets:
  x86_64-apple-darwin:
    dir: mac
`,
			keyword: "additionalProperties",
			path:    "",
			message: "checksum",
		},
		{
			name: "absolute dir",
			data: `name: fta
version: "1.0.0"
binary: fta
targets:
  x86_64-apple-darwin:
    dir: /usr/bin
`,
			keyword: "not",
			path:    "/targets/x86_64-apple-darwin/dir",
			message: `dir "/usr/bin" of x86_64-apple-darwin must be a relative path`,
		},
		{
			name: "dir escaping the bin directory",
			data: `name: fta
version: "1.0.0"
binary: fta
targets:
  x86_64-apple-darwin:
    dir: ../mac
`,
			keyword: "not",
			path:    "/targets/x86_64-apple-darwin/dir",
			message: `"../mac"`,
		},
		{
			name: "malformed triple",
			data: `name: fta
version: "1.0.0"
binary: fta
targets:
  Darwin:
    dir: mac
`,
			keyword: "propertyNames",
			path:    "/targets/Darwin",
			message: `"Darwin" is not a target triple`,
		},
		{
			name: "binary with path separator",
			data: `name: fta
version: "1.0.0"
binary: bin/fta
targets:
  x86_64-apple-darwin:
    dir: mac
`,
			keyword: "pattern",
			path:    "/binary",
			message: "bin/fta",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.data))
			if err != nil {
				t.Fatalf("Validate error: %v", err)
			}
			if result.Valid {
				t.Fatal("expected invalid result")
			}
			if len(result.Issues) != 1 {
				t.Fatalf("got %d issues, want 1: %+v", len(result.Issues), result.Issues)
			}
			issue := result.Issues[0]
			if issue.Keyword != tt.keyword {
				t.Errorf("Keyword = %q, want %q", issue.Keyword, tt.keyword)
			}
			if issue.Path != tt.path {
				t.Errorf("Path = %q, want %q", issue.Path, tt.path)
			}
			if !strings.Contains(issue.Message, tt.message) {
				t.Errorf("Message = %q, want it to contain %q", issue.Message, tt.message)
			}
		})
	}
}

func TestValidate_InvalidYAML(t *testing.T) {
	_, err := Validate([]byte("targets: [\n"))
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestValidateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "targets.yaml")
	if err := os.WriteFile(path, Raw(), 0644); err != nil {
		t.Fatal(err)
	}
	result, err := ValidateFile(path)
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if !result.Valid {
		t.Errorf("embedded manifest copied to disk is invalid: %+v", result.Issues)
	}
}

func TestValidate_ReportsEveryIssue(t *testing.T) {
	data := `name: fta
version: "1.0.0"
binary: fta
targets:
  x86_64-apple-darwin:
    dir: /abs
  aarch64-apple-darwin:
    dir: ../up
`
	result, err := Validate([]byte(data))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	paths := map[string]bool{}
	for _, issue := range result.Issues {
		paths[issue.Path] = true
	}
	for _, want := range []string{"/targets/x86_64-apple-darwin/dir", "/targets/aarch64-apple-darwin/dir"} {
		if !paths[want] {
			t.Errorf("missing issue for %s in %+v", want, result.Issues)
		}
	}
}

func TestPointer(t *testing.T) {
	tests := []struct {
		loc  []string
		want string
	}{
		{nil, ""},
		{[]string{"version"}, "/version"},
		{[]string{"targets", "a/b~c", "dir"}, "/targets/a~1b~0c/dir"},
	}
	for _, tt := range tests {
		if got := pointer(tt.loc); got != tt.want {
			t.Errorf("pointer(%q) = %q, want %q", tt.loc, got, tt.want)
		}
	}
}
