package cli

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/fta-dev/fta-go/internal/target"
	"github.com/fta-dev/fta-go/launcher"
)

// installAnalyzer writes script as the analyzer for tgt under a fresh bin
// dir and returns the bin dir.
func installAnalyzer(t *testing.T, tgt target.Target, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping")
	}
	triple, err := tgt.Triple()
	if err != nil {
		t.Skipf("no analyzer build for %s: %v", tgt, err)
	}

	binDir := t.TempDir()
	dir := filepath.Join(binDir, triple)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "fta"), []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatal(err)
	}
	return binDir
}

// setupFakeAnalyzer installs script as the linux/x64 analyzer and returns a
// launcher config pointing at it.
func setupFakeAnalyzer(t *testing.T, script string) *launcher.Config {
	t.Helper()
	tgt := target.Target{Platform: target.Linux, Arch: target.X64}
	return &launcher.Config{BinDir: installAnalyzer(t, tgt, script), Target: &tgt}
}

func TestExecuteDirect_ForwardsVerbatim(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"help flags", []string{"--help", "-h", "src", "--json", "--json", "--score-cap", "20"}, "[--help][-h][src][--json][--json][--score-cap][20]\n"},
		{"completion word", []string{"completion", "bash"}, "[completion][bash]\n"},
		{"project named completion", []string{"completion"}, "[completion]\n"},
		{"hidden complete command", []string{"__complete", "bash"}, "[__complete][bash]\n"},
		{"hidden complete without descriptions", []string{"__completeNoDesc", "src"}, "[__completeNoDesc][src]\n"},
		{"help word", []string{"help", "bash"}, "[help][bash]\n"},
		{"separator and version flags", []string{"--", "-v", "--version"}, "[--][-v][--version]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := setupFakeAnalyzer(t, `for a in "$@"; do printf '[%s]' "$a"; done; echo`)

			var stdout, stderr bytes.Buffer
			code := executeDirect(tt.args, cfg, &stdout, &stderr)

			if code != 0 {
				t.Fatalf("exit code = %d, want 0 (stderr: %s)", code, stderr.String())
			}
			if stdout.String() != tt.want {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.want)
			}
			if stderr.Len() != 0 {
				t.Errorf("stderr = %q, want empty", stderr.String())
			}
		})
	}
}

func TestExecuteDirect_NoArgs(t *testing.T) {
	cfg := setupFakeAnalyzer(t, `echo "argc=$#"`)

	var stdout, stderr bytes.Buffer
	if code := executeDirect(nil, cfg, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if stdout.String() != "argc=0\n" {
		t.Errorf("stdout = %q, want %q", stdout.String(), "argc=0\n")
	}
}

func TestExecuteDirect_RelaysExitCode(t *testing.T) {
	cfg := setupFakeAnalyzer(t, "echo partial\necho 'bad project' >&2\nexit 2\n")

	var stdout, stderr bytes.Buffer
	code := executeDirect([]string{"src"}, cfg, &stdout, &stderr)

	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
	if stdout.String() != "partial\n" {
		t.Errorf("stdout = %q, want %q", stdout.String(), "partial\n")
	}
	if stderr.String() != "bad project\n" {
		t.Errorf("stderr = %q, want only the analyzer's own stderr", stderr.String())
	}
}

func TestExecuteDirect_UnsupportedTarget(t *testing.T) {
	tgt := target.Target{Platform: target.MacOS, Arch: target.ARM}
	cfg := &launcher.Config{BinDir: t.TempDir(), Target: &tgt}

	var stdout, stderr bytes.Buffer
	code := executeDirect([]string{"src"}, cfg, &stdout, &stderr)

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "unsupported architecture arm on macos") {
		t.Errorf("stderr = %q, want the resolution error", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout.String())
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain error", errors.New("boom"), 1},
		{"analyzer exit", &launcher.ProcessError{ExitCode: 3}, 3},
		{"spawn failure", &launcher.ProcessError{ExitCode: -1, Err: os.ErrNotExist}, 1},
		{"wrapped analyzer exit", errors.Join(errors.New("ctx"), &launcher.ProcessError{ExitCode: 7}), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
