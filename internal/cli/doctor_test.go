package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/fta-dev/fta-go/internal/target"
	"github.com/fta-dev/fta-go/launcher"
)

func newDoctorLauncher(t *testing.T, binDir string, tgt target.Target) *launcher.Launcher {
	t.Helper()
	l, err := launcher.New(&launcher.Config{BinDir: binDir, Target: &tgt})
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestDoctor_MissingBinary(t *testing.T) {
	l := newDoctorLauncher(t, t.TempDir(), target.Target{Platform: target.Linux, Arch: target.X64})

	var buf bytes.Buffer
	if failed := runDoctorChecks(&buf, l, doctorOptions{}); failed != 1 {
		t.Errorf("failed = %d, want 1\n%s", failed, buf.String())
	}
	out := buf.String()
	if !strings.Contains(out, "[ OK ] fta 2.0.1, 7 targets") {
		t.Errorf("manifest check missing from output:\n%s", out)
	}
	if !strings.Contains(out, "[MISS]") {
		t.Errorf("expected [MISS] line:\n%s", out)
	}
}

func TestDoctor_UnsupportedTarget(t *testing.T) {
	l := newDoctorLauncher(t, t.TempDir(), target.Target{Platform: "plan9", Arch: target.X64})

	var buf bytes.Buffer
	if failed := runDoctorChecks(&buf, l, doctorOptions{}); failed != 1 {
		t.Errorf("failed = %d, want 1", failed)
	}
	if !strings.Contains(buf.String(), "unsupported platform: plan9") {
		t.Errorf("output:\n%s", buf.String())
	}
}

func TestDoctor_FixesPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX permission bits not available")
	}

	binDir := t.TempDir()
	dir := filepath.Join(binDir, "x86_64-unknown-linux-gnu")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	bin := filepath.Join(dir, "fta")
	if err := os.WriteFile(bin, []byte("#!/bin/sh\n"), 0644); err != nil {
		t.Fatal(err)
	}
	l := newDoctorLauncher(t, binDir, target.Target{Platform: target.Linux, Arch: target.X64})

	var buf bytes.Buffer
	if failed := runDoctorChecks(&buf, l, doctorOptions{}); failed != 0 {
		t.Fatalf("failed = %d, want 0\n%s", failed, buf.String())
	}
	if !strings.Contains(buf.String(), "[WARN]") {
		t.Errorf("expected [WARN] without --fix:\n%s", buf.String())
	}

	buf.Reset()
	if failed := runDoctorChecks(&buf, l, doctorOptions{fix: true}); failed != 0 {
		t.Fatalf("failed = %d, want 0\n%s", failed, buf.String())
	}
	if !strings.Contains(buf.String(), "[FIX ]") {
		t.Errorf("expected [FIX ] with --fix:\n%s", buf.String())
	}

	info, err := os.Stat(bin)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0755 {
		t.Errorf("permissions = %o, want 755", perm)
	}

	buf.Reset()
	runDoctorChecks(&buf, l, doctorOptions{})
	if !strings.Contains(buf.String(), "is executable") {
		t.Errorf("expected executable check to pass after fix:\n%s", buf.String())
	}
}

func TestDoctor_ManifestFile(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		wantFailed int
		wantLines  []string
	}{
		{
			name: "partial manifest",
			data: `name: fta
version: "2.1.0"
binary: fta
targets:
  x86_64-unknown-linux-gnu:
    dir: linux-x64
`,
			wantFailed: 1, // binary is missing from the empty bin dir
			wantLines: []string{
				"[ OK ] fta 2.1.0, 1 targets",
				"[MISS] aarch64-apple-darwin (macos/arm64) has no entry",
				"[MISS] armv7-unknown-linux-gnueabihf (linux/arm) has no entry",
			},
		},
		{
			name: "invalid manifest",
			data: `name: fta
version: "2.1.0"
binary: fta
targets:
  x86_64-unknown-linux-gnu:
    dir: ../outside
`,
			wantFailed: 2,
			wantLines: []string{
				`[FAIL] /targets/x86_64-unknown-linux-gnu/dir: dir "../outside"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "targets.yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatal(err)
			}
			l := newDoctorLauncher(t, t.TempDir(), target.Target{Platform: target.Linux, Arch: target.X64})

			var buf bytes.Buffer
			failed := runDoctorChecks(&buf, l, doctorOptions{manifestPath: path})
			if failed != tt.wantFailed {
				t.Errorf("failed = %d, want %d\n%s", failed, tt.wantFailed, buf.String())
			}
			for _, line := range tt.wantLines {
				if !strings.Contains(buf.String(), line) {
					t.Errorf("output missing %q:\n%s", line, buf.String())
				}
			}
		})
	}
}

func TestDoctor_ManifestFileMissing(t *testing.T) {
	l := newDoctorLauncher(t, t.TempDir(), target.Target{Platform: target.Linux, Arch: target.X64})

	var buf bytes.Buffer
	runDoctorChecks(&buf, l, doctorOptions{manifestPath: filepath.Join(t.TempDir(), "nope.yaml")})
	if !strings.Contains(buf.String(), "[FAIL] reading file") {
		t.Errorf("expected a read failure:\n%s", buf.String())
	}
}
