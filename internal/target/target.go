package target

import (
	"runtime"
	"sort"
)

// Platform is an operating system family the analyzer is built for.
type Platform string

// Arch is a CPU architecture the analyzer is built for.
type Arch string

// Supported platforms.
const (
	Windows Platform = "windows"
	MacOS   Platform = "macos"
	Linux   Platform = "linux"
)

// Supported architectures. ARM is 32-bit ARM and only ships for Linux.
const (
	X64   Arch = "x64"
	ARM64 Arch = "arm64"
	ARM   Arch = "arm"
)

// Target identifies a deployment pair.
type Target struct {
	Platform Platform `json:"platform"`
	Arch     Arch     `json:"arch"`
}

func (t Target) String() string {
	return string(t.Platform) + "/" + string(t.Arch)
}

// IsWindows reports whether binaries for t carry the .exe suffix.
func (t Target) IsWindows() bool {
	return t.Platform == Windows
}

// Triple returns the canonical triple for t. It fails the same way Resolve
// does for unsupported platforms and architectures.
func (t Target) Triple() (string, error) {
	archs, ok := triples[t.Platform]
	if !ok {
		return "", &UnsupportedPlatformError{Platform: t.Platform}
	}
	triple, ok := archs[t.Arch]
	if !ok {
		return "", &UnsupportedArchitectureError{Platform: t.Platform, Arch: t.Arch}
	}
	return triple, nil
}

// triples is the static triple table, keyed by platform then arch.
var triples = map[Platform]map[Arch]string{
	Windows: {
		X64:   "x86_64-pc-windows-msvc",
		ARM64: "aarch64-pc-windows-msvc",
	},
	MacOS: {
		X64:   "x86_64-apple-darwin",
		ARM64: "aarch64-apple-darwin",
	},
	Linux: {
		X64:   "x86_64-unknown-linux-gnu",
		ARM64: "aarch64-unknown-linux-gnu",
		ARM:   "armv7-unknown-linux-gnueabihf",
	},
}

// Supported returns every supported target with its triple, ordered by
// platform then arch.
func Supported() []SupportedTarget {
	var out []SupportedTarget
	for p, archs := range triples {
		for a, triple := range archs {
			out = append(out, SupportedTarget{Target: Target{Platform: p, Arch: a}, Triple: triple})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Platform != out[j].Platform {
			return out[i].Platform < out[j].Platform
		}
		return out[i].Arch < out[j].Arch
	})
	return out
}

// SupportedTarget pairs a target with its triple.
type SupportedTarget struct {
	Target
	Triple string `json:"triple"`
}

// FromGo converts Go's GOOS/GOARCH names to a Target. Values with no
// counterpart are carried through unchanged so that Resolve reports them.
func FromGo(goos, goarch string) Target {
	t := Target{Platform: Platform(goos), Arch: Arch(goarch)}
	switch goos {
	case "darwin":
		t.Platform = MacOS
	case "windows":
		t.Platform = Windows
	case "linux":
		t.Platform = Linux
	}
	switch goarch {
	case "amd64":
		t.Arch = X64
	case "arm64":
		t.Arch = ARM64
	case "arm":
		t.Arch = ARM
	}
	return t
}

// Host returns the Target of the running process.
func Host() Target {
	return FromGo(runtime.GOOS, runtime.GOARCH)
}

// ExecutableName returns the on-disk file name for base on platform p.
func ExecutableName(p Platform, base string) string {
	if p == Windows {
		return base + ".exe"
	}
	return base
}
