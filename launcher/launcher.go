package launcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fta-dev/fta-go/internal/manifest"
	"github.com/fta-dev/fta-go/internal/platform"
	"github.com/fta-dev/fta-go/internal/runtime"
	"github.com/fta-dev/fta-go/internal/target"
)

// Target identifies a (platform, architecture) pair.
type Target = target.Target

// HostTarget returns the Target of the running process.
func HostTarget() Target {
	return target.Host()
}

// Config holds configuration for a Launcher.
type Config struct {
	// BinDir is the directory holding one subdirectory per target triple.
	// If empty, DefaultBinDir is used.
	BinDir string

	// Target overrides host detection. If nil, the host target is detected
	// on every call.
	Target *Target

	// Logger receives debug messages and permission warnings.
	// If nil, NopLogger is used.
	Logger *slog.Logger

	// Stderr receives the analyzer's stderr as it runs. Defaults to os.Stderr.
	Stderr io.Writer
}

// Result is the outcome of a successful invocation.
type Result struct {
	// Output is the analyzer's captured stdout.
	Output string
	// Stderr is the analyzer's captured stderr.
	Stderr string
	// Binary is the absolute path that was executed.
	Binary string
	Target Target
	Args   []string
	// Warning is set when the binary could not be marked executable. The
	// invocation went ahead regardless.
	Warning *PermissionFixError
}

type permissionFixer interface {
	EnsureExecutable(path string) platform.FixResult
}

// Launcher resolves and runs the analyzer binary.
type Launcher struct {
	resolver *target.Resolver
	target   *Target
	log      *slog.Logger
	runtime  runtime.Runtime
	newFixer func(windows bool) permissionFixer
}

// New creates a Launcher. A nil cfg is treated as an empty Config.
func New(cfg *Config) (*Launcher, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	m, err := manifest.Default()
	if err != nil {
		return nil, err
	}

	binDir := cfg.BinDir
	if binDir == "" {
		binDir, err = DefaultBinDir()
		if err != nil {
			return nil, err
		}
	}

	resolver, err := target.NewResolver(binDir, m)
	if err != nil {
		return nil, err
	}

	log := cfg.Logger
	if log == nil {
		log = NopLogger()
	}

	var override *Target
	if cfg.Target != nil {
		t := *cfg.Target
		override = &t
	}

	return &Launcher{
		resolver: resolver,
		target:   override,
		log:      log,
		runtime:  &runtime.BinaryRuntime{Stderr: cfg.Stderr},
		newFixer: func(windows bool) permissionFixer {
			return platform.NewPermissionFixer(windows)
		},
	}, nil
}

// BinDir returns the absolute bin directory binaries are resolved under.
func (l *Launcher) BinDir() string {
	return l.resolver.Root()
}

// Resolve returns the binary path for the configured or detected target
// without running it.
func (l *Launcher) Resolve() (string, Target, error) {
	t := l.currentTarget()
	path, err := l.resolver.Resolve(t)
	return path, t, err
}

// Run analyzes projectPath and returns the analyzer's stdout. With
// opts.JSON the arguments are [projectPath, "--json"], otherwise [projectPath].
func (l *Launcher) Run(ctx context.Context, projectPath string, opts Options) (string, error) {
	res, err := l.Invoke(ctx, ProjectRequest(projectPath, opts))
	if err != nil {
		return "", err
	}
	return res.Output, nil
}

// Exec forwards args to the analyzer verbatim and returns its stdout.
func (l *Launcher) Exec(ctx context.Context, args []string) (string, error) {
	res, err := l.Invoke(ctx, RawRequest(args))
	if err != nil {
		return "", err
	}
	return res.Output, nil
}

// Invoke resolves the binary, marks it executable where that applies and
// runs it with the request's arguments. Resolution errors are returned
// before anything is spawned; a nonzero exit is returned as *ProcessError.
func (l *Launcher) Invoke(ctx context.Context, req Request) (*Result, error) {
	args, err := req.Args()
	if err != nil {
		return nil, err
	}

	path, t, err := l.Resolve()
	if err != nil {
		l.log.Debug("Failed to resolve analyzer binary", "target", t.String(), "error", err)

		return nil, err
	}

	l.log.Debug("Resolved analyzer binary", "target", t.String(), "path", path, "mode", req.Mode.String())

	fix := l.newFixer(t.IsWindows()).EnsureExecutable(path)
	if fix.Warning != nil {
		l.log.Warn("Could not mark analyzer binary executable", "path", path, "error", fix.Warning.Err)
	}

	out, err := l.runtime.Run(ctx, path, args)
	if err != nil {
		l.log.Debug("Analyzer invocation failed", "path", path, "error", err)

		return nil, err
	}

	return &Result{
		Output:  out.Stdout,
		Stderr:  out.Stderr,
		Binary:  path,
		Target:  t,
		Args:    args,
		Warning: fix.Warning,
	}, nil
}

func (l *Launcher) currentTarget() Target {
	if l.target != nil {
		return *l.target
	}
	return target.Host()
}

// DefaultBinDir returns the "bin" directory next to the running executable.
func DefaultBinDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), "bin"), nil
}

// Run analyzes projectPath with a default Launcher.
func Run(ctx context.Context, projectPath string, opts Options) (string, error) {
	l, err := New(nil)
	if err != nil {
		return "", err
	}
	return l.Run(ctx, projectPath, opts)
}

// Exec forwards args verbatim with a default Launcher.
func Exec(ctx context.Context, args []string) (string, error) {
	l, err := New(nil)
	if err != nil {
		return "", err
	}
	return l.Exec(ctx, args)
}
