package cli

import (
	"fmt"
	"io"

	"github.com/fta-dev/fta-go/internal/manifest"
	"github.com/fta-dev/fta-go/internal/platform"
	"github.com/fta-dev/fta-go/internal/target"
	"github.com/fta-dev/fta-go/launcher"
	"github.com/spf13/cobra"
)

var (
	doctorFix      bool
	doctorManifest string
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Mark the analyzer binary executable if it is not")
	doctorCmd.Flags().StringVar(&doctorManifest, "manifest", "", "Check this manifest file instead of the embedded one")
	rootCmd.AddCommand(doctorCmd)
}

// doctorOptions holds the doctor flags.
type doctorOptions struct {
	fix          bool
	manifestPath string
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the analyzer can run on this machine",
	Long: `Run diagnostic checks: the embedded manifest is valid, this machine's
target is supported, and its binary exists and is executable.

With --manifest, the given file is checked in place of the embedded manifest,
including whether it covers every supported target.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLauncher(cmd, nil)
		if err != nil {
			return err
		}
		if failed := runDoctorChecks(cmd.OutOrStdout(), l, doctorOptions{fix: doctorFix, manifestPath: doctorManifest}); failed > 0 {
			return fmt.Errorf("%d check(s) failed", failed)
		}
		return nil
	},
}

// runDoctorChecks prints one line per check and returns how many failed.
func runDoctorChecks(w io.Writer, l *launcher.Launcher, opts doctorOptions) int {
	failed := 0

	fmt.Fprintln(w, "Manifest check:")
	if !checkManifest(w, opts.manifestPath) {
		failed++
	}

	fmt.Fprintln(w, "Binary check:")
	path, t, err := l.Resolve()
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", t, err)
		return failed + 1
	}
	fmt.Fprintf(w, "  [ OK ] %s resolves to %s\n", t, path)

	ok, err := platform.IsExecutable(path, t.IsWindows())
	switch {
	case err != nil:
		fmt.Fprintf(w, "  [MISS] %s: %v\n", path, err)
		return failed + 1
	case ok:
		fmt.Fprintf(w, "  [ OK ] %s is executable\n", path)
		return failed
	}

	if !opts.fix {
		fmt.Fprintf(w, "  [WARN] %s is not executable (run with --fix, or it is fixed on first run)\n", path)
		return failed
	}

	res := platform.NewPermissionFixer(t.IsWindows()).EnsureExecutable(path)
	if !res.OK() {
		fmt.Fprintf(w, "  [FAIL] %v\n", res.Warning)
		return failed + 1
	}
	fmt.Fprintf(w, "  [FIX ] Set %s to %o\n", path, platform.ExecutableMode)
	return failed
}

// checkManifest validates the manifest at path, or the embedded one when path
// is empty, and reports supported targets it has no entry for.
func checkManifest(w io.Writer, path string) bool {
	var (
		result *manifest.ValidationResult
		err    error
	)
	if path == "" {
		result, err = manifest.Validate(manifest.Raw())
	} else {
		result, err = manifest.ValidateFile(path)
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return false
	}
	if !result.Valid {
		for _, issue := range result.Issues {
			fmt.Fprintf(w, "  [FAIL] %s: %s\n", issue.Path, issue.Message)
		}
		return false
	}

	var m *manifest.BinaryManifest
	if path == "" {
		m, err = manifest.Default()
	} else {
		m, err = manifest.ParseFile(path)
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return false
	}
	fmt.Fprintf(w, "  [ OK ] %s %s, %d targets\n", m.Name(), m.Version(), m.Len())

	for _, st := range target.Supported() {
		if _, ok := m.Lookup(st.Triple); !ok {
			fmt.Fprintf(w, "  [MISS] %s (%s) has no entry\n", st.Triple, st.Target)
		}
	}
	return true
}
