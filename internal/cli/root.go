package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fta-dev/fta-go/internal/branding"
	"github.com/fta-dev/fta-go/internal/config"
	"github.com/fta-dev/fta-go/launcher"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	binDirFlag   string
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   branding.CtlName(),
	Short: "Inspect and run the " + branding.DisplayName() + " analyzer binaries",
	Long: branding.DisplayName() + ` ships one precompiled analyzer per operating system and CPU.
` + branding.CtlName() + ` shows which build applies to this machine, checks that it is usable,
and runs it. For a plain pass-through that forwards every argument, use ` + branding.CLIName() + `.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&binDirFlag, "bin-dir", "", "Directory with one subdirectory per target triple (default: bin/ next to the executable)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error (default: warn)")
}

// Execute runs the ftactl root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil && !relayed(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// launcherConfig builds the launcher config from flags, then config file and
// environment. A nil target means host detection.
func launcherConfig(cmd *cobra.Command, t *launcher.Target) (*launcher.Config, error) {
	logger, err := newLogger(cmd)
	if err != nil {
		return nil, err
	}

	binDir := binDirFlag
	if binDir == "" {
		binDir = config.Get(config.KeyBinDir)
	}

	return &launcher.Config{
		BinDir: binDir,
		Target: t,
		Logger: logger,
		Stderr: cmd.ErrOrStderr(),
	}, nil
}

func newLauncher(cmd *cobra.Command, t *launcher.Target) (*launcher.Launcher, error) {
	cfg, err := launcherConfig(cmd, t)
	if err != nil {
		return nil, err
	}
	return launcher.New(cfg)
}

func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	level := logLevelFlag
	if level == "" {
		level = config.Get(config.KeyLogLevel)
	}
	if level == "" {
		level = "warn"
	}

	lvl, err := config.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl})), nil
}
