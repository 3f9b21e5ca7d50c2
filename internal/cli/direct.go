package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fta-dev/fta-go/internal/branding"
	"github.com/fta-dev/fta-go/launcher"
	"github.com/spf13/cobra"
)

// ExecuteDirect runs the pass-through command with args (normally
// os.Args[1:]) and returns the exit status the process should end with.
func ExecuteDirect(args []string) int {
	return executeDirect(args, nil, os.Stdout, os.Stderr)
}

// executeDirect is ExecuteDirect with injectable launcher config and streams.
// A nil cfg means the default bin directory and host target.
func executeDirect(args []string, cfg *launcher.Config, stdout, stderr io.Writer) int {
	if cfg == nil {
		cfg = &launcher.Config{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
	if cfg.Stderr == nil {
		cfg.Stderr = stderr
	}

	cmd := newDirectCmd(cfg)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetContext(context.Background())
	if args == nil {
		args = []string{}
	}

	// Execute would hand "completion" and "__complete" to cobra's built-in
	// commands. Calling RunE keeps every token for the analyzer.
	err := cmd.RunE(cmd, args)
	if err != nil && !relayed(err) {
		fmt.Fprintf(stderr, "%s: %v\n", branding.CLIName(), err)
	}
	return ExitCode(err)
}

// newDirectCmd describes the pass-through command. It is never executed
// through cobra; executeDirect calls its RunE with the raw arguments.
func newDirectCmd(cfg *launcher.Config) *cobra.Command {
	return &cobra.Command{
		Use:                branding.CLIName() + " [analyzer arguments...]",
		Short:              branding.Description(),
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		Args:               cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := launcher.New(cfg)
			if err != nil {
				return err
			}
			out, err := l.Exec(cmd.Context(), args)
			if err != nil {
				writePartialOutput(cmd.OutOrStdout(), err)
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// writePartialOutput relays whatever stdout a failed analyzer produced.
func writePartialOutput(w io.Writer, err error) {
	var procErr *launcher.ProcessError
	if errors.As(err, &procErr) && procErr.Stdout != "" {
		fmt.Fprint(w, procErr.Stdout)
	}
}

// relayed reports whether err is an analyzer exit. The child already wrote
// its own diagnostics to stderr, so nothing more is printed for it.
func relayed(err error) bool {
	var procErr *launcher.ProcessError
	return errors.As(err, &procErr) && procErr.Started()
}

// ExitCode maps a command error to a process exit status. An analyzer that
// ran and failed passes its own exit code through; anything else is 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var procErr *launcher.ProcessError
	if errors.As(err, &procErr) && procErr.Started() {
		return procErr.ExitCode
	}
	return 1
}
