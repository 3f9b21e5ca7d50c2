package cli

import (
	"fmt"

	"github.com/fta-dev/fta-go/launcher"
	"github.com/spf13/cobra"
)

var runJSON bool

var runCmd = &cobra.Command{
	Use:   "run <project-path>",
	Short: "Analyze a project",
	Long: `Run the analyzer on a project directory and print its report.

The analyzer receives the project path, followed by --json when --json is set.
Nothing else is added; use exec to pass other analyzer flags.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&runJSON, "json", false, "Ask the analyzer for JSON output")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	l, err := newLauncher(cmd, nil)
	if err != nil {
		return err
	}

	out, err := l.Run(cmd.Context(), args[0], launcher.Options{JSON: runJSON})
	if err != nil {
		writePartialOutput(cmd.OutOrStdout(), err)
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
