package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var execCmd = &cobra.Command{
	Use:   "exec -- [analyzer arguments...]",
	Short: "Forward arguments to the analyzer unchanged",
	Long: `Run the analyzer with exactly the arguments given after "--".

Arguments after "--" are passed in the same order and count, with no flags
added. This is the same behaviour as the fta command.`,
	Args: cobra.ArbitraryArgs,
	RunE: runExec,
}

func init() {
	rootCmd.AddCommand(execCmd)
}

func runExec(cmd *cobra.Command, args []string) error {
	l, err := newLauncher(cmd, nil)
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
}
