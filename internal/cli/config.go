package cli

import (
	"fmt"
	"strings"

	"github.com/fta-dev/fta-go/internal/branding"
	"github.com/fta-dev/fta-go/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage " + branding.CtlName() + " settings",
	Long: `Read and write settings stored at ` + config.FilePath() + `.

Known keys: ` + strings.Join(config.Keys, ", ") + `. Environment variables
override the file: ` + strings.Join(configEnvVars(), ", ") + `.
The ` + branding.CLIName() + ` pass-through command never reads these settings.`,
}

// configEnvVars returns the environment variable that overrides each key.
func configEnvVars() []string {
	vars := make([]string, len(config.Keys))
	for i, key := range config.Keys {
		vars[i] = branding.EnvVar(key)
	}
	return vars
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !config.IsKnownKey(args[0]) {
			return fmt.Errorf("unknown config key %q", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}
