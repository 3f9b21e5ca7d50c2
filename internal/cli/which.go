package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fta-dev/fta-go/internal/target"
	"github.com/fta-dev/fta-go/launcher"
	"github.com/spf13/cobra"
)

var (
	whichPlatform string
	whichArch     string
	whichJSON     bool
)

var whichCmd = &cobra.Command{
	Use:   "which",
	Short: "Print the analyzer binary path for this machine",
	Long: `Print the absolute path of the analyzer binary that would run.

--platform (windows, macos, linux) and --arch (x64, arm64, arm) select another
target; a value that is not given is taken from this machine.`,
	Args: cobra.NoArgs,
	RunE: runWhich,
}

func init() {
	whichCmd.Flags().StringVar(&whichPlatform, "platform", "", "Target platform: windows, macos, linux")
	whichCmd.Flags().StringVar(&whichArch, "arch", "", "Target architecture: x64, arm64, arm")
	whichCmd.Flags().BoolVar(&whichJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(whichCmd)
}

// whichEntry is the JSON shape printed by which --json.
type whichEntry struct {
	Platform string `json:"platform"`
	Arch     string `json:"arch"`
	Triple   string `json:"triple"`
	Path     string `json:"path"`
	Exists   bool   `json:"exists"`
}

func runWhich(cmd *cobra.Command, args []string) error {
	t := overrideTarget(launcher.HostTarget(), whichPlatform, whichArch)

	l, err := newLauncher(cmd, &t)
	if err != nil {
		return err
	}

	path, resolved, err := l.Resolve()
	if err != nil {
		return err
	}

	if !whichJSON {
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	}

	triple, _ := resolved.Triple()
	_, statErr := os.Stat(path)
	out, err := json.MarshalIndent(whichEntry{
		Platform: string(resolved.Platform),
		Arch:     string(resolved.Arch),
		Triple:   triple,
		Path:     path,
		Exists:   statErr == nil,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

// overrideTarget replaces the parts of host given on the command line.
func overrideTarget(host launcher.Target, platform, arch string) launcher.Target {
	t := host
	if platform != "" {
		t.Platform = target.Platform(platform)
	}
	if arch != "" {
		t.Arch = target.Arch(arch)
	}
	return t
}
