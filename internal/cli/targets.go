package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/fta-dev/fta-go/internal/manifest"
	"github.com/fta-dev/fta-go/internal/target"
	"github.com/spf13/cobra"
)

var targetsJSON bool

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List supported platform and architecture pairs",
	Long: `List every supported target with its triple and the file it resolves to,
relative to the bin directory. The target of this machine is marked with "*".`,
	Args: cobra.NoArgs,
	RunE: runTargets,
}

func init() {
	targetsCmd.Flags().BoolVar(&targetsJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(targetsCmd)
}

// targetEntry represents a supported target for display.
type targetEntry struct {
	Platform string `json:"platform"`
	Arch     string `json:"arch"`
	Triple   string `json:"triple"`
	File     string `json:"file,omitempty"`
	Host     bool   `json:"host"`
	Missing  bool   `json:"missing,omitempty"`
}

func runTargets(cmd *cobra.Command, args []string) error {
	m, err := manifest.Default()
	if err != nil {
		return err
	}

	entries := buildTargetEntries(m, target.Host())
	if targetsJSON {
		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\tPLATFORM\tARCH\tTRIPLE\tFILE")
	for _, e := range entries {
		mark := ""
		if e.Host {
			mark = "*"
		}
		file := e.File
		if e.Missing {
			file = "(not in manifest)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", mark, e.Platform, e.Arch, e.Triple, file)
	}
	return w.Flush()
}

// buildTargetEntries joins the triple table with the manifest.
func buildTargetEntries(m *manifest.BinaryManifest, host target.Target) []targetEntry {
	supported := target.Supported()
	entries := make([]targetEntry, 0, len(supported))
	for _, st := range supported {
		e := targetEntry{
			Platform: string(st.Platform),
			Arch:     string(st.Arch),
			Triple:   st.Triple,
			Host:     st.Target == host,
		}
		if entry, ok := m.Lookup(st.Triple); ok {
			e.File = entry.Dir + "/" + target.ExecutableName(st.Platform, m.Binary())
		} else {
			e.Missing = true
		}
		entries = append(entries, e)
	}
	return entries
}
