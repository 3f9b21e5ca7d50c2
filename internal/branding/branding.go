// Package branding provides compile-time identity values for the binaries.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so a fork can rename the commands without touching
// Go code.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	CtlName     string `yaml:"ctl_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:     "fta",
			CtlName:     "ftactl",
			DisplayName: "FTA",
			Description: "Runs the Fast TypeScript Analyzer binary built for this machine",
			HomeDir:     ".fta",
			EnvPrefix:   "FTA",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the pass-through command name (e.g., "fta").
func CLIName() string { load(); return defaults.CLIName }

// CtlName returns the operator command name (e.g., "ftactl").
func CtlName() string { load(); return defaults.CtlName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".fta").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "FTA").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("bin_dir") → "FTA_BIN_DIR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
