// Package config loads gitstack configuration. Values come from defaults with
// environment overrides (GITSTACK_FILE, GITSTACK_TRUNKS, GITSTACK_LOG_FILE);
// the resulting Config
// is passed explicitly to the components that need it.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

const (
	// DefaultStackFile is the registry file name at the repository root
	DefaultStackFile = ".gitstack"

	envPrefix = "GITSTACK"
)

// Config holds the per-invocation configuration
type Config struct {
	// StackFile is the name of the registry file, relative to the repo root
	StackFile string

	// TrunkCandidates are probed in order against local branches to find the trunk
	TrunkCandidates []string

	// LogFile mirrors all output to a rotated log file when non-empty
	LogFile string
}

// Load builds the configuration from defaults and environment variables
func Load() *Config {
	v := viper.New()
	v.SetDefault("file", DefaultStackFile)
	v.SetDefault("trunks", "main,master")
	v.SetDefault("log_file", "")

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	trunks := splitList(v.GetString("trunks"))
	if len(trunks) == 0 {
		trunks = []string{"main", "master"}
	}

	return &Config{
		StackFile:       v.GetString("file"),
		TrunkCandidates: trunks,
		LogFile:         v.GetString("log_file"),
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
