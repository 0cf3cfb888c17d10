// Package system provides infrastructure for user-level settings.
// Settings come from the optional $HOME/.enigma.yaml file and ENIGMA_*
// environment variables, read through viper.
package system

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// Setting keys, as used in the config file and after the ENIGMA_ prefix
// in the environment.
const (
	KeyGroupSize = "group_size"
	KeyFormat    = "format"
	KeyJobs      = "jobs"
	KeySuffix    = "suffix"
)

// EnvPrefix prefixes environment variable overrides.
const EnvPrefix = "ENIGMA"

// Config holds user-level settings.
type Config struct {
	// Format is the default transcript format: text, json or yaml.
	Format string `mapstructure:"format" yaml:"format"`

	// Suffix names batch outputs: <input><suffix>.
	Suffix string `mapstructure:"suffix" yaml:"suffix"`

	// GroupSize is the number of symbols per group in text output
	// (0 disables grouping).
	GroupSize int `mapstructure:"group_size" yaml:"group_size"`

	// Jobs limits concurrent batch conversions (0 = one per CPU).
	Jobs int `mapstructure:"jobs" yaml:"jobs"`
}

// DefaultConfig returns a Config with defaults for all fields.
// This is used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Format:    "text",
		Suffix:    ".out",
		GroupSize: 5,
		Jobs:      0, // 0 means one per CPU
	}
}

// SetDefaults registers the defaults with v so that unset keys resolve.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault(KeyFormat, d.Format)
	v.SetDefault(KeySuffix, d.Suffix)
	v.SetDefault(KeyGroupSize, d.GroupSize)
	v.SetDefault(KeyJobs, d.Jobs)
}

// BindEnv makes v read ENIGMA_* environment variables.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// Load reads the settings held by v, falling back to defaults.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings.
func (c *Config) Validate() error {
	if c.GroupSize < 0 {
		return fmt.Errorf("invalid %s %d: must not be negative", KeyGroupSize, c.GroupSize)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("invalid %s %d: must not be negative", KeyJobs, c.Jobs)
	}
	if !slices.Contains([]string{"text", "json", "yaml"}, c.Format) {
		return fmt.Errorf("invalid %s %q: must be text, json or yaml", KeyFormat, c.Format)
	}
	if c.Suffix == "" {
		return fmt.Errorf("invalid %s: must not be empty", KeySuffix)
	}
	return nil
}
