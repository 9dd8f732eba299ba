// Package config is for app wide settings that are unmarshalled from
// Viper (see: /cmd)
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// AlignSettings holds the default alignment parameters used when a
// command or request does not override them.
type AlignSettings struct {
	// penalty for a gap in the middle of a sequence
	GapPenalty float64 `mapstructure:"gap-penalty"`

	// penalty for a gap once the other sequence is exhausted
	EndGapPenalty float64 `mapstructure:"end-gap-penalty"`

	// score for a pair of equal motifs
	Match float64 `mapstructure:"match"`

	// score for a pair of unequal motifs
	Mismatch float64 `mapstructure:"mismatch"`
}

// ServerSettings holds the HTTP server bind settings.
type ServerSettings struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Config is the root-level settings struct, a mix of settings available
// in versalign.yaml and those set from the command line.
type Config struct {
	Align  AlignSettings  `mapstructure:"align"`
	Server ServerSettings `mapstructure:"server"`
}

// SetDefaults registers the built-in defaults with viper. Call before
// reading a config file so file values override them.
func SetDefaults() {
	viper.SetDefault("align.gap-penalty", 2.0)
	viper.SetDefault("align.end-gap-penalty", 1.0)
	viper.SetDefault("align.match", 1.0)
	viper.SetDefault("align.mismatch", -1.0)
	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.port", 8080)
}

// New returns a Config populated from viper (defaults, config file and
// any bound flags).
func New() (Config, error) {
	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return c, nil
}
