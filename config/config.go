// Package config loads parser configuration from files, environment
// variables and defaults, and maps it onto parse.Options.
package config

import (
	"fmt"

	"github.com/MeKo-Tech/gs1parse/parse"
	"github.com/MeKo-Tech/gs1parse/validate"
)

// Config is the complete configuration for the gs1parse library surface.
// It supports loading from configuration files and environment variables.
type Config struct {
	// Global settings
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`

	// Parser behavior
	Parser ParserConfig `mapstructure:"parser" yaml:"parser" json:"parser"`

	// No-separator beam search
	Beam BeamConfig `mapstructure:"beam" yaml:"beam" json:"beam"`

	// Beam scoring weight overrides
	Weights parse.Weights `mapstructure:"weights" yaml:"weights" json:"weights"`
}

// ParserConfig contains settings shared by all parse engines.
type ParserConfig struct {
	AllowAmbiguous      bool     `mapstructure:"allow_ambiguous" yaml:"allow_ambiguous" json:"allow_ambiguous"`
	StrictMode          bool     `mapstructure:"strict_mode" yaml:"strict_mode" json:"strict_mode"`
	MaxAlternatives     int      `mapstructure:"max_alternatives" yaml:"max_alternatives" json:"max_alternatives"`
	CenturyPivot        int      `mapstructure:"century_pivot" yaml:"century_pivot" json:"century_pivot"`
	NormalizeSeparators bool     `mapstructure:"normalize_separators" yaml:"normalize_separators" json:"normalize_separators"`
	SeparatorChars      []string `mapstructure:"separator_chars" yaml:"separator_chars" json:"separator_chars"`
}

// BeamConfig contains the no-separator search bounds.
type BeamConfig struct {
	Width             int      `mapstructure:"width" yaml:"width" json:"width"`
	MaxRounds         int      `mapstructure:"max_rounds" yaml:"max_rounds" json:"max_rounds"`
	VendorInternalAIs []string `mapstructure:"vendor_internal_ais" yaml:"vendor_internal_ais" json:"vendor_internal_ais"`
}

const infoLevel = "info"

// DefaultConfig returns the configuration matching parse.DefaultOptions.
func DefaultConfig() *Config {
	opts := parse.DefaultOptions()
	return &Config{
		LogLevel: infoLevel,
		Parser: ParserConfig{
			AllowAmbiguous:      opts.AllowAmbiguous,
			StrictMode:          opts.StrictMode,
			MaxAlternatives:     opts.MaxAlternatives,
			CenturyPivot:        opts.CenturyPivot,
			NormalizeSeparators: opts.NormalizeSeparators,
			SeparatorChars:      opts.SeparatorChars,
		},
		Beam: BeamConfig{
			Width:     opts.BeamWidth,
			MaxRounds: opts.MaxBeamRounds,
		},
		Weights: parse.DefaultWeights(),
	}
}

// Validate rejects configurations that would break the parser's termination
// or confidence guarantees.
func (c *Config) Validate() error {
	if c.Parser.MaxAlternatives < 0 {
		return fmt.Errorf("parser.max_alternatives must be >= 0, got %d", c.Parser.MaxAlternatives)
	}
	if c.Parser.CenturyPivot < 1 || c.Parser.CenturyPivot > 99 {
		return fmt.Errorf("parser.century_pivot must be in [1,99], got %d", c.Parser.CenturyPivot)
	}
	if c.Beam.Width < 1 {
		return fmt.Errorf("beam.width must be >= 1, got %d", c.Beam.Width)
	}
	if c.Beam.MaxRounds < 1 {
		return fmt.Errorf("beam.max_rounds must be >= 1, got %d", c.Beam.MaxRounds)
	}
	for _, code := range c.Beam.VendorInternalAIs {
		if len(code) != 2 || code[0] != '9' || code[1] < '0' || code[1] > '9' {
			return fmt.Errorf("beam.vendor_internal_ais entries must be internal-use codes 90-99, got %q", code)
		}
	}
	switch c.LogLevel {
	case "debug", infoLevel, "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error, got %q", c.LogLevel)
	}
	return nil
}

// ToOptions maps the configuration onto parse.Options.
func (c *Config) ToOptions() parse.Options {
	weights := c.Weights
	pivot := c.Parser.CenturyPivot
	if pivot <= 0 {
		pivot = validate.DefaultCenturyPivot
	}
	return parse.Options{
		AllowAmbiguous:      c.Parser.AllowAmbiguous,
		StrictMode:          c.Parser.StrictMode,
		MaxAlternatives:     c.Parser.MaxAlternatives,
		CenturyPivot:        pivot,
		NormalizeSeparators: c.Parser.NormalizeSeparators,
		SeparatorChars:      c.Parser.SeparatorChars,
		BeamWidth:           c.Beam.Width,
		MaxBeamRounds:       c.Beam.MaxRounds,
		VendorInternalAIs:   c.Beam.VendorInternalAIs,
		Weights:             &weights,
	}
}
