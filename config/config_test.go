package config

import (
	"testing"

	"github.com/MeKo-Tech/gs1parse/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.Parser.AllowAmbiguous)
	assert.Equal(t, parse.DefaultMaxAlternatives, cfg.Parser.MaxAlternatives)
	assert.Equal(t, parse.DefaultBeamWidth, cfg.Beam.Width)
	assert.Equal(t, parse.DefaultMaxBeamRounds, cfg.Beam.MaxRounds)
	assert.Equal(t, parse.DefaultWeights(), cfg.Weights)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative alternatives", func(c *Config) { c.Parser.MaxAlternatives = -1 }},
		{"pivot too low", func(c *Config) { c.Parser.CenturyPivot = 0 }},
		{"pivot too high", func(c *Config) { c.Parser.CenturyPivot = 100 }},
		{"zero beam width", func(c *Config) { c.Beam.Width = 0 }},
		{"zero beam rounds", func(c *Config) { c.Beam.MaxRounds = 0 }},
		{"non-internal whitelist code", func(c *Config) { c.Beam.VendorInternalAIs = []string{"10"} }},
		{"malformed whitelist code", func(c *Config) { c.Beam.VendorInternalAIs = []string{"9A"} }},
		{"bad log level", func(c *Config) { c.LogLevel = "trace" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidateAcceptsWhitelist(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Beam.VendorInternalAIs = []string{"91", "99"}
	assert.NoError(t, cfg.Validate())
}

func TestToOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Parser.StrictMode = true
	cfg.Parser.CenturyPivot = 40
	cfg.Beam.Width = 64
	cfg.Beam.VendorInternalAIs = []string{"91"}
	cfg.Weights.GTINCheckDigit = 500

	opts := cfg.ToOptions()
	assert.True(t, opts.StrictMode)
	assert.Equal(t, 40, opts.CenturyPivot)
	assert.Equal(t, 64, opts.BeamWidth)
	assert.Equal(t, []string{"91"}, opts.VendorInternalAIs)
	require.NotNil(t, opts.Weights)
	assert.InDelta(t, 500, opts.Weights.GTINCheckDigit, 1e-9)

	// The options carry a copy, not a reference into the config.
	cfg.Weights.GTINCheckDigit = 1
	assert.InDelta(t, 500, opts.Weights.GTINCheckDigit, 1e-9)
}
