package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoaderDefaults(t *testing.T) {
	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoaderWithFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gs1parse.yaml")
	content := `
log_level: debug
parser:
  strict_mode: true
  century_pivot: 40
beam:
  width: 64
  vendor_internal_ais: ["91"]
weights:
  gtincheckdigit: 500
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := NewLoader().LoadWithFile(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Parser.StrictMode)
	assert.Equal(t, 40, cfg.Parser.CenturyPivot)
	assert.Equal(t, 64, cfg.Beam.Width)
	assert.Equal(t, []string{"91"}, cfg.Beam.VendorInternalAIs)
	assert.InDelta(t, 500, cfg.Weights.GTINCheckDigit, 1e-9)

	// Unset keys keep their defaults.
	assert.True(t, cfg.Parser.AllowAmbiguous)
	assert.InDelta(t, 250, cfg.Weights.ExpiryValid, 1e-9)
}

func TestLoaderWithMissingFile(t *testing.T) {
	_, err := NewLoader().LoadWithFile("/nonexistent/gs1parse.yaml")
	assert.Error(t, err)
}

func TestLoaderRejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gs1parse.yaml")
	require.NoError(t, os.WriteFile(path, []byte("beam:\n  width: 0\n"), 0o644))

	_, err := NewLoader().LoadWithFile(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoaderEnvOverride(t *testing.T) {
	t.Setenv("GS1PARSE_PARSER_STRICT_MODE", "true")
	t.Setenv("GS1PARSE_BEAM_WIDTH", "32")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	assert.True(t, cfg.Parser.StrictMode)
	assert.Equal(t, 32, cfg.Beam.Width)
}
