package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripSymbology(t *testing.T) {
	tests := []struct {
		input    string
		stripped string
		name     string
	}{
		{"]d20106286740000249", "0106286740000249", "GS1 DataMatrix"},
		{"]C10106286740000249", "0106286740000249", "GS1-128"},
		{"]Q3011", "011", "GS1 QR Code"},
		{"0106286740000249", "0106286740000249", ""},
		{"]Z9zzz", "]Z9zzz", ""},
	}
	for _, tt := range tests {
		stripped, name := stripSymbology(tt.input)
		assert.Equal(t, tt.stripped, stripped, tt.input)
		assert.Equal(t, tt.name, name, tt.input)
	}
}

func TestNormalizeInputStandIns(t *testing.T) {
	opts := DefaultOptions()

	for _, sep := range []string{"\x1d", "<GS>", "~", "|", "^"} {
		text := "0106286740000249" + sep + "10ABC"
		normalized, seen := normalizeInput(text, &opts)
		assert.True(t, seen, "separator %q not detected", sep)
		assert.Equal(t, "0106286740000249\x1d10ABC", normalized, "separator %q", sep)
	}
}

func TestNormalizeInputNoSeparator(t *testing.T) {
	opts := DefaultOptions()
	normalized, seen := normalizeInput("0106286740000249", &opts)
	assert.False(t, seen)
	assert.Equal(t, "0106286740000249", normalized)
}

func TestNormalizeInputKeepsStandInsWhenDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.NormalizeSeparators = false
	normalized, seen := normalizeInput("10ABC~21XYZ", &opts)
	assert.True(t, seen)
	assert.Contains(t, normalized, "~")
}

func TestNormalizeInputTrimsWhitespace(t *testing.T) {
	opts := DefaultOptions()
	normalized, _ := normalizeInput("  0106286740000249\n", &opts)
	assert.Equal(t, "0106286740000249", normalized)
}
