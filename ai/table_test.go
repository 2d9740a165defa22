package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandRowPlain(t *testing.T) {
	out := expandRow(tableRow{Code: "01"})
	require.Len(t, out, 1)
	assert.Equal(t, "01", out[0].code)
	assert.Equal(t, -1, out[0].decimals)
}

func TestExpandRowFamily(t *testing.T) {
	out := expandRow(tableRow{Code: "392n"})
	require.Len(t, out, 10)
	assert.Equal(t, "3920", out[0].code)
	assert.Equal(t, 0, out[0].decimals)
	assert.Equal(t, "3929", out[9].code)
	assert.Equal(t, 9, out[9].decimals)
}

func TestLoadTable(t *testing.T) {
	entries := loadTable()
	require.NotEmpty(t, entries)

	// Families expanded, no raw family codes kept.
	assert.Contains(t, entries, "3100")
	assert.Contains(t, entries, "3109")
	assert.NotContains(t, entries, "310n")

	// Internal-use range present.
	for _, code := range []string{"90", "91", "99"} {
		e, ok := entries[code]
		require.True(t, ok, code)
		assert.False(t, e.Fixed(), code)
	}

	// Cross-AI requirements survive the load.
	content := entries["02"]
	require.NotNil(t, content)
	assert.Contains(t, content.RequiredAIs, "37")
	assert.Contains(t, content.ExclusiveAIs, "01")
}
