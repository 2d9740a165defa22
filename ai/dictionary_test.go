package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	d := Default()
	require.NotNil(t, d)
	assert.Greater(t, d.Len(), 200, "embedded table should expand to a full catalog")

	gtin := d.Get("01")
	require.NotNil(t, gtin)
	assert.Equal(t, "GTIN", gtin.Title)
	assert.Equal(t, 14, gtin.FixedLength)
	assert.True(t, gtin.CheckDigit)

	expiry := d.Get("17")
	require.NotNil(t, expiry)
	assert.Equal(t, DateYYMMD0, expiry.DateFormat)
	assert.Equal(t, 6, expiry.FixedLength)

	batch := d.Get("10")
	require.NotNil(t, batch)
	assert.False(t, batch.Fixed())
	assert.Equal(t, 20, batch.MaxLength)
	assert.True(t, batch.SeparatorRequired)
}

func TestDefaultIsSharedAndRebuildReplaces(t *testing.T) {
	a := Default()
	b := Default()
	assert.Same(t, a, b)

	fresh := Rebuild()
	assert.NotSame(t, a, fresh)
	assert.Equal(t, a.Len(), fresh.Len())
	assert.Same(t, fresh, Default())
}

func TestDecimalFamilyExpansion(t *testing.T) {
	d := Default()

	for n := 0; n < 10; n++ {
		code := "310" + string(rune('0'+n))
		e := d.Get(code)
		require.NotNil(t, e, code)
		assert.Equal(t, n, e.DecimalPositions, code)
		assert.Equal(t, 6, e.FixedLength, code)
	}

	assert.Nil(t, d.Get("310n"), "family row must not be registered verbatim")
	gtin := d.Get("01")
	require.NotNil(t, gtin)
	assert.Equal(t, -1, gtin.DecimalPositions)
}

func TestLongestMatch(t *testing.T) {
	d := Default()

	tests := []struct {
		text     string
		wantCode string
		wantLen  int
	}{
		{"0106286740000249", "01", 2},
		{"3102001234", "3102", 4},
		{"8200http://example.com", "8200", 4},
		{"235XYZ", "235", 3}, // "23" alone is not a code
		{"90INTERNAL", "90", 2},
		{"ZZ", "", 0},
	}
	for _, tt := range tests {
		entry, n := d.LongestMatch(tt.text, 0)
		if tt.wantCode == "" {
			assert.Nil(t, entry, tt.text)
			assert.Zero(t, n, tt.text)
			continue
		}
		require.NotNil(t, entry, tt.text)
		assert.Equal(t, tt.wantCode, entry.Code, tt.text)
		assert.Equal(t, tt.wantLen, n, tt.text)
	}
}

func TestLongestMatchMidString(t *testing.T) {
	d := Default()
	text := "0106286740000249" + "17270630"
	entry, n := d.LongestMatch(text, 16)
	require.NotNil(t, entry)
	assert.Equal(t, "17", entry.Code)
	assert.Equal(t, 2, n)
}

func TestNewDictionaryIsolated(t *testing.T) {
	custom := NewDictionary(map[string]*Entry{
		"95": {Code: "95", Title: "COMPANY INTERNAL", DataType: Alphanumeric, MinLength: 1, MaxLength: 30, SeparatorRequired: true, DecimalPositions: -1},
	})
	assert.Equal(t, 1, custom.Len())
	assert.NotNil(t, custom.Get("95"))
	assert.Nil(t, custom.Get("01"))

	entry, n := custom.LongestMatch("95ABC", 0)
	require.NotNil(t, entry)
	assert.Equal(t, 2, n)
}

func TestCodesReturnsCopy(t *testing.T) {
	d := Default()
	codes := d.Codes()
	assert.Len(t, codes, d.Len())
	codes[0] = "mutated"
	assert.NotNil(t, d.Get("01"))
}
