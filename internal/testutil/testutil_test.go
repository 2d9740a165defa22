package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckDigitMod10(t *testing.T) {
	// Known GTIN bodies and their check digits.
	cases := []struct {
		body string
		want int
	}{
		{"0628674000024", 9},
		{"0950600013430", 7},
		{"0000000000000", 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, CheckDigitMod10(c.body), "body %s", c.body)
	}

	assert.Equal(t, -1, CheckDigitMod10(""))
	assert.Equal(t, -1, CheckDigitMod10("12A4"))
}

func TestAppendCheckDigit(t *testing.T) {
	assert.Equal(t, "06286740000249", AppendCheckDigit("0628674000024"))
	assert.Equal(t, "12A4", AppendCheckDigit("12A4"))
}

func TestGTIN14(t *testing.T) {
	g := GTIN14("950600013430")
	assert.Len(t, g, 14)
	assert.Equal(t, CheckDigitMod10(g[:13]), int(g[13]-'0'))
}

func TestElementStringSeparators(t *testing.T) {
	s := NewElementString().
		Add("01", GTIN14("950600013430")).
		Add("10", "BATCH1").
		Add("21", "SERIAL99").
		String()

	// Fixed-length GTIN needs no separator; the variable batch does.
	assert.NotContains(t, s[:16], GS)
	assert.Equal(t, 1, strings.Count(s, GS))
	assert.True(t, strings.HasSuffix(s, "21SERIAL99"))
}

func TestPharmaLabel(t *testing.T) {
	s := PharmaLabel()
	assert.True(t, strings.HasPrefix(s, "01"))
	assert.Contains(t, s, "17270630")
	assert.Contains(t, s, GS)
}
