package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckDigitMod10(t *testing.T) {
	tests := []struct {
		digits string
		want   int
	}{
		{"0628674000024", 9},
		{"0950600013430", 7},
		{"000000000000", 0},
		{"629104150021", 3},
		{"", -1},
		{"12a4", -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CheckDigitMod10(tt.digits), "digits %q", tt.digits)
	}
}

func TestCheckDigitValid(t *testing.T) {
	r := CheckDigit("06286740000249")
	assert.True(t, r.Valid)
	assert.Empty(t, r.Errors)
	assert.Equal(t, 9, r.Meta["calculated_check_digit"])
	assert.Equal(t, 9, r.Meta["provided_check_digit"])
	assert.Equal(t, true, r.Meta["check_digit_valid"])
}

func TestCheckDigitFlippedDigitFails(t *testing.T) {
	// Flip one payload digit of a valid GTIN.
	r := CheckDigit("06286740000349")
	assert.False(t, r.Valid)
	assert.Equal(t, false, r.Meta["check_digit_valid"])
	assert.NotEmpty(t, r.Errors)
	assert.Contains(t, r.Errors[0], "check digit mismatch")
}

func TestCheckDigitRejectsBadInput(t *testing.T) {
	for _, v := range []string{"", "1", "12AB5"} {
		r := CheckDigit(v)
		assert.False(t, r.Valid, "value %q", v)
	}
}
