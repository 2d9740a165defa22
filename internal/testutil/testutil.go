// Package testutil provides shared helpers for building GS1 test fixtures.
package testutil

import "strings"

// CheckDigitMod10 computes the GS1 Mod-10 check digit for a digit string,
// applying 3,1,3,1... multipliers from the rightmost position. It returns -1
// for empty or non-numeric input.
func CheckDigitMod10(digits string) int {
	if digits == "" {
		return -1
	}
	sum := 0
	mult := 3
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return -1
		}
		sum += int(c-'0') * mult
		mult = 4 - mult
	}
	return (10 - sum%10) % 10
}

// AppendCheckDigit appends the Mod-10 check digit to a digit string.
func AppendCheckDigit(digits string) string {
	d := CheckDigitMod10(digits)
	if d < 0 {
		return digits
	}
	return digits + string(rune('0'+d))
}

// GTIN14 builds a valid 14-digit GTIN from up to 13 body digits, zero-padding
// on the left before appending the check digit.
func GTIN14(body string) string {
	if len(body) > 13 {
		body = body[:13]
	}
	padded := strings.Repeat("0", 13-len(body)) + body
	return AppendCheckDigit(padded)
}
