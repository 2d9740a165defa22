package validate

import (
	"fmt"
	"strings"
)

// CSET82 is the broad GS1 encodable character set (82 printable characters).
const CSET82 = `!"#$%&'()*+,-./0123456789:;<=>?@` +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`" +
	`abcdefghijklmnopqrstuvwxyz{|}`

// CSET39 is the restricted GS1 character set.
const CSET39 = "#-/0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// InCSET82 reports whether every character of s belongs to CSET 82.
func InCSET82(s string) bool { return inSet(s, CSET82) }

// InCSET39 reports whether every character of s belongs to CSET 39.
func InCSET39(s string) bool { return inSet(s, CSET39) }

func inSet(s, set string) bool {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(set, s[i]) < 0 {
			return false
		}
	}
	return true
}

func checkLength(r *Result, n, minLen, maxLen, fixedLen int) {
	if fixedLen > 0 {
		if n != fixedLen {
			r.fail(fmt.Sprintf("length must be exactly %d, got %d", fixedLen, n))
		}
		return
	}
	if minLen > 0 && n < minLen {
		r.fail(fmt.Sprintf("length %d below minimum %d", n, minLen))
	}
	if maxLen > 0 && n > maxLen {
		r.fail(fmt.Sprintf("length %d exceeds maximum %d", n, maxLen))
	}
}

// Numeric validates a digit-only field. fixedLen of zero means variable
// length bounded by [minLen, maxLen]; zero bounds are not enforced.
func Numeric(value string, minLen, maxLen, fixedLen int) Result {
	r := okResult()
	if value == "" {
		if minLen > 0 {
			r.fail("value is empty but minimum length required")
		}
		return r
	}
	if !isDigits(value) {
		r.fail("value contains non-numeric characters")
		return r
	}
	checkLength(&r, len(value), minLen, maxLen, fixedLen)
	return r
}

// Alphanumeric validates a field against a GS1 character set, "cset82"
// (default) or "cset39", plus the usual length policy.
func Alphanumeric(value string, minLen, maxLen, fixedLen int, charset string) Result {
	r := okResult()
	if value == "" {
		if minLen > 0 {
			r.fail("value is empty but minimum length required")
		}
		return r
	}

	ok := InCSET82(value)
	if charset == "cset39" {
		ok = InCSET39(value)
	}
	if !ok {
		r.fail("value contains characters outside the allowed set")
	}
	checkLength(&r, len(value), minLen, maxLen, fixedLen)
	return r
}
