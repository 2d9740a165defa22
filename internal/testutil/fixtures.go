package testutil

import (
	"strings"

	"github.com/MeKo-Tech/gs1parse/ai"
)

// GS is the FNC1 stand-in used between variable-length fields.
const GS = "\x1d"

// ElementString composes a separator-delimited element string from (AI,
// value) pairs. A group separator is inserted after every variable-length
// field except the last, matching what a scanner delivers for a GS1 symbol.
type ElementString struct {
	dict  *ai.Dictionary
	parts []part
}

type part struct {
	code  string
	value string
}

// NewElementString returns an empty builder backed by the default dictionary.
func NewElementString() *ElementString {
	return &ElementString{dict: ai.Default()}
}

// Add appends one (AI, value) pair.
func (b *ElementString) Add(code, value string) *ElementString {
	b.parts = append(b.parts, part{code: code, value: value})
	return b
}

// String renders the element string.
func (b *ElementString) String() string {
	var sb strings.Builder
	for i, p := range b.parts {
		sb.WriteString(p.code)
		sb.WriteString(p.value)
		if i == len(b.parts)-1 {
			continue
		}
		entry := b.dict.Get(p.code)
		if entry == nil || !entry.Fixed() {
			sb.WriteString(GS)
		}
	}
	return sb.String()
}

// PharmaLabel is a canonical pharma serialization label: GTIN, expiry, batch
// and serial in standard order.
func PharmaLabel() string {
	return NewElementString().
		Add("01", GTIN14("950600013430")).
		Add("17", "270630").
		Add("10", "ABC123").
		Add("21", "SER1A2B3C4D").
		String()
}
