package parse

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// gsChar is the canonical field separator: FNC1 as transmitted by scanners
// (ASCII 29, the GS control character).
const gsChar = "\x1d"

const gsByte = 0x1d

// symbology identifier prefixes per ISO/IEC 15424.
var symbologyPrefixes = []struct {
	prefix string
	name   string
}{
	{"]d2", "GS1 DataMatrix"},
	{"]C1", "GS1-128"},
	{"]e0", "GS1 DataBar"},
	{"]e1", "GS1 DataBar Limited"},
	{"]e2", "GS1 DataBar Expanded"},
	{"]Q3", "GS1 QR Code"},
}

// stripSymbology removes a leading symbology identifier and names it.
func stripSymbology(text string) (stripped, name string) {
	for _, s := range symbologyPrefixes {
		if strings.HasPrefix(text, s.prefix) {
			return text[len(s.prefix):], s.name
		}
	}
	return text, ""
}

// normalizeInput canonicalizes scanner output: unicode NFC, separator
// stand-ins mapped to the GS control character (when enabled), surrounding
// whitespace trimmed. It reports whether any separator representation was
// present in the input.
func normalizeInput(text string, opts *Options) (normalized string, separatorSeen bool) {
	text = norm.NFC.String(text)

	for _, sep := range opts.SeparatorChars {
		if sep == "" {
			continue
		}
		if strings.Contains(text, sep) {
			separatorSeen = true
			if opts.NormalizeSeparators {
				text = strings.ReplaceAll(text, sep, gsChar)
			}
		}
	}

	return strings.TrimSpace(text), separatorSeen
}
