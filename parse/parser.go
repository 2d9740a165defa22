package parse

import (
	"fmt"
	"strings"

	"github.com/MeKo-Tech/gs1parse/ai"
)

// Parser decodes element strings under a fixed Options set. A Parser is
// immutable after construction and safe for concurrent use; the catalog it
// reads is built once per process.
type Parser struct {
	opts Options
	dict *ai.Dictionary
}

// NewParser builds a Parser, filling unset options with defaults.
func NewParser(opts Options) *Parser {
	opts = opts.normalized()
	return &Parser{opts: opts, dict: opts.dictionary()}
}

// fastPath is the single left-to-right scan for separator-bearing input:
// SCAN -> MATCH_AI -> CONSUME -> SCAN. It reports needsSolver when it meets
// an unterminated variable-length field whose remainder may hide another AI;
// the caller then escalates instead of guessing a boundary.
func (p *Parser) fastPath(text string, gsSeen bool) (elements []Element, diags []Diagnostic, needsSolver bool) {
	pos := 0
	prevSeparatorRequired := true

	for pos < len(text) {
		if text[pos] == gsByte {
			// A separator after a fixed-length field is superfluous unless
			// another registered AI follows it.
			if len(elements) > 0 && !prevSeparatorRequired {
				next := pos + 1
				var nextEntry *ai.Entry
				if next < len(text) {
					nextEntry, _ = p.dict.LongestMatch(text, next)
				}
				if nextEntry == nil {
					diags = append(diags, Diagnostic{
						Code:    DiagExtraSeparator,
						Message: "superfluous separator after fixed-length AI",
						At:      pos,
					})
				}
			}
			pos++
			continue
		}

		entry, codeLen := p.dict.LongestMatch(text, pos)
		if entry == nil {
			diags = append(diags, Diagnostic{
				Code:    DiagUnknownAI,
				Message: fmt.Sprintf("unknown AI at position %d: %q", pos, peek(text, pos, 4)),
				At:      pos,
			})
			// Best-effort recovery: resume after the next separator.
			if next := strings.IndexByte(text[pos:], gsByte); next >= 0 {
				pos += next + 1
			} else {
				pos = len(text)
			}
			continue
		}

		aiStart := pos
		pos += codeLen

		var value string
		if entry.Fixed() {
			dataLen := entry.FixedLength
			if pos+dataLen > len(text) {
				diags = append(diags, Diagnostic{
					Code:    DiagTruncatedData,
					Message: fmt.Sprintf("truncated data for AI %s", entry.Code),
					At:      pos,
					AI:      entry.Code,
				})
				dataLen = len(text) - pos
			}
			value = text[pos : pos+dataLen]
			pos += dataLen
		} else if next := strings.IndexByte(text[pos:], gsByte); next >= 0 {
			value = text[pos : pos+next]
			pos += next + 1
		} else {
			remaining := text[pos:]

			// No terminator: either this is the final element, or another
			// AI hides inside the remainder and the boundary is ambiguous.
			foundNextAI := false
			maxCheck := min(entry.MaxLength, len(remaining))
			for checkLen := entry.MinLength; checkLen < maxCheck; checkLen++ {
				tail := remaining[checkLen:]
				if len(tail) < 2 {
					continue
				}
				if next, _ := p.dict.LongestMatch(tail, 0); next != nil {
					needsSolver = true
					foundNextAI = true
					break
				}
			}

			if foundNextAI {
				if gsSeen {
					diags = append(diags, Diagnostic{
						Code:    DiagMissingSeparator,
						Message: fmt.Sprintf("AI(%s) variable-length followed by another AI without separator", entry.Code),
						At:      pos,
						AI:      entry.Code,
					})
				}
				end := min(entry.MaxLength, len(remaining))
				value = remaining[:end]
				pos += entry.MaxLength
			} else {
				value = remaining
				pos = len(text)
			}
		}

		processed, vr, _ := validateElement(entry, value, &p.opts)
		elements = append(elements, newElement(entry, value, processed, vr, aiStart, min(pos, len(text))))
		prevSeparatorRequired = entry.SeparatorRequired
	}

	return elements, diags, needsSolver
}

func peek(s string, pos, n int) string {
	return s[pos:min(pos+n, len(s))]
}
