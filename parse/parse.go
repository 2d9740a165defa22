package parse

import (
	"fmt"
	"log/slog"
	"strings"
)

// Parse decodes an element string with default options.
func Parse(input string) Result {
	return NewParser(DefaultOptions()).Parse(input)
}

// Parse decodes one element string. It never returns an error: imperfect
// scanner input yields a partial, confidence-weighted result with
// diagnostics instead.
func (p *Parser) Parse(input string) Result {
	stripped, symbology := stripSymbology(input)
	normalized, gsSeen := normalizeInput(stripped, &p.opts)

	res := Result{
		Raw:           input,
		Normalized:    normalized,
		Symbology:     symbology,
		SeparatorSeen: gsSeen,
		Confidence:    1.0,
	}

	if normalized == "" {
		res.Confidence = 0
		res.addDiag(Diagnostic{
			Code:    DiagInvalidFormat,
			Message: "no valid parse: input empty after normalization",
			At:      -1,
		})
		observeParse("none", &res)
		return res
	}

	if !gsSeen {
		p.parseNoSeparator(&res)
		observeParse("beam", &res)
		return res
	}

	engine := p.parseDelimited(&res)
	observeParse(engine, &res)
	return res
}

// parseDelimited runs the fast path and escalates to the solver when a
// boundary is ambiguous. It returns the engine that produced the elements.
func (p *Parser) parseDelimited(res *Result) string {
	elements, diags, needsSolver := p.fastPath(res.Normalized, res.SeparatorSeen)

	switch {
	case !needsSolver:
		res.Elements = elements
		res.Diagnostics = diags
		if len(diags) > 0 {
			res.Confidence = 0.9 - 0.05*float64(len(diags))
		}
		if len(elements) > 0 {
			res.Confidence *= 0.8 + 0.2*validRatio(elements)
		}
		res.Confidence = clamp01(res.Confidence)
		attachElementDiags(res)
		return "fast"

	case p.opts.AllowAmbiguous:
		slog.Debug("fast path found ambiguous boundary, escalating to solver",
			"input_len", len(res.Normalized))
		paths := p.solveAmbiguous(res.Normalized, res.SeparatorSeen)
		if len(paths) == 0 {
			res.Diagnostics = diags
			res.addDiag(Diagnostic{Code: DiagInvalidFormat, Message: "no valid parse found", At: -1})
			res.Confidence = 0
			return "solver"
		}

		best := paths[0]
		res.Elements = best.elements
		res.Confidence = best.score()

		if res.SeparatorSeen || len(paths) > 1 {
			for _, note := range best.notes {
				res.addDiag(Diagnostic{Code: DiagMissingSeparator, Message: note, At: -1})
			}
		}
		if len(paths) > 1 {
			res.addDiag(Diagnostic{
				Code:         DiagAmbiguousParse,
				Message:      "multiple valid parses found; returning best with alternatives",
				At:           -1,
				Alternatives: len(paths) - 1,
			})
			for _, alt := range paths[1:min(len(paths), p.opts.MaxAlternatives+1)] {
				res.Alternatives = append(res.Alternatives, Alternative{
					Confidence: alt.score(),
					Elements:   alt.elements,
					Reasoning:  alt.notes,
				})
			}
		}
		attachElementDiags(res)
		return "solver"

	default:
		// Ambiguity resolution disabled: hand back the best-effort scan.
		res.Elements = elements
		res.Diagnostics = diags
		res.Confidence = 0.5
		attachElementDiags(res)
		return "fast"
	}
}

// parseNoSeparator assembles the beam search outcome. The missing-separator
// diagnostic is unconditional here: the engine only runs on input carrying
// none.
func (p *Parser) parseNoSeparator(res *Result) {
	br := p.runBeam(res.Normalized)

	res.addDiag(Diagnostic{
		Code:    DiagMissingSeparator,
		Message: "input has no separators; parsed with no-separator engine",
		At:      -1,
	})

	if br.best == nil || len(br.best.elements) == 0 {
		res.addDiag(Diagnostic{Code: DiagInvalidFormat, Message: "no valid parse found", At: -1})
		res.Confidence = 0
		return
	}

	res.Elements = make([]Element, len(br.best.elements))
	copy(res.Elements, br.best.elements)
	for i := range res.Elements {
		res.Elements[i].Name = p.titleFor(res.Elements[i].AI)
	}
	res.Confidence = br.confidence

	if br.ambiguous {
		res.addDiag(Diagnostic{
			Code:         DiagAmbiguousParse,
			Message:      "multiple valid parses found; returning best with alternatives",
			At:           -1,
			Alternatives: len(br.alternatives),
		})
	}

	bestScore := br.best.score
	for _, alt := range br.alternatives {
		altConf := 0.0
		if bestScore > 0 {
			altConf = clamp01(alt.score / bestScore)
		}
		elems := make([]Element, len(alt.elements))
		copy(elems, alt.elements)
		for i := range elems {
			elems[i].Name = p.titleFor(elems[i].AI)
		}
		res.Alternatives = append(res.Alternatives, Alternative{
			Confidence: altConf,
			Score:      alt.score,
			Elements:   elems,
			Reasoning:  alt.reasoning,
		})
	}
	attachElementDiags(res)
}

func (p *Parser) titleFor(code string) string {
	if entry := p.dict.Get(code); entry != nil {
		return entry.Title
	}
	return fmt.Sprintf("AI %s", code)
}

// attachElementDiags surfaces per-element validation failures as coded
// diagnostics. Confidence is computed before this runs; semantic findings
// flag, they do not re-penalize.
func attachElementDiags(res *Result) {
	for i := range res.Elements {
		e := &res.Elements[i]
		if e.Valid || len(e.Errors) == 0 {
			continue
		}
		res.addDiag(Diagnostic{
			Code:    elementDiagCode(e),
			Message: fmt.Sprintf("AI(%s): %s", e.AI, e.Errors[0]),
			At:      e.Start,
			AI:      e.AI,
		})
	}
}

func elementDiagCode(e *Element) DiagCode {
	if v, ok := e.Meta["check_digit_valid"].(bool); ok && !v {
		return DiagInvalidCheckDigit
	}
	for _, msg := range e.Errors {
		switch {
		case strings.Contains(msg, "check digit"):
			return DiagInvalidCheckDigit
		case strings.Contains(msg, "month") || strings.Contains(msg, "day") ||
			strings.Contains(msg, "date") || strings.Contains(msg, "hour"):
			return DiagInvalidDate
		case strings.Contains(msg, "length"):
			return DiagInvalidLength
		}
	}
	return DiagInvalidFormat
}

func validRatio(elements []Element) float64 {
	if len(elements) == 0 {
		return 0
	}
	valid := 0
	for i := range elements {
		if elements[i].Valid {
			valid++
		}
	}
	return float64(valid) / float64(len(elements))
}
