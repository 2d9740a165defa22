package parse

import (
	"regexp"
	"sort"

	"github.com/MeKo-Tech/gs1parse/validate"
)

// The no-separator engine works over a restricted catalog: the core pharma
// fields plus the internal-use range. Unrestricted search over every
// variable-length AI in the full catalog is intractable without separators.
type beamDef struct {
	code       string
	fixedLen   int // 0 = variable length
	minLen     int
	maxLen     int
	pattern    *regexp.Regexp
	checkDigit bool
	expiry     bool
	internal   bool
}

var beamCatalog = buildBeamCatalog()

func buildBeamCatalog() []beamDef {
	// GS1 allows the broad CSET 82 for batch and serial, but real-world
	// pharma values stick to uppercase alphanumerics plus '-' and '/';
	// restricting the search space here is what keeps ambiguity tractable.
	valueLike := regexp.MustCompile(`(?i)^[A-Z0-9\-/]+$`)
	anything := regexp.MustCompile(`(?s)^.+$`)

	defs := []beamDef{
		{code: "01", fixedLen: 14, minLen: 14, maxLen: 14, pattern: regexp.MustCompile(`^\d{14}$`), checkDigit: true},
		{code: "17", fixedLen: 6, minLen: 6, maxLen: 6, pattern: regexp.MustCompile(`^\d{6}$`), expiry: true},
		{code: "10", minLen: 1, maxLen: 20, pattern: valueLike},
		{code: "21", minLen: 1, maxLen: 20, pattern: valueLike},
	}
	for i := 90; i <= 99; i++ {
		defs = append(defs, beamDef{
			code:     string([]byte{byte('0' + i/10), byte('0' + i%10)}),
			minLen:   1,
			maxLen:   30,
			pattern:  anything,
			internal: true,
		})
	}
	return defs
}

var beamIndex = func() map[string]*beamDef {
	m := make(map[string]*beamDef, len(beamCatalog))
	for i := range beamCatalog {
		m[beamCatalog[i].code] = &beamCatalog[i]
	}
	return m
}()

// beamPrefixes are the codes sniffed for when choosing variable lengths.
var beamPrefixes = func() []string {
	codes := make([]string, 0, len(beamCatalog))
	for _, d := range beamCatalog {
		codes = append(codes, d.code)
	}
	return codes
}()

// candidate is one partial parse tracked by the beam.
type candidate struct {
	elements  []Element
	score     float64
	position  int
	reasoning []string
}

func (c *candidate) extend(elem Element, end int) *candidate {
	next := &candidate{
		elements:  make([]Element, 0, len(c.elements)+1),
		score:     c.score,
		position:  end,
		reasoning: append([]string(nil), c.reasoning...),
	}
	next.elements = append(next.elements, c.elements...)
	next.elements = append(next.elements, elem)
	return next
}

// beamResult is the raw outcome of the no-separator search.
type beamResult struct {
	best         *candidate
	alternatives []*candidate
	confidence   float64
	ambiguous    bool
}

// runBeam searches input with a bounded-width beam. Every round extends each
// surviving candidate by every AI matching at its position; the beam is then
// re-truncated by score. Only candidates consuming the whole input count.
func (p *Parser) runBeam(input string) beamResult {
	whitelist := make(map[string]struct{}, len(p.opts.VendorInternalAIs))
	for _, code := range p.opts.VendorInternalAIs {
		whitelist[code] = struct{}{}
	}
	w := p.opts.weights()

	beam := []*candidate{{}}
	var complete []*candidate

	rounds := 0
	for len(beam) > 0 && rounds < p.opts.MaxBeamRounds {
		rounds++
		var next []*candidate

		for _, c := range beam {
			if c.position >= len(input) {
				complete = append(complete, c)
				continue
			}
			next = append(next, p.extendCandidate(input, c, w, whitelist)...)
		}

		sort.SliceStable(next, func(i, j int) bool { return next[i].score > next[j].score })
		beam = next[:min(len(next), p.opts.BeamWidth)]
	}
	observeBeamRounds(rounds)

	if len(complete) == 0 {
		return beamResult{confidence: 0}
	}
	sort.SliceStable(complete, func(i, j int) bool { return complete[i].score > complete[j].score })

	res := beamResult{best: complete[0]}
	switch {
	case len(res.best.elements) == 0:
		res.confidence = 0
	case len(complete) > 1:
		gap := complete[0].score - complete[1].score
		res.confidence = min(1.0, max(0.5, 1.0/(1.0+50.0/(gap+1))))
		res.ambiguous = gap < ambiguityGap
	default:
		res.confidence = 0.95
	}

	for _, c := range complete[1:min(len(complete), p.opts.MaxAlternatives+1)] {
		res.alternatives = append(res.alternatives, c)
	}
	return res
}

// extendCandidate produces every one-element continuation of c.
func (p *Parser) extendCandidate(input string, c *candidate, w *Weights, whitelist map[string]struct{}) []*candidate {
	var out []*candidate
	pos := c.position
	remaining := input[pos:]

	for i := range beamCatalog {
		def := &beamCatalog[i]
		if len(remaining) < len(def.code) || remaining[:len(def.code)] != def.code {
			continue
		}
		dataStart := pos + len(def.code)

		if def.fixedLen > 0 {
			dataEnd := dataStart + def.fixedLen
			if dataEnd > len(input) {
				continue
			}
			elem, valid := p.beamValidate(def, input[dataStart:dataEnd], pos, dataEnd)
			if !valid && def.checkDigit {
				// A fixed-position GTIN with a bad check digit is never a
				// plausible boundary choice.
				continue
			}
			next := c.extend(elem, dataEnd)
			scoreExtension(next, &elem, input, w, whitelist)
			out = append(out, next)
			continue
		}

		for _, dataLen := range variableLengthsToTry(input, dataStart, def) {
			dataEnd := dataStart + dataLen
			if dataEnd > len(input) {
				continue
			}
			elem, _ := p.beamValidate(def, input[dataStart:dataEnd], pos, dataEnd)
			next := c.extend(elem, dataEnd)
			scoreExtension(next, &elem, input, w, whitelist)
			out = append(out, next)
		}
	}
	return out
}

// variableLengthsToTry picks the value lengths worth exploring for a
// variable-length AI: lengths whose end position lines up with a plausible
// next AI code, the maximal length as a run-to-end fallback, and a narrowed
// window for internal-use codes to bound branching.
func variableLengthsToTry(input string, dataStart int, def *beamDef) []int {
	maxLen := min(def.maxLen, len(input)-dataStart)
	minLen := def.minLen
	if maxLen < minLen {
		return nil
	}

	if def.internal {
		window := min(maxLen, minLen+9)
		lengths := make([]int, 0, window-minLen+1)
		for l := minLen; l <= window; l++ {
			lengths = append(lengths, l)
		}
		return lengths
	}

	var lengths []int
	for l := minLen; l <= maxLen; l++ {
		next := dataStart + l
		if next >= len(input) {
			lengths = append(lengths, l)
			continue
		}
		after := input[next:]
		couldBeAI := false
		for _, code := range beamPrefixes {
			if len(after) >= len(code) && after[:len(code)] == code {
				couldBeAI = true
				break
			}
		}
		if couldBeAI || l == maxLen {
			lengths = append(lengths, l)
		}
	}
	if len(lengths) == 0 {
		for l := minLen; l <= maxLen; l++ {
			lengths = append(lengths, l)
		}
	}
	return lengths
}

// beamValidate checks a value against the restricted catalog definition and
// builds its element. Expiry values with day 00 are legal legacy encodings:
// they validate under the day-unspecified format and are flagged in metadata.
func (p *Parser) beamValidate(def *beamDef, value string, start, end int) (Element, bool) {
	valid := true
	var errs []string
	meta := map[string]any{}
	var normalized any = value

	if !def.pattern.MatchString(value) {
		errs = append(errs, "value does not match pattern for AI("+def.code+")")
		valid = false
	}

	if def.checkDigit {
		if len(value) == def.fixedLen && isDigits(value) {
			cr := validate.CheckDigit(value)
			for k, v := range cr.Meta {
				meta[k] = v
			}
			if !cr.Valid {
				errs = append(errs, cr.Errors...)
				valid = false
			}
		} else {
			errs = append(errs, "invalid format for check digit validation")
			valid = false
		}
	}

	if def.expiry && len(value) == 6 {
		format := "YYMMDD"
		if value[4:6] == "00" {
			format = "YYMMD0"
		}
		dr := validate.Date(value, format, p.opts.CenturyPivot)
		if dr.Valid {
			for k, v := range dr.Meta {
				meta[k] = v
			}
			if format == "YYMMD0" && dr.Meta["day_unspecified"] == true {
				meta["unknown_day"] = true
				if iso, ok := dr.Meta["iso_date"].(string); ok && len(iso) >= 8 {
					normalized = iso[:8] + "XX"
				}
			} else if iso, ok := dr.Meta["iso_date"].(string); ok {
				normalized = iso
			}
		} else {
			errs = append(errs, dr.Errors...)
			valid = false
		}
	}

	return Element{
		AI:       def.code,
		RawValue: value,
		Value:    normalized,
		Valid:    valid,
		Errors:   errs,
		Meta:     meta,
		Start:    start,
		End:      end,
	}, valid
}
