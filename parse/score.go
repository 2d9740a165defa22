package parse

import (
	"fmt"
	"math"
	"regexp"

	"github.com/MeKo-Tech/gs1parse/validate"
)

// ambiguityGap is the score distance under which two completed candidates
// are reported as an ambiguous parse.
const ambiguityGap = 40

// Weights are the no-separator scoring weights. All values are magnitudes;
// the rule decides the sign. The defaults were tuned against real
// pharmaceutical packaging scans; override them through Options only with a
// corpus to validate against.
type Weights struct {
	GTINCheckDigit     float64 // valid GTIN check digit
	ExpiryValid        float64 // valid expiry with a real day
	UnknownDayPenalty  float64 // subtracted from ExpiryValid when day = 00
	TailOrder          float64 // (17,10,21) or (21,17,10) tail
	EmbeddedDate       float64 // expiry+date+batch pattern inside a serial
	FullOrder          float64 // (01,17,10,21) or (01,21,17,10)
	StandardStart      float64 // exactly (01,17) so far
	BatchLengthCommon  float64 // batch length in [2,10]
	SerialLengthCommon float64 // serial length in [6,20]
	InternalAbsorbable float64 // internal code the prior batch/serial could absorb
	RepeatedBatch      float64
	RepeatedSerial     float64
	InternalWithBoth   float64 // internal code with batch and serial both present
	LongBatch          float64 // batch length > 12
	ShortSerial        float64 // serial length < 4
	ConciseComplete    float64 // completed parse with <= 4 elements
}

var defaultWeights = Weights{
	GTINCheckDigit:     1000,
	ExpiryValid:        250,
	UnknownDayPenalty:  60,
	TailOrder:          120,
	EmbeddedDate:       90,
	FullOrder:          30,
	StandardStart:      15,
	BatchLengthCommon:  20,
	SerialLengthCommon: 15,
	InternalAbsorbable: 200,
	RepeatedBatch:      150,
	RepeatedSerial:     120,
	InternalWithBoth:   80,
	LongBatch:          50,
	ShortSerial:        50,
	ConciseComplete:    10,
}

// DefaultWeights returns a copy of the default scoring weights.
func DefaultWeights() Weights { return defaultWeights }

// embeddedDatePattern spots an expiry code, six date digits and a batch code
// hiding inside a serial value.
var embeddedDatePattern = regexp.MustCompile(`17(\d{6})10`)

// ruleInput is the context a scoring rule sees: the candidate after the new
// element was appended, the element itself, and the search configuration.
type ruleInput struct {
	cand      *candidate
	elem      *Element
	input     string
	w         *Weights
	whitelist map[string]struct{}
}

// scoreRule is one tagged entry of the ordered scoring table. delta is the
// signed score change (0 = no hit); eliminate discards the candidate.
type scoreRule struct {
	tag   string
	apply func(in *ruleInput) (delta float64, reason string, eliminate bool)
}

// scoreRules is the scoring table applied, in order, to every appended
// element. Keeping it an explicit list keeps the weighting auditable and
// each rule unit-testable.
var scoreRules = []scoreRule{
	{tag: "gtin-check-digit", apply: func(in *ruleInput) (float64, string, bool) {
		if in.elem.AI != "01" {
			return 0, "", false
		}
		if !in.elem.Valid {
			return 0, "invalid GTIN check digit", true
		}
		if in.elem.Meta["check_digit_valid"] == true {
			return in.w.GTINCheckDigit, "valid GTIN with correct check digit", false
		}
		return 0, "", false
	}},
	{tag: "expiry-date", apply: func(in *ruleInput) (float64, string, bool) {
		if in.elem.AI != "17" || !in.elem.Valid {
			return 0, "", false
		}
		if in.elem.Meta["unknown_day"] == true {
			return in.w.ExpiryValid - in.w.UnknownDayPenalty, "valid expiry date but day 00 (legacy unknown day)", false
		}
		return in.w.ExpiryValid, "valid expiry date", false
	}},
	{tag: "tail-order", apply: func(in *ruleInput) (float64, string, bool) {
		if tailIs(in.cand, "17", "10", "21") {
			return in.w.TailOrder, "tail order (17)(10)(21)", false
		}
		return 0, "", false
	}},
	{tag: "tail-order-serial-first", apply: func(in *ruleInput) (float64, string, bool) {
		if tailIs(in.cand, "21", "17", "10") {
			return in.w.TailOrder, "tail order (21)(17)(10)", false
		}
		return 0, "", false
	}},
	{tag: "embedded-date-in-serial", apply: func(in *ruleInput) (float64, string, bool) {
		if in.elem.AI != "21" {
			return 0, "", false
		}
		m := embeddedDatePattern.FindStringSubmatch(in.elem.RawValue)
		if m == nil {
			return 0, "", false
		}
		if dr := validate.Date(m[1], "YYMMDD", validate.DefaultCenturyPivot); dr.Valid {
			return in.w.EmbeddedDate, "embedded expiry date inside serial value", false
		}
		return 0, "", false
	}},
	{tag: "standard-start", apply: func(in *ruleInput) (float64, string, bool) {
		if len(in.cand.elements) == 2 && in.cand.elements[0].AI == "01" && in.cand.elements[1].AI == "17" {
			return in.w.StandardStart, "standard start (01)(17)", false
		}
		return 0, "", false
	}},
	{tag: "full-order", apply: func(in *ruleInput) (float64, string, bool) {
		if tailIs(in.cand, "01", "17", "10", "21") {
			return in.w.FullOrder, "standard pharma order (01)(17)(10)(21)", false
		}
		if tailIs(in.cand, "01", "21", "17", "10") {
			return in.w.FullOrder, "alternative pharma order (01)(21)(17)(10)", false
		}
		return 0, "", false
	}},
	{tag: "batch-length", apply: func(in *ruleInput) (float64, string, bool) {
		if in.elem.AI == "10" {
			if n := len(in.elem.RawValue); n >= 2 && n <= 10 {
				return in.w.BatchLengthCommon, fmt.Sprintf("batch length %d in common range [2,10]", n), false
			}
		}
		return 0, "", false
	}},
	{tag: "serial-length", apply: func(in *ruleInput) (float64, string, bool) {
		if in.elem.AI == "21" {
			if n := len(in.elem.RawValue); n >= 6 && n <= 20 {
				return in.w.SerialLengthCommon, fmt.Sprintf("serial length %d in common range [6,20]", n), false
			}
		}
		return 0, "", false
	}},
	{tag: "internal-absorbable", apply: func(in *ruleInput) (float64, string, bool) {
		def := beamIndex[in.elem.AI]
		if def == nil || !def.internal {
			return 0, "", false
		}
		if _, ok := in.whitelist[in.elem.AI]; ok {
			return 0, "", false
		}
		if len(in.cand.elements) < 2 {
			return 0, "", false
		}
		prev := &in.cand.elements[len(in.cand.elements)-2]
		if prev.AI != "10" && prev.AI != "21" {
			return 0, "", false
		}
		combined := len(prev.RawValue) + len(in.elem.AI) + len(in.elem.RawValue)
		if combined <= beamIndex[prev.AI].maxLen {
			return -in.w.InternalAbsorbable, fmt.Sprintf("internal AI(%s) where AI(%s) could absorb it", in.elem.AI, prev.AI), false
		}
		return 0, "", false
	}},
	{tag: "repeated-batch", apply: func(in *ruleInput) (float64, string, bool) {
		if in.elem.AI == "10" && countAI(in.cand, "10") > 1 {
			return -in.w.RepeatedBatch, "repeated AI(10)", false
		}
		return 0, "", false
	}},
	{tag: "repeated-serial", apply: func(in *ruleInput) (float64, string, bool) {
		if in.elem.AI == "21" && countAI(in.cand, "21") > 1 {
			return -in.w.RepeatedSerial, "repeated AI(21)", false
		}
		return 0, "", false
	}},
	{tag: "internal-with-both", apply: func(in *ruleInput) (float64, string, bool) {
		def := beamIndex[in.elem.AI]
		if def == nil || !def.internal {
			return 0, "", false
		}
		if _, ok := in.whitelist[in.elem.AI]; ok {
			return 0, "", false
		}
		if countAI(in.cand, "10") > 0 && countAI(in.cand, "21") > 0 {
			return -in.w.InternalWithBoth, fmt.Sprintf("internal AI(%s) while batch and serial both present", in.elem.AI), false
		}
		return 0, "", false
	}},
	{tag: "long-batch", apply: func(in *ruleInput) (float64, string, bool) {
		if in.elem.AI == "10" && len(in.elem.RawValue) > 12 {
			return -in.w.LongBatch, fmt.Sprintf("batch length %d > 12", len(in.elem.RawValue)), false
		}
		return 0, "", false
	}},
	{tag: "short-serial", apply: func(in *ruleInput) (float64, string, bool) {
		if in.elem.AI == "21" && len(in.elem.RawValue) < 4 {
			return -in.w.ShortSerial, fmt.Sprintf("serial length %d < 4", len(in.elem.RawValue)), false
		}
		return 0, "", false
	}},
	{tag: "concise-complete", apply: func(in *ruleInput) (float64, string, bool) {
		if in.cand.position >= len(in.input) && len(in.cand.elements) <= 4 {
			return in.w.ConciseComplete, fmt.Sprintf("concise parse with %d elements", len(in.cand.elements)), false
		}
		return 0, "", false
	}},
}

// scoreExtension applies the rule table to a candidate that just gained
// elem, recording every hit on the reasoning trail.
func scoreExtension(c *candidate, elem *Element, input string, w *Weights, whitelist map[string]struct{}) {
	in := &ruleInput{cand: c, elem: elem, input: input, w: w, whitelist: whitelist}
	for _, rule := range scoreRules {
		delta, reason, eliminate := rule.apply(in)
		if eliminate {
			c.score = math.Inf(-1)
			c.reasoning = append(c.reasoning, "-inf: "+reason)
			return
		}
		if delta != 0 {
			c.score += delta
			c.reasoning = append(c.reasoning, fmt.Sprintf("%+g: %s", delta, reason))
		}
	}
}

// tailIs reports whether the candidate's element sequence ends with the
// given AI codes.
func tailIs(c *candidate, codes ...string) bool {
	if len(c.elements) < len(codes) {
		return false
	}
	offset := len(c.elements) - len(codes)
	for i, code := range codes {
		if c.elements[offset+i].AI != code {
			return false
		}
	}
	return true
}

func countAI(c *candidate, code string) int {
	n := 0
	for i := range c.elements {
		if c.elements[i].AI == code {
			n++
		}
	}
	return n
}
