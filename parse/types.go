package parse

// DiagCode classifies a parse diagnostic.
type DiagCode string

const (
	DiagUnknownAI         DiagCode = "UNKNOWN_AI"
	DiagInvalidLength     DiagCode = "INVALID_LENGTH"
	DiagInvalidFormat     DiagCode = "INVALID_FORMAT"
	DiagInvalidCheckDigit DiagCode = "INVALID_CHECK_DIGIT"
	DiagInvalidDate       DiagCode = "INVALID_DATE"
	DiagMissingSeparator  DiagCode = "MISSING_SEPARATOR"
	DiagAmbiguousParse    DiagCode = "AMBIGUOUS_PARSE"
	DiagExtraSeparator    DiagCode = "EXTRA_SEPARATOR"
	DiagTruncatedData     DiagCode = "TRUNCATED_DATA"
)

// Diagnostic is a coded, non-fatal finding attached to a parse result.
// At is the input position the finding refers to, or -1 when not positional.
type Diagnostic struct {
	Code         DiagCode `json:"code"`
	Message      string   `json:"message"`
	At           int      `json:"at"`
	AI           string   `json:"ai,omitempty"`
	Alternatives int      `json:"alternatives,omitempty"`
}

// Element is one decoded AI field.
//
// Value holds the normalized form (ISO date string, decoded decimal, ...)
// and falls back to the raw substring when no normalization applies. Meta
// carries validator detail such as check-digit outcome and date parts.
type Element struct {
	AI       string         `json:"ai"`
	Name     string         `json:"name"`
	RawValue string         `json:"raw_value"`
	Value    any            `json:"value"`
	Valid    bool           `json:"valid"`
	Errors   []string       `json:"errors,omitempty"`
	Meta     map[string]any `json:"meta,omitempty"`
	Start    int            `json:"start"`
	End      int            `json:"end"`
}

// Alternative is a competing parse kept alongside the best one.
type Alternative struct {
	Confidence float64   `json:"confidence"`
	Score      float64   `json:"score,omitempty"`
	Elements   []Element `json:"elements"`
	Reasoning  []string  `json:"reasoning,omitempty"`
}

// Result is the outcome of parsing one element string.
type Result struct {
	Raw           string        `json:"raw"`
	Normalized    string        `json:"normalized"`
	Symbology     string        `json:"symbology,omitempty"`
	SeparatorSeen bool          `json:"separator_seen"`
	Elements      []Element     `json:"elements"`
	Diagnostics   []Diagnostic  `json:"diagnostics,omitempty"`
	Alternatives  []Alternative `json:"alternatives,omitempty"`
	Confidence    float64       `json:"confidence"`
}

// Element returns the first element carrying the given AI code, or nil.
func (r *Result) Element(code string) *Element {
	for i := range r.Elements {
		if r.Elements[i].AI == code {
			return &r.Elements[i]
		}
	}
	return nil
}

// HasDiagnostic reports whether any diagnostic carries the given code.
func (r *Result) HasDiagnostic(code DiagCode) bool {
	for _, d := range r.Diagnostics {
		if d.Code == code {
			return true
		}
	}
	return false
}

func (r *Result) addDiag(d Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)
}
