// Package validate implements the GS1 field validators: Mod-10 check digits,
// date formats, character set and length checks, and implied-decimal
// decoding. All validators report problems through a Result value and never
// panic on malformed input.
package validate

// Result carries the outcome of a validation.
type Result struct {
	Valid  bool
	Errors []string
	Meta   map[string]any
}

func okResult() Result {
	return Result{Valid: true, Meta: map[string]any{}}
}

func (r *Result) fail(msg string) {
	r.Valid = false
	r.Errors = append(r.Errors, msg)
}

// Merge folds another result into r: validity ANDs, errors and metadata
// accumulate.
func (r *Result) Merge(other Result) {
	if !other.Valid {
		r.Valid = false
	}
	r.Errors = append(r.Errors, other.Errors...)
	if r.Meta == nil {
		r.Meta = map[string]any{}
	}
	for k, v := range other.Meta {
		r.Meta[k] = v
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
