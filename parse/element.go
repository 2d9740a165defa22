package parse

import (
	"fmt"

	"github.com/MeKo-Tech/gs1parse/ai"
	"github.com/MeKo-Tech/gs1parse/validate"
)

// validateElement runs the full validator stack for one AI value: length,
// character set, check digit, date decode and implied-decimal decode. It
// returns the normalized value, the merged validation outcome, and the
// diagnostic code of the first failure (empty when valid).
func validateElement(entry *ai.Entry, value string, opts *Options) (any, validate.Result, DiagCode) {
	vr := validate.Result{Valid: true, Meta: map[string]any{}}
	var processed any = value
	var code DiagCode

	record := func(r validate.Result, c DiagCode) {
		if !r.Valid && code == "" {
			code = c
		}
		vr.Merge(r)
	}

	// Length policy.
	n := len(value)
	if entry.Fixed() {
		if n != entry.FixedLength {
			lr := validate.Result{Valid: false, Errors: []string{
				fmt.Sprintf("length must be %d, got %d", entry.FixedLength, n),
			}}
			record(lr, DiagInvalidLength)
		}
	} else {
		if n < entry.MinLength {
			record(validate.Result{Valid: false, Errors: []string{
				fmt.Sprintf("length %d below minimum %d", n, entry.MinLength),
			}}, DiagInvalidLength)
		}
		if n > entry.MaxLength {
			record(validate.Result{Valid: false, Errors: []string{
				fmt.Sprintf("length %d exceeds maximum %d", n, entry.MaxLength),
			}}, DiagInvalidLength)
		}
	}

	// Character set.
	if entry.DataType == ai.Numeric {
		if !isDigits(value) {
			record(validate.Result{Valid: false, Errors: []string{"value must be numeric"}}, DiagInvalidFormat)
		}
	} else if !validate.InCSET82(value) {
		record(validate.Result{Valid: false, Errors: []string{"value contains characters outside CSET 82"}}, DiagInvalidFormat)
	}

	// Check digit (GTIN, SSCC, GLN, ...).
	if entry.CheckDigit && isDigits(value) && n >= 2 {
		record(validate.CheckDigit(value), DiagInvalidCheckDigit)
	}

	// Date decode.
	if entry.DateFormat != ai.DateNone {
		dr := validate.Date(value, string(entry.DateFormat), opts.CenturyPivot)
		record(dr, DiagInvalidDate)
		if dr.Valid {
			if s, ok := dr.Meta["date_ddmmyyyy"].(string); ok {
				processed = s
			}
		}
	}

	// Implied decimal point.
	if entry.DecimalPositions >= 0 && isDigits(value) {
		v, formatted, err := validate.Decimal(value, entry.DecimalPositions)
		if err != nil {
			vr.Errors = append(vr.Errors, fmt.Sprintf("decimal decode error: %v", err))
		} else {
			vr.Meta["decimal_value"] = v
			vr.Meta["decimal_formatted"] = formatted
			vr.Meta["decimal_positions"] = entry.DecimalPositions
			processed = v
		}
	}

	return processed, vr, code
}

// newElement builds an Element from a validated span.
func newElement(entry *ai.Entry, value string, processed any, vr validate.Result, start, end int) Element {
	return Element{
		AI:       entry.Code,
		Name:     entry.Title,
		RawValue: value,
		Value:    processed,
		Valid:    vr.Valid,
		Errors:   vr.Errors,
		Meta:     vr.Meta,
		Start:    start,
		End:      end,
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
