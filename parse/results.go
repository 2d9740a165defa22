package parse

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ToJSON serializes a Result to pretty JSON.
func ToJSON(res *Result) (string, error) {
	if res == nil {
		return "", errors.New("nil result")
	}
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ToPlainText renders the decoded elements one per line in the common
// (AI)value notation, followed by the confidence.
func ToPlainText(res *Result) (string, error) {
	if res == nil {
		return "", errors.New("nil result")
	}
	var lines []string
	lines = make([]string, 0, len(res.Elements)+1)
	for _, e := range res.Elements {
		lines = append(lines, fmt.Sprintf("(%s)%s", e.AI, e.RawValue))
	}
	lines = append(lines, fmt.Sprintf("confidence: %.2f", res.Confidence))
	return strings.Join(lines, "\n"), nil
}

// ToCSV exports per-element structured data as CSV with a header row.
func ToCSV(res *Result) (string, error) {
	if res == nil {
		return "", errors.New("nil result")
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"ai", "name", "raw_value", "value", "valid", "start", "end"})
	for _, e := range res.Elements {
		row := []string{
			e.AI,
			e.Name,
			e.RawValue,
			fmt.Sprint(e.Value),
			fmt.Sprintf("%t", e.Valid),
			fmt.Sprintf("%d", e.Start),
			fmt.Sprintf("%d", e.End),
		}
		_ = w.Write(row)
	}
	w.Flush()
	return buf.String(), nil
}
