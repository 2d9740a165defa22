package ai

import (
	_ "embed"
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed table.yaml
var rawTable []byte

// tableRow is one row of the embedded specification table.
type tableRow struct {
	Code   string   `yaml:"code"`
	Fixed  bool     `yaml:"fixed"`
	Spec   string   `yaml:"spec"`
	Req    []string `yaml:"req"`
	Ex     []string `yaml:"ex"`
	DLPKey bool     `yaml:"dlpkey"`
	Title  string   `yaml:"title"`
}

type specTable struct {
	Entries []tableRow `yaml:"entries"`
}

// loadTable parses the embedded specification table into concrete entries.
// Family rows (code ending in "n") expand into ten entries carrying the
// implied decimal place count. Malformed rows are skipped, never fatal.
func loadTable() map[string]*Entry {
	var table specTable
	if err := yaml.Unmarshal(rawTable, &table); err != nil {
		// The table ships with the binary; an unparsable table yields an
		// empty catalog rather than a panic at first use.
		slog.Error("AI specification table unreadable", "error", err)
		return map[string]*Entry{}
	}

	entries := make(map[string]*Entry, len(table.Entries)+16)
	for _, row := range table.Entries {
		if row.Code == "" || row.Spec == "" {
			continue
		}
		for _, exp := range expandRow(row) {
			entry, err := buildEntry(exp.code, row.Title, row.Spec, row.Fixed, row.Req, row.Ex, row.DLPKey, exp.decimals)
			if err != nil {
				slog.Debug("skipping malformed AI table row", "code", exp.code, "error", err)
				continue
			}
			entries[exp.code] = entry
		}
	}
	return entries
}

type expandedCode struct {
	code     string
	decimals int
}

// expandRow turns a decimal-suffix family code like "310n" into 3100..3109.
// Plain codes pass through with no implied decimals.
func expandRow(row tableRow) []expandedCode {
	if !strings.HasSuffix(row.Code, "n") {
		return []expandedCode{{code: row.Code, decimals: -1}}
	}
	base := strings.TrimSuffix(row.Code, "n")
	out := make([]expandedCode, 0, 10)
	for n := 0; n < 10; n++ {
		out = append(out, expandedCode{code: fmt.Sprintf("%s%d", base, n), decimals: n})
	}
	return out
}
