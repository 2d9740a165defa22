package ai

import (
	"fmt"
	"strconv"
	"strings"
)

// parseComponent parses one component of a syntax specification, e.g. "N14",
// "X..20" or "N6,yymmd0". The leading letter is the data type, the length part
// is either a fixed count or "..max" for a variable [1,max] range, and any
// comma-separated suffixes are linter tags (csum, yymmdd, key, ...).
func parseComponent(spec string) (Component, error) {
	parts := strings.Split(spec, ",")
	typeLen := parts[0]
	if len(typeLen) < 2 {
		return Component{}, fmt.Errorf("component %q too short", spec)
	}

	var c Component
	switch typeLen[0] {
	case 'N':
		c.Type = Numeric
	case 'X', 'Y':
		// Y (importer index charset) is handled as plain alphanumeric here.
		c.Type = Alphanumeric
	default:
		return Component{}, fmt.Errorf("component %q has unknown data type", spec)
	}

	lenSpec := typeLen[1:]
	if rest, ok := strings.CutPrefix(lenSpec, ".."); ok {
		maxLen, err := strconv.Atoi(rest)
		if err != nil {
			return Component{}, fmt.Errorf("component %q: bad max length: %w", spec, err)
		}
		c.Min, c.Max = 1, maxLen
	} else {
		n, err := strconv.Atoi(lenSpec)
		if err != nil {
			return Component{}, fmt.Errorf("component %q: bad length: %w", spec, err)
		}
		c.Min, c.Max = n, n
	}

	c.Linters = parts[1:]
	return c, nil
}

// buildEntry assembles an Entry from a whitespace-separated multi-component
// specification string. The fixed flag mirrors the predefined-length marker of
// the syntax dictionary: fixed AIs need no trailing separator.
func buildEntry(code, title, spec string, fixed bool, req, excl []string, dlpKey bool, decimals int) (*Entry, error) {
	e := &Entry{
		Code:             code,
		Title:            title,
		DataType:         Alphanumeric,
		DecimalPositions: decimals,
		RequiredAIs:      req,
		ExclusiveAIs:     excl,
		DigitalLinkKey:   dlpKey,
	}

	for _, part := range strings.Fields(spec) {
		c, err := parseComponent(part)
		if err != nil {
			return nil, err
		}
		e.Components = append(e.Components, c)
		e.MinLength += c.Min
		e.MaxLength += c.Max
		e.DataType = c.Type

		for _, linter := range c.Linters {
			switch linter {
			case "yymmdd":
				e.DateFormat = DateYYMMDD
			case "yymmd0":
				e.DateFormat = DateYYMMD0
			case "yyyymmdd":
				e.DateFormat = DateYYYYMMDD
			case "yymmddhh":
				e.DateFormat = DateYYMMDDHH
			case "csum", "csumalpha":
				e.CheckDigit = true
			}
		}
	}
	if len(e.Components) == 0 {
		return nil, fmt.Errorf("AI %s: empty specification", code)
	}

	e.SeparatorRequired = true
	if fixed {
		e.FixedLength = e.MaxLength
		e.SeparatorRequired = false
	}
	return e, nil
}
