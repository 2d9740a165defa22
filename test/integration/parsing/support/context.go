// Package support holds the shared state and step definitions for the
// parsing feature suite.
package support

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"github.com/MeKo-Tech/gs1parse/parse"
)

// TestContext carries per-scenario parser state.
type TestContext struct {
	opts   parse.Options
	result parse.Result
	parsed bool
}

// NewTestContext creates a fresh context with default options.
func NewTestContext() *TestContext {
	return &TestContext{opts: parse.DefaultOptions()}
}

// Reset clears parse state between scenarios.
func (tc *TestContext) Reset() {
	tc.opts = parse.DefaultOptions()
	tc.result = parse.Result{}
	tc.parsed = false
}

// RegisterParsingSteps wires the step definitions.
func (tc *TestContext) RegisterParsingSteps(sc *godog.ScenarioContext) {
	sc.Step(`^strict mode is enabled$`, tc.strictModeEnabled)
	sc.Step(`^ambiguity resolution is disabled$`, tc.ambiguityDisabled)
	sc.Step(`^the vendor whitelists internal AI "([^"]*)"$`, tc.whitelistInternalAI)
	sc.Step(`^I parse the element string "([^"]*)"$`, tc.parseElementString)
	sc.Step(`^the parse should succeed with (\d+) elements?$`, tc.parseSucceedsWithElements)
	sc.Step(`^the elements in order should be "([^"]*)"$`, tc.elementsInOrder)
	sc.Step(`^element "([^"]*)" should have raw value "([^"]*)"$`, tc.elementHasRawValue)
	sc.Step(`^element "([^"]*)" should decode to "([^"]*)"$`, tc.elementDecodesTo)
	sc.Step(`^element "([^"]*)" should be invalid$`, tc.elementIsInvalid)
	sc.Step(`^the symbology should be "([^"]*)"$`, tc.symbologyIs)
	sc.Step(`^the confidence should be at least ([0-9.]+)$`, tc.confidenceAtLeast)
	sc.Step(`^the confidence should be below ([0-9.]+)$`, tc.confidenceBelow)
	sc.Step(`^the confidence should be zero$`, tc.confidenceZero)
	sc.Step(`^the result should carry diagnostic "([^"]*)"$`, tc.hasDiagnostic)
	sc.Step(`^the result should not carry diagnostic "([^"]*)"$`, tc.lacksDiagnostic)
	sc.Step(`^the result should have no elements$`, tc.hasNoElements)
	sc.Step(`^the result should offer alternatives$`, tc.offersAlternatives)
	sc.Step(`^no internal-use element should be emitted$`, tc.noInternalElements)
}

func (tc *TestContext) strictModeEnabled() error {
	tc.opts.StrictMode = true
	return nil
}

func (tc *TestContext) ambiguityDisabled() error {
	tc.opts.AllowAmbiguous = false
	return nil
}

func (tc *TestContext) whitelistInternalAI(code string) error {
	tc.opts.VendorInternalAIs = append(tc.opts.VendorInternalAIs, code)
	return nil
}

func (tc *TestContext) parseElementString(input string) error {
	// Feature files spell the group separator as <GS>; the parser treats it
	// as a separator stand-in.
	tc.result = parse.NewParser(tc.opts).Parse(input)
	tc.parsed = true
	return nil
}

func (tc *TestContext) requireParsed() error {
	if !tc.parsed {
		return fmt.Errorf("no element string parsed yet")
	}
	return nil
}

func (tc *TestContext) parseSucceedsWithElements(n int) error {
	if err := tc.requireParsed(); err != nil {
		return err
	}
	if len(tc.result.Elements) != n {
		return fmt.Errorf("expected %d elements, got %d (%s)", n, len(tc.result.Elements), summarize(&tc.result))
	}
	return nil
}

func (tc *TestContext) elementsInOrder(csv string) error {
	if err := tc.requireParsed(); err != nil {
		return err
	}
	want := strings.Split(csv, ",")
	if len(tc.result.Elements) != len(want) {
		return fmt.Errorf("expected %d elements, got %d (%s)", len(want), len(tc.result.Elements), summarize(&tc.result))
	}
	for i, code := range want {
		if tc.result.Elements[i].AI != code {
			return fmt.Errorf("element %d: expected AI(%s), got AI(%s)", i, code, tc.result.Elements[i].AI)
		}
	}
	return nil
}

func (tc *TestContext) elementHasRawValue(code, value string) error {
	elem, err := tc.element(code)
	if err != nil {
		return err
	}
	if elem.RawValue != value {
		return fmt.Errorf("AI(%s): expected raw value %q, got %q", code, value, elem.RawValue)
	}
	return nil
}

func (tc *TestContext) elementDecodesTo(code, value string) error {
	elem, err := tc.element(code)
	if err != nil {
		return err
	}
	got := fmt.Sprint(elem.Value)
	if got != value {
		return fmt.Errorf("AI(%s): expected decoded value %q, got %q", code, value, got)
	}
	return nil
}

func (tc *TestContext) elementIsInvalid(code string) error {
	elem, err := tc.element(code)
	if err != nil {
		return err
	}
	if elem.Valid {
		return fmt.Errorf("AI(%s) unexpectedly valid", code)
	}
	return nil
}

func (tc *TestContext) element(code string) (*parse.Element, error) {
	if err := tc.requireParsed(); err != nil {
		return nil, err
	}
	elem := tc.result.Element(code)
	if elem == nil {
		return nil, fmt.Errorf("no element with AI(%s) in result (%s)", code, summarize(&tc.result))
	}
	return elem, nil
}

func (tc *TestContext) symbologyIs(name string) error {
	if err := tc.requireParsed(); err != nil {
		return err
	}
	if tc.result.Symbology != name {
		return fmt.Errorf("expected symbology %q, got %q", name, tc.result.Symbology)
	}
	return nil
}

func (tc *TestContext) confidenceAtLeast(threshold string) error {
	return tc.compareConfidence(threshold, true)
}

func (tc *TestContext) confidenceBelow(threshold string) error {
	return tc.compareConfidence(threshold, false)
}

func (tc *TestContext) compareConfidence(threshold string, atLeast bool) error {
	if err := tc.requireParsed(); err != nil {
		return err
	}
	want, err := strconv.ParseFloat(threshold, 64)
	if err != nil {
		return fmt.Errorf("bad threshold %q: %w", threshold, err)
	}
	if atLeast && tc.result.Confidence < want {
		return fmt.Errorf("confidence %.3f below %.3f", tc.result.Confidence, want)
	}
	if !atLeast && tc.result.Confidence >= want {
		return fmt.Errorf("confidence %.3f not below %.3f", tc.result.Confidence, want)
	}
	return nil
}

func (tc *TestContext) confidenceZero() error {
	if err := tc.requireParsed(); err != nil {
		return err
	}
	if tc.result.Confidence != 0 {
		return fmt.Errorf("expected zero confidence, got %.3f", tc.result.Confidence)
	}
	return nil
}

func (tc *TestContext) hasDiagnostic(code string) error {
	if err := tc.requireParsed(); err != nil {
		return err
	}
	if !tc.result.HasDiagnostic(parse.DiagCode(code)) {
		return fmt.Errorf("diagnostic %s not present (%s)", code, summarize(&tc.result))
	}
	return nil
}

func (tc *TestContext) lacksDiagnostic(code string) error {
	if err := tc.requireParsed(); err != nil {
		return err
	}
	if tc.result.HasDiagnostic(parse.DiagCode(code)) {
		return fmt.Errorf("diagnostic %s unexpectedly present", code)
	}
	return nil
}

func (tc *TestContext) hasNoElements() error {
	if err := tc.requireParsed(); err != nil {
		return err
	}
	if len(tc.result.Elements) != 0 {
		return fmt.Errorf("expected no elements, got %d (%s)", len(tc.result.Elements), summarize(&tc.result))
	}
	return nil
}

func (tc *TestContext) offersAlternatives() error {
	if err := tc.requireParsed(); err != nil {
		return err
	}
	if len(tc.result.Alternatives) == 0 {
		return fmt.Errorf("no alternatives offered")
	}
	return nil
}

func (tc *TestContext) noInternalElements() error {
	if err := tc.requireParsed(); err != nil {
		return err
	}
	for _, e := range tc.result.Elements {
		if len(e.AI) == 2 && e.AI[0] == '9' {
			return fmt.Errorf("internal AI(%s) emitted", e.AI)
		}
	}
	return nil
}

func summarize(res *parse.Result) string {
	parts := make([]string, 0, len(res.Elements))
	for _, e := range res.Elements {
		parts = append(parts, fmt.Sprintf("(%s)%s", e.AI, e.RawValue))
	}
	return strings.Join(parts, " ")
}
