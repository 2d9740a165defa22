// Package parse decodes GS1 element strings into typed identifier fields.
//
// Three engines share one result shape. Separator-bearing input goes through
// a linear fast-path scan; a single ambiguous boundary escalates to a
// memoized solver; input without any separator - the dominant real-world
// case - is handled by a scored beam search over a restricted catalog.
// All engines degrade to partial, confidence-weighted results instead of
// failing: scanner output is imperfect by nature.
package parse
