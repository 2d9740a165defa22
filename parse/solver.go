package parse

import (
	"fmt"
	"sort"

	"github.com/MeKo-Tech/gs1parse/ai"
)

// solverPath is one completion of the input from some position onward.
type solverPath struct {
	elements   []Element
	confidence float64
	notes      []string
}

// score folds element validity into the path confidence.
func (sp *solverPath) score() float64 {
	s := sp.confidence
	if len(sp.elements) > 0 {
		valid := 0
		for _, e := range sp.elements {
			if e.Valid {
				valid++
			}
		}
		s += 0.2 * float64(valid) / float64(len(sp.elements))
	}
	return clamp01(s)
}

// solver resolves a single ambiguous boundary left behind by the fast path.
// solve(pos) is memoized by position with per-position truncation, keeping
// both depth and memory bounded regardless of input.
type solver struct {
	p      *Parser
	text   string
	gsSeen bool
	memo   map[int][]solverPath
}

// solveAmbiguous returns up to MaxAlternatives+1 completions of text, best
// first.
func (p *Parser) solveAmbiguous(text string, gsSeen bool) []solverPath {
	s := &solver{p: p, text: text, gsSeen: gsSeen, memo: make(map[int][]solverPath)}
	paths := s.solve(0, 0)
	sort.SliceStable(paths, func(i, j int) bool { return paths[i].score() > paths[j].score() })
	return paths[:min(len(paths), p.opts.MaxAlternatives+1)]
}

func (s *solver) solve(pos, depth int) []solverPath {
	if pos >= len(s.text) {
		return []solverPath{{confidence: 1.0}}
	}
	if cached, ok := s.memo[pos]; ok {
		return cached
	}
	if depth > maxSolverDepth {
		return nil
	}

	var paths []solverPath

	// Branch: consume a separator. Properly delimited continuations earn a
	// small confidence bonus.
	if s.text[pos] == gsByte {
		for _, sp := range s.solve(pos+1, depth) {
			bonus := sp
			bonus.confidence = clamp01(sp.confidence + 0.05)
			paths = append(paths, bonus)
		}
	}

	entry, codeLen := s.p.dict.LongestMatch(s.text, pos)
	if entry == nil {
		s.memo[pos] = paths
		return paths
	}

	// The longest match first, then shorter registered codes at the same
	// position: a 4-digit match may really be a 2-digit AI whose value
	// happens to start with digits.
	type match struct {
		entry   *ai.Entry
		codeLen int
	}
	matches := []match{{entry, codeLen}}
	for l := codeLen - 1; l >= 2; l-- {
		if shorter := s.p.dict.Get(s.text[pos : pos+l]); shorter != nil {
			matches = append(matches, match{shorter, l})
		}
	}

	for _, m := range matches {
		dataStart := pos + m.codeLen
		for _, dataLen := range s.lengthsToTry(m.entry, dataStart) {
			end := dataStart + dataLen
			if end > len(s.text) {
				continue
			}
			value := s.text[dataStart:end]

			// Cheap prune before full validation.
			if m.entry.DataType == ai.Numeric && !isDigits(value) {
				continue
			}

			processed, vr, _ := validateElement(m.entry, value, &s.p.opts)
			if !vr.Valid && s.p.opts.StrictMode {
				continue
			}

			// The next position must be plausible: end of input, a
			// separator, or the start of a recognized AI.
			unterminated := end < len(s.text) && s.text[end] != gsByte
			if unterminated {
				if next, _ := s.p.dict.LongestMatch(s.text, end); next == nil {
					continue
				}
			}

			elemConf := 1.0
			if !vr.Valid {
				elemConf = 0.7
			}
			if m.entry.SeparatorRequired && unterminated {
				ratio := float64(dataLen) / float64(max(m.entry.MaxLength, 1))
				elemConf *= 0.8 + 0.2*min(ratio, 1.0)
			}
			// A variable field swallowing a tail that itself looks like
			// another AI is suspicious even when it reaches input end.
			if !m.entry.Fixed() && end == len(s.text) && s.valueHidesAI(value, m.entry.MinLength) {
				elemConf *= 0.7
			}

			element := newElement(m.entry, value, processed, vr, pos, end)

			for _, sp := range s.solve(end, depth+1) {
				joined := solverPath{
					elements:   append([]Element{element}, sp.elements...),
					confidence: elemConf * sp.confidence,
					notes:      append([]string(nil), sp.notes...),
				}
				if m.entry.SeparatorRequired && unterminated {
					joined.notes = append(joined.notes, fmt.Sprintf("guessed boundary for AI(%s)", m.entry.Code))
				}
				paths = append(paths, joined)
			}
		}
	}

	// Bounded cache: keep only the strongest completions per position.
	sort.SliceStable(paths, func(i, j int) bool { return paths[i].score() > paths[j].score() })
	paths = paths[:min(len(paths), s.p.opts.MaxAlternatives*2)]
	s.memo[pos] = paths
	return paths
}

// lengthsToTry enumerates candidate value lengths for an entry starting at
// dataStart. When no separator exists anywhere in the input, longer values
// are more plausible (the field likely runs to the end), so lengths descend;
// with separators present elsewhere, shorter values are tried first.
func (s *solver) lengthsToTry(entry *ai.Entry, dataStart int) []int {
	if entry.Fixed() {
		return []int{entry.FixedLength}
	}
	maxLen := min(entry.MaxLength, len(s.text)-dataStart)
	minLen := max(entry.MinLength, 1)
	if maxLen < minLen {
		return nil
	}
	lengths := make([]int, 0, maxLen-minLen+1)
	if s.gsSeen {
		for l := minLen; l <= maxLen; l++ {
			lengths = append(lengths, l)
		}
	} else {
		for l := maxLen; l >= minLen; l-- {
			lengths = append(lengths, l)
		}
	}
	return lengths
}

// valueHidesAI reports whether a registered AI code starts anywhere inside
// value beyond the minimum keepable prefix.
func (s *solver) valueHidesAI(value string, minLen int) bool {
	for checkLen := minLen; checkLen < len(value)-1; checkLen++ {
		if next, _ := s.p.dict.LongestMatch(value, checkLen); next != nil {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
