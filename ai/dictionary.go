package ai

import "sync"

// Dictionary is a read-only catalog of AI entries with trie-backed lookup.
// Build one with NewDictionary or use the shared Default instance.
type Dictionary struct {
	entries map[string]*Entry
	index   trie
}

// NewDictionary builds a dictionary from explicit entries, keyed by code.
func NewDictionary(entries map[string]*Entry) *Dictionary {
	d := &Dictionary{entries: make(map[string]*Entry, len(entries))}
	for code, entry := range entries {
		d.entries[code] = entry
		d.index.insert(code, entry)
	}
	return d
}

// Get returns the entry for an exact AI code, or nil if unregistered.
func (d *Dictionary) Get(code string) *Entry {
	return d.entries[code]
}

// LongestMatch returns the entry of the longest registered AI code starting
// at pos, and the code's length. It returns (nil, 0) when no code matches.
func (d *Dictionary) LongestMatch(text string, pos int) (*Entry, int) {
	return d.index.longestMatch(text, pos)
}

// Len reports the number of registered codes.
func (d *Dictionary) Len() int { return len(d.entries) }

// Codes returns a copy of all registered AI codes.
func (d *Dictionary) Codes() []string {
	codes := make([]string, 0, len(d.entries))
	for code := range d.entries {
		codes = append(codes, code)
	}
	return codes
}

var (
	defaultMu   sync.Mutex
	defaultDict *Dictionary
)

// Default returns the process-wide dictionary built from the embedded
// specification table. The build happens at most once; the result is
// read-only and safe for concurrent use.
func Default() *Dictionary {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultDict == nil {
		defaultDict = NewDictionary(loadTable())
	}
	return defaultDict
}

// Rebuild discards the shared dictionary and builds a fresh one from the
// embedded table. It exists for tests; production code never mutates the
// catalog after Default has run.
func Rebuild() *Dictionary {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultDict = NewDictionary(loadTable())
	return defaultDict
}
