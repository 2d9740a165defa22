package ai

// maxCodeLen is the longest registered AI code length.
const maxCodeLen = 4

type trieNode struct {
	children map[byte]*trieNode
	entry    *Entry
}

// trie maps AI codes to entries with longest-prefix matching.
type trie struct {
	root trieNode
}

func (t *trie) insert(code string, entry *Entry) {
	node := &t.root
	for i := 0; i < len(code); i++ {
		if node.children == nil {
			node.children = make(map[byte]*trieNode)
		}
		next, ok := node.children[code[i]]
		if !ok {
			next = &trieNode{}
			node.children[code[i]] = next
		}
		node = next
	}
	node.entry = entry
}

// longestMatch walks at most maxCodeLen characters of text from pos and
// returns the entry of the longest registered code together with its length.
// A prefix of a longer code that is not itself registered never matches.
func (t *trie) longestMatch(text string, pos int) (*Entry, int) {
	node := &t.root
	var best *Entry
	bestLen := 0
	for i := 0; i < maxCodeLen && pos+i < len(text); i++ {
		next, ok := node.children[text[pos+i]]
		if !ok {
			break
		}
		node = next
		if node.entry != nil {
			best = node.entry
			bestLen = i + 1
		}
	}
	return best, bestLen
}
