package spell

// Vocabulary is an ordered set of known-good reference words. Construction
// preserves first-appearance order; Suggest uses that order as the tie-break
// between equally distant candidates, so two runs over the same vocabulary
// always rank the same way.
type Vocabulary struct {
	words []string
	index map[string]struct{}
}

// New builds a vocabulary from words, dropping duplicates and empty strings
// while keeping the order in which words first appear.
func New(words ...string) Vocabulary {
	v := Vocabulary{
		words: make([]string, 0, len(words)),
		index: make(map[string]struct{}, len(words)),
	}
	for _, w := range words {
		if w == "" {
			continue
		}
		if _, seen := v.index[w]; seen {
			continue
		}
		v.index[w] = struct{}{}
		v.words = append(v.words, w)
	}
	return v
}

// Contains reports whether word is a known-good entry.
func (v Vocabulary) Contains(word string) bool {
	_, ok := v.index[word]
	return ok
}

func (v Vocabulary) Len() int { return len(v.words) }

// Words returns the entries in vocabulary order. The slice is a copy.
func (v Vocabulary) Words() []string {
	out := make([]string, len(v.words))
	copy(out, v.words)
	return out
}

// Add returns a new vocabulary with extra appended after the existing
// entries. The receiver is left untouched.
func (v Vocabulary) Add(extra ...string) Vocabulary {
	combined := make([]string, 0, len(v.words)+len(extra))
	combined = append(combined, v.words...)
	combined = append(combined, extra...)
	return New(combined...)
}
