package spell

import "sort"

// DefaultMaxDistance bounds how far a word may drift from a vocabulary
// entry and still be considered a likely misspelling.
const DefaultMaxDistance = 2

// Suggest returns the vocabulary words within maxDistance edits of query,
// closest first; equally distant words keep their vocabulary order. A query
// that is itself a vocabulary entry needs no correcting and yields nothing.
func Suggest(v Vocabulary, query string, maxDistance int) []string {
	if v.Contains(query) {
		return nil
	}

	type candidate struct {
		word string
		dist int
	}
	var found []candidate
	for _, w := range v.words {
		d, ok := distanceWithin(query, w, maxDistance)
		if !ok || d == 0 {
			continue
		}
		found = append(found, candidate{word: w, dist: d})
	}
	if len(found) == 0 {
		return nil
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].dist < found[j].dist
	})

	out := make([]string, len(found))
	for i, c := range found {
		out[i] = c.word
	}
	return out
}
