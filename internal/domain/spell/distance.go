package spell

// Distance returns the Levenshtein edit distance between a and b: the
// minimum number of single-rune insertions, deletions and substitutions
// that turn one into the other. Comparison is rune-aware, so multi-byte
// characters count as one edit.
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// Two rolling rows of the full DP matrix.
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(
				curr[j-1]+1,    // insertion
				prev[j]+1,      // deletion
				prev[j-1]+cost, // substitution or match
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// distanceWithin is Distance bounded by max. It returns the exact distance
// when that distance is at most max, and reports false otherwise, bailing
// out as soon as an entire row of the matrix exceeds the bound.
func distanceWithin(a, b string, max int) (int, bool) {
	if a == b {
		return 0, true
	}
	if max <= 0 {
		return 0, false
	}

	ra, rb := []rune(a), []rune(b)
	if gap := len(ra) - len(rb); gap > max || -gap > max {
		return 0, false
	}
	if len(ra) == 0 {
		return len(rb), true
	}
	if len(rb) == 0 {
		return len(ra), true
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		rowMin := curr[0]
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
			if curr[j] < rowMin {
				rowMin = curr[j]
			}
		}
		if rowMin > max {
			return 0, false
		}
		prev, curr = curr, prev
	}

	if d := prev[len(rb)]; d <= max {
		return d, true
	}
	return 0, false
}
