package distance

// Levenshtein returns the minimum number of single-rune insertions,
// deletions and substitutions needed to turn a into b. Each edit costs 1.
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// Two rolling rows of the (len(a)+1) x (len(b)+1) table.
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
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// Within reports whether a and b are at most tolerance edits apart.
// Pairs whose length difference already exceeds the tolerance are rejected
// without filling the table. A negative tolerance is treated as zero.
func Within(a, b string, tolerance int) bool {
	if tolerance < 0 {
		tolerance = 0
	}
	la, lb := runeLen(a), runeLen(b)
	diff := la - lb
	if diff < 0 {
		diff = -diff
	}
	if diff > tolerance {
		return false
	}
	if tolerance == 0 {
		return a == b
	}
	return Levenshtein(a, b) <= tolerance
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
