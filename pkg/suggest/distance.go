package suggest

// Distance returns the Levenshtein distance between a and b, counted in
// runes. It keeps a single row of min(len(a), len(b))+1 cells.
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	short, long := []rune(a), []rune(b)
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) == 0 {
		return len(long)
	}

	// row[i] is the distance between short[:i] and the prefix of long seen so far.
	row := make([]int, len(short)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(long); j++ {
		diag := row[0]
		row[0] = j
		for i := 1; i <= len(short); i++ {
			above := row[i]
			if short[i-1] == long[j-1] {
				row[i] = diag
			} else {
				row[i] = 1 + min(diag, above, row[i-1])
			}
			diag = above
		}
	}
	return row[len(short)]
}
