// Package similarity provides the string similarity measure used to match
// knowledge-base entries across corpus snapshots.
package similarity

// LevenshteinDistance computes the Levenshtein distance between two strings.
// It represents the minimum number of single-character edits (insertions,
// deletions, or substitutions) required to change one string into the other.
// This implementation properly handles Unicode characters by working with runes.
func LevenshteinDistance(a, b string) int {
	runesA := []rune(a)
	runesB := []rune(b)

	lenA := len(runesA)
	lenB := len(runesB)

	if lenA == 0 {
		return lenB
	}
	if lenB == 0 {
		return lenA
	}

	// Two-row rolling computation of the edit distance matrix.
	prevRow := make([]int, lenB+1)
	currRow := make([]int, lenB+1)

	for j := 0; j <= lenB; j++ {
		prevRow[j] = j
	}

	for i := 1; i <= lenA; i++ {
		currRow[0] = i

		for j := 1; j <= lenB; j++ {
			cost := 0
			if runesA[i-1] != runesB[j-1] {
				cost = 1
			}

			deletion := prevRow[j] + 1
			insertion := currRow[j-1] + 1
			substitution := prevRow[j-1] + cost

			currRow[j] = min3(deletion, insertion, substitution)
		}

		prevRow, currRow = currRow, prevRow
	}

	return prevRow[lenB]
}

// Ratio returns a similarity score in [0, 1]: 1.0 for identical strings,
// falling as the edit distance grows relative to the longer string. Two empty
// strings are identical.
func Ratio(a, b string) float64 {
	if a == b {
		return 1.0
	}

	lenA := len([]rune(a))
	lenB := len([]rune(b))
	longest := lenA
	if lenB > longest {
		longest = lenB
	}
	if longest == 0 {
		return 1.0
	}

	dist := LevenshteinDistance(a, b)
	return 1.0 - float64(dist)/float64(longest)
}

// min3 is a helper function to find the minimum of three integers
func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
