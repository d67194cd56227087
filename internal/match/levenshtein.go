package match

import "math"

// IndelDistance calculates the minimum number of single-rune insertions
// and deletions required to change one string into the other. This is the
// Levenshtein distance with substitution disallowed, so replacing a rune
// costs 2 (one deletion plus one insertion). Pure function, no side
// effects.
func IndelDistance(a, b string) int {
	if a == b {
		return 0
	}

	// Convert to runes for proper Unicode handling
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

	// We only need two rows of the matrix at a time
	prev := make([]int, lenB+1)
	curr := make([]int, lenB+1)

	// Initialize first row
	for j := 0; j <= lenB; j++ {
		prev[j] = j
	}

	for i := 1; i <= lenA; i++ {
		curr[0] = i
		for j := 1; j <= lenB; j++ {
			if runesA[i-1] == runesB[j-1] {
				curr[j] = prev[j-1]
				continue
			}
			// Minimum of: deletion, insertion
			curr[j] = minTwo(prev[j]+1, curr[j-1]+1)
		}
		// Swap rows
		prev, curr = curr, prev
	}

	return prev[lenB]
}

// Ratio scales the indel distance between a and b into a similarity score:
// 100 when the strings are identical, 0 when they share no runes in order.
// The score is rounded to a whole number, matching the convention of
// common fuzzy-matching tools. Two empty strings are identical.
func Ratio(a, b string) float64 {
	lenSum := len([]rune(a)) + len([]rune(b))
	if lenSum == 0 {
		return 100
	}
	d := IndelDistance(a, b)
	return math.Round(100 * float64(lenSum-d) / float64(lenSum))
}

// minTwo returns the minimum of two integers.
func minTwo(a, b int) int {
	if a <= b {
		return a
	}
	return b
}
