// Package match scores free text against a query with token-aligned
// fuzzy matching on an insertion/deletion edit distance.
package match

import (
	"strings"
	"unicode"
)

// Similarity scores how well query matches text, in [0,100].
//
// Both inputs are lowercased. The query is split into word runs; for
// every rune offset of the text, a window of the same number of word runs
// is read from that offset and compared pairwise with Ratio, and the best
// window mean wins. Sliding by rune rather than by word lets a window
// start mid-word, so a partial leading token still competes (e.g. the
// "odgers" inside "Dodgers"). The scan stops once the remaining text has
// fewer word runs than the query. An empty query or empty text scores 0.
func Similarity(query, text string) float64 {
	pattern := wordRuns([]rune(strings.ToLower(query)), -1)
	if len(pattern) == 0 {
		return 0
	}

	runes := []rune(strings.ToLower(text))
	best := 0.0
	for i := range runes {
		window := wordRuns(runes[i:], len(pattern))
		if len(window) < len(pattern) {
			break
		}
		var sum float64
		for j, p := range pattern {
			sum += Ratio(p, window[j])
		}
		if avg := sum / float64(len(pattern)); avg > best {
			best = avg
		}
	}
	return best
}

// wordRuns splits rs into maximal runs of word runes (letters, digits,
// underscore). At most limit runs are collected; limit < 0 collects all.
func wordRuns(rs []rune, limit int) []string {
	var runs []string
	start := -1
	for i, r := range rs {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			runs = append(runs, string(rs[start:i]))
			start = -1
			if limit >= 0 && len(runs) == limit {
				return runs
			}
		}
	}
	if start >= 0 {
		runs = append(runs, string(rs[start:]))
	}
	return runs
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
