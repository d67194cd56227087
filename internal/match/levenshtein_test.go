package match

import "testing"

func TestIndelDistance(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"identical empty", "", "", 0},
		{"identical word", "hello", "hello", 0},
		{"identical unicode", "こんにちは", "こんにちは", 0},

		// Empty string cases
		{"empty a", "", "hello", 5},
		{"empty b", "hello", "", 5},

		// Insertions and deletions cost one each
		{"one insertion", "cat", "cart", 1},
		{"one deletion", "cart", "cat", 1},
		{"truncated suffix", "dodgers", "dodge", 2},

		// A replaced rune costs a deletion plus an insertion
		{"one substitution", "cat", "bat", 2},
		{"case difference", "Hello", "hello", 2},
		{"unicode substitution", "café", "cafe", 2},

		// No common subsequence
		{"disjoint words", "cat", "dog", 6},

		// Mixed edits
		{"kitten to sitting", "kitten", "sitting", 5},
		{"transposition ab-ba", "ab", "ba", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IndelDistance(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("IndelDistance(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}
			// Distance is symmetric
			resultReverse := IndelDistance(tt.b, tt.a)
			if result != resultReverse {
				t.Errorf("IndelDistance(%q, %q) = %d, but reversed = %d", tt.a, tt.b, result, resultReverse)
			}
		})
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected float64
	}{
		{"identical", "dodgers", "dodgers", 100},
		{"both empty", "", "", 100},
		{"one side empty", "dodgers", "", 0},
		{"close prefix", "dodgers", "dodge", 83},
		{"disjoint", "cat", "dog", 0},
		{"kitten sitting", "kitten", "sitting", 62},
		{"swapped pair", "ab", "ba", 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Ratio(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Ratio(%q, %q) = %v, want %v", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestRatioBounds(t *testing.T) {
	words := []string{"", "a", "dodgers", "dodge ball", "こんにちは", "a_very_long_identifier_token"}
	for _, a := range words {
		for _, b := range words {
			r := Ratio(a, b)
			if r < 0 || r > 100 {
				t.Errorf("Ratio(%q, %q) = %v, out of [0,100]", a, b, r)
			}
		}
	}
}
