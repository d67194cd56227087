package sentiment

import "testing"

func TestScoreBounds(t *testing.T) {
	texts := []string{
		"",
		"I love this channel, the videos are wonderful!",
		"I hate this, it is terrible and boring.",
		"The video was uploaded on Tuesday.",
		"absolutely amazing fantastic brilliant",
		"!!!",
	}
	for _, text := range texts {
		score := Score(text)
		if score < 0 || score > 1 {
			t.Errorf("Score(%q) = %v, out of [0,1]", text, score)
		}
	}
}

func TestScoreOrdering(t *testing.T) {
	positive := Score("I love this channel, the videos are wonderful and the host is great!")
	negative := Score("I hate this channel, the videos are awful and the host is terrible.")
	if positive <= negative {
		t.Errorf("positive text scored %v, negative text scored %v; want positive > negative", positive, negative)
	}
}

func TestScoreEmptyText(t *testing.T) {
	if got := Score(""); got != 0 {
		t.Errorf("Score(\"\") = %v, want 0", got)
	}
}

func TestScoreNeutralText(t *testing.T) {
	// Plain factual text has no positive lexical content
	score := Score("The video was uploaded on Tuesday at noon.")
	if score != 0 {
		t.Errorf("Score(neutral) = %v, want 0", score)
	}
}
