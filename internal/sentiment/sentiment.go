// Package sentiment scores free text with VADER sentiment analysis.
package sentiment

import (
	"sync"

	"github.com/jonreiter/govader"
)

var (
	once     sync.Once
	analyzer *govader.SentimentIntensityAnalyzer
)

// Init constructs the process-wide analyzer. The VADER lexicon ships
// embedded in the library, so construction cannot fail at runtime;
// calling Init at startup front-loads the cost instead of paying it on
// the first query.
func Init() {
	once.Do(func() {
		analyzer = govader.NewSentimentIntensityAnalyzer()
	})
}

// Score returns the positive component of the VADER polarity of text,
// in [0,1]. Text without positive lexical content scores 0; the neutral
// and negative components carry the rest of the mass and are ignored
// here.
func Score(text string) float64 {
	Init()
	return analyzer.PolarityScores(text).Positive
}
