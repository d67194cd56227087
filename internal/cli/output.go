// Package cli renders ranking results for terminals and spreadsheets.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/hyperjump/erabu/internal/models"
	"github.com/hyperjump/erabu/pkg/utils"
)

// OutputFormat is the format for ranking output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// WriteRanking writes a ranking response to w in the given format.
// Use OutputJSON for parseable output consumable by other apps.
func WriteRanking(w io.Writer, response *models.QueryResponse, format OutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	default:
		writeRankingText(w, response)
		return nil
	}
}

func writeRankingText(w io.Writer, response *models.QueryResponse) {
	fmt.Fprintf(w, "\nRanked %d channels for %q in %dms\n\n",
		response.Total, response.Query, response.QueryTime)
	for i, channel := range response.Channels {
		writeOneChannel(w, i+1, channel)
	}
}

func writeOneChannel(w io.Writer, position int, channel *models.RankedChannel) {
	fmt.Fprintf(w, "─────────────────────────────────────────────────────────\n")
	fmt.Fprintf(w, "#%d | Average rank: %.2f (videos: %d, subscribers: %d, sentiment: %d, similarity: %d)\n",
		position, channel.AverageRank,
		channel.VideosRank, channel.SubscribersRank, channel.ScoreRank, channel.SimilarityRank)
	fmt.Fprintf(w, "Channel: %s\n", channel.Title)
	fmt.Fprintf(w, "URL: %s\n", channel.URL)
	fmt.Fprintf(w, "Videos: %s | Subscribers: %s | Sentiment: %.3f | Similarity: %.1f\n",
		formatCount(channel.VideoCount), formatCount(channel.SubscriberCount),
		channel.Score, channel.Similarity)
	if channel.Description != "" {
		fmt.Fprintf(w, "\n%s\n", utils.Truncate(channel.Description, 200))
	}
	fmt.Fprintln(w)
}

// formatCount renders a statistics count, which channels may hide.
func formatCount(count *int64) string {
	if count == nil {
		return "hidden"
	}
	return strconv.FormatInt(*count, 10)
}
