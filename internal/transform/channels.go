package transform

import (
	"github.com/hyperjump/erabu/internal/match"
	"github.com/hyperjump/erabu/internal/models"
)

// channelURLPrefix is the canonical channel URL root. The custom URL
// already carries its @ handle.
const channelURLPrefix = "https://www.youtube.com/"

// ScoreChannels builds one scored row per record: the canonical channel
// URL and the fuzzy similarity of the query against the channel's title
// and description. The nullable counts pass through untouched and row
// order follows record order.
func ScoreChannels(query string, records []models.ChannelRecord) []models.ChannelScore {
	scores := make([]models.ChannelScore, 0, len(records))
	for _, record := range records {
		scores = append(scores, models.ChannelScore{
			ChannelID:       record.ID,
			Title:           record.Title,
			URL:             channelURLPrefix + record.CustomURL,
			Description:     record.Description,
			VideoCount:      record.VideoCount,
			SubscriberCount: record.SubscriberCount,
			Similarity:      match.Similarity(query, record.Title+" : "+record.Description),
		})
	}
	return scores
}
