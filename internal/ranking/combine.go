package ranking

import (
	"sort"

	"github.com/hyperjump/erabu/internal/models"
)

// Combine inner-joins the scored channels with their comment sentiment
// and ranks the joined rows. Four criteria are dense-ranked, higher
// values first: video count, subscriber count, sentiment score,
// similarity. Each row's AverageRank is the mean of its four ranks and
// the rows come back sorted by it, best first; ties keep join order.
// Channels present in only one branch are dropped by the join.
func Combine(scores []models.ChannelScore, sentiments []models.ChannelSentiment) []*models.RankedChannel {
	bySentiment := make(map[string]float64, len(sentiments))
	for _, s := range sentiments {
		bySentiment[s.ChannelID] = s.Score
	}

	rows := make([]*models.RankedChannel, 0, len(scores))
	for _, cs := range scores {
		score, ok := bySentiment[cs.ChannelID]
		if !ok {
			continue
		}
		rows = append(rows, &models.RankedChannel{
			ChannelID:       cs.ChannelID,
			Title:           cs.Title,
			URL:             cs.URL,
			Description:     cs.Description,
			VideoCount:      cs.VideoCount,
			SubscriberCount: cs.SubscriberCount,
			Similarity:      cs.Similarity,
			Score:           score,
		})
	}
	if len(rows) == 0 {
		return rows
	}

	videos := make([]float64, len(rows))
	subscribers := make([]float64, len(rows))
	sentimentVals := make([]float64, len(rows))
	similarities := make([]float64, len(rows))
	for i, row := range rows {
		videos[i] = countValue(row.VideoCount)
		subscribers[i] = countValue(row.SubscriberCount)
		sentimentVals[i] = row.Score
		similarities[i] = row.Similarity
	}

	videosRanks := DenseRanks(videos)
	subscribersRanks := DenseRanks(subscribers)
	scoreRanks := DenseRanks(sentimentVals)
	similarityRanks := DenseRanks(similarities)

	for i, row := range rows {
		row.VideosRank = videosRanks[i]
		row.SubscribersRank = subscribersRanks[i]
		row.ScoreRank = scoreRanks[i]
		row.SimilarityRank = similarityRanks[i]
		row.AverageRank = float64(row.VideosRank+row.SubscribersRank+row.ScoreRank+row.SimilarityRank) / 4
	}

	// Stable keeps join order for rows with equal average rank
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].AverageRank < rows[j].AverageRank
	})

	return rows
}

// countValue treats a hidden or absent count as zero for ranking
// purposes.
func countValue(v *int64) float64 {
	if v == nil {
		return 0
	}
	return float64(*v)
}

// TopN returns the best n rows.
func TopN(rows []*models.RankedChannel, n int) []*models.RankedChannel {
	if n >= len(rows) {
		return rows
	}
	return rows[:n]
}
