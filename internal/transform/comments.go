// Package transform turns extracted records into the two branch inputs
// of the final ranking: per-channel comment sentiment and per-channel
// query similarity.
package transform

import (
	"github.com/hyperjump/erabu/internal/models"
	"github.com/hyperjump/erabu/internal/sentiment"
)

// AggregateSentiment scores every top-level comment and every reply
// independently and averages the scores per channel. Channels appear in
// the order of their first thread; channels without any comments do not
// appear at all.
func AggregateSentiment(threads []models.CommentThread) []models.ChannelSentiment {
	return aggregateSentiment(threads, sentiment.Score)
}

func aggregateSentiment(threads []models.CommentThread, score func(string) float64) []models.ChannelSentiment {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	var order []string

	for _, thread := range threads {
		if _, ok := counts[thread.ChannelID]; !ok {
			order = append(order, thread.ChannelID)
		}
		sums[thread.ChannelID] += score(thread.Text)
		counts[thread.ChannelID]++
		for _, reply := range thread.Replies {
			sums[thread.ChannelID] += score(reply)
			counts[thread.ChannelID]++
		}
	}

	sentiments := make([]models.ChannelSentiment, 0, len(order))
	for _, channelID := range order {
		sentiments = append(sentiments, models.ChannelSentiment{
			ChannelID: channelID,
			Score:     sums[channelID] / float64(counts[channelID]),
		})
	}
	return sentiments
}
