package extract

import (
	"context"
	"math/rand"

	"go.uber.org/zap"

	"github.com/hyperjump/erabu/internal/config"
	"github.com/hyperjump/erabu/internal/models"
)

// CommentExtractor fetches comment threads for a sample of each
// channel's videos.
type CommentExtractor struct {
	api        API
	sampleSize int
	logger     *zap.Logger
}

// NewCommentExtractor returns a CommentExtractor using the sample size
// from cfg.
func NewCommentExtractor(api API, cfg config.YouTubeConfig, logger *zap.Logger) *CommentExtractor {
	return &CommentExtractor{
		api:        api,
		sampleSize: cfg.CommentSampleSize,
		logger:     logger,
	}
}

// Extract groups the hit videos by channel in discovery order and
// fetches one page of comment threads per video. When a channel has more
// videos than the sample size, rng draws a uniform sample without
// replacement; otherwise every video is fetched. A failed fetch skips
// that video. Threads come back flattened, in fetch order.
func (e *CommentExtractor) Extract(ctx context.Context, hits []models.SearchHit, rng *rand.Rand) []models.CommentThread {
	var threads []models.CommentThread

	for _, group := range groupVideos(hits) {
		videoIDs := group.videoIDs
		if len(videoIDs) > e.sampleSize {
			videoIDs = sampleStrings(videoIDs, e.sampleSize, rng)
		}
		for _, videoID := range videoIDs {
			page, err := e.api.CommentThreadsPage(ctx, videoID)
			if err != nil {
				e.logger.Debug("comment fetch failed, skipping video",
					zap.String("video_id", videoID),
					zap.String("channel_id", group.channelID),
					zap.Error(err))
				continue
			}
			for _, item := range page.Items {
				thread := models.CommentThread{
					ChannelID: item.Snippet.ChannelID,
					Text:      item.Snippet.TopLevelComment.Snippet.TextOriginal,
				}
				for _, reply := range item.Replies.Comments {
					thread.Replies = append(thread.Replies, reply.Snippet.TextOriginal)
				}
				threads = append(threads, thread)
			}
		}
	}

	return threads
}

type channelVideos struct {
	channelID string
	videoIDs  []string
}

// groupVideos groups video IDs by channel, keeping channels in the order
// they are first seen. Hits without a channel cannot be attributed and
// hits without a video have nothing to fetch; both are dropped.
func groupVideos(hits []models.SearchHit) []channelVideos {
	index := make(map[string]int)
	var groups []channelVideos
	for _, hit := range hits {
		if hit.ChannelID == "" || hit.VideoID == "" {
			continue
		}
		i, ok := index[hit.ChannelID]
		if !ok {
			i = len(groups)
			index[hit.ChannelID] = i
			groups = append(groups, channelVideos{channelID: hit.ChannelID})
		}
		groups[i].videoIDs = append(groups[i].videoIDs, hit.VideoID)
	}
	return groups
}

// sampleStrings draws n elements uniformly without replacement.
func sampleStrings(ids []string, n int, rng *rand.Rand) []string {
	picked := make([]string, 0, n)
	for _, i := range rng.Perm(len(ids))[:n] {
		picked = append(picked, ids[i])
	}
	return picked
}
