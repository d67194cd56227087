package extract

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/hyperjump/erabu/internal/config"
	"github.com/hyperjump/erabu/internal/models"
	"github.com/hyperjump/erabu/internal/youtube"
)

// ChannelExtractor fetches metadata for the channels behind a set of
// search hits.
type ChannelExtractor struct {
	api       API
	batchSize int
	pageSize  int
	logger    *zap.Logger
}

// NewChannelExtractor returns a ChannelExtractor using the batch and
// page sizes from cfg.
func NewChannelExtractor(api API, cfg config.YouTubeConfig, logger *zap.Logger) *ChannelExtractor {
	return &ChannelExtractor{
		api:       api,
		batchSize: cfg.ChannelBatchSize,
		pageSize:  cfg.ChannelPageSize,
		logger:    logger,
	}
}

// Extract returns one record per distinct channel in hits, in first-seen
// order. IDs are requested in batches; each batch paginates until its
// continuation token runs out. A page failure ends that batch and keeps
// what was fetched. Records dedupe by channel ID, first fetched wins.
func (e *ChannelExtractor) Extract(ctx context.Context, hits []models.SearchHit) []models.ChannelRecord {
	ids := distinctChannelIDs(hits)

	seen := make(map[string]bool, len(ids))
	var records []models.ChannelRecord
	for start := 0; start < len(ids); start += e.batchSize {
		end := start + e.batchSize
		if end > len(ids) {
			end = len(ids)
		}
		batch := ids[start:end]

		pageToken := ""
		for {
			page, err := e.api.ChannelsPage(ctx, batch, pageToken, e.pageSize)
			if err != nil {
				e.logger.Warn("channel page failed, keeping batch partial",
					zap.Int("batch_size", len(batch)),
					zap.Error(err))
				break
			}
			for _, item := range page.Items {
				if item.ID == "" || seen[item.ID] {
					continue
				}
				seen[item.ID] = true
				records = append(records, parseChannel(item))
			}
			pageToken = page.NextPageToken
			if pageToken == "" {
				break
			}
		}
	}

	return records
}

// distinctChannelIDs keeps the first occurrence of every channel ID.
func distinctChannelIDs(hits []models.SearchHit) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, hit := range hits {
		if hit.ChannelID == "" || seen[hit.ChannelID] {
			continue
		}
		seen[hit.ChannelID] = true
		ids = append(ids, hit.ChannelID)
	}
	return ids
}

// parseChannel converts a wire item into a domain record. The statistics
// counts arrive as decimal strings; hidden or malformed counts become
// nil rather than zero.
func parseChannel(item youtube.ChannelItem) models.ChannelRecord {
	return models.ChannelRecord{
		ID:              item.ID,
		Title:           item.Snippet.Title,
		CustomURL:       item.Snippet.CustomURL,
		Description:     item.Snippet.Description,
		VideoCount:      parseCount(item.Statistics.VideoCount),
		SubscriberCount: parseCount(item.Statistics.SubscriberCount),
	}
}

func parseCount(s string) *int64 {
	if s == "" {
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}
