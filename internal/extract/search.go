package extract

import (
	"context"

	"go.uber.org/zap"

	"github.com/hyperjump/erabu/internal/config"
	"github.com/hyperjump/erabu/internal/models"
)

// SearchExtractor pages through video search results for a query.
type SearchExtractor struct {
	api      API
	pageSize int
	maxPages int
	logger   *zap.Logger
}

// NewSearchExtractor returns a SearchExtractor using the page size and
// page budget from cfg.
func NewSearchExtractor(api API, cfg config.YouTubeConfig, logger *zap.Logger) *SearchExtractor {
	return &SearchExtractor{
		api:      api,
		pageSize: cfg.PageSize,
		maxPages: cfg.MaxPages,
		logger:   logger,
	}
}

// Extract returns the (video, channel) pairs for query in page order.
// Pagination follows the continuation token until it runs out or the
// page budget is spent. A page failure ends pagination and the hits
// collected so far are returned; it is never retried.
func (e *SearchExtractor) Extract(ctx context.Context, query string) []models.SearchHit {
	var hits []models.SearchHit

	pageToken := ""
	for page := 0; page < e.maxPages; page++ {
		resp, err := e.api.SearchPage(ctx, query, pageToken, e.pageSize)
		if err != nil {
			e.logger.Warn("search page failed, keeping partial results",
				zap.Int("page", page),
				zap.Int("hits", len(hits)),
				zap.Error(err))
			break
		}
		for _, item := range resp.Items {
			hits = append(hits, models.SearchHit{
				VideoID:   item.ID.VideoID,
				ChannelID: item.Snippet.ChannelID,
			})
		}
		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return hits
}
