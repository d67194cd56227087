// Package extract pulls search hits, comment threads, and channel
// records out of the YouTube Data API. Extractors degrade instead of
// failing: an upstream error costs the page or video it happened on and
// whatever was already collected is kept.
package extract

import (
	"context"

	"github.com/hyperjump/erabu/internal/youtube"
)

// API is the slice of the upstream client the extractors consume.
type API interface {
	SearchPage(ctx context.Context, query, pageToken string, pageSize int) (*youtube.SearchPage, error)
	CommentThreadsPage(ctx context.Context, videoID string) (*youtube.CommentThreadPage, error)
	ChannelsPage(ctx context.Context, ids []string, pageToken string, pageSize int) (*youtube.ChannelPage, error)
}
