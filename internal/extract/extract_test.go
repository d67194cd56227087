package extract

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hyperjump/erabu/internal/config"
	"github.com/hyperjump/erabu/internal/youtube"
)

// fakeAPI scripts upstream responses and records every call.
type fakeAPI struct {
	search         func(query, pageToken string, pageSize int) (*youtube.SearchPage, error)
	commentThreads func(videoID string) (*youtube.CommentThreadPage, error)
	channels       func(ids []string, pageToken string, pageSize int) (*youtube.ChannelPage, error)

	searchTokens   []string
	commentVideos  []string
	channelBatches [][]string
}

func (f *fakeAPI) SearchPage(_ context.Context, query, pageToken string, pageSize int) (*youtube.SearchPage, error) {
	f.searchTokens = append(f.searchTokens, pageToken)
	if f.search == nil {
		return &youtube.SearchPage{}, nil
	}
	return f.search(query, pageToken, pageSize)
}

func (f *fakeAPI) CommentThreadsPage(_ context.Context, videoID string) (*youtube.CommentThreadPage, error) {
	f.commentVideos = append(f.commentVideos, videoID)
	if f.commentThreads == nil {
		return &youtube.CommentThreadPage{}, nil
	}
	return f.commentThreads(videoID)
}

func (f *fakeAPI) ChannelsPage(_ context.Context, ids []string, pageToken string, pageSize int) (*youtube.ChannelPage, error) {
	batch := append([]string(nil), ids...)
	f.channelBatches = append(f.channelBatches, batch)
	if f.channels == nil {
		return &youtube.ChannelPage{}, nil
	}
	return f.channels(ids, pageToken, pageSize)
}

func testYouTubeConfig() config.YouTubeConfig {
	return config.YouTubeConfig{
		PageSize:          50,
		MaxPages:          5,
		CommentSampleSize: 2,
		ChannelBatchSize:  10,
		ChannelPageSize:   50,
	}
}

func nopLogger() *zap.Logger { return zap.NewNop() }

// searchItem builds a video search item for scripted pages.
func searchItem(videoID, channelID string) youtube.SearchItem {
	var item youtube.SearchItem
	item.ID.VideoID = videoID
	item.Snippet.ChannelID = channelID
	return item
}

// channelItem builds a channel metadata item for scripted pages.
func channelItem(id, title, customURL, description, videoCount, subscriberCount string) youtube.ChannelItem {
	var item youtube.ChannelItem
	item.ID = id
	item.Snippet.Title = title
	item.Snippet.CustomURL = customURL
	item.Snippet.Description = description
	item.Statistics.VideoCount = videoCount
	item.Statistics.SubscriberCount = subscriberCount
	return item
}

// threadItem builds a comment thread with replies for scripted pages.
func threadItem(channelID, text string, replies ...string) youtube.CommentThreadItem {
	var item youtube.CommentThreadItem
	item.Snippet.ChannelID = channelID
	item.Snippet.TopLevelComment.Snippet.TextOriginal = text
	for _, reply := range replies {
		var c youtube.Comment
		c.Snippet.TextOriginal = reply
		item.Replies.Comments = append(item.Replies.Comments, c)
	}
	return item
}

var errUpstream = fmt.Errorf("upstream unavailable")
