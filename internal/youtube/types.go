package youtube

// Wire shapes for the three Data API v3 resources the pipeline reads.
// Fields the upstream omits decode as zero values; extractors convert
// these into domain records and nothing downstream sees them.

// SearchPage is one page of search.list results.
type SearchPage struct {
	NextPageToken string       `json:"nextPageToken"`
	Items         []SearchItem `json:"items"`
}

// SearchItem is a single search result. VideoID is empty for channel and
// playlist hits, which search.list mixes in alongside videos.
type SearchItem struct {
	ID struct {
		Kind    string `json:"kind"`
		VideoID string `json:"videoId"`
	} `json:"id"`
	Snippet struct {
		ChannelID string `json:"channelId"`
		Title     string `json:"title"`
	} `json:"snippet"`
}

// CommentThreadPage is one page of commentThreads.list results.
type CommentThreadPage struct {
	NextPageToken string              `json:"nextPageToken"`
	Items         []CommentThreadItem `json:"items"`
}

// CommentThreadItem is a top-level comment with up to five inline
// replies.
type CommentThreadItem struct {
	Snippet struct {
		ChannelID       string  `json:"channelId"`
		TopLevelComment Comment `json:"topLevelComment"`
	} `json:"snippet"`
	Replies struct {
		Comments []Comment `json:"comments"`
	} `json:"replies"`
}

// Comment carries the original comment text.
type Comment struct {
	Snippet struct {
		TextOriginal string `json:"textOriginal"`
	} `json:"snippet"`
}

// ChannelPage is one page of channels.list results.
type ChannelPage struct {
	NextPageToken string        `json:"nextPageToken"`
	Items         []ChannelItem `json:"items"`
}

// ChannelItem is the metadata for one channel. The statistics counts are
// decimal strings in the upstream JSON and empty when hidden.
type ChannelItem struct {
	ID      string `json:"id"`
	Snippet struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		CustomURL   string `json:"customUrl"`
	} `json:"snippet"`
	Statistics struct {
		ViewCount             string `json:"viewCount"`
		SubscriberCount       string `json:"subscriberCount"`
		HiddenSubscriberCount bool   `json:"hiddenSubscriberCount"`
		VideoCount            string `json:"videoCount"`
	} `json:"statistics"`
}
