package models

// SearchHit is a single video search result: the video and the channel
// that published it. Either field may be empty, since the upstream mixes
// channel and playlist items into video searches.
type SearchHit struct {
	VideoID   string `json:"videoId"`
	ChannelID string `json:"channelId"`
}

// CommentThread is one top-level comment with its replies, attributed to
// the channel that owns the video it was posted on.
type CommentThread struct {
	ChannelID string   `json:"channelId"`
	Text      string   `json:"text"`
	Replies   []string `json:"replies,omitempty"`
}

// ChannelRecord is the channel metadata as fetched, one per channel ID.
// VideoCount and SubscriberCount are nil when the channel hides them or
// the upstream omits them; nil is distinct from an actual zero.
type ChannelRecord struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	CustomURL       string `json:"customUrl"`
	Description     string `json:"description"`
	VideoCount      *int64 `json:"videoCount"`
	SubscriberCount *int64 `json:"subscriberCount"`
}

// ChannelScore is a channel scored against the query text: canonical URL
// plus the fuzzy similarity of the query to the channel's title and
// description. Similarity is in [0,100].
type ChannelScore struct {
	ChannelID       string  `json:"channelId"`
	Title           string  `json:"channelTitle"`
	URL             string  `json:"url"`
	Description     string  `json:"description"`
	VideoCount      *int64  `json:"videoCount"`
	SubscriberCount *int64  `json:"subscriberCount"`
	Similarity      float64 `json:"similarity"`
}

// ChannelSentiment is the mean comment sentiment for a channel, in [0,1].
type ChannelSentiment struct {
	ChannelID string  `json:"channelId"`
	Score     float64 `json:"score"`
}

// RankedChannel is one row of the final ranking: the joined metadata and
// sentiment for a channel plus its dense rank on each criterion. Rank 1 is
// best; ties share a rank. AverageRank is the mean of the four ranks and
// the final sort key (ascending).
type RankedChannel struct {
	ChannelID       string  `json:"channelId"`
	Title           string  `json:"channelTitle"`
	URL             string  `json:"url"`
	Description     string  `json:"description"`
	VideoCount      *int64  `json:"videoCount"`
	SubscriberCount *int64  `json:"subscriberCount"`
	Similarity      float64 `json:"similarity"`
	Score           float64 `json:"score"`
	VideosRank      int     `json:"videosRank"`
	SubscribersRank int     `json:"subscribersRank"`
	ScoreRank       int     `json:"scoreRank"`
	SimilarityRank  int     `json:"similarityRank"`
	AverageRank     float64 `json:"averageRank"`
}
