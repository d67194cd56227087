// Package youtube is a typed, rate-limited client for the subset of the
// YouTube Data API v3 the ranking pipeline reads: search.list,
// commentThreads.list, and channels.list.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/hyperjump/erabu/internal/config"
	"github.com/hyperjump/erabu/internal/observability"
)

// ErrStatus marks a non-200 upstream response.
var ErrStatus = errors.New("youtube api status")

// Cache stores raw upstream response bodies between runs. Implementations
// must be safe for concurrent use; freshness is the implementation's
// concern.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, body []byte) error
}

// Client calls the Data API. Requests pass through a token-bucket rate
// limiter and, when a cache is attached, a read-through cache keyed by
// resource and query parameters (the API key never enters cache keys).
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
	cache   Cache
	logger  *zap.Logger
}

// NewClient builds a client from the youtube config section. cache may be
// nil to disable response caching.
func NewClient(cfg config.YouTubeConfig, cache Cache, logger *zap.Logger) *Client {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 10
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = config.DefaultBaseURL
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		cache:   cache,
		logger:  logger,
	}
}

// SearchPage fetches one page of video search results for query.
// pageToken is empty for the first page.
func (c *Client) SearchPage(ctx context.Context, query, pageToken string, pageSize int) (*SearchPage, error) {
	values := url.Values{}
	values.Set("part", "snippet")
	values.Set("q", query)
	values.Set("maxResults", strconv.Itoa(pageSize))
	if pageToken != "" {
		values.Set("pageToken", pageToken)
	}

	var page SearchPage
	if err := c.get(ctx, "search", values, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CommentThreadsPage fetches the first page of comment threads for a
// video, replies included.
func (c *Client) CommentThreadsPage(ctx context.Context, videoID string) (*CommentThreadPage, error) {
	values := url.Values{}
	values.Set("part", "id,replies,snippet")
	values.Set("videoId", videoID)

	var page CommentThreadPage
	if err := c.get(ctx, "commentThreads", values, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ChannelsPage fetches one page of channel metadata for the given IDs.
// pageToken is empty for the first page.
func (c *Client) ChannelsPage(ctx context.Context, ids []string, pageToken string, pageSize int) (*ChannelPage, error) {
	values := url.Values{}
	values.Set("part", "id,statistics,snippet")
	values.Set("id", strings.Join(ids, ","))
	values.Set("maxResults", strconv.Itoa(pageSize))
	if pageToken != "" {
		values.Set("pageToken", pageToken)
	}

	var page ChannelPage
	if err := c.get(ctx, "channels", values, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// get performs one cached, rate-limited GET against a resource and
// decodes the body into out. The cache key is computed before the API key
// is appended so keys stay free of credentials.
func (c *Client) get(ctx context.Context, resource string, values url.Values, out interface{}) error {
	key := resource + "?" + values.Encode()

	if c.cache != nil {
		body, ok, err := c.cache.Get(ctx, key)
		switch {
		case err != nil:
			observability.CacheEvents.WithLabelValues("error").Inc()
			c.logger.Warn("cache read failed", zap.String("resource", resource), zap.Error(err))
		case ok:
			observability.CacheEvents.WithLabelValues("hit").Inc()
			if err := json.Unmarshal(body, out); err != nil {
				return fmt.Errorf("decode cached %s response: %w", resource, err)
			}
			return nil
		default:
			observability.CacheEvents.WithLabelValues("miss").Inc()
		}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}

	values.Set("key", c.apiKey)
	endpoint := c.baseURL + "/" + resource + "?" + values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		observability.UpstreamRequests.WithLabelValues(resource, "error").Inc()
		return fmt.Errorf("%s request: %w", resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		observability.UpstreamRequests.WithLabelValues(resource, "error").Inc()
		return fmt.Errorf("%w: %s returned %d", ErrStatus, resource, resp.StatusCode)
	}
	observability.UpstreamRequests.WithLabelValues(resource, "ok").Inc()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", resource, err)
	}

	if c.cache != nil {
		if err := c.cache.Put(ctx, key, body); err != nil {
			observability.CacheEvents.WithLabelValues("error").Inc()
			c.logger.Warn("cache write failed", zap.String("resource", resource), zap.Error(err))
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", resource, err)
	}
	return nil
}
