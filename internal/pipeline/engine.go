// Package pipeline orchestrates a ranking run: search extraction, the
// comment and channel branches in parallel, and the final combination.
package pipeline

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hyperjump/erabu/internal/config"
	"github.com/hyperjump/erabu/internal/extract"
	"github.com/hyperjump/erabu/internal/models"
	"github.com/hyperjump/erabu/internal/observability"
	"github.com/hyperjump/erabu/internal/ranking"
	"github.com/hyperjump/erabu/internal/sentiment"
	"github.com/hyperjump/erabu/internal/transform"
)

// Engine runs the full channel ranking pipeline.
type Engine struct {
	searcher *extract.SearchExtractor
	comments *extract.CommentExtractor
	channels *extract.ChannelExtractor
	logger   *zap.Logger
}

// branchResults carries the two branch outputs from their goroutines to
// the combiner. Each field is written by exactly one goroutine before
// the join.
type branchResults struct {
	sentiments []models.ChannelSentiment
	scores     []models.ChannelScore
}

// NewEngine wires the extractors for api with the settings in cfg and
// warms the sentiment analyzer.
func NewEngine(api extract.API, cfg config.YouTubeConfig, logger *zap.Logger) *Engine {
	sentiment.Init()
	return &Engine{
		searcher: extract.NewSearchExtractor(api, cfg, logger),
		comments: extract.NewCommentExtractor(api, cfg, logger),
		channels: extract.NewChannelExtractor(api, cfg, logger),
		logger:   logger,
	}
}

// Run executes one ranking query. Upstream failures degrade to partial
// or empty results inside the extractors; the only error paths here are
// an invalid request and context cancellation.
func (e *Engine) Run(ctx context.Context, query *models.QueryRequest) (*models.QueryResponse, error) {
	startTime := time.Now()
	if err := query.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger := e.logger.With(zap.String("run_id", runID), zap.String("query", query.Query))

	hits := e.searcher.Extract(ctx, query.Query)
	logger.Info("search extraction finished", zap.Int("hits", len(hits)))
	if err := ctx.Err(); err != nil {
		observability.QueriesTotal.WithLabelValues("canceled").Inc()
		return nil, err
	}

	seed := query.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	// The comment branch owns the source; rand.Rand is not safe for
	// concurrent use.
	rng := rand.New(rand.NewSource(seed))

	var (
		results branchResults
		wg      sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		threads := e.comments.Extract(ctx, hits, rng)
		results.sentiments = transform.AggregateSentiment(threads)
		logger.Debug("comment branch finished",
			zap.Int("threads", len(threads)),
			zap.Int("channels", len(results.sentiments)))
	}()
	go func() {
		defer wg.Done()
		records := e.channels.Extract(ctx, hits)
		results.scores = transform.ScoreChannels(query.Query, records)
		logger.Debug("channel branch finished", zap.Int("channels", len(results.scores)))
	}()
	wg.Wait()

	if err := ctx.Err(); err != nil {
		observability.QueriesTotal.WithLabelValues("canceled").Inc()
		return nil, err
	}

	rows := ranking.Combine(results.scores, results.sentiments)
	total := len(rows)
	rows = ranking.TopN(rows, query.Limit)

	duration := time.Since(startTime)
	observability.QueriesTotal.WithLabelValues("ok").Inc()
	observability.QueryDurationSeconds.Observe(duration.Seconds())
	observability.ChannelsRanked.Observe(float64(total))
	logger.Info("ranking finished",
		zap.Int("channels", total),
		zap.Int("returned", len(rows)),
		zap.Duration("duration", duration))

	return &models.QueryResponse{
		Query:     query.Query,
		RunID:     runID,
		Total:     total,
		QueryTime: duration.Milliseconds(),
		Channels:  rows,
	}, nil
}
