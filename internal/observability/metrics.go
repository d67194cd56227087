// Package observability exposes the Prometheus metrics of the ranking
// pipeline and its upstream client.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "erabu_queries_total",
		Help: "The total number of ranking queries served",
	}, []string{"status"})

	QueryDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "erabu_query_duration_seconds",
		Help:    "Duration of a full ranking pipeline run",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
	})

	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "erabu_upstream_requests_total",
		Help: "The total number of YouTube Data API requests",
	}, []string{"endpoint", "outcome"})

	ChannelsRanked = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "erabu_channels_ranked",
		Help:    "Number of channels in the final ranking per query",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200},
	})

	CacheEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "erabu_cache_events_total",
		Help: "Upstream response cache activity",
	}, []string{"event"})
)
