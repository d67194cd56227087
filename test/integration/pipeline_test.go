// Package integration exercises the whole ranking stack end to end: a
// fake upstream API, the cached client, the pipeline, and the HTTP
// server (requires real cache storage).
package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/hyperjump/erabu/internal/config"
	"github.com/hyperjump/erabu/internal/models"
	"github.com/hyperjump/erabu/internal/pipeline"
	"github.com/hyperjump/erabu/internal/server"
	"github.com/hyperjump/erabu/internal/storage"
	"github.com/hyperjump/erabu/internal/youtube"
)

// fakeUpstream serves two channels: one popular with glowing comments,
// one small with hostile ones. Every request bumps hits.
func fakeUpstream(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeJSON(t, w, map[string]interface{}{
			"items": []map[string]interface{}{
				searchItem("video-best", "UC-best"),
				searchItem("video-worst", "UC-worst"),
			},
		})
	})
	mux.HandleFunc("/commentThreads", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		channel, text := "UC-best", "I love this channel, the highlights are wonderful"
		if r.URL.Query().Get("videoId") == "video-worst" {
			channel, text = "UC-worst", "This is terrible and boring, I hate it"
		}
		writeJSON(t, w, map[string]interface{}{
			"items": []map[string]interface{}{threadItem(channel, text)},
		})
	})
	mux.HandleFunc("/channels", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeJSON(t, w, map[string]interface{}{
			"items": []map[string]interface{}{
				channelItem("UC-best", "Dodgers Highlights", "@dodgershighlights", "500", "90000"),
				channelItem("UC-worst", "Quilting Corner", "", "10", "100"),
			},
		})
	})
	return httptest.NewServer(mux)
}

func searchItem(videoID, channelID string) map[string]interface{} {
	return map[string]interface{}{
		"id":      map[string]interface{}{"kind": "youtube#video", "videoId": videoID},
		"snippet": map[string]interface{}{"channelId": channelID},
	}
}

func threadItem(channelID, text string) map[string]interface{} {
	return map[string]interface{}{
		"snippet": map[string]interface{}{
			"channelId": channelID,
			"topLevelComment": map[string]interface{}{
				"snippet": map[string]interface{}{"textOriginal": text},
			},
		},
	}
}

func channelItem(id, title, customURL, videos, subscribers string) map[string]interface{} {
	return map[string]interface{}{
		"id": id,
		"snippet": map[string]interface{}{
			"title":     title,
			"customUrl": customURL,
		},
		"statistics": map[string]interface{}{
			"videoCount":      videos,
			"subscriberCount": subscribers,
		},
	}
}

func writeJSON(t *testing.T, w http.ResponseWriter, v interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode fake response: %v", err)
	}
}

func postQuery(t *testing.T, apiURL, topic string) *models.QueryResponse {
	t.Helper()
	body, _ := json.Marshal(models.QueryRequest{Query: topic})
	resp, err := http.Post(apiURL+"/api/v1/query", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		t.Fatalf("query returned %d: %s", resp.StatusCode, b)
	}
	var out models.QueryResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	return &out
}

func TestIntegration_QueryOverHTTP(t *testing.T) {
	var upstreamHits atomic.Int64
	upstream := fakeUpstream(t, &upstreamHits)
	defer upstream.Close()

	cache, err := storage.NewCache(filepath.Join(t.TempDir(), "cache.db"), 15*time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	defer cache.Close()

	ytCfg := config.YouTubeConfig{
		BaseURL:           upstream.URL,
		APIKey:            "integration-key",
		RequestsPerSecond: 1000,
		PageSize:          50,
		MaxPages:          5,
		CommentSampleSize: 2,
		ChannelBatchSize:  10,
		ChannelPageSize:   50,
	}
	logger := zap.NewNop()
	client := youtube.NewClient(ytCfg, cache, logger)
	engine := pipeline.NewEngine(client, ytCfg, logger)
	srv := server.NewServer(engine, &config.ServerConfig{
		Host: "localhost", Port: 0, CORSOrigins: []string{"*"},
	}, "integration", logger)

	api := httptest.NewServer(srv.Router())
	defer api.Close()

	response := postQuery(t, api.URL, "dodgers")
	if response.Total != 2 || len(response.Channels) != 2 {
		t.Fatalf("expected 2 ranked channels, got %+v", response)
	}
	if response.Channels[0].ChannelID != "UC-best" {
		t.Errorf("best channel should rank first, got %s", response.Channels[0].ChannelID)
	}
	if response.Channels[0].AverageRank >= response.Channels[1].AverageRank {
		t.Errorf("ranks out of order: %f >= %f",
			response.Channels[0].AverageRank, response.Channels[1].AverageRank)
	}
	if response.Channels[0].URL != "https://www.youtube.com/@dodgershighlights" {
		t.Errorf("unexpected channel url %q", response.Channels[0].URL)
	}
	if response.RunID == "" {
		t.Error("expected a run id")
	}

	fetched := upstreamHits.Load()
	if fetched == 0 {
		t.Fatal("expected upstream requests on a cold cache")
	}

	// Identical query again: every upstream read now comes from the cache.
	second := postQuery(t, api.URL, "dodgers")
	if second.Total != 2 {
		t.Fatalf("expected 2 ranked channels on the cached run, got %d", second.Total)
	}
	if got := upstreamHits.Load(); got != fetched {
		t.Errorf("cached run should not hit the upstream: %d requests grew to %d", fetched, got)
	}
}

func TestIntegration_UpstreamSearchFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer upstream.Close()

	ytCfg := config.YouTubeConfig{
		BaseURL:           upstream.URL,
		APIKey:            "integration-key",
		RequestsPerSecond: 1000,
		PageSize:          50,
		MaxPages:          5,
		CommentSampleSize: 2,
		ChannelBatchSize:  10,
		ChannelPageSize:   50,
	}
	logger := zap.NewNop()
	client := youtube.NewClient(ytCfg, nil, logger)
	engine := pipeline.NewEngine(client, ytCfg, logger)
	srv := server.NewServer(engine, &config.ServerConfig{
		Host: "localhost", Port: 0, CORSOrigins: []string{"*"},
	}, "integration", logger)

	api := httptest.NewServer(srv.Router())
	defer api.Close()

	// A dead upstream degrades to an empty ranking, not an error.
	response := postQuery(t, api.URL, "dodgers")
	if response.Total != 0 || len(response.Channels) != 0 {
		t.Errorf("expected an empty ranking, got %+v", response)
	}
}
