// Package models defines the records that flow through the ranking
// pipeline and the request/response types of its public surfaces.
package models

import "fmt"

const (
	// DefaultLimit is the number of ranked channels returned when the
	// caller does not ask for a specific amount.
	DefaultLimit = 20
	// MaxLimit caps the number of ranked channels a single request may
	// ask for.
	MaxLimit = 100
)

// QueryRequest is a channel ranking request. Seed, when nonzero, fixes
// the comment-video sampling so repeated runs pick the same videos.
type QueryRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
	Seed  int64  `json:"seed,omitempty"`
}

// Validate ensures the request has a usable query and normalizes the
// limit into [1, MaxLimit], applying DefaultLimit when unset.
func (q *QueryRequest) Validate() error {
	if q.Query == "" {
		return fmt.Errorf("query cannot be empty")
	}
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	return nil
}

// QueryResponse is the response for a ranking request.
type QueryResponse struct {
	Query     string           `json:"query"`
	RunID     string           `json:"runId"`
	Total     int              `json:"total"`
	QueryTime int64            `json:"queryTimeMs"`
	Channels  []*RankedChannel `json:"channels"`
}
