package models

import (
	"testing"
)

func TestQueryRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		query     *QueryRequest
		wantErr   bool
		wantLimit int
	}{
		{"empty query", &QueryRequest{Query: ""}, true, 0},
		{"valid query", &QueryRequest{Query: "hello", Limit: 5}, false, 5},
		{"sets default limit", &QueryRequest{Query: "x", Limit: 0}, false, DefaultLimit},
		{"negative limit uses default", &QueryRequest{Query: "x", Limit: -3}, false, DefaultLimit},
		{"caps limit at max", &QueryRequest{Query: "x", Limit: 200}, false, MaxLimit},
		{"keeps seed untouched", &QueryRequest{Query: "x", Seed: 42}, false, DefaultLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && tt.query.Limit != tt.wantLimit {
				t.Errorf("Validate() limit = %d, want %d", tt.query.Limit, tt.wantLimit)
			}
			if tt.name == "keeps seed untouched" && tt.query.Seed != 42 {
				t.Errorf("Validate() seed = %d, want 42", tt.query.Seed)
			}
		})
	}
}
