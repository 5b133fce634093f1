package types

import (
	"context"
	"time"
)

// Fetcher is one job-board source. Fetch returns raw records exactly as the
// upstream API shaped them; standardization happens later in transform.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context) ([]map[string]any, error)
}

// RunResult is the per-source outcome of one collection run. Sources never
// share state: config goes in, a RunResult comes out.
type RunResult struct {
	RunID      string    `json:"run_id"`
	Source     string    `json:"source"`
	Fetched    int       `json:"fetched"`
	Path       string    `json:"path,omitempty"`
	Err        string    `json:"error,omitempty"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}
