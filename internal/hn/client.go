package hn

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"jobfeed-engine/internal/store"

	"golang.org/x/time/rate"
)

const (
	defaultItemBase   = "https://hacker-news.firebaseio.com/v0"
	defaultSearchBase = "https://hn.algolia.com/api/v1"
)

type Config struct {
	Bucket     string
	MaxRetries int           // attempts per comment fetch
	RetryDelay time.Duration // pause between attempts
	FetchPause time.Duration // courtesy pause between comment fetches

	// Overridable for tests; defaults point at the real APIs.
	ItemBase   string
	SearchBase string
}

// Connector extracts job postings from the monthly "Who is hiring?" thread.
type Connector struct {
	cfg     Config
	hc      *http.Client
	limiter *rate.Limiter
	store   store.ObjectStore
}

func New(cfg Config, st store.ObjectStore) *Connector {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 2 * time.Second
	}
	if cfg.FetchPause <= 0 {
		cfg.FetchPause = 100 * time.Millisecond
	}
	if cfg.ItemBase == "" {
		cfg.ItemBase = defaultItemBase
	}
	if cfg.SearchBase == "" {
		cfg.SearchBase = defaultSearchBase
	}
	return &Connector{
		cfg:     cfg,
		hc:      &http.Client{Timeout: 20 * time.Second},
		limiter: rate.NewLimiter(rate.Every(cfg.FetchPause), 1),
		store:   st,
	}
}

func (c *Connector) search(ctx context.Context, query string) ([]searchHit, error) {
	u := c.cfg.SearchBase + "/search_by_date?" + url.Values{
		"query":          {query},
		"tags":           {"story"},
		"numericFilters": {"points>20"},
	}.Encode()

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	req.Header.Set("User-Agent", "JobFeed/1.0 (+local)")

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hn search: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("hn search status %d", res.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("hn search decode: %w", err)
	}
	return sr.Hits, nil
}

func (c *Connector) item(ctx context.Context, id int) (RawComment, error) {
	u := fmt.Sprintf("%s/item/%d.json", c.cfg.ItemBase, id)

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	req.Header.Set("User-Agent", "JobFeed/1.0 (+local)")

	res, err := c.hc.Do(req)
	if err != nil {
		return RawComment{}, fmt.Errorf("hn item %d: %w", id, err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return RawComment{}, fmt.Errorf("hn item %d status %d", id, res.StatusCode)
	}

	var cm RawComment
	if err := json.NewDecoder(res.Body).Decode(&cm); err != nil {
		return RawComment{}, fmt.Errorf("hn item %d decode: %w", id, err)
	}
	return cm, nil
}
