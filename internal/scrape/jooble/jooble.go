package jooble

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"jobfeed-engine/internal/scrape/util"
)

type Config struct {
	APIKey    string
	Keywords  []string
	Locations []string
	Limit     int

	BaseURL string
}

type Client struct {
	cfg     Config
	hc      *http.Client
	limiter *util.HostLimiter
}

func New(cfg Config, limiter *util.HostLimiter) *Client {
	if cfg.Limit <= 0 {
		cfg.Limit = 100
	}
	if len(cfg.Locations) == 0 {
		cfg.Locations = []string{""}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://jooble.org/api"
	}
	return &Client{
		cfg:     cfg,
		hc:      &http.Client{Timeout: 20 * time.Second},
		limiter: limiter,
	}
}

func (c *Client) Name() string { return "jooble" }

type searchRequest struct {
	Keywords string `json:"keywords"`
	Location string `json:"location,omitempty"`
	Page     int    `json:"page"`
}

type searchResponse struct {
	Jobs []map[string]any `json:"jobs"`
}

// Fetch issues one POST search per keyword x location pair, capped at Limit
// records overall.
func (c *Client) Fetch(ctx context.Context) ([]map[string]any, error) {
	if c.cfg.APIKey == "" {
		return nil, fmt.Errorf("jooble: missing api key")
	}

	var out []map[string]any
	for _, kw := range c.cfg.Keywords {
		for _, loc := range c.cfg.Locations {
			if len(out) >= c.cfg.Limit {
				return out[:c.cfg.Limit], nil
			}
			jobs, err := c.search(ctx, kw, loc)
			if err != nil {
				log.Printf("[jooble] keywords=%q location=%q err=%v", kw, loc, err)
				continue
			}
			out = append(out, jobs...)
		}
	}
	if len(out) > c.cfg.Limit {
		out = out[:c.cfg.Limit]
	}
	return out, nil
}

func (c *Client) search(ctx context.Context, keywords, location string) ([]map[string]any, error) {
	u := c.cfg.BaseURL + "/" + c.cfg.APIKey

	body, _ := json.Marshal(searchRequest{Keywords: keywords, Location: location, Page: 1})

	if c.limiter != nil {
		if err := c.limiter.WaitURL(ctx, u); err != nil {
			return nil, err
		}
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "JobFeed/1.0 (+local)")

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jooble post: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("jooble status %d", res.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("jooble decode: %w", err)
	}
	return sr.Jobs, nil
}
