package adzuna

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"jobfeed-engine/internal/scrape/util"
)

type Config struct {
	AppID          string
	AppKey         string
	Country        string // country slug in the search URL, e.g. "gb"
	Keywords       []string
	ResultsPerPage int

	BaseURL string // overridable for tests
}

type Client struct {
	cfg     Config
	hc      *http.Client
	limiter *util.HostLimiter
}

func New(cfg Config, limiter *util.HostLimiter) *Client {
	if cfg.Country == "" {
		cfg.Country = "gb"
	}
	if cfg.ResultsPerPage <= 0 {
		cfg.ResultsPerPage = 50
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.adzuna.com/v1/api"
	}
	return &Client{
		cfg:     cfg,
		hc:      &http.Client{Timeout: 20 * time.Second},
		limiter: limiter,
	}
}

func (c *Client) Name() string { return "adzuna" }

type searchResponse struct {
	Results []map[string]any `json:"results"`
}

// Fetch runs one search per configured keyword and merges the raw results.
// A failing keyword is logged and skipped; the rest still count.
func (c *Client) Fetch(ctx context.Context) ([]map[string]any, error) {
	if c.cfg.AppID == "" || c.cfg.AppKey == "" {
		return nil, fmt.Errorf("adzuna: missing app_id/app_key")
	}

	var out []map[string]any
	for _, kw := range c.cfg.Keywords {
		results, err := c.searchKeyword(ctx, kw)
		if err != nil {
			log.Printf("[adzuna] keyword=%q err=%v", kw, err)
			continue
		}
		out = append(out, results...)
	}
	return out, nil
}

func (c *Client) searchKeyword(ctx context.Context, keyword string) ([]map[string]any, error) {
	u := fmt.Sprintf("%s/jobs/%s/search/1?%s", c.cfg.BaseURL, c.cfg.Country, url.Values{
		"app_id":           {c.cfg.AppID},
		"app_key":          {c.cfg.AppKey},
		"what":             {keyword},
		"results_per_page": {fmt.Sprint(c.cfg.ResultsPerPage)},
		"content-type":     {"application/json"},
	}.Encode())

	if c.limiter != nil {
		if err := c.limiter.WaitURL(ctx, u); err != nil {
			return nil, err
		}
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	req.Header.Set("User-Agent", "JobFeed/1.0 (+local)")

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("adzuna get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("adzuna status %d", res.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("adzuna decode: %w", err)
	}
	return sr.Results, nil
}
