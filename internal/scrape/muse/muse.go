package muse

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
	APIKey     string // optional; raises the rate cap
	Categories []string
	Pages      int

	BaseURL string
}

type Client struct {
	cfg     Config
	hc      *http.Client
	limiter *util.HostLimiter
}

func New(cfg Config, limiter *util.HostLimiter) *Client {
	if cfg.Pages <= 0 {
		cfg.Pages = 1
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.themuse.com/api/public"
	}
	return &Client{
		cfg:     cfg,
		hc:      &http.Client{Timeout: 20 * time.Second},
		limiter: limiter,
	}
}

func (c *Client) Name() string { return "muse" }

type jobsResponse struct {
	Results []map[string]any `json:"results"`
}

func (c *Client) Fetch(ctx context.Context) ([]map[string]any, error) {
	var out []map[string]any
	for _, cat := range c.cfg.Categories {
		for page := 1; page <= c.cfg.Pages; page++ {
			results, err := c.fetchPage(ctx, cat, page)
			if err != nil {
				log.Printf("[muse] category=%q page=%d err=%v", cat, page, err)
				break
			}
			out = append(out, results...)
			if len(results) == 0 {
				break
			}
		}
	}
	return out, nil
}

func (c *Client) fetchPage(ctx context.Context, category string, page int) ([]map[string]any, error) {
	v := url.Values{
		"category": {category},
		"page":     {fmt.Sprint(page)},
	}
	if c.cfg.APIKey != "" {
		v.Set("api_key", c.cfg.APIKey)
	}
	u := c.cfg.BaseURL + "/jobs?" + v.Encode()

	if c.limiter != nil {
		if err := c.limiter.WaitURL(ctx, u); err != nil {
			return nil, err
		}
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	req.Header.Set("User-Agent", "JobFeed/1.0 (+local)")

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("muse get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("muse status %d", res.StatusCode)
	}

	var jr jobsResponse
	if err := json.NewDecoder(res.Body).Decode(&jr); err != nil {
		return nil, fmt.Errorf("muse decode: %w", err)
	}
	return jr.Results, nil
}
