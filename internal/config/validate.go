package config

import "errors"

func Validate(cfg Config) error {
	var errs []string

	if cfg.App.Port <= 0 || cfg.App.Port > 65535 {
		errs = append(errs, "app.port must be 1..65535")
	}
	if cfg.App.Bucket == "" {
		errs = append(errs, "app.bucket is required")
	}
	if cfg.HackerNews.MonthsBack < 1 {
		errs = append(errs, "hackernews.months_back must be >= 1")
	}
	if cfg.HackerNews.MaxRetries < 1 {
		errs = append(errs, "hackernews.max_retries must be >= 1")
	}
	if cfg.HackerNews.RetryDelaySeconds < 0 {
		errs = append(errs, "hackernews.retry_delay_seconds must be >= 0")
	}
	if cfg.Sources.Adzuna.Enabled && len(cfg.Sources.Adzuna.Keywords) == 0 {
		errs = append(errs, "sources.adzuna.keywords must have at least 1 term when enabled")
	}
	if cfg.Sources.Muse.Enabled && len(cfg.Sources.Muse.Categories) == 0 {
		errs = append(errs, "sources.muse.categories must have at least 1 term when enabled")
	}
	if cfg.Sources.Jooble.Enabled && len(cfg.Sources.Jooble.Keywords) == 0 {
		errs = append(errs, "sources.jooble.keywords must have at least 1 term when enabled")
	}
	if cfg.Limits.RequestsPerSec < 0 {
		errs = append(errs, "limits.requests_per_sec must be >= 0")
	}
	if cfg.Limits.RequestsPerSec > 0 && cfg.Limits.Burst < 1 {
		errs = append(errs, "limits.burst must be >= 1 when requests_per_sec > 0")
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + joinLines(errs))
	}
	return nil
}

func joinLines(lines []string) string {
	out := ""
	for i, s := range lines {
		if i > 0 {
			out += "\n- "
		}
		out += s
	}
	return out
}
