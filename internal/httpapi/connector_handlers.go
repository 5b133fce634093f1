package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"jobfeed-engine/internal/config"
	"jobfeed-engine/internal/domain"
)

// ConnectorHandler serves the per-source "does this API answer" checks the
// harness page exposes. Responses carry a small sample, not the full payload.
type ConnectorHandler struct {
	CfgVal      *atomic.Value // config.Config
	FetchSource func(ctx context.Context, cfg config.Config, source string) ([]map[string]any, error)
	PreviewHN   func(ctx context.Context, cfg config.Config, monthsBack, limit int) ([]domain.JobPosting, error)
}

const previewLimit = 10

func (h ConnectorHandler) Test(w http.ResponseWriter, r *http.Request) {
	source := strings.TrimPrefix(r.URL.Path, "/test/")
	if source == "" || strings.Contains(source, "/") {
		WriteError(w, r, http.StatusNotFound, "unknown_source", "unknown source")
		return
	}

	cfg := h.CfgVal.Load().(config.Config)
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	if source == "hackernews" {
		monthsBack := cfg.HackerNews.MonthsBack
		if v := r.FormValue("months_back"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n >= 1 {
				monthsBack = n
			}
		}
		jobs, err := h.PreviewHN(ctx, cfg, monthsBack, previewLimit)
		if err != nil {
			writeJSON(w, map[string]any{"status": "error", "message": err.Error()})
			return
		}
		writeJSON(w, map[string]any{"status": "success", "count": len(jobs), "sample": jobs})
		return
	}

	records, err := h.FetchSource(ctx, cfg, source)
	if err != nil {
		writeJSON(w, map[string]any{"status": "error", "message": err.Error()})
		return
	}
	sample := records
	if len(sample) > previewLimit {
		sample = sample[:previewLimit]
	}
	writeJSON(w, map[string]any{"status": "success", "count": len(records), "sample": sample})
}
