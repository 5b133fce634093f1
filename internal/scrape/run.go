package scrape

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"jobfeed-engine/internal/config"
	"jobfeed-engine/internal/scrape/adzuna"
	"jobfeed-engine/internal/scrape/jooble"
	"jobfeed-engine/internal/scrape/muse"
	"jobfeed-engine/internal/scrape/types"
	"jobfeed-engine/internal/scrape/util"
	"jobfeed-engine/internal/secrets"
	"jobfeed-engine/internal/store"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// CollectOnce runs every enabled REST source once, uploads each source's raw
// payload to the bucket, and reports per-source results. Sources are
// best-effort: one failing board never cancels its siblings.
func CollectOnce(ctx context.Context, cfg config.Config, st store.ObjectStore) []types.RunResult {
	runID := uuid.NewString()

	limiter := util.NewHostLimiter(cfg.Limits.RequestsPerSec, cfg.Limits.Burst)
	if cfg.Limits.RequestsPerSec <= 0 {
		limiter = util.NewHostLimiter(2.0, 1)
	}

	fetchers := buildFetchers(cfg, limiter)
	if len(fetchers) == 0 {
		log.Printf("[collect] run=%s no sources enabled", runID)
		return nil
	}

	return runFetchers(ctx, runID, fetchers, st, cfg.App.Bucket)
}

func runFetchers(ctx context.Context, runID string, fetchers []types.Fetcher, st store.ObjectStore, bucket string) []types.RunResult {
	var g errgroup.Group
	resultCh := make(chan types.RunResult, len(fetchers))

	for _, f := range fetchers {
		f := f
		g.Go(func() error {
			fctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
			defer cancel()

			res := types.RunResult{
				RunID:     runID,
				Source:    f.Name(),
				StartedAt: time.Now().UTC(),
			}
			log.Printf("[%s] run=%s fetching...", f.Name(), runID)

			records, err := f.Fetch(fctx)
			if err != nil {
				res.Err = err.Error()
				res.FinishedAt = time.Now().UTC()
				log.Printf("[%s] error: %v", f.Name(), err)
				resultCh <- res
				return nil // best-effort: don't cancel siblings
			}
			res.Fetched = len(records)

			path, err := uploadRaw(fctx, st, bucket, f.Name(), records)
			if err != nil {
				res.Err = err.Error()
				log.Printf("[%s] upload error: %v", f.Name(), err)
			} else {
				res.Path = path
			}
			res.FinishedAt = time.Now().UTC()
			resultCh <- res
			return nil
		})
	}

	_ = g.Wait()
	close(resultCh)

	var results []types.RunResult
	for res := range resultCh {
		log.Printf("[collect] run=%s source=%s fetched=%d path=%q err=%q",
			runID, res.Source, res.Fetched, res.Path, res.Err)
		results = append(results, res)
	}
	return results
}

func buildFetchers(cfg config.Config, limiter *util.HostLimiter) []types.Fetcher {
	var fetchers []types.Fetcher

	if cfg.Sources.Adzuna.Enabled {
		fetchers = append(fetchers, adzuna.New(adzuna.Config{
			AppID:          secrets.Lookup(secrets.AccountAdzunaAppID, "ADZUNA_APP_ID"),
			AppKey:         secrets.Lookup(secrets.AccountAdzunaAppKey, "ADZUNA_APP_KEY"),
			Country:        cfg.Sources.Adzuna.Country,
			Keywords:       cfg.Sources.Adzuna.Keywords,
			ResultsPerPage: cfg.Sources.Adzuna.ResultsPerPage,
		}, limiter))
	}
	if cfg.Sources.Muse.Enabled {
		fetchers = append(fetchers, muse.New(muse.Config{
			APIKey:     secrets.Lookup(secrets.AccountMuseKey, "MUSE_API_KEY"),
			Categories: cfg.Sources.Muse.Categories,
			Pages:      cfg.Sources.Muse.Pages,
		}, limiter))
	}
	if cfg.Sources.Jooble.Enabled {
		fetchers = append(fetchers, jooble.New(jooble.Config{
			APIKey:    secrets.Lookup(secrets.AccountJoobleKey, "JOOBLE_API_KEY"),
			Keywords:  cfg.Sources.Jooble.Keywords,
			Locations: cfg.Sources.Jooble.Locations,
			Limit:     cfg.Sources.Jooble.Limit,
		}, limiter))
	}
	return fetchers
}

// uploadRaw stores the source payload exactly as fetched, pretty-printed, at
// the fixed per-source path the transform step reads from.
func uploadRaw(ctx context.Context, st store.ObjectStore, bucket, source string, records []map[string]any) (string, error) {
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode %s payload: %w", source, err)
	}
	path := fmt.Sprintf("%s_jobs.json", source)
	if err := st.Put(ctx, bucket, path, b, "application/json"); err != nil {
		return "", err
	}
	log.Printf("[collect] uploaded %s to %s/%s", path, bucket, path)
	return path, nil
}

// FetchSource runs a single named source once, without touching the store.
// Backs the harness per-connector test endpoints.
func FetchSource(ctx context.Context, cfg config.Config, source string) ([]map[string]any, error) {
	limiter := util.NewHostLimiter(2.0, 1)
	for _, f := range buildFetchers(cfg, limiter) {
		if f.Name() == source {
			return f.Fetch(ctx)
		}
	}
	return nil, fmt.Errorf("unknown or disabled source %q", source)
}
