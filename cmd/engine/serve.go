package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"jobfeed-engine/internal/config"
	"jobfeed-engine/internal/domain"
	"jobfeed-engine/internal/events"
	"jobfeed-engine/internal/hn"
	"jobfeed-engine/internal/httpapi"
	"jobfeed-engine/internal/scrape"
	"jobfeed-engine/internal/store"
	"jobfeed-engine/internal/transform"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the connector test harness API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, userCfgPath, st, err := bootstrap()
		if err != nil {
			return err
		}
		defer st.Close()

		var cfgVal atomic.Value
		cfgVal.Store(cfg)

		var runStatus atomic.Value
		runStatus.Store(httpapi.RunStatus{})

		hub := events.NewHub()

		deps := httpapi.Deps{
			Store:       st,
			Hub:         hub,
			CfgVal:      &cfgVal,
			RunStatus:   &runStatus,
			UserCfgPath: userCfgPath,
			LoadCfg: func() (config.Config, error) {
				return config.Load(userCfgPath)
			},
			RunPipeline: func(ctx context.Context, cfg config.Config) httpapi.RunSummary {
				return runPipeline(ctx, cfg, st)
			},
			FetchSource: scrape.FetchSource,
			PreviewHN: func(ctx context.Context, cfg config.Config, monthsBack, limit int) ([]domain.JobPosting, error) {
				return hn.New(hnConfig(cfg), st).Preview(ctx, monthsBack, limit)
			},
		}

		mux := httpapi.NewMux(deps)

		addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
		ln, err := net.Listen("tcp", addr)
		if err != nil {
			return err
		}
		log.Printf("engine listening on http://%s (bucket=%s)", addr, cfg.App.Bucket)

		srv := &http.Server{
			Handler: httpapi.Chain(mux,
				httpapi.RequestID,
				httpapi.Recover,
				httpapi.AccessLog,
				httpapi.Cors,
			),
			ReadHeaderTimeout: 5 * time.Second,
		}
		return srv.Serve(ln)
	},
}

// runPipeline is the end-to-end run the harness /run endpoint triggers:
// REST sources, then the hiring thread, then standardization.
func runPipeline(ctx context.Context, cfg config.Config, st *store.SQLiteStore) httpapi.RunSummary {
	lock, err := acquireRunLock(cfg.App.DataDir)
	if err != nil {
		return httpapi.RunSummary{Err: err.Error()}
	}
	defer releaseRunLock(lock)

	scrape.CollectOnce(ctx, cfg, st)

	conn := hn.New(hnConfig(cfg), st)
	jobs := conn.ExtractJobs(ctx, cfg.HackerNews.MonthsBack)
	path, err := conn.SaveJobs(ctx, jobs)
	if err != nil {
		return httpapi.RunSummary{Jobs: len(jobs), Err: err.Error()}
	}

	if _, err := transform.Run(ctx, cfg.App.Bucket, st); err != nil {
		log.Printf("[engine] transform: %v", err)
	}

	return httpapi.RunSummary{Jobs: len(jobs), Path: path}
}
