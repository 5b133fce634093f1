package main

import (
	"log"
	"time"

	"jobfeed-engine/internal/config"
	"jobfeed-engine/internal/hn"
	"jobfeed-engine/internal/scrape"
	"jobfeed-engine/internal/transform"

	"github.com/spf13/cobra"
)

var (
	flagMonthsBack   int
	flagSkipCollect  bool
	flagSkipHN       bool
	flagSkipTransfrm bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline once (collect, hacker news, transform)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, st, err := bootstrap()
		if err != nil {
			return err
		}
		defer st.Close()

		lock, err := acquireRunLock(cfg.App.DataDir)
		if err != nil {
			return err
		}
		defer releaseRunLock(lock)

		ctx := cmd.Context()

		if !flagSkipCollect {
			scrape.CollectOnce(ctx, cfg, st)
		}

		if !flagSkipHN {
			monthsBack := cfg.HackerNews.MonthsBack
			if flagMonthsBack > 0 {
				monthsBack = flagMonthsBack
			}
			conn := hn.New(hnConfig(cfg), st)
			jobs := conn.ExtractJobs(ctx, monthsBack)
			if _, err := conn.SaveJobs(ctx, jobs); err != nil {
				log.Printf("[engine] saving hackernews jobs: %v", err)
			}
		}

		if !flagSkipTransfrm {
			n, err := transform.Run(ctx, cfg.App.Bucket, st)
			if err != nil {
				log.Printf("[engine] transform: %v", err)
			} else {
				log.Printf("[engine] transform complete (%d records)", n)
			}
		}
		return nil
	},
}

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Fetch the enabled REST sources and store their raw payloads",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, st, err := bootstrap()
		if err != nil {
			return err
		}
		defer st.Close()

		lock, err := acquireRunLock(cfg.App.DataDir)
		if err != nil {
			return err
		}
		defer releaseRunLock(lock)

		scrape.CollectOnce(cmd.Context(), cfg, st)
		return nil
	},
}

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Standardize stored raw payloads into the common schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, st, err := bootstrap()
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := transform.Run(cmd.Context(), cfg.App.Bucket, st)
		if err != nil {
			return err
		}
		log.Printf("[engine] transform complete (%d records)", n)
		return nil
	},
}

func init() {
	runCmd.Flags().IntVar(&flagMonthsBack, "months-back", 0, "override hackernews.months_back")
	runCmd.Flags().BoolVar(&flagSkipCollect, "skip-collect", false, "skip the REST sources")
	runCmd.Flags().BoolVar(&flagSkipHN, "skip-hackernews", false, "skip the Hacker News thread")
	runCmd.Flags().BoolVar(&flagSkipTransfrm, "skip-transform", false, "skip standardization")
}

func hnConfig(cfg config.Config) hn.Config {
	return hn.Config{
		Bucket:     cfg.App.Bucket,
		MaxRetries: cfg.HackerNews.MaxRetries,
		RetryDelay: time.Duration(cfg.HackerNews.RetryDelaySeconds) * time.Second,
		FetchPause: time.Duration(cfg.HackerNews.FetchPauseMillis) * time.Millisecond,
	}
}
