package httpapi

import (
	"context"
	"sync/atomic"

	"jobfeed-engine/internal/config"
	"jobfeed-engine/internal/domain"
	"jobfeed-engine/internal/events"
	"jobfeed-engine/internal/store"
)

type Deps struct {
	Store store.ObjectStore

	Hub *events.Hub

	// Atomic stores
	CfgVal    *atomic.Value // stores config.Config
	RunStatus *atomic.Value // stores httpapi.RunStatus

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Pipeline entrypoints (injected for testability)
	RunPipeline func(ctx context.Context, cfg config.Config) RunSummary
	FetchSource func(ctx context.Context, cfg config.Config, source string) ([]map[string]any, error)
	PreviewHN   func(ctx context.Context, cfg config.Config, monthsBack, limit int) ([]domain.JobPosting, error)
}
