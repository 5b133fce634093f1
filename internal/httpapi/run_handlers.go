package httpapi

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"jobfeed-engine/internal/config"
	"jobfeed-engine/internal/events"
)

type RunHandler struct {
	CfgVal      *atomic.Value // config.Config
	RunStatus   *atomic.Value // httpapi.RunStatus
	Hub         *events.Hub
	RunPipeline func(ctx context.Context, cfg config.Config) RunSummary
}

func (h RunHandler) Status(w http.ResponseWriter, r *http.Request) {
	st := h.RunStatus.Load().(RunStatus)
	writeJSON(w, st)
}

func (h RunHandler) Run(w http.ResponseWriter, r *http.Request) {
	st := h.RunStatus.Load().(RunStatus)
	started := RunStatus{
		LastRunAt: time.Now().Format(time.RFC3339),
		Running:   true,
		LastError: "",
		LastJobs:  0,
		LastOkAt:  st.LastOkAt,
	}
	// Swap only if the status is still the one we checked, so concurrent
	// triggers can't both claim the run.
	if st.Running || !h.RunStatus.CompareAndSwap(st, started) {
		writeJSON(w, map[string]any{"ok": false, "msg": "already running"})
		return
	}

	reqID := RequestIDFrom(r.Context())
	go func() {
		cfg := h.CfgVal.Load().(config.Config)
		h.Hub.Publish(events.MakeEvent(reqID, "run_started", 1, nil))

		sum := h.RunPipeline(context.Background(), cfg)

		now := time.Now().Format(time.RFC3339)
		next := h.RunStatus.Load().(RunStatus)
		next.Running = false
		next.LastRunAt = now
		next.LastJobs = sum.Jobs
		if sum.Err != "" {
			next.LastError = sum.Err
		} else {
			next.LastError = ""
			next.LastOkAt = now
		}
		h.RunStatus.Store(next)
		h.Hub.Publish(events.MakeEvent(reqID, "run_finished", 1, sum))
	}()

	writeJSON(w, map[string]any{"ok": true})
}
