package httpapi

import "net/http"

// NewMux wires the harness routes. main() may still attach extra routes
// (e.g. /shutdown) that need the server handle.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	hh := HealthHandler{}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	// Config
	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))

	// Per-connector test endpoints
	th := ConnectorHandler{
		CfgVal:      d.CfgVal,
		FetchSource: d.FetchSource,
		PreviewHN:   d.PreviewHN,
	}
	mux.HandleFunc("/test/", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: th.Test, // expects /test/{source}
	}))

	// Full pipeline run
	rh := RunHandler{
		CfgVal:      d.CfgVal,
		RunStatus:   d.RunStatus,
		Hub:         d.Hub,
		RunPipeline: d.RunPipeline,
	}
	mux.HandleFunc("/run", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: rh.Run,
	}))
	mux.HandleFunc("/run/status", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: rh.Status,
	}))

	// Stored data preview
	dh := DataHandler{Store: d.Store, CfgVal: d.CfgVal}
	mux.HandleFunc("/data/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: dh.GetByPath, // expects /data/{source}
	}))

	// Secrets (use cfgVal, NOT a snapshot cfg)
	sh := SecretsHandler{}
	mux.HandleFunc("/api/secrets/", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.SetByPath, // expects /api/secrets/{connector}
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	return mux
}
