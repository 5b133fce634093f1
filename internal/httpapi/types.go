package httpapi

// RunStatus tracks the last pipeline run for the harness UI.
type RunStatus struct {
	LastRunAt string `json:"last_run_at"`
	LastOkAt  string `json:"last_ok_at"`
	LastError string `json:"last_error"`
	LastJobs  int    `json:"last_jobs"`
	Running   bool   `json:"running"`
}

// RunSummary is what one full pipeline invocation produced.
type RunSummary struct {
	Jobs int    `json:"jobs"`
	Path string `json:"path,omitempty"`
	Err  string `json:"error,omitempty"`
}
