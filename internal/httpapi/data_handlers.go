package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"sync/atomic"

	"jobfeed-engine/internal/config"
	"jobfeed-engine/internal/store"
)

// DataHandler previews what a source last wrote to the bucket.
type DataHandler struct {
	Store  store.ObjectStore
	CfgVal *atomic.Value // config.Config
}

func (h DataHandler) GetByPath(w http.ResponseWriter, r *http.Request) {
	source := strings.TrimPrefix(r.URL.Path, "/data/")
	if source == "" || strings.Contains(source, "/") {
		WriteError(w, r, http.StatusNotFound, "unknown_source", "unknown source")
		return
	}

	cfg := h.CfgVal.Load().(config.Config)

	var path string
	switch source {
	case "adzuna", "muse", "jooble":
		path = source + "_jobs.json"
	case "transformed":
		path = "transformed_jobs_data_standardized.json"
	case "hackernews":
		// Date-partitioned; pick the newest object under the prefix.
		paths, err := h.Store.List(r.Context(), cfg.App.Bucket, "raw/hackernews/")
		if err != nil {
			WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
			return
		}
		if len(paths) == 0 {
			WriteError(w, r, http.StatusNotFound, "no_data", "no data stored for hackernews")
			return
		}
		path = paths[len(paths)-1]
	default:
		WriteError(w, r, http.StatusNotFound, "unknown_source", "unknown source")
		return
	}

	content, ct, err := h.Store.Get(r.Context(), cfg.App.Bucket, path)
	if errors.Is(err, store.ErrNotExist) {
		WriteError(w, r, http.StatusNotFound, "no_data", "no data stored for "+source)
		return
	}
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}

	if ct == "" {
		ct = "application/octet-stream"
	}
	w.Header().Set("Content-Type", ct)
	_, _ = w.Write(content)
}
